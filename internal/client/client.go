// Package client talks to the conversation relay on behalf of a chat
// front end.
package client

import (
	"context"
	"errors"

	"github.com/go-resty/resty/v2"

	"github.com/zentryas/gemini-chatbot-api/internal/models"
)

const (
	// fallbackErrorMessage is shown when the exchange fails before any
	// server-supplied message is available.
	fallbackErrorMessage = "Failed to get response from server."

	// noResponseMessage is shown when the server answered OK but with an
	// empty result.
	noResponseMessage = "Sorry, no response received."
)

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

// Send posts the conversation to the relay and returns the reply text. A
// server-reported error is returned with the server's message; a network
// failure before any response falls back to a generic message. No retry.
func (c *Client) Send(ctx context.Context, conversation models.Conversation) (string, error) {
	var result models.ChatResponse
	var apiErr models.ErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.ChatRequest{Conversation: conversation}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/chat")
	if err != nil {
		return "", errors.New(fallbackErrorMessage)
	}

	if resp.IsError() {
		if apiErr.Error != "" {
			return "", errors.New(apiErr.Error)
		}
		return "", errors.New(fallbackErrorMessage)
	}

	if result.Result == "" {
		return noResponseMessage, nil
	}
	return result.Result, nil
}
