package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Provider-facing role vocabulary. Gemini only understands these two tags.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ErrNotArray is returned when the conversation field of a chat request is
// missing or is not a JSON array.
var ErrNotArray = errors.New("Conversation must be an array.")

// Turn is a single entry in a conversation, earliest-first.
type Turn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Conversation is an ordered sequence of turns. Order carries meaning:
// chronology is the model's context.
type Conversation []Turn

// UnmarshalJSON rejects any shape that is not a JSON array, so a singular
// object, a number or an explicit null surfaces as ErrNotArray instead of
// being coerced into an empty history.
func (c *Conversation) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return ErrNotArray
	}

	var turns []Turn
	if err := json.Unmarshal(trimmed, &turns); err != nil {
		return err
	}

	*c = Conversation(turns)
	return nil
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Conversation Conversation `json:"conversation"`
}

// ChatResponse carries the generated reply.
type ChatResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is the failure form of the chat endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
