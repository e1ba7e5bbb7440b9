package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/zentryas/gemini-chatbot-api/internal/models"
)

// Generator produces a reply for an ordered conversation. The relay handler
// depends on this interface so it can be tested with a fake provider.
type Generator interface {
	Generate(ctx context.Context, conversation models.Conversation) (string, error)
}

type GeminiService struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	rateChan chan struct{} // Token bucket
}

func NewGeminiService(apiKey, modelName string, concurrentReqs int) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	// Token bucket limiting concurrent provider calls
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		client:   client,
		model:    model,
		rateChan: rateChan,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Generate sends the conversation to Gemini and returns the reply text.
// Turns are forwarded in order with no merging or truncation; the final turn
// is sent as the active message and everything before it as chat history.
func (s *GeminiService) Generate(ctx context.Context, conversation models.Conversation) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	contents := toContents(conversation)

	var resp *genai.GenerateContentResponse
	var err error
	if len(contents) == 0 {
		// Degenerate case: no history at all. Forwarded as-is; the API
		// decides what an empty prompt means.
		resp, err = s.model.GenerateContent(ctx)
	} else {
		cs := s.model.StartChat()
		cs.History = contents[:len(contents)-1]
		last := contents[len(contents)-1]
		resp, err = cs.SendMessage(ctx, last.Parts...)
	}
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return extractText(resp), nil
}

// toContents projects each turn to the provider's {role, parts:[{text}]}
// structure, preserving order.
func toContents(conversation models.Conversation) []*genai.Content {
	contents := make([]*genai.Content, 0, len(conversation))
	for _, turn := range conversation {
		contents = append(contents, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return contents
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
