package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/zentryas/gemini-chatbot-api/internal/models"
	"github.com/zentryas/gemini-chatbot-api/internal/services"
)

// genericProviderError is the only message clients see when the provider
// call fails. Detail stays in the server log.
const genericProviderError = "Failed to generate text"

type ChatHandler struct {
	generator services.Generator
}

func NewChatHandler(generator services.Generator) *ChatHandler {
	return &ChatHandler{generator: generator}
}

// Chat relays one conversation to the provider. Stateless: nothing survives
// the response.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, models.ErrNotArray) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: models.ErrNotArray.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Conversation == nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: models.ErrNotArray.Error()})
		return
	}

	result, err := h.generator.Generate(r.Context(), req.Conversation)
	if err != nil {
		log.Printf("Error generating text: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: genericProviderError})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Result: result})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
