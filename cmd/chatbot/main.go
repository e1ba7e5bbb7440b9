package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zentryas/gemini-chatbot-api/internal/config"
	"github.com/zentryas/gemini-chatbot-api/internal/handlers"
	"github.com/zentryas/gemini-chatbot-api/internal/router"
	"github.com/zentryas/gemini-chatbot-api/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "chatbot",
	Short: "Gemini chatbot relay server",
	Long: `Stateless HTTP relay between a chat widget and the Gemini API.
Serves the browser widget and exposes POST /api/chat.`,
	Run: runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	log.Println("🚀 Starting Gemini chatbot relay...")

	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiConcurrentReqs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (model %s)", cfg.GeminiModel)

	chatHandler := handlers.NewChatHandler(geminiService)
	r := router.New(chatHandler, cfg.StaticDir, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Server ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
