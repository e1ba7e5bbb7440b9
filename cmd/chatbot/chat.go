package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zentryas/gemini-chatbot-api/internal/client"
	"github.com/zentryas/gemini-chatbot-api/internal/tui"
)

var serverURL string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the relay from the terminal",
	Run:   runChat,
}

func runChat(cmd *cobra.Command, args []string) {
	c := client.New(serverURL)

	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	chatCmd.Flags().StringVarP(&serverURL, "server", "s", "http://localhost:3000", "Relay server URL")
	rootCmd.AddCommand(chatCmd)
}
