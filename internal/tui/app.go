// Package tui is a terminal front end for the conversation relay.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zentryas/gemini-chatbot-api/internal/client"
	"github.com/zentryas/gemini-chatbot-api/internal/models"
	"github.com/zentryas/gemini-chatbot-api/internal/transcript"
)

var (
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// responseMsg resolves one placeholder when its round trip completes.
type responseMsg struct {
	id   string
	text string
	err  error
}

// Model is the chat TUI. Multiple submissions may be in flight at once;
// each resolves its own placeholder independently.
type Model struct {
	client     *client.Client
	transcript *transcript.Transcript
	input      textinput.Model
	spinner    spinner.Model
	width      int
}

func New(c *client.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:     c,
		transcript: transcript.New(),
		input:      ti,
		spinner:    sp,
		width:      80,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()

			// Whitespace-only input: no entry, no request.
			id, ok := m.transcript.Submit(text)
			if !ok {
				return m, nil
			}
			return m, m.sendCmd(id, text)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case responseMsg:
		if msg.err != nil {
			m.transcript.Resolve(msg.id, msg.err.Error())
		} else {
			m.transcript.Resolve(msg.id, msg.text)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// sendCmd dispatches one conversation round trip. The interface stays
// responsive while the request is in flight.
func (m Model) sendCmd(id, text string) tea.Cmd {
	return func() tea.Msg {
		conversation := models.Conversation{{Role: models.RoleUser, Text: text}}
		reply, err := m.client.Send(context.Background(), conversation)
		return responseMsg{id: id, text: reply, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder

	for _, entry := range m.transcript.Entries() {
		switch {
		case entry.Sender == transcript.SenderUser:
			b.WriteString(userStyle.Render("You: "))
			b.WriteString(entry.Text)
		case entry.Thinking:
			b.WriteString(botStyle.Render("Bot: "))
			b.WriteString(m.spinner.View())
			b.WriteString(faintStyle.Render(" Thinking..."))
		default:
			b.WriteString(botStyle.Render("Bot: "))
			b.WriteString(renderMarkup(entry.Text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("enter: send • esc: quit"))

	return b.String()
}
