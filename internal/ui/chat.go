// Package ui is the local chat front-end: a terminal conversation with
// the bot for use without a remote chat platform. Input prefixed with
// "/" is a command, anything else is unscoped text. It implements
// transport.Transport.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sleuthbot/internal/transport"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1)

	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	botStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AFAFFF"))

	statusStyle = lipgloss.NewStyle().
			Faint(true)
)

// Chat runs a bubbletea program that feeds typed lines to the handler
// and appends replies to the transcript.
type Chat struct {
	sessionID string
	program   *tea.Program
}

// NewChat creates a chat transport for one local session identity.
func NewChat(sessionID string) *Chat {
	return &Chat{sessionID: sessionID}
}

// Run starts the interactive loop and blocks until the user quits.
func (c *Chat) Run(ctx context.Context, h transport.Handler) error {
	model := newModel(c.sessionID, h)
	c.program = tea.NewProgram(model, tea.WithContext(ctx))
	_, err := c.program.Run()
	return err
}

// Notify pushes a status line (e.g. "searching...") into the UI. Safe
// to call from any goroutine once Run has started.
func (c *Chat) Notify(status string) {
	if c.program != nil {
		c.program.Send(statusMsg(status))
	}
}

type (
	statusMsg string
	replyMsg  string
)

// parseInput splits a typed line into message text and the command
// flag. A leading "/" marks a command; the slash is stripped.
func parseInput(line string) (text string, isCommand bool) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "/") {
		return strings.TrimPrefix(line, "/"), true
	}
	return line, false
}

type model struct {
	sessionID string
	handler   transport.Handler

	viewport   viewport.Model
	input      textarea.Model
	spinner    spinner.Model
	transcript []string
	status     string
	busy       bool
	ready      bool
	width      int
	height     int
}

func newModel(sessionID string, h transport.Handler) model {
	ta := textarea.New()
	ta.Placeholder = "type a query, or /help"
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		sessionID: sessionID,
		handler:   h,
		input:     ta,
		spinner:   sp,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) dispatch(line string) tea.Cmd {
	text, isCommand := parseInput(line)
	handler := m.handler
	sessionID := m.sessionID
	return func() tea.Msg {
		reply := handler.HandleMessage(context.Background(), transport.Message{
			SessionID: sessionID,
			Text:      text,
			IsCommand: isCommand,
		})
		return replyMsg(reply)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			if line == "" || m.busy {
				return m, nil
			}
			m.transcript = append(m.transcript, userStyle.Render("you: ")+line)
			m.input.Reset()
			m.busy = true
			m.status = ""
			m.refreshViewport()
			return m, tea.Batch(m.dispatch(line), m.spinner.Tick)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.input.SetWidth(msg.Width - 2)
		m.refreshViewport()

	case replyMsg:
		m.busy = false
		m.status = ""
		m.transcript = append(m.transcript, botStyle.Render(string(msg)), "")
		m.refreshViewport()

	case statusMsg:
		m.status = string(msg)

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if !m.ready {
		return "\n  starting..."
	}

	header := titleStyle.Render(" sleuthbot ")

	var activity string
	if m.busy {
		status := m.status
		if status == "" {
			status = "working"
		}
		activity = statusStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), status))
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s",
		header,
		m.viewport.View(),
		activity,
		m.input.View(),
	)
}
