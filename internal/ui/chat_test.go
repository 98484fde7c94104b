package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sleuthbot/internal/transport"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		line    string
		text    string
		command bool
	}{
		{"/search", "search", true},
		{"/help", "help", true},
		{"  /cancel  ", "cancel", true},
		{"test@example.com", "test@example.com", false},
		{"  plain text  ", "plain text", false},
	}

	for _, tt := range tests {
		text, isCommand := parseInput(tt.line)
		if text != tt.text || isCommand != tt.command {
			t.Errorf("parseInput(%q) = (%q, %v), want (%q, %v)",
				tt.line, text, isCommand, tt.text, tt.command)
		}
	}
}

func TestModel_DispatchRoutesToHandler(t *testing.T) {
	var got transport.Message
	h := transport.HandlerFunc(func(ctx context.Context, msg transport.Message) string {
		got = msg
		return "pong"
	})

	m := newModel("local", h)
	cmd := m.dispatch("/search")
	if cmd == nil {
		t.Fatal("expected a command")
	}

	msg := cmd()
	reply, ok := msg.(replyMsg)
	if !ok {
		t.Fatalf("expected replyMsg, got %T", msg)
	}
	if string(reply) != "pong" {
		t.Errorf("unexpected reply %q", reply)
	}
	if got.SessionID != "local" || got.Text != "search" || !got.IsCommand {
		t.Errorf("unexpected message %+v", got)
	}
}

func TestModel_ReplyAppendsTranscript(t *testing.T) {
	m := newModel("local", transport.HandlerFunc(func(context.Context, transport.Message) string {
		return ""
	}))
	m.ready = true
	m.viewport.Width = 80
	m.viewport.Height = 20
	m.busy = true

	updated, _ := m.Update(replyMsg("found 1 result(s)"))
	mm := updated.(model)

	if mm.busy {
		t.Error("expected busy cleared after reply")
	}
	joined := strings.Join(mm.transcript, "\n")
	if !strings.Contains(joined, "found 1 result(s)") {
		t.Errorf("transcript missing reply: %q", joined)
	}
}

func TestModel_StatusMsg(t *testing.T) {
	m := newModel("local", nil)
	updated, _ := m.Update(statusMsg("searching"))
	if got := updated.(model).status; got != "searching" {
		t.Errorf("unexpected status %q", got)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := newModel("local", nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
