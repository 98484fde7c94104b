package session

import (
	"fmt"
	"sync"
	"testing"
)

func TestManager_AcquireCreatesLazily(t *testing.T) {
	m := NewManager("default-key")

	if m.Count() != 0 {
		t.Fatalf("expected empty manager, got %d sessions", m.Count())
	}

	s, release := m.Acquire("chat-1")
	defer release()

	if s.ID != "chat-1" {
		t.Errorf("expected ID 'chat-1', got %q", s.ID)
	}
	if s.State() != StateIdle {
		t.Errorf("expected initial state idle, got %v", s.State())
	}
	if s.APIKey() != "default-key" {
		t.Errorf("expected default key, got %q", s.APIKey())
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 session, got %d", m.Count())
	}
}

func TestManager_AcquireReturnsSameSession(t *testing.T) {
	m := NewManager("")

	s1, release := m.Acquire("chat-1")
	s1.SetState(StateAwaitingQuery)
	release()

	s2, release := m.Acquire("chat-1")
	defer release()

	if s1 != s2 {
		t.Error("expected same session instance for same id")
	}
	if s2.State() != StateAwaitingQuery {
		t.Errorf("expected state to persist, got %v", s2.State())
	}
}

func TestSession_KeyIsSessionScoped(t *testing.T) {
	m := NewManager("shared-default")

	a, release := m.Acquire("alice")
	a.SetAPIKey("alice-key")
	release()

	b, release := m.Acquire("bob")
	defer release()

	if b.APIKey() != "shared-default" {
		t.Errorf("bob's key leaked: got %q", b.APIKey())
	}

	if got := m.Peek("alice").APIKey(); got != "alice-key" {
		t.Errorf("expected alice-key, got %q", got)
	}
}

func TestManager_PeekUnknown(t *testing.T) {
	m := NewManager("")
	if m.Peek("nobody") != nil {
		t.Error("expected nil for unknown session")
	}
}

func TestManager_ConcurrentSessions(t *testing.T) {
	m := NewManager("")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("chat-%d", i%10)
			for j := 0; j < 20; j++ {
				s, release := m.Acquire(id)
				s.SetState(StateAwaitingQuery)
				s.SetState(StateIdle)
				release()
			}
		}(i)
	}
	wg.Wait()

	if m.Count() != 10 {
		t.Errorf("expected 10 sessions, got %d", m.Count())
	}
}

func TestManager_AcquireSerializesPerSession(t *testing.T) {
	m := NewManager("")

	var order []int
	var wg sync.WaitGroup

	s, release := m.Acquire("chat-1")
	_ = s

	wg.Add(1)
	go func() {
		defer wg.Done()
		s2, release2 := m.Acquire("chat-1")
		_ = s2
		order = append(order, 2)
		release2()
	}()

	order = append(order, 1)
	release()
	wg.Wait()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected second acquire to wait for release, got order %v", order)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateAwaitingQuery, "awaiting_query"},
		{StateAwaitingKey, "awaiting_key"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
