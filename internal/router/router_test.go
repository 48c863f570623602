package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hkawai/kioku/internal/screen"
)

// stubScreen is a minimal screen for router tests.
type stubScreen struct {
	title    string
	initRan  bool
	lastMsg  tea.Msg
	updCount int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	s.updCount++
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.title }
func (s *stubScreen) Title() string                 { return s.title }

func TestPushPop(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	r := New(first)

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}

	r.Push(second)
	if !second.initRan {
		t.Error("expected Init on pushed screen")
	}
	if r.Active() != second {
		t.Errorf("active = %v, want second", r.Active().Title())
	}

	r.Pop()
	if r.Active() != first {
		t.Errorf("active = %v, want first", r.Active().Title())
	}

	// The last screen never pops.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	third := &stubScreen{title: "third"}
	r := New(first)
	r.Push(second)

	r.Replace(third)
	if !third.initRan {
		t.Error("expected Init on replacement screen")
	}
	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}

	r.Pop()
	if r.Active() != first {
		t.Errorf("active = %v, want first", r.Active().Title())
	}
}

func TestUpdateRoutesNavigationMessages(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	r := New(first)

	r.Update(PushScreenMsg{Screen: second})
	if r.Active() != second {
		t.Fatal("push message did not push")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != first {
		t.Fatal("pop message did not pop")
	}
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	r := New(first)
	r.Push(second)

	type customMsg struct{}
	r.Update(customMsg{})

	if second.updCount != 1 {
		t.Errorf("second.updCount = %d, want 1", second.updCount)
	}
	if first.updCount != 0 {
		t.Errorf("first.updCount = %d, want 0 (only active screen sees messages)", first.updCount)
	}
}
