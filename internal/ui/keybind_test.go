package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_LookupAndNormalize(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	if reg.Lookup("SPC q", ModeDisplay) == nil {
		t.Error("expected binding for SPC q")
	}
	if reg.Lookup("space q", ModeInput) == nil {
		t.Error("space should normalize to SPC")
	}
	if reg.Lookup("SPC x", ModeDisplay) != nil {
		t.Error("unexpected binding for SPC x")
	}
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("q", tea.Quit, "Quit", []AppMode{ModeDisplay})

	if reg.Lookup("q", ModeDisplay) == nil {
		t.Error("q should be bound in display mode")
	}
	if reg.Lookup("q", ModeInput) != nil {
		t.Error("q must not apply in input mode")
	}
}

func TestKeybindRegistry_HasPrefix(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC s", func() tea.Msg { return ReturnToInputMsg{} }, "New search")

	if !reg.HasPrefix("SPC") {
		t.Error("SPC should be a prefix of SPC s")
	}
	if reg.HasPrefix("SPC s") {
		t.Error("SPC s has no continuation")
	}
}

func TestKeyHandler_LeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC s", func() tea.Msg { return ReturnToInputMsg{} }, "New search")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "), ModeDisplay)
	if !consumed || cmd != nil {
		t.Fatal("leader key should be consumed with no cmd")
	}
	if !h.LeaderWaiting {
		t.Fatal("expected LeaderWaiting after SPC")
	}

	consumed, cmd = h.Handle(keyMsg("s"), ModeDisplay)
	if !consumed || cmd == nil {
		t.Fatal("SPC s should resolve to a cmd")
	}
	if h.LeaderWaiting {
		t.Error("leader mode should end after a match")
	}
	if _, ok := cmd().(ReturnToInputMsg); !ok {
		t.Error("expected ReturnToInputMsg")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeDisplay)
	consumed, cmd := h.Handle(keyMsg("esc"), ModeDisplay)
	if !consumed || cmd != nil {
		t.Error("esc in leader mode should be consumed with no cmd")
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_UnboundKeyEndsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeDisplay)
	consumed, cmd := h.Handle(keyMsg("z"), ModeDisplay)
	if !consumed || cmd != nil {
		t.Error("unbound key in leader mode is swallowed")
	}
	if h.LeaderWaiting {
		t.Error("leader mode should end on an unbound key")
	}
}

func TestKeyHandler_PassThroughOutsideLeader(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	consumed, _ := h.Handle(keyMsg("j"), ModeDisplay)
	if consumed {
		t.Error("unbound key outside leader mode should pass through to views")
	}
}

func TestRenderKeybindHelp_ListsModeHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC s", func() tea.Msg { return ReturnToInputMsg{} }, "New search", []AppMode{ModeDisplay})
	reg.BindWithDescForMode("SPC q", tea.Quit, "Quit", []AppMode{ModeDisplay})
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "), ModeDisplay)

	out := RenderKeybindHelp(h, ModeDisplay)
	for _, want := range []string{"New search", "Quit", "cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("help should contain %q, got:\n%s", want, out)
		}
	}

	if RenderKeybindHelp(h, ModeInput) != "" {
		t.Error("no hints should render for a mode with no bindings")
	}
}
