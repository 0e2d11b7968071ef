package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"skycheck/internal/weather"
)

// keyMsg builds a tea.KeyMsg for special keys and single runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeString feeds a string rune-by-rune into a view's Update.
func typeString(v View, s string) View {
	for _, r := range s {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		}
		v, _ = v.Update(msg)
	}
	return v
}

// fakeFetcher is a WeatherFetcher returning a fixed snapshot or error.
type fakeFetcher struct {
	snapshot weather.Snapshot
	err      error
	calls    []string
}

func (f *fakeFetcher) Current(_ context.Context, city string) (*weather.Snapshot, error) {
	f.calls = append(f.calls, city)
	if f.err != nil {
		return nil, f.err
	}
	snap := f.snapshot
	return &snap, nil
}

// collectMsgs executes a command tree (flattening tea.Batch) and returns
// every produced message. Spinner ticks are returned but never re-executed.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

var errFetch = fmt.Errorf("boom")
