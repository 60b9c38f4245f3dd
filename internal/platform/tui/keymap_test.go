package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"r restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionRight},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, want %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if got := len(km.ShortHelp()); got != 4 {
		t.Errorf("ShortHelp has %d bindings, want 4", got)
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 4 {
		t.Errorf("FullHelp has %d bindings, want 4", total)
	}
	if km.Restart.Help().Desc != "restart" {
		t.Errorf("unexpected restart help %q", km.Restart.Help().Desc)
	}
}
