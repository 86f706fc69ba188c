package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		r      rune
		mod    tcell.ModMask
		want   Action
		letter rune
	}{
		{"lower letter", tcell.KeyRune, 'q', tcell.ModNone, ActionLetter, 'Q'},
		{"upper letter", tcell.KeyRune, 'Z', tcell.ModShift, ActionLetter, 'Z'},
		{"alt letter", tcell.KeyRune, 'a', tcell.ModAlt, ActionNone, 'a'},
		{"digit", tcell.KeyRune, '5', tcell.ModNone, ActionNone, '5'},
		{"question mark", tcell.KeyRune, '?', tcell.ModNone, ActionHint, '?'},
		{"tab", tcell.KeyTab, 0, tcell.ModNone, ActionHint, 0},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, ActionEnter, 0},
		{"backspace", tcell.KeyBackspace, 0, tcell.ModNone, ActionErase, 0},
		{"backspace2", tcell.KeyBackspace2, 0, tcell.ModNone, ActionErase, 0},
		{"delete", tcell.KeyDelete, 0, tcell.ModNone, ActionErase, 0},
		{"new game", tcell.KeyCtrlN, 0, tcell.ModCtrl, ActionNewGame, 0},
		{"length", tcell.KeyCtrlL, 0, tcell.ModCtrl, ActionChangeLength, 0},
		{"stats", tcell.KeyCtrlS, 0, tcell.ModCtrl, ActionToggleStats, 0},
		{"settings", tcell.KeyCtrlO, 0, tcell.ModCtrl, ActionToggleSettings, 0},
		{"dark", tcell.KeyCtrlD, 0, tcell.ModCtrl, ActionToggleDark, 0},
		{"contrast", tcell.KeyCtrlT, 0, tcell.ModCtrl, ActionToggleContrast, 0},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, ActionQuit, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0, tcell.ModCtrl, ActionQuit, 0},
		{"unbound", tcell.KeyF12, 0, tcell.ModNone, ActionNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, r := Lookup(tt.key, tt.r, tt.mod)
			assert.Equal(t, tt.want, got, got.String())
			assert.Equal(t, tt.letter, r)
		})
	}
}

func TestKeyboardCoversAlphabet(t *testing.T) {
	seen := map[rune]bool{}
	for _, row := range keyboardRows {
		for _, r := range row {
			assert.False(t, seen[r], "duplicate key %c", r)
			seen[r] = true
		}
	}
	assert.Len(t, seen, 26)
}
