// apps/go-term/internal/tui/keys.go
//
// Explicit key table. Every binding the game understands lives here so the
// help line, the tests and the event loop agree on one mapping.

package tui

import "github.com/gdamore/tcell/v2"

// Action is a logical input independent of the physical key.
type Action int

const (
	ActionNone Action = iota
	ActionLetter
	ActionErase
	ActionEnter
	ActionHint
	ActionNewGame
	ActionChangeLength
	ActionToggleStats
	ActionToggleSettings
	ActionToggleDark
	ActionToggleContrast
	ActionLeft
	ActionRight
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionLetter:         "letter",
	ActionErase:          "erase",
	ActionEnter:          "enter",
	ActionHint:           "hint",
	ActionNewGame:        "new-game",
	ActionChangeLength:   "change-length",
	ActionToggleStats:    "toggle-stats",
	ActionToggleSettings: "toggle-settings",
	ActionToggleDark:     "toggle-dark",
	ActionToggleContrast: "toggle-contrast",
	ActionLeft:           "left",
	ActionRight:          "right",
	ActionQuit:           "quit",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// keyActions maps special keys.
var keyActions = map[tcell.Key]Action{
	tcell.KeyEnter:      ActionEnter,
	tcell.KeyBackspace:  ActionErase,
	tcell.KeyBackspace2: ActionErase,
	tcell.KeyDelete:     ActionErase,
	tcell.KeyTab:        ActionHint,
	tcell.KeyCtrlN:      ActionNewGame,
	tcell.KeyCtrlL:      ActionChangeLength,
	tcell.KeyCtrlS:      ActionToggleStats,
	tcell.KeyCtrlO:      ActionToggleSettings,
	tcell.KeyCtrlD:      ActionToggleDark,
	tcell.KeyCtrlT:      ActionToggleContrast,
	tcell.KeyLeft:       ActionLeft,
	tcell.KeyRight:      ActionRight,
	tcell.KeyEscape:     ActionQuit,
	tcell.KeyCtrlC:      ActionQuit,
}

// runeActions maps printable non-letter runes.
var runeActions = map[rune]Action{
	'?': ActionHint,
}

// Lookup resolves a key press. For ActionLetter the returned rune is the
// upper-case letter; otherwise it is the raw rune.
func Lookup(key tcell.Key, r rune, mod tcell.ModMask) (Action, rune) {
	if key != tcell.KeyRune {
		if a, ok := keyActions[key]; ok {
			return a, r
		}
		return ActionNone, r
	}
	if mod&(tcell.ModAlt|tcell.ModCtrl) != 0 {
		return ActionNone, r
	}
	switch {
	case r >= 'a' && r <= 'z':
		return ActionLetter, r - 'a' + 'A'
	case r >= 'A' && r <= 'Z':
		return ActionLetter, r
	}
	if a, ok := runeActions[r]; ok {
		return a, r
	}
	return ActionNone, r
}

// keyboardRows is the on-screen keyboard layout.
var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

const helpLine = "enter submit  ? hint  ^N new  ^L length  ^S stats  ^O settings  esc quit"
