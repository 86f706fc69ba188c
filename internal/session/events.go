// apps/go-term/internal/session/events.go

package session

import (
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/stats"
)

// Listener receives core-to-UI events. Calls happen synchronously inside the
// Session method that caused them.
type Listener interface {
	// GuessRejected reports why a submission was refused (see game.Err*).
	GuessRejected(err error)
	// VerdictComputed fires once per accepted guess; row is 0-based.
	VerdictComputed(row int, guess string, v game.Verdict)
	// GameWon fires after the win was recorded in stats.
	GameWon(attempts int, word string, st stats.Stats, newMaxStreak bool)
	// GameLost fires after the loss was recorded; endedStreak is the streak
	// the loss broke (0 if none).
	GameLost(word string, st stats.Stats, endedStreak int)
	HintRevealed(letter byte)
	HintRejected(err error)
	GameReset()
}

// Nop discards every event. Embed it to implement only some methods.
type Nop struct{}

func (Nop) GuessRejected(error) {}
func (Nop) VerdictComputed(int, string, game.Verdict) {}
func (Nop) GameWon(int, string, stats.Stats, bool) {}
func (Nop) GameLost(string, stats.Stats, int) {}
func (Nop) HintRevealed(byte) {}
func (Nop) HintRejected(error) {}
func (Nop) GameReset() {}
