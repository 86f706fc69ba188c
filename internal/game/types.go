// apps/go-term/internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark / Verdict: per-letter result of a guess (correct/present/absent).
//   - LetterState: aggregated keyboard status of a letter across guesses.
//   - Status: coarse game state (in progress / won / lost).
//   - Game: state for a single in-progress or finished game.

package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this position.
//   - "present": letter exists in the answer but in a different position.
//   - "absent":  letter does not exist in the answer (or all copies are used up).
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Verdict is the ordered list of marks for one submitted guess.
type Verdict []Mark

// Solved reports whether every position is MarkCorrect.
func (v Verdict) Solved() bool {
	if len(v) == 0 {
		return false
	}
	for _, m := range v {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// String renders the verdict as a row of colored squares, e.g. 🟩🟨⬜⬜🟩.
func (v Verdict) String() string {
	var b strings.Builder
	for _, m := range v {
		switch m {
		case MarkCorrect:
			b.WriteString("🟩")
		case MarkPresent:
			b.WriteString("🟨")
		default:
			b.WriteString("⬜")
		}
	}
	return b.String()
}

// LetterState is the keyboard status of a single letter.
type LetterState int

const (
	LetterUnknown LetterState = iota
	LetterAbsent
	LetterPresent
	LetterCorrect
	LetterHinted
)

func (s LetterState) String() string {
	switch s {
	case LetterAbsent:
		return "absent"
	case LetterPresent:
		return "present"
	case LetterCorrect:
		return "correct"
	case LetterHinted:
		return "hint"
	default:
		return "unknown"
	}
}

// Status is the coarse state of a game.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Dictionary is the word-list collaborator the engine validates guesses
// against and draws targets from. words.Dictionary satisfies it.
type Dictionary interface {
	Contains(length int, word string) bool
	Words(length int) []string
}

// Rand is the source of randomness for target and hint selection.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Game holds the state of a single Wordle game.
type Game struct {
	ID          string               // Unique game identifier (uuid), for logs.
	Target      string               // The solution word (uppercase).
	Length      int                  // Letters per word (4, 5 or 6).
	MaxAttempts int                  // Rows on the board (6).
	Attempt     int                  // Current row index, 0..MaxAttempts.
	Pending     []byte               // Letters typed into the current row.
	Guesses     []string             // Accepted guesses in order.
	Verdicts    []Verdict            // Verdicts parallel to Guesses.
	Keys        map[byte]LetterState // Keyboard status per letter.
	Status      Status               // InProgress / Won / Lost.
	HintUsed    bool                 // True once the hint was spent this game.
	HintLetter  byte                 // Letter revealed by the hint, 0 if none.

	dict Dictionary
	rnd  Rand
}

// Cursor is the column the next typed letter lands in.
func (g *Game) Cursor() int { return len(g.Pending) }

// Over reports whether the game has finished.
func (g *Game) Over() bool { return g.Status != InProgress }

// AttemptsUsed is the number of rows consumed by the game so far.
// For a won game it includes the winning row.
func (g *Game) AttemptsUsed() int { return len(g.Guesses) }

// Share renders a finished game as a header line ("Wordle 5 3/6", X for a
// loss) followed by one emoji row per guess. It is empty while in progress.
func (g *Game) Share() []string {
	if !g.Over() {
		return nil
	}
	score := "X"
	if g.Status == Won {
		score = strconv.Itoa(len(g.Guesses))
	}
	lines := []string{fmt.Sprintf("Wordle %d %s/%d", g.Length, score, g.MaxAttempts)}
	for _, v := range g.Verdicts {
		lines = append(lines, v.String())
	}
	return lines
}
