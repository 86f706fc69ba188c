package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/prefs"
)

func TestToastsNewestWins(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var ts toasts
	ts.show(t0, "first", 0, 2*time.Second)
	ts.show(t0, "later", time.Second, 2*time.Second)

	text, ok := ts.current(t0)
	assert.True(t, ok)
	assert.Equal(t, "first", text)

	text, _ = ts.current(t0.Add(1500 * time.Millisecond))
	assert.Equal(t, "later", text)

	_, ok = ts.current(t0.Add(3 * time.Second))
	assert.False(t, ok)

	ts.prune(t0.Add(2500 * time.Millisecond))
	assert.Len(t, ts.items, 1)
	ts.clear()
	assert.Empty(t, ts.items)
}

func TestRejectionText(t *testing.T) {
	for err, want := range map[error]string{
		game.ErrIncompleteGuess: "Not enough letters",
		game.ErrUnknownWord:     "Not in word list",
		game.ErrDuplicateGuess:  "You already guessed that word",
		game.ErrHintUsed:        "Hint already used this game",
		game.ErrHintGameOver:    "Game is over. Cannot use hint.",
		game.ErrNothingToReveal: "All letters have been revealed!",
	} {
		assert.Equal(t, want, rejectionText(err))
	}
	assert.Equal(t, "boom", rejectionText(errors.New("boom")))
}

func TestPraise(t *testing.T) {
	assert.Equal(t, "Genius! 1st try!", praise(1))
	assert.Equal(t, "Good job! 5th try!", praise(5))
	assert.Equal(t, "Phew! Made it on the 6th try!", praise(6))
	assert.Equal(t, `Hint used! The letter "R" is in the word.`, hintText('R'))
}

func TestPaletteFor(t *testing.T) {
	normal := PaletteFor(prefs.Prefs{})
	assert.Equal(t, colorCorrect, normal.Correct)
	assert.Equal(t, colorPresent, normal.Present)
	assert.Equal(t, colorHint, normal.Hint)

	hc := PaletteFor(prefs.Prefs{HighContrast: true, DarkMode: true})
	assert.Equal(t, colorCorrectContrast, hc.Correct)
	assert.Equal(t, colorPresentContrast, hc.Present)
	assert.Equal(t, colorHintContrast, hc.Hint)
	assert.Equal(t, colorAbsent, hc.Absent)
	assert.NotEqual(t, normal.Background, hc.Background)

	_, bg, _ := hc.Mark(game.MarkPresent).Decompose()
	assert.Equal(t, colorPresentContrast, bg)
	_, bg, _ = hc.KeyStyle(game.LetterHinted).Decompose()
	assert.Equal(t, colorHintContrast, bg)
}
