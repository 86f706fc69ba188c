// apps/go-term/internal/tui/toast.go

package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

const defaultToast = 2 * time.Second

// toast is a transient message. A newer visible toast hides older ones.
type toast struct {
	text  string
	from  time.Time
	until time.Time
}

type toasts struct {
	items []toast
}

// show schedules text to appear after delay for d.
func (t *toasts) show(now time.Time, text string, delay, d time.Duration) {
	from := now.Add(delay)
	t.items = append(t.items, toast{text: text, from: from, until: from.Add(d)})
}

// current returns the most recently started toast still on screen.
func (t *toasts) current(now time.Time) (string, bool) {
	var (
		best  toast
		found bool
	)
	for _, it := range t.items {
		if now.Before(it.from) || !now.Before(it.until) {
			continue
		}
		if !found || !it.from.Before(best.from) {
			best, found = it, true
		}
	}
	return best.text, found
}

// prune drops expired toasts.
func (t *toasts) prune(now time.Time) {
	kept := t.items[:0]
	for _, it := range t.items {
		if now.Before(it.until) {
			kept = append(kept, it)
		}
	}
	t.items = kept
}

func (t *toasts) clear() { t.items = nil }

// rejectionText is the toast for a refused guess or hint.
func rejectionText(err error) string {
	switch {
	case errors.Is(err, game.ErrHintUsed):
		return "Hint already used this game"
	case errors.Is(err, game.ErrHintGameOver):
		return "Game is over. Cannot use hint."
	case errors.Is(err, game.ErrNothingToReveal):
		return "All letters have been revealed!"
	case errors.Is(err, game.ErrIncompleteGuess):
		return "Not enough letters"
	case errors.Is(err, game.ErrUnknownWord):
		return "Not in word list"
	case errors.Is(err, game.ErrDuplicateGuess):
		return "You already guessed that word"
	case errors.Is(err, game.ErrGameOver):
		return "Game is over. Press ^N for a new game."
	}
	return err.Error()
}

// praise is the win message for a number of attempts.
func praise(attempts int) string {
	switch attempts {
	case 1:
		return "Genius! 1st try!"
	case 2:
		return "Magnificent! 2nd try!"
	case 3:
		return "Impressive! 3rd try!"
	case 4:
		return "Great! 4th try!"
	case 5:
		return "Good job! 5th try!"
	}
	return "Phew! Made it on the 6th try!"
}

func hintText(letter byte) string {
	return fmt.Sprintf("Hint used! The letter %q is in the word.", string(letter))
}
