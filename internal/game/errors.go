package game

import "errors"

// Rejection reasons. None of them mutate game state; the player may retry.
var (
	ErrGameOver        = errors.New("game finished")
	ErrIncompleteGuess = errors.New("not enough letters")
	ErrUnknownWord     = errors.New("not in word list")
	ErrDuplicateGuess  = errors.New("already guessed")

	// ErrHintUnavailable is the parent of every hint rejection.
	ErrHintUnavailable = errors.New("hint unavailable")
	ErrHintUsed        = hintError("hint already used")
	ErrNothingToReveal = hintError("all letters revealed")
	ErrHintGameOver    = hintError("game finished, no hint") // also matches ErrGameOver
)

// hintError is a hint rejection that also matches ErrHintUnavailable.
type hintError string

func (e hintError) Error() string { return string(e) }

func (e hintError) Is(target error) bool {
	if target == ErrHintUnavailable {
		return true
	}
	return e == ErrHintGameOver && target == ErrGameOver
}
