// apps/go-term/internal/game/engine.go
//
// Core game engine for a single Wordle game.
// Responsibilities:
//   - Create new games for a word length (rows fixed at 6).
//   - Collect typed letters for the current row (cursor / erase / enter).
//   - Validate and apply guesses (length, dictionary, no repeats).
//   - Score guesses using the two-pass duplicate-safe algorithm.
//   - Track keyboard letter states and the once-per-game hint.
//   - Track state transitions: playing → won/lost, and reset for replay.
//
// Notes:
//   - The engine never touches storage, timers or the screen; the session
//     package reports results outward.
//   - Words are uppercase A–Z throughout.
package game

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxAttempts is the number of rows on the board.
const DefaultMaxAttempts = 6

// New constructs a game for the given word length with a random target drawn
// from dict. A nil rnd uses the global math/rand/v2 source.
func New(dict Dictionary, length int, rnd Rand) (*Game, error) {
	if rnd == nil {
		rnd = globalRand{}
	}
	g := &Game{
		Length:      length,
		MaxAttempts: DefaultMaxAttempts,
		dict:        dict,
		rnd:         rnd,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewWithTarget constructs a game with a fixed answer (tests, replays).
// The target still has to be a dictionary word of the given length.
func NewWithTarget(dict Dictionary, target string, rnd Rand) (*Game, error) {
	target = normalize(target)
	if !dict.Contains(len(target), target) {
		return nil, ErrUnknownWord
	}
	if rnd == nil {
		rnd = globalRand{}
	}
	g := &Game{
		Length:      len(target),
		MaxAttempts: DefaultMaxAttempts,
		dict:        dict,
		rnd:         rnd,
	}
	g.restart(target)
	return g, nil
}

// Reset starts over with a freshly chosen target: zeroed counters, empty
// history, cleared keyboard and hint.
func (g *Game) Reset() error {
	list := g.dict.Words(g.Length)
	if len(list) == 0 {
		return errors.New("no words for this length")
	}
	g.restart(list[g.rnd.IntN(len(list))])
	return nil
}

func (g *Game) restart(target string) {
	g.ID = uuid.NewString()
	g.Target = normalize(target)
	g.Attempt = 0
	g.Pending = g.Pending[:0]
	g.Guesses = []string{}
	g.Verdicts = []Verdict{}
	g.Keys = make(map[byte]LetterState)
	g.Status = InProgress
	g.HintUsed = false
	g.HintLetter = 0
}

// Type appends a letter to the current row. Non-letters, a full row or a
// finished game are ignored. Returns true if the letter was placed.
func (g *Game) Type(letter rune) bool {
	if g.Over() || len(g.Pending) >= g.Length {
		return false
	}
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return false
	}
	g.Pending = append(g.Pending, byte(letter))
	return true
}

// Erase removes the last typed letter. Returns false on an empty row.
func (g *Game) Erase() bool {
	if g.Over() || len(g.Pending) == 0 {
		return false
	}
	g.Pending = g.Pending[:len(g.Pending)-1]
	return true
}

// Enter submits the typed row.
func (g *Game) Enter() (Verdict, error) {
	return g.SubmitGuess(string(g.Pending))
}

// SubmitGuess validates and scores a guess, mutating the game state.
//
// Validation rules (first failure wins, nothing is mutated):
//   - Game must not be finished.
//   - Guess must be exactly g.Length letters.
//   - Guess must be in the dictionary.
//   - Guess must not repeat an earlier guess of this game.
//
// State transitions:
//   - Guess equals the target → Won.
//   - Else the attempt counter advances; reaching MaxAttempts → Lost.
func (g *Game) SubmitGuess(raw string) (Verdict, error) {
	if g.Over() {
		return nil, ErrGameOver
	}
	guess := normalize(raw)
	if len(guess) != g.Length {
		return nil, ErrIncompleteGuess
	}
	if !g.dict.Contains(g.Length, guess) {
		return nil, ErrUnknownWord
	}
	for _, prev := range g.Guesses {
		if prev == guess {
			return nil, ErrDuplicateGuess
		}
	}

	v := Evaluate(g.Target, guess)
	g.Guesses = append(g.Guesses, guess)
	g.Verdicts = append(g.Verdicts, v)
	g.markKeys(guess, v)
	g.Pending = g.Pending[:0]

	if guess == g.Target {
		g.Status = Won
		return v, nil
	}
	g.Attempt++
	if g.Attempt >= g.MaxAttempts {
		g.Status = Lost
	}
	return v, nil
}

// markKeys folds a verdict into the keyboard states.
// correct always wins; present beats everything but correct; absent only
// fills a letter nothing is known about yet.
func (g *Game) markKeys(guess string, v Verdict) {
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		cur := g.Keys[c]
		switch v[i] {
		case MarkCorrect:
			g.Keys[c] = LetterCorrect
		case MarkPresent:
			if cur != LetterCorrect {
				g.Keys[c] = LetterPresent
			}
		case MarkAbsent:
			if cur == LetterUnknown {
				g.Keys[c] = LetterAbsent
			}
		}
	}
}

// UseHint reveals one target letter the player has not uncovered yet.
// Eligible letters are the distinct target letters whose keyboard state is
// not correct, present or hinted; one is chosen uniformly at random.
func (g *Game) UseHint() (byte, error) {
	if g.HintUsed {
		return 0, ErrHintUsed
	}
	if g.Over() {
		return 0, ErrHintGameOver
	}
	eligible := g.hintCandidates()
	if len(eligible) == 0 {
		return 0, ErrNothingToReveal
	}
	letter := eligible[g.rnd.IntN(len(eligible))]
	g.Keys[letter] = LetterHinted
	g.HintUsed = true
	g.HintLetter = letter
	return letter, nil
}

func (g *Game) hintCandidates() []byte {
	var out []byte
	var seen [26]bool
	for i := 0; i < len(g.Target); i++ {
		c := g.Target[i]
		if seen[idx(c)] {
			continue
		}
		seen[idx(c)] = true
		switch g.Keys[c] {
		case LetterCorrect, LetterPresent, LetterHinted:
			continue
		}
		out = append(out, c)
	}
	return out
}

// Evaluate implements the standard two-pass Wordle scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (unmatched) target letters.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for that
//     letter, mark present and decrement; otherwise mark absent.
//
// Pass 1 must fully finish before pass 2 consumes counts, otherwise a
// repeated guess letter can steal a count from a later exact match.
// Both words are upper-cased first. Mismatched lengths yield an empty verdict.
func Evaluate(target, guess string) Verdict {
	target, guess = strings.ToUpper(target), strings.ToUpper(guess)
	n := len(guess)
	if n != len(target) {
		return Verdict{}
	}
	res := make(Verdict, n)

	// Letter frequency for the non-correct positions (A–Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = MarkCorrect
		} else if j := idx(target[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25.
func idx(c byte) int { return int(c) - 'A' }

// normalize trims and upper-cases raw input.
func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
