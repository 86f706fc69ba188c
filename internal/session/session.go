// apps/go-term/internal/session/session.go
//
// Session ties one game to its mode's stats and to the presentation layer.
// Responsibilities:
//   - Own the game state machine, the per-mode stats store and the prefs.
//   - Forward UI calls (type / erase / enter / submit / hint / reset).
//   - Persist win/loss outcomes, then notify the Listener.
//
// A Session is driven from a single goroutine; it does no locking.

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/prefs"
	"github.com/robalobadob/wordle/apps/go-term/internal/stats"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
)

// Options configure a new Session.
type Options struct {
	Length   int       // Word length (mode).
	Target   string    // Fixed answer for the first game; random if empty.
	Rand     game.Rand // Randomness for targets and hints; nil = global.
	Listener Listener  // Event sink; nil = discard.
}

// Session is one player's game in one mode.
type Session struct {
	game     *game.Game
	stats    *stats.Store
	kv       store.KV
	listener Listener
	prefs    prefs.Prefs
}

// New builds a session and loads the global prefs.
func New(ctx context.Context, kv store.KV, dict game.Dictionary, opts Options) (*Session, error) {
	var (
		g   *game.Game
		err error
	)
	if opts.Target != "" {
		g, err = game.NewWithTarget(dict, opts.Target, opts.Rand)
	} else {
		g, err = game.New(dict, opts.Length, opts.Rand)
	}
	if err != nil {
		return nil, fmt.Errorf("new game (length %d): %w", opts.Length, err)
	}

	p, err := prefs.Load(ctx, kv)
	if err != nil {
		return nil, fmt.Errorf("load prefs: %w", err)
	}

	s := &Session{
		game:  g,
		stats: stats.New(kv, g.Length),
		kv:    kv,
		prefs: p,
	}
	s.SetListener(opts.Listener)
	log.Debug().Str("gameId", g.ID).Int("mode", g.Length).Msg("session started")
	return s, nil
}

// SetListener replaces the event sink.
func (s *Session) SetListener(l Listener) {
	if l == nil {
		l = Nop{}
	}
	s.listener = l
}

// Game exposes the current game for rendering. Callers must not mutate it.
func (s *Session) Game() *game.Game { return s.game }

// Length is the session's word length (mode).
func (s *Session) Length() int { return s.game.Length }

// Type places a letter in the current row.
func (s *Session) Type(letter rune) bool { return s.game.Type(letter) }

// Erase removes the last letter of the current row.
func (s *Session) Erase() bool { return s.game.Erase() }

// Enter submits the typed row.
func (s *Session) Enter(ctx context.Context) (game.Verdict, error) {
	return s.SubmitGuess(ctx, string(s.game.Pending))
}

// SubmitGuess applies a raw guess. Rejections are reported to the listener
// and returned; stats are persisted when the game ends.
func (s *Session) SubmitGuess(ctx context.Context, raw string) (game.Verdict, error) {
	row := s.game.Attempt
	v, err := s.game.SubmitGuess(raw)
	if err != nil {
		log.Debug().Err(err).Str("gameId", s.game.ID).Str("guess", raw).Msg("guess rejected")
		s.listener.GuessRejected(err)
		return nil, err
	}
	guess := s.game.Guesses[len(s.game.Guesses)-1]
	s.listener.VerdictComputed(row, guess, v)

	switch s.game.Status {
	case game.Won:
		s.finishWon(ctx)
	case game.Lost:
		s.finishLost(ctx)
	}
	return v, nil
}

func (s *Session) finishWon(ctx context.Context) {
	attempts := s.game.AttemptsUsed()
	prev, err := s.stats.Read(ctx)
	if err != nil {
		log.Warn().Err(err).Int("mode", s.game.Length).Msg("read stats")
	}
	st, err := s.stats.OnWin(ctx, attempts)
	if err != nil {
		log.Warn().Err(err).Str("gameId", s.game.ID).Msg("record win")
	}
	newMax := st.MaxStreak > prev.MaxStreak
	log.Info().
		Str("gameId", s.game.ID).
		Int("mode", s.game.Length).
		Int("attempts", attempts).
		Int("streak", st.CurrentStreak).
		Msg("game won")
	s.listener.GameWon(attempts, s.game.Target, st, newMax)
}

func (s *Session) finishLost(ctx context.Context) {
	prev, err := s.stats.Read(ctx)
	if err != nil {
		log.Warn().Err(err).Int("mode", s.game.Length).Msg("read stats")
	}
	st, err := s.stats.OnLoss(ctx)
	if err != nil {
		log.Warn().Err(err).Str("gameId", s.game.ID).Msg("record loss")
	}
	log.Info().
		Str("gameId", s.game.ID).
		Int("mode", s.game.Length).
		Int("endedStreak", prev.CurrentStreak).
		Msg("game lost")
	s.listener.GameLost(s.game.Target, st, prev.CurrentStreak)
}

// UseHint spends the game's hint.
func (s *Session) UseHint() (byte, error) {
	letter, err := s.game.UseHint()
	if err != nil {
		s.listener.HintRejected(err)
		return 0, err
	}
	log.Debug().Str("gameId", s.game.ID).Str("letter", string(letter)).Msg("hint used")
	s.listener.HintRevealed(letter)
	return letter, nil
}

// Reset starts a new game in the same mode.
func (s *Session) Reset() error {
	if err := s.game.Reset(); err != nil {
		return err
	}
	log.Debug().Str("gameId", s.game.ID).Int("mode", s.game.Length).Msg("game reset")
	s.listener.GameReset()
	return nil
}

// Stats reads the mode's stats. Storage errors degrade to zero stats.
func (s *Session) Stats(ctx context.Context) stats.Stats {
	st, err := s.stats.Read(ctx)
	if err != nil {
		log.Warn().Err(err).Int("mode", s.game.Length).Msg("read stats")
		return stats.Stats{Distribution: map[int]int{}}
	}
	return st
}

// Prefs returns the display toggles.
func (s *Session) Prefs() prefs.Prefs { return s.prefs }

// SetPrefs persists the display toggles. On failure the previous toggles
// stay in effect.
func (s *Session) SetPrefs(ctx context.Context, p prefs.Prefs) error {
	if err := prefs.Save(ctx, s.kv, p); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	s.prefs = p
	return nil
}

// Rejected reports whether err is one of the recoverable game rejections.
func Rejected(err error) bool {
	return errors.Is(err, game.ErrGameOver) ||
		errors.Is(err, game.ErrIncompleteGuess) ||
		errors.Is(err, game.ErrUnknownWord) ||
		errors.Is(err, game.ErrDuplicateGuess) ||
		errors.Is(err, game.ErrHintUnavailable)
}
