// apps/go-term/internal/stats/stats.go
//
// Per-mode game statistics persisted through a store.KV.
//
// Keys (one set per word length N):
//   mode_N_gamesPlayed, mode_N_gamesWon, mode_N_streak, mode_N_maxStreak,
//   mode_N_lastWinGuesses, mode_N_guessDistribution (JSON {"1":0,...,"6":0}).
//
// Values that fail to parse read as zero so a corrupt entry never blocks play.

package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/store"
)

// MaxGuesses bounds the distribution buckets (1..MaxGuesses).
const MaxGuesses = 6

const (
	fieldStreak       = "streak"
	fieldMaxStreak    = "maxStreak"
	fieldGamesPlayed  = "gamesPlayed"
	fieldGamesWon     = "gamesWon"
	fieldDistribution = "guessDistribution"
	fieldLastWin      = "lastWinGuesses"
)

// Stats is the snapshot for one mode.
type Stats struct {
	GamesPlayed    int         `json:"gamesPlayed"`
	GamesWon       int         `json:"gamesWon"`
	Distribution   map[int]int `json:"guessDistribution"`
	CurrentStreak  int         `json:"currentStreak"`
	MaxStreak      int         `json:"maxStreak"`
	LastWinGuesses int         `json:"lastWinGuesses"`
}

// WinPercent is the rounded share of games won, 0 when nothing was played.
func (s Stats) WinPercent() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(s.GamesWon) / float64(s.GamesPlayed) * 100))
}

// MaxBucket is the largest distribution count, at least 1.
func (s Stats) MaxBucket() int {
	m := 1
	for _, n := range s.Distribution {
		if n > m {
			m = n
		}
	}
	return m
}

func emptyDistribution() map[int]int {
	d := make(map[int]int, MaxGuesses)
	for i := 1; i <= MaxGuesses; i++ {
		d[i] = 0
	}
	return d
}

// Store reads and updates the stats of a single mode.
type Store struct {
	kv     store.KV
	length int
}

// New returns the stats store for word length `length`.
func New(kv store.KV, length int) *Store {
	return &Store{kv: kv, length: length}
}

// Mode is the word length this store is keyed by.
func (s *Store) Mode() int { return s.length }

// Key builds the storage key for a field of a mode.
func Key(length int, field string) string {
	return fmt.Sprintf("mode_%d_%s", length, field)
}

func (s *Store) key(field string) string { return Key(s.length, field) }

// Read loads the current snapshot. Only storage errors are returned; bad
// values become zero.
func (s *Store) Read(ctx context.Context) (Stats, error) {
	var st Stats
	var err error
	if st.GamesPlayed, err = s.readInt(ctx, fieldGamesPlayed); err != nil {
		return Stats{}, err
	}
	if st.GamesWon, err = s.readInt(ctx, fieldGamesWon); err != nil {
		return Stats{}, err
	}
	if st.CurrentStreak, err = s.readInt(ctx, fieldStreak); err != nil {
		return Stats{}, err
	}
	if st.MaxStreak, err = s.readInt(ctx, fieldMaxStreak); err != nil {
		return Stats{}, err
	}
	if st.LastWinGuesses, err = s.readInt(ctx, fieldLastWin); err != nil {
		return Stats{}, err
	}
	if st.Distribution, err = s.readDistribution(ctx); err != nil {
		return Stats{}, err
	}
	return st, nil
}

// OnWin records a win in attemptsUsed guesses and returns the new snapshot.
func (s *Store) OnWin(ctx context.Context, attemptsUsed int) (Stats, error) {
	if attemptsUsed < 1 || attemptsUsed > MaxGuesses {
		return Stats{}, fmt.Errorf("attempts must be between 1 and %d, got %d", MaxGuesses, attemptsUsed)
	}
	st, err := s.Read(ctx)
	if err != nil {
		return Stats{}, err
	}
	st.GamesPlayed++
	st.GamesWon++
	st.Distribution[attemptsUsed]++
	st.LastWinGuesses = attemptsUsed
	st.CurrentStreak++
	if st.CurrentStreak > st.MaxStreak {
		st.MaxStreak = st.CurrentStreak
	}
	return st, s.write(ctx, st)
}

// OnLoss records a loss: the streak resets, the max streak is kept.
func (s *Store) OnLoss(ctx context.Context) (Stats, error) {
	st, err := s.Read(ctx)
	if err != nil {
		return Stats{}, err
	}
	st.GamesPlayed++
	st.LastWinGuesses = 0
	st.CurrentStreak = 0
	return st, s.write(ctx, st)
}

// write saves the whole snapshot in one batch so a failure leaves the
// previous record intact.
func (s *Store) write(ctx context.Context, st Stats) error {
	b, err := json.Marshal(st.Distribution)
	if err != nil {
		return fmt.Errorf("encode distribution: %w", err)
	}
	return s.kv.SetMany(ctx, map[string]string{
		s.key(fieldGamesPlayed):  strconv.Itoa(st.GamesPlayed),
		s.key(fieldGamesWon):     strconv.Itoa(st.GamesWon),
		s.key(fieldStreak):       strconv.Itoa(st.CurrentStreak),
		s.key(fieldMaxStreak):    strconv.Itoa(st.MaxStreak),
		s.key(fieldLastWin):      strconv.Itoa(st.LastWinGuesses),
		s.key(fieldDistribution): string(b),
	})
}

func (s *Store) readInt(ctx context.Context, field string) (int, error) {
	v, ok, err := s.kv.Get(ctx, s.key(field))
	if err != nil || !ok {
		return 0, err
	}
	n, perr := strconv.Atoi(v)
	if perr != nil || n < 0 {
		log.Warn().Str("key", s.key(field)).Str("value", v).Msg("unreadable stat, using 0")
		return 0, nil
	}
	return n, nil
}

func (s *Store) readDistribution(ctx context.Context) (map[int]int, error) {
	d := emptyDistribution()
	v, ok, err := s.kv.Get(ctx, s.key(fieldDistribution))
	if err != nil || !ok {
		return d, err
	}
	var raw map[string]int
	if err := json.Unmarshal([]byte(v), &raw); err != nil {
		log.Warn().Err(err).Str("key", s.key(fieldDistribution)).Msg("unreadable distribution, using zeros")
		return d, nil
	}
	for k, n := range raw {
		i, err := strconv.Atoi(k)
		if err != nil || i < 1 || i > MaxGuesses || n < 0 {
			continue
		}
		d[i] = n
	}
	return d, nil
}
