package stats

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-term/internal/store"
)

func TestReadEmpty(t *testing.T) {
	s := New(store.NewMemory(), 5)
	st, err := s.Read(context.Background())
	require.NoError(t, err)

	assert.Zero(t, st.GamesPlayed)
	assert.Zero(t, st.CurrentStreak)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0}, st.Distribution)
	assert.Zero(t, st.WinPercent())
	assert.Equal(t, 1, st.MaxBucket())
}

func TestWinStreakAndLoss(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemory(), 5)

	st, err := s.OnWin(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, st.CurrentStreak)
	assert.Equal(t, 1, st.MaxStreak)

	st, err = s.OnWin(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, st.CurrentStreak)
	assert.Equal(t, 2, st.MaxStreak)
	assert.Equal(t, 4, st.LastWinGuesses)

	st, err = s.OnLoss(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.CurrentStreak)
	assert.Equal(t, 2, st.MaxStreak)
	assert.Zero(t, st.LastWinGuesses)

	st, err = s.OnWin(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, st.CurrentStreak)
	assert.Equal(t, 2, st.MaxStreak, "max streak only grows")

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, st, got)
	assert.Equal(t, 4, got.GamesPlayed)
	assert.Equal(t, 3, got.GamesWon)
	assert.Equal(t, 2, got.Distribution[3])
	assert.Equal(t, 1, got.Distribution[4])
	assert.Equal(t, 75, got.WinPercent())
	assert.Equal(t, 2, got.MaxBucket())
}

// failingKV fails every write once armed and counts single-key writes.
type failingKV struct {
	store.KV
	armed bool
	sets  int
}

var errDiskFull = errors.New("disk full")

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	f.sets++
	if f.armed && f.sets > 1 {
		return errDiskFull
	}
	return f.KV.Set(ctx, key, value)
}

func (f *failingKV) SetMany(ctx context.Context, values map[string]string) error {
	if f.armed {
		return errDiskFull
	}
	return f.KV.SetMany(ctx, values)
}

func TestFailedWriteKeepsPreviousRecord(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{KV: store.NewMemory()}
	s := New(kv, 5)

	before, err := s.OnWin(ctx, 2)
	require.NoError(t, err)

	kv.armed = true
	_, err = s.OnLoss(ctx)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Zero(t, kv.sets, "snapshot is written as one batch")

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, got)
	assert.Equal(t, 1, got.GamesPlayed)
	assert.Equal(t, 1, got.CurrentStreak)
}

func TestOnWinRejectsOutOfRange(t *testing.T) {
	s := New(store.NewMemory(), 5)
	_, err := s.OnWin(context.Background(), 0)
	assert.Error(t, err)
	_, err = s.OnWin(context.Background(), 7)
	assert.Error(t, err)

	st, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.GamesPlayed)
}

func TestModesAreIndependent(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	four, five := New(kv, 4), New(kv, 5)

	_, err := four.OnWin(ctx, 2)
	require.NoError(t, err)
	_, err = five.OnLoss(ctx)
	require.NoError(t, err)

	st4, err := four.Read(ctx)
	require.NoError(t, err)
	st5, err := five.Read(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, st4.CurrentStreak)
	assert.Equal(t, 1, st4.GamesWon)
	assert.Zero(t, st5.GamesWon)
	assert.Equal(t, 1, st5.GamesPlayed)
	assert.Equal(t, 4, four.Mode())
}

func TestKeyLayout(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	_, err := New(kv, 6).OnWin(ctx, 1)
	require.NoError(t, err)

	for key, want := range map[string]string{
		"mode_6_gamesPlayed":       "1",
		"mode_6_gamesWon":          "1",
		"mode_6_streak":            "1",
		"mode_6_maxStreak":         "1",
		"mode_6_lastWinGuesses":    "1",
		"mode_6_guessDistribution": `{"1":1,"2":0,"3":0,"4":0,"5":0,"6":0}`,
	} {
		v, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, key)
		assert.Equal(t, want, v, key)
	}
	assert.Equal(t, "mode_4_streak", Key(4, "streak"))
}

func TestMalformedValuesFailSoft(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, "mode_5_gamesPlayed", "lots"))
	require.NoError(t, kv.Set(ctx, "mode_5_streak", "-3"))
	require.NoError(t, kv.Set(ctx, "mode_5_maxStreak", "7"))
	require.NoError(t, kv.Set(ctx, "mode_5_guessDistribution", "{not json"))

	s := New(kv, 5)
	st, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.GamesPlayed)
	assert.Zero(t, st.CurrentStreak)
	assert.Equal(t, 7, st.MaxStreak)
	assert.Equal(t, emptyDistribution(), st.Distribution)

	require.NoError(t, kv.Set(ctx, "mode_5_guessDistribution", `{"1":2,"9":4,"x":1,"3":-1}`))
	st, err = s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0}, st.Distribution)

	st, err = s.OnWin(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, st.GamesPlayed)
}

func TestStatsSurviveRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wordle.db")

	kv, err := store.OpenSQLite(ctx, store.DriverPureGo, path)
	require.NoError(t, err)
	_, err = New(kv, 5).OnWin(ctx, 5)
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	kv, err = store.OpenSQLite(ctx, store.DriverPureGo, path)
	require.NoError(t, err)
	defer kv.Close()
	st, err := New(kv, 5).Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.GamesWon)
	assert.Equal(t, 1, st.Distribution[5])
}
