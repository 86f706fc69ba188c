package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-term/internal/stats"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
)

// execute runs the root command with args against an isolated environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "LOG_FILE", "WORDLE_DB", "WORDLE_LENGTH", "WORDS_4_FILE", "WORDS_5_FILE", "WORDS_6_FILE"} {
		t.Setenv(k, "")
	}
	t.Setenv("WORDLE_STORE_DRIVER", store.DriverPureGo)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	t.Cleanup(func() {
		dbPath, logLevel = "", ""
		statsLength, statsJSON, configWrite = 0, false, false
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "aabb", "abca")
	require.NoError(t, err)
	assert.Equal(t, "ABCA\n🟩🟨⬜🟨\n", out)

	_, err = execute(t, "check", "river", "eerie")
	require.NoError(t, err)

	_, err = execute(t, "check", "abc", "abcd")
	assert.ErrorContains(t, err, "length mismatch")
	_, err = execute(t, "check", "ab1", "abc")
	assert.Error(t, err)
}

func TestWordsCommand(t *testing.T) {
	out, err := execute(t, "words", "--db", filepath.Join(t.TempDir(), "w.db"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "4 letters: "))
	assert.True(t, strings.HasSuffix(lines[1], "(embedded)"))
}

func TestWordsCommandWithOverride(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "five.txt")
	require.NoError(t, os.WriteFile(list, []byte("crane\nhouse\n"), 0o644))
	cfgFile := filepath.Join(dir, "wordle.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("words:\n  files:\n    5: "+list+"\n"), 0o644))

	out, err := execute(t, "--config", cfgFile, "words")
	require.NoError(t, err)
	assert.Contains(t, out, "5 letters: 2 words ("+list+")")
}

func TestStatsCommand(t *testing.T) {
	ctx := context.Background()
	db := filepath.Join(t.TempDir(), "wordle.db")
	kv, err := store.OpenSQLite(ctx, store.DriverPureGo, db)
	require.NoError(t, err)
	s := stats.New(kv, 5)
	_, err = s.OnWin(ctx, 3)
	require.NoError(t, err)
	_, err = s.OnLoss(ctx)
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	out, err := execute(t, "stats", "--db", db, "--json", "--length", "5")
	require.NoError(t, err)
	var rows []modeStats
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Length)
	assert.Equal(t, 2, rows[0].GamesPlayed)
	assert.Equal(t, 50, rows[0].WinPercent)
	assert.Equal(t, 1, rows[0].Distribution[3])

	out, err = execute(t, "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "5 letters: played 2  win 50%  streak 0  max 1")
	assert.Contains(t, out, "4 letters: played 0")
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "config", "--db", filepath.Join(dir, "x.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "driver: sqlite\n")
	assert.Contains(t, out, filepath.Join(dir, "x.db"))

	path := filepath.Join(dir, "saved.yaml")
	_, err = execute(t, "--config", path, "config", "--write")
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
