// apps/go-term/cmd_stats.go

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/stats"
)

var (
	statsLength int
	statsJSON   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics per word length",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&statsLength, "length", "l", 0, "only this word length")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print JSON")
}

// modeStats is one row of `wordle stats --json`.
type modeStats struct {
	Length     int `json:"length"`
	WinPercent int `json:"winPercent"`
	stats.Stats
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dict, err := loadDictionary()
	if err != nil {
		return err
	}
	lengths := dict.Lengths()
	if statsLength != 0 {
		lengths = []int{statsLength}
	}

	kv, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer kv.Close()

	out := make([]modeStats, 0, len(lengths))
	for _, n := range lengths {
		st, err := stats.New(kv, n).Read(ctx)
		if err != nil {
			return fmt.Errorf("read %d-letter stats: %w", n, err)
		}
		out = append(out, modeStats{Length: n, WinPercent: st.WinPercent(), Stats: st})
	}

	w := cmd.OutOrStdout()
	if statsJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, m := range out {
		printStats(w, m)
	}
	return nil
}

func printStats(w io.Writer, m modeStats) {
	fmt.Fprintf(w, "%d letters: played %d  win %d%%  streak %d  max %d\n",
		m.Length, m.GamesPlayed, m.WinPercent, m.CurrentStreak, m.MaxStreak)
	top := m.MaxBucket()
	for n := 1; n <= stats.MaxGuesses; n++ {
		c := m.Distribution[n]
		bar := strings.Repeat("#", c*20/top)
		mark := " "
		if n == m.LastWinGuesses && c > 0 {
			mark = "*"
		}
		fmt.Fprintf(w, "  %d%s %-20s %d\n", n, mark, bar, c)
	}
}
