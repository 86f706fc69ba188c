// apps/go-term/main.go
//
// Entry point for the terminal Wordle.
//
// Startup:
//   - Load .env (if present) so LOG_LEVEL, WORDLE_DB etc. can be set locally.
//   - Resolve config: defaults < YAML file < environment < flags.
//   - Route zerolog to the console; `play` re-routes it to a file because the
//     TUI owns the terminal.
//
// Commands: play, stats, words, check, config.

package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/logging"
)

var (
	// Global flags.
	configPath string
	dbPath     string
	logLevel   string

	// cfg is resolved once per invocation in PersistentPreRunE.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "wordle",
	Short:         "Guess the hidden word in six tries",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Console(os.Stderr)
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			c.Store.Path = dbPath
		}
		if logLevel != "" {
			c.Logging.Level = logLevel
		}
		logging.SetLevel(c.Logging.Level)
		cfg = c
		log.Debug().Str("config", configPath).Str("driver", c.Store.Driver).Str("db", c.Store.Path).Msg("config resolved")
		return nil
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", filepath.Join(config.DataDir(), "config.yaml"), "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "stats database path (overrides config and WORDLE_DB)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.Flags().IntVarP(&playLength, "length", "l", 0, "word length; skips the picker")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("wordle failed")
		stop()
		os.Exit(1)
	}
}
