// apps/go-term/cmd_play.go

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/logging"
	"github.com/robalobadob/wordle/apps/go-term/internal/tui"
)

var playLength int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&playLength, "length", "l", 0, "word length; skips the picker")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dict, err := loadDictionary()
	if err != nil {
		return err
	}
	length := playLength
	if length == 0 {
		length = cfg.Game.DefaultLength
	}
	if length != 0 && !dict.Supports(length) {
		return fmt.Errorf("no %d-letter word list (have %v)", length, dict.Lengths())
	}

	kv, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer kv.Close()

	sink, err := logging.File(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer sink.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	app, err := tui.New(ctx, screen, kv, dict, tui.Options{Length: length})
	if err != nil {
		screen.Fini()
		return err
	}
	log.Info().Int("mode", length).Msg("tui started")
	return app.Run(ctx)
}
