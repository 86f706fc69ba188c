// apps/go-term/cmd_words.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the loaded word lists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary()
		if err != nil {
			return err
		}
		for _, n := range dict.Lengths() {
			src := "embedded"
			if f := cfg.Words.Files[n]; f != "" {
				src = f
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d letters: %d words (%s)\n", n, dict.Count(n), src)
		}
		return nil
	},
}
