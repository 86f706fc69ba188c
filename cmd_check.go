// apps/go-term/cmd_check.go

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

var checkCmd = &cobra.Command{
	Use:   "check TARGET GUESS",
	Short: "Score a guess against a target",
	Example: `  wordle check aabb abca
  ABCA
  🟩🟨⬜🟨`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := strings.ToUpper(strings.TrimSpace(args[0]))
		guess := strings.ToUpper(strings.TrimSpace(args[1]))
		if len(target) != len(guess) {
			return fmt.Errorf("length mismatch: %q has %d letters, %q has %d", target, len(target), guess, len(guess))
		}
		for _, w := range []string{target, guess} {
			if strings.IndexFunc(w, func(r rune) bool { return r < 'A' || r > 'Z' }) >= 0 {
				return fmt.Errorf("%q: only letters A-Z are allowed", w)
			}
		}
		v := game.Evaluate(target, guess)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", guess, v)
		return nil
	},
}
