package cmd

import (
	"fmt"
	"log/slog"
	"time"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardrarity/internal/round"
)

var roundCmd = &cobra.Command{
	Use:   "round [collection]",
	Short: "Draw rounds of two cards and guess which is rarer",
	Long: `Round draws pairs of cards with different rarities and different artwork
from a collection. The rarer card of each pair wins.

Pass --guess to bet on card 1 or 2; the result of each round is revealed
and a score is printed at the end. Without --guess the winner is shown.

Examples:
  cardrarity round
  cardrarity round --rounds 10 --seed 42 base-set
  cardrarity round --guess 2 ./cards.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, name, err := loadCollection(cmd, args)
		if err != nil {
			return err
		}

		n, _ := cmd.Flags().GetInt("rounds")
		if n <= 0 {
			n = cfg.Rounds
		}
		guess, _ := cmd.Flags().GetInt("guess")
		if guess != 0 && (guess < 1 || guess > 2) {
			return fmt.Errorf("--guess must be 1 or 2, got %d", guess)
		}
		seed, _ := cmd.Flags().GetUint64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = uint64(time.Now().UnixNano())
		}
		slog.Debug("drawing rounds",
			slog.String("collection", name),
			slog.Int("rounds", n),
			slog.Uint64("seed", seed))

		rounds := round.NewFactory(round.NewRandomiser(seed)).Play(c.Cards, n)
		if len(rounds) == 0 {
			return fmt.Errorf("no round can be drawn from %s: it needs two cards with different rarities and different artwork", name)
		}

		out := cmd.OutOrStdout()
		score := 0
		for i, r := range rounds {
			fmt.Fprintln(out, label(fmt.Sprintf("Round %d", i+1)))
			winner := 0
			for j, cd := range r.Cards {
				fmt.Fprintf(out, "  [%d] %s  %s\n", j+1, rarityLabel(cd.Rarity), imageText(cd.Image))
				if r.IsWinner(cd) {
					winner = j + 1
				}
			}

			switch {
			case guess == 0:
				fmt.Fprintf(out, "  Winner: [%d] %s\n", winner, r.Winner.Rarity)
			case guess == winner:
				score++
				fmt.Fprintln(out, "  "+colorize.GreenString("✅ Correct!")+fmt.Sprintf(" [%d] is rarer", winner))
			default:
				fmt.Fprintln(out, "  "+colorize.RedString("❌ Wrong.")+fmt.Sprintf(" [%d] is rarer", winner))
			}
			fmt.Fprintln(out)
		}

		if guess != 0 {
			fmt.Fprintf(out, "Score: %d/%d\n", score, len(rounds))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(roundCmd)

	roundCmd.Flags().IntP("rounds", "n", 0, "Number of rounds to draw (default from config)")
	roundCmd.Flags().Uint64("seed", 0, "Random seed for reproducible rounds")
	roundCmd.Flags().IntP("guess", "g", 0, "Bet on card 1 or 2 being the rarer one")
}
