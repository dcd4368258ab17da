package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardrarity/internal/card"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [collection]",
	Short: "Decode a collection and print its cards",
	Long: `Decode reads a collection payload the lenient way: missing or
unrecognized fields fall back to an empty image and Common rarity.

With --json the decoded collection is written back in canonical form.

Examples:
  cardrarity decode base-set
  cardrarity decode --json ./cards.json
  curl -s https://example.com/cards | cardrarity decode -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, name, err := loadCollection(cmd, args)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return card.Encode(cmd.OutOrStdout(), c)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, label("Collection: ")+name)
		fmt.Fprintln(out, label("Cards:      ")+fmt.Sprint(c.Len()))
		fmt.Fprintln(out, label("Rarities:   ")+raritySummary(c.CountByRarity()))
		if c.Len() == 0 {
			return nil
		}

		fmt.Fprintln(out)
		width := terminalWidth()
		if width > 0 {
			// index, rarity and padding
			width -= 18
		}
		for i, cd := range c.Cards {
			fmt.Fprintf(out, "%4d  %s  %s\n", i+1, rarityLabel(cd.Rarity), imageText(truncate(cd.Image, width)))
		}
		return nil
	},
}

var raritiesCmd = &cobra.Command{
	Use:   "rarities",
	Short: "List the rarity tiers from most common to scarcest",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for i, r := range card.Rarities() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, rarityColors[r].Sprint(r))
		}
	},
}

func init() {
	RootCmd.AddCommand(decodeCmd)
	RootCmd.AddCommand(raritiesCmd)

	decodeCmd.Flags().Bool("json", false, "Print the decoded collection as JSON")
}
