package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardrarity/internal/card"
	"github.com/arcanaland/cardrarity/internal/config"
	"github.com/arcanaland/cardrarity/internal/library"
)

// openLibrary returns the collection library, reading "-" from the
// command's input
func openLibrary(cmd *cobra.Command) *library.Library {
	return library.New(config.GetLibraryPath()).WithStdin(cmd.InOrStdin())
}

// collectionName returns the collection named on the command line, or the
// configured default
func collectionName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	slog.Debug("using default collection", slog.String("name", cfg.DefaultCollection))
	return cfg.DefaultCollection
}

func loadCollection(cmd *cobra.Command, args []string) (card.Collection, string, error) {
	name := collectionName(args)
	c, err := openLibrary(cmd).Load(name)
	return c, name, err
}

func openCollection(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	name := collectionName(args)
	rc, err := openLibrary(cmd).Open(name)
	return rc, name, err
}

// collectionCmd represents the collection command group
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage card collections in your collection library",
	Long:  `Commands for managing card collection payloads in your collection library.`,
}

// collectionListCmd represents the collection ls command
var collectionListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available collections in your collection library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		lib := openLibrary(cmd)

		if !lib.Exists() {
			fmt.Fprintf(out, "Collection library at %s does not exist.\n", lib.Path)
			fmt.Fprintln(out, "Run 'cardrarity collection init' to create it.")
			return nil
		}

		entries, err := lib.List()
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, "No collections found in your collection library.")
			fmt.Fprintln(out, "You can add collections by copying JSON payloads to:", lib.Path)
			return nil
		}

		for _, e := range entries {
			marker := " "
			suffix := ""
			if e.Name == cfg.DefaultCollection {
				marker = "*"
				suffix = " [DEFAULT]"
			}
			if e.Err != nil {
				fmt.Fprintf(out, "%s %s (unreadable: %v)%s\n", marker, e.Name, e.Err, suffix)
				continue
			}
			fmt.Fprintf(out, "%s %s (%d cards: %s)%s\n", marker, e.Name, e.Cards, raritySummary(e.Rarities), suffix)
		}
		return nil
	},
}

// collectionSetDefaultCmd represents the collection set-default command
var collectionSetDefaultCmd = &cobra.Command{
	Use:   "set-default [collection]",
	Short: "Set the default collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if name == library.Stdin {
			return fmt.Errorf("standard input cannot be the default collection")
		}

		if _, err := openLibrary(cmd).Load(name); err != nil {
			return fmt.Errorf("not a usable collection: %w", err)
		}

		if err := config.SetDefaultCollection(name); err != nil {
			return fmt.Errorf("error setting default collection: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default collection set to: %s\n", name)
		return nil
	},
}

// collectionInitCmd represents the collection init command
var collectionInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the collection library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		lib := openLibrary(cmd)

		if err := lib.Init(); err != nil {
			return err
		}

		fmt.Fprintln(out, "Collection library initialized at:", lib.Path)
		fmt.Fprintln(out, "You can now add collections by copying JSON payloads to this directory.")
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// raritySummary lists the non-zero rarity counts in rarity order
func raritySummary(counts map[card.Rarity]int) string {
	var parts []string
	for _, r := range card.Rarities() {
		if n := counts[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, r))
		}
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, ", ")
}

func init() {
	RootCmd.AddCommand(collectionCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionSetDefaultCmd)
	collectionCmd.AddCommand(collectionInitCmd)
}
