package cmd

import (
	"log/slog"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardrarity/internal/config"
)

// cfg is loaded before any subcommand runs
var cfg *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardrarity",
	Short: "Inspect trading card collections and play rarity rounds",
	Long: `Cardrarity reads trading card collection payloads of the form
{"cards":[{"imageUrl":"...","rarity":"..."}]}, reports on their contents,
and draws "which card is rarer?" rounds from them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		level := cfg.SlogLevel()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

		switch cfg.Color {
		case config.ColorAlways:
			colorize.NoColor = false
		case config.ColorNever:
			colorize.NoColor = true
		default:
			colorize.NoColor = colorize.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))
		}

		slog.Debug("configuration loaded", slog.String("path", config.GetConfigFilePath()))
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
