package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scoretab/scoretab/internal/client"
)

var (
	cfg *Config
	app *client.Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "scoretab",
		Short: "CLI for the scoretab score ledger",
		Long: `scoretab is a CLI for the scoretab score ledger API.

It manages the player roster, records zero-sum rounds against the active
session, and shows the derived standings and statistics views.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := client.NewSettingsStore(cfg.SettingsFile)
			if err != nil {
				return err
			}

			app = client.New(client.NewHTTPGateway(cfg.ServerURL), settings)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SCORETAB_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.SettingsFile, "settings", cfg.SettingsFile, "Settings file path (env: SCORETAB_SETTINGS)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newRecorderCmd())
	rootCmd.AddCommand(newRoundCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newLangCmd())
	rootCmd.AddCommand(newAdminCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
