package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Derived views and game control",
	}

	cmd.AddCommand(newGameStandingsCmd())
	cmd.AddCommand(newGameStatsCmd())
	cmd.AddCommand(newGameResetCmd())

	return cmd
}

func newGameStandingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show the active session's standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			standings, err := app.Standings.Standings(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(standings)
			return nil
		},
	}
}

func newGameStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-player statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Standings.Statistics(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(stats)
			return nil
		},
	}
}

func newGameResetCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every round in the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if code == "" {
				return fmt.Errorf("--code is required")
			}

			if err := app.Control.RequestReset(); err != nil {
				return err
			}
			if err := app.Gate.Submit(cmd.Context(), code); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game reset")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Admin code (required)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
