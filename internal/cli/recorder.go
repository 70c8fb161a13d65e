package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/scoretab/scoretab/internal/client"
)

func newRecorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recorder",
		Short: "Recorder selection commands",
		Long: `Choose which player this client records scores as.

Score entry is unavailable until a recorder is selected; the choice is
persisted locally and survives restarts.`,
	}

	cmd.AddCommand(newRecorderSetCmd())
	cmd.AddCommand(newRecorderShowCmd())
	cmd.AddCommand(newRecorderClearCmd())

	return cmd
}

func newRecorderSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <player-id>",
		Short: "Select the recorder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Recorder.Select(cmd.Context(), args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Recorder set to " + args[0])
			return nil
		},
	}
}

func newRecorderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the selected recorder",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			id, err := app.Recorder.Validate(cmd.Context())
			if err != nil {
				if errors.Is(err, client.ErrNoRecorder) {
					out.PrintMessage("No recorder selected")
					return nil
				}
				return err
			}

			out.PrintMessage("Recorder: " + id)
			return nil
		},
	}
}

func newRecorderClearCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the recorder selection",
		Long:  `Release the recorder selection. Requires the admin code.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Recorder.RequestUnlock(); err != nil {
				return err
			}
			if err := app.Gate.Submit(cmd.Context(), code); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Recorder cleared")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Admin code (required)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
