package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round recording commands",
	}

	cmd.AddCommand(newRoundRecordCmd())
	cmd.AddCommand(newRoundListCmd())
	cmd.AddCommand(newRoundMatrixCmd())
	cmd.AddCommand(newRoundUndoCmd())

	return cmd
}

func newRoundRecordCmd() *cobra.Command {
	var scores []string
	var balance bool

	cmd := &cobra.Command{
		Use:   "record --score <player-id>=<delta> [--score ...]",
		Short: "Record a round against the active session",
		Long: `Record a zero-sum round.

Each --score flag sets one player's delta. With --balance, the first
player without a delta absorbs whatever makes the round sum to zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(scores) == 0 {
				return fmt.Errorf("at least one --score is required")
			}

			for _, s := range scores {
				id, deltaStr, ok := strings.Cut(s, "=")
				if !ok {
					return fmt.Errorf("invalid --score %q, want <player-id>=<delta>", s)
				}
				delta, err := strconv.Atoi(deltaStr)
				if err != nil {
					return fmt.Errorf("invalid delta in %q: %w", s, err)
				}
				if err := app.Entry.SetDelta(id, delta); err != nil {
					return err
				}
			}

			if balance {
				if _, err := app.Entry.AutoBalance(cmd.Context()); err != nil {
					return err
				}
			}

			round, err := app.Entry.Submit(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*round)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&scores, "score", nil, "Player delta as <player-id>=<delta> (repeatable)")
	cmd.Flags().BoolVar(&balance, "balance", false, "Assign the first unset player the balancing delta")

	return cmd
}

func newRoundListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the active session's rounds, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			rounds, err := app.Rounds.List(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(rounds)
			return nil
		},
	}
}

func newRoundMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Show the round history as a score table",
		RunE: func(cmd *cobra.Command, args []string) error {
			matrix, err := app.Rounds.Matrix(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(matrix)
			return nil
		},
	}
}

func newRoundUndoCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the most recent round",
		Long:  `Delete the most recent round. Requires the admin code.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Rounds.UndoLatest(cmd.Context()); err != nil {
				return err
			}
			if err := app.Gate.Submit(cmd.Context(), code); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Round undone")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Admin code (required)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
