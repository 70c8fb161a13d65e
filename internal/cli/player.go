package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player roster commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerRenameCmd())
	cmd.AddCommand(newPlayerColorCmd())
	cmd.AddCommand(newPlayerAvatarCmd())
	cmd.AddCommand(newPlayerDeleteCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players",
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := app.Roster.List(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(players)
			return nil
		},
	}
}

func newPlayerAddCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := app.Roster.Add(cmd.Context(), args[0], color)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*player)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Display color, e.g. #ff0000")

	return cmd
}

func newPlayerRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := app.Roster.Rename(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*player)
			return nil
		},
	}
}

func newPlayerColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <id> <color>",
		Short: "Change a player's color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := app.Roster.SetColor(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*player)
			return nil
		},
	}
}

func newPlayerAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <id> <file>",
		Short: "Upload a player's avatar image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			path, err := app.Roster.SetAvatar(cmd.Context(), args[0], filepath.Base(args[1]), f)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Avatar stored at " + path)
			return nil
		},
	}
}

func newPlayerDeleteCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Long: `Delete a player from the roster.

Deleting a player who recorded rounds in the active session requires the
admin code, passed with --code.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gated, err := app.Roster.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if !gated {
				out.PrintMessage("Player deleted")
				return nil
			}

			if code == "" {
				app.Gate.Cancel()
				return fmt.Errorf("player has recorder history; re-run with --code")
			}

			if err := app.Gate.Submit(cmd.Context(), code); err != nil {
				return err
			}
			out.PrintMessage("Player deleted")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Admin code for locked players")

	return cmd
}
