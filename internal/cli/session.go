package cli

import (
	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session management commands",
	}

	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionLoadCmd())
	cmd.AddCommand(newSessionRenameCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all sessions (the active one is starred)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.List(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(sessions)
			return nil
		},
	}
}

func newSessionCreateCmd() *cobra.Command {
	var load bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a session",
		Long: `Create a session.

The new session is not activated; pass --load to switch to it
immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Sessions.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if load {
				sess, err = app.Sessions.Load(cmd.Context(), sess.ID)
				if err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output)
			out.Print(*sess)
			return nil
		},
	}

	cmd.Flags().BoolVar(&load, "load", false, "Activate the session after creating it")

	return cmd
}

func newSessionLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <id>",
		Short: "Switch the active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Sessions.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*sess)
			return nil
		},
	}
}

func newSessionRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Sessions.Rename(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*sess)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session and its rounds",
		Long: `Delete a session and every round recorded in it.

The active session cannot be deleted; load another session first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session deleted")
			return nil
		},
	}
}
