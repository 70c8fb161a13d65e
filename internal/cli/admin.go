package cli

import (
	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin secret commands",
	}

	cmd.AddCommand(newAdminVerifyCmd())
	cmd.AddCommand(newAdminChangeCodeCmd())

	return cmd
}

func newAdminVerifyCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check an admin code against the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.VerifySecret(cmd.Context(), code); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Code accepted")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Admin code (required)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newAdminChangeCodeCmd() *cobra.Command {
	var code, newCode string

	cmd := &cobra.Command{
		Use:   "change-code",
		Short: "Rotate the admin code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Control.RequestSecretChange(newCode); err != nil {
				return err
			}
			if err := app.Gate.Submit(cmd.Context(), code); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Admin code changed")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Current admin code (required)")
	cmd.Flags().StringVar(&newCode, "new-code", "", "New admin code (required)")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("new-code")

	return cmd
}
