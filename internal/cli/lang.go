package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var supportedLocales = []string{"en", "zh"}

func newLangCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lang [locale]",
		Short: "Show or set the display language",
		Long: `Show the persisted display language, or set it.

The choice is stored locally and survives restarts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if len(args) == 0 {
				out.PrintMessage("Language: " + app.Settings.Locale())
				return nil
			}

			locale := args[0]
			if !isSupportedLocale(locale) {
				return fmt.Errorf("unsupported locale %q, want one of %v", locale, supportedLocales)
			}
			if err := app.Settings.SetLocale(locale); err != nil {
				return err
			}

			out.PrintMessage("Language set to " + locale)
			return nil
		},
	}
}

func isSupportedLocale(locale string) bool {
	for _, l := range supportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}
