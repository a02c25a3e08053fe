package cli

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/foreskyapp/foresky-cli/internal/di/providers"
	"github.com/foreskyapp/foresky-cli/internal/errors"
)

func addTheme(root *cobra.Command, app *App) {
	root.AddCommand(&cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Show or set the display theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := do.MustInvoke[*providers.StoreHandle](app.injector)

			if len(args) == 0 {
				notef(cmd, "%s", store.Theme())
				return nil
			}

			theme := args[0]
			if theme != "dark" && theme != "light" {
				return errors.Validationf("unknown theme %q, expected dark or light", theme)
			}
			if err := store.SetTheme(theme); err != nil {
				return err
			}
			successf(cmd, "Theme set to %s", theme)
			return nil
		},
	})
}
