package cli

import (
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/foreskyapp/foresky-cli/internal/gateway"
)

func addPing(root *cobra.Command, app *App) {
	root.AddCommand(&cobra.Command{
		Use:   "ping",
		Short: "Check that the API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gw := do.MustInvoke[*gateway.Client](app.injector)

			start := time.Now()
			if err := gw.Ping(cmd.Context()); err != nil {
				return err
			}
			successf(cmd, "API is up (%s)", time.Since(start).Round(time.Millisecond))
			return nil
		},
	})
}
