package cli

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/foreskyapp/foresky-cli/internal/service"
)

func addStats(root *cobra.Command, app *App) {
	root.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show note and tag counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := do.MustInvoke[*service.StatsService](app.injector)

			s, err := stats.Get(cmd.Context())
			if err != nil {
				return err
			}

			tbl := newTable()
			tbl.AddRow("Notes:", s.NotesCount)
			tbl.AddRow("Tags:", s.TagsCount)
			if s.NotesCount > 0 {
				tbl.AddRow("Tags per note:", fmt.Sprintf("%.1f", s.TagsPerNote()))
			}
			printTable(cmd, tbl)
			return nil
		},
	})
}
