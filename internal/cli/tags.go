package cli

import (
	"strconv"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/foreskyapp/foresky-cli/internal/domain"
	"github.com/foreskyapp/foresky-cli/internal/errors"
	"github.com/foreskyapp/foresky-cli/internal/service"
)

func addTags(root *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:     "tags",
		Short:   "Work with your tags",
		Aliases: []string{"tag"},
	}

	cmd.AddCommand(
		newTagsListCmd(app),
		newTagsAddCmd(app),
		newTagsRenameCmd(app),
		newTagsRemoveCmd(app),
	)
	root.AddCommand(cmd)
}

// findTag accepts either a tag id or a tag name.
func findTag(cmd *cobra.Command, app *App, arg string) (domain.Tag, error) {
	tags := do.MustInvoke[*service.TagService](app.injector)
	if _, err := tags.List(cmd.Context()); err != nil && len(tags.Cached()) == 0 {
		return domain.Tag{}, err
	}

	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		for _, t := range tags.Cached() {
			if t.ID == id {
				return t, nil
			}
		}
	}
	if tag, ok := tags.FindByName(arg); ok {
		return tag, nil
	}
	return domain.Tag{}, errors.NotFoundf("no tag matching %q", arg)
}

func newTagsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List your tags",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := do.MustInvoke[*service.TagService](app.injector)

			all, err := tags.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(all) == 0 {
				notef(cmd, "No tags yet. Create one with `foresky tags add`.")
				return nil
			}

			tbl := newTable()
			tbl.AddRow("ID", "NAME")
			for _, t := range all {
				tbl.AddRow(t.ID, t.Name)
			}
			printTable(cmd, tbl)
			return nil
		},
	}
}

func newTagsAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := do.MustInvoke[*service.TagService](app.injector)

			tag, err := tags.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			successf(cmd, "Created tag %d: %s", tag.ID, tag.Name)
			return nil
		},
	}
}

func newTagsRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <tag> <new-name>",
		Short: "Rename a tag everywhere it appears",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := findTag(cmd, app, args[0])
			if err != nil {
				return err
			}

			tags := do.MustInvoke[*service.TagService](app.injector)
			renamed, err := tags.Rename(cmd.Context(), tag.ID, args[1])
			if err != nil {
				return err
			}
			successf(cmd, "Renamed tag %s to %s", tag.Name, renamed.Name)
			return nil
		},
	}
}

func newTagsRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <tag>",
		Short:   "Delete an unused tag",
		Aliases: []string{"remove", "delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := findTag(cmd, app, args[0])
			if err != nil {
				return err
			}

			if !yes && !confirm(cmd, "Delete tag "+tag.Name+"?") {
				notef(cmd, "Aborted.")
				return nil
			}

			tags := do.MustInvoke[*service.TagService](app.injector)
			if err := tags.Delete(cmd.Context(), tag.ID); err != nil {
				if errors.Is(err, errors.ErrConflict) {
					notef(cmd, "Remove the tag from its notes first, then try again.")
				}
				return err
			}
			successf(cmd, "Deleted tag %s", tag.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
