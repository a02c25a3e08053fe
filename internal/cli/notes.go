package cli

import (
	"strconv"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/foreskyapp/foresky-cli/internal/errors"
	"github.com/foreskyapp/foresky-cli/internal/service"
	"github.com/foreskyapp/foresky-cli/internal/view"
)

func addNotes(root *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:     "notes",
		Short:   "Work with your notes",
		Aliases: []string{"note"},
	}

	cmd.AddCommand(
		newNotesListCmd(app),
		newNotesShowCmd(app),
		newNotesAddCmd(app),
		newNotesEditCmd(app),
		newNotesRemoveCmd(app),
	)
	root.AddCommand(cmd)
}

func parseNoteID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.Validationf("invalid note id %q", arg)
	}
	return id, nil
}

func newNotesListCmd(app *App) *cobra.Command {
	var (
		query string
		order string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List notes, newest first",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := do.MustInvoke[*service.NoteService](app.injector)

			results, err := notes.Search(cmd.Context(), query, view.SortOrder(order))
			if err != nil {
				return err
			}
			if len(results) == 0 {
				if query != "" {
					notef(cmd, "No notes match %q.", query)
				} else {
					notef(cmd, "No notes yet. Create one with `foresky notes add`.")
				}
				return nil
			}

			tbl := newTable()
			tbl.AddRow("ID", "TITLE", "TAGS", "CONTENT")
			for _, n := range results {
				tbl.AddRow(n.ID, n.Title, joinNames(n.TagNames()), preview(n.Content))
			}
			printTable(cmd, tbl)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by title, content, or tag name")
	cmd.Flags().StringVarP(&order, "sort", "s", string(view.SortNewest), "sort order: newest, oldest, az, za")

	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single note in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			notes := do.MustInvoke[*service.NoteService](app.injector)
			note, err := notes.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			tbl := newTable()
			tbl.AddRow("ID:", note.ID)
			tbl.AddRow("Title:", note.Title)
			tbl.AddRow("Tags:", joinNames(note.TagNames()))
			printTable(cmd, tbl)
			if note.Content != "" {
				notef(cmd, "\n%s", note.Content)
			}
			return nil
		},
	}
}

// resolveTagNames maps --tag values to identifiers via the registry,
// refreshing it first so a tag created elsewhere is still found.
func resolveTagNames(cmd *cobra.Command, app *App, names []string) ([]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}

	tags := do.MustInvoke[*service.TagService](app.injector)
	if _, err := tags.List(cmd.Context()); err != nil && len(tags.Cached()) == 0 {
		return nil, err
	}

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		tag, ok := tags.FindByName(name)
		if !ok {
			return nil, errors.NotFoundf("no tag named %q; create it with `foresky tags add`", name)
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

func newNotesAddCmd(app *App) *cobra.Command {
	var (
		content  string
		tagNames []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tagIDs, err := resolveTagNames(cmd, app, tagNames)
			if err != nil {
				return err
			}

			notes := do.MustInvoke[*service.NoteService](app.injector)

			ed := notes.Editor()
			ed.Begin()
			ed.SetTitle(args[0])
			ed.SetContent(content)
			for _, id := range tagIDs {
				ed.ToggleTag(id)
			}

			note, err := notes.SubmitDraft(cmd.Context())
			if err != nil {
				notes.CancelDraft()
				return err
			}

			successf(cmd, "Created note %d: %s", note.ID, note.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&content, "content", "c", "", "note body")
	cmd.Flags().StringArrayVarP(&tagNames, "tag", "t", nil, "tag to attach (repeatable)")

	return cmd
}

func newNotesEditCmd(app *App) *cobra.Command {
	var (
		title      string
		content    string
		toggleTags []string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note's title, body, or tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			tagIDs, err := resolveTagNames(cmd, app, toggleTags)
			if err != nil {
				return err
			}

			notes := do.MustInvoke[*service.NoteService](app.injector)
			note, err := notes.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			// Untouched fields ride along from the existing note.
			ed := notes.Editor()
			ed.BeginEdit(note)
			if cmd.Flags().Changed("title") {
				ed.SetTitle(title)
			}
			if cmd.Flags().Changed("content") {
				ed.SetContent(content)
			}
			for _, tagID := range tagIDs {
				ed.ToggleTag(tagID)
			}

			updated, err := notes.SubmitDraft(cmd.Context())
			if err != nil {
				notes.CancelDraft()
				return err
			}

			successf(cmd, "Updated note %d: %s", updated.ID, updated.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new body")
	cmd.Flags().StringArrayVarP(&toggleTags, "tag", "t", nil, "tag to toggle on or off (repeatable)")

	return cmd
}

func newNotesRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a note",
		Aliases: []string{"remove", "delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			notes := do.MustInvoke[*service.NoteService](app.injector)
			note, err := notes.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if !yes && !confirm(cmd, "Delete note "+strconv.FormatInt(id, 10)+" ("+note.Title+")?") {
				notef(cmd, "Aborted.")
				return nil
			}

			if err := notes.Delete(cmd.Context(), id); err != nil {
				return err
			}
			successf(cmd, "Deleted note %d", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
