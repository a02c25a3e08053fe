// Package view derives the displayed note list from the note cache, a
// free-text query, and a sort order. Projection is a pure function of
// its inputs: it never mutates the cache and keeps no state of its own,
// so it can be recomputed at any time.
package view

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

// SortOrder selects how the projected notes are ordered.
type SortOrder string

// Supported sort orders. Identifier breaks ties because the server
// assigns identifiers in creation order.
const (
	SortNewest SortOrder = "newest" // descending by identifier
	SortOldest SortOrder = "oldest" // ascending by identifier
	SortAZ     SortOrder = "az"     // title ascending, locale-aware
	SortZA     SortOrder = "za"     // title descending, locale-aware
)

// Valid reports whether the order is a recognized value.
func (o SortOrder) Valid() bool {
	switch o {
	case SortNewest, SortOldest, SortAZ, SortZA:
		return true
	default:
		return false
	}
}

// Project returns sort(filter(notes, query)) under the given order.
// A note passes the filter when the query is a case-insensitive
// substring of its title, its content, or any of its tag names; an
// empty query passes every note. The input slice is left untouched.
func Project(notes []domain.Note, query string, order SortOrder) []domain.Note {
	out := filter(notes, query)

	switch order {
	case SortOldest:
		slices.SortFunc(out, func(a, b domain.Note) int {
			return compareID(a.ID, b.ID)
		})
	case SortAZ, SortZA:
		// Locale-aware comparison, mirroring what a browser's
		// localeCompare would do with these titles.
		c := collate.New(language.Und, collate.Loose)
		slices.SortFunc(out, func(a, b domain.Note) int {
			cmp := c.CompareString(a.Title, b.Title)
			if cmp == 0 {
				cmp = compareID(a.ID, b.ID)
			}
			if order == SortZA {
				cmp = -cmp
			}
			return cmp
		})
	default: // SortNewest
		slices.SortFunc(out, func(a, b domain.Note) int {
			return compareID(b.ID, a.ID)
		})
	}

	return out
}

// filter returns the notes matching the query, preserving input order.
func filter(notes []domain.Note, query string) []domain.Note {
	out := make([]domain.Note, 0, len(notes))
	if query == "" {
		return append(out, notes...)
	}

	needle := strings.ToLower(query)
	for _, n := range notes {
		if matches(&n, needle) {
			out = append(out, n)
		}
	}
	return out
}

func matches(n *domain.Note, needle string) bool {
	if strings.Contains(strings.ToLower(n.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), needle) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			return true
		}
	}
	return false
}

func compareID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
