// Package draft holds the note currently being composed or edited. A
// draft lives apart from the committed note cache until submission and
// is discarded whole on submit or cancel; nothing is ever partially
// merged back.
package draft

import (
	"slices"
	"sync"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

// Draft is a snapshot of the in-progress note: its fields, its
// provisional tag selection, and (when editing) the identifier of the
// note it will replace.
type Draft struct {
	Title   string
	Content string
	TagIDs  []int64 // sorted ascending
	NoteID  int64   // valid only when Editing
	Editing bool
}

// Editor manages the single active draft.
type Editor struct {
	mu      sync.Mutex
	active  bool
	title   string
	content string
	tags    map[int64]struct{}
	noteID  int64
	editing bool
}

// NewEditor creates an editor with no active draft.
func NewEditor() *Editor {
	return &Editor{tags: make(map[int64]struct{})}
}

// Begin opens a blank compose draft, replacing any draft in progress.
func (e *Editor) Begin() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
	e.active = true
}

// BeginEdit opens a draft seeded from an existing note's committed
// fields and records which note it will replace on submit.
func (e *Editor) BeginEdit(n domain.Note) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
	e.active = true
	e.title = n.Title
	e.content = n.Content
	for _, id := range n.TagIDs() {
		e.tags[id] = struct{}{}
	}
	e.noteID = n.ID
	e.editing = true
}

// Active reports whether a draft is open.
func (e *Editor) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// SetTitle replaces the draft title.
func (e *Editor) SetTitle(title string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.title = title
}

// SetContent replaces the draft content.
func (e *Editor) SetContent(content string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.content = content
}

// ToggleTag flips the tag's membership in the selection: add when
// absent, remove when present.
func (e *Editor) ToggleTag(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.tags[id]; ok {
		delete(e.tags, id)
		return
	}
	e.tags[id] = struct{}{}
}

// Snapshot returns a copy of the current draft. The second return is
// false when no draft is open.
func (e *Editor) Snapshot() (Draft, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active {
		return Draft{}, false
	}

	ids := make([]int64, 0, len(e.tags))
	for id := range e.tags {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return Draft{
		Title:   e.title,
		Content: e.content,
		TagIDs:  ids,
		NoteID:  e.noteID,
		Editing: e.editing,
	}, true
}

// Clear discards the draft entirely, backing identifier included, so a
// stale identifier can never be resubmitted.
func (e *Editor) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

// reset must be called with the lock held.
func (e *Editor) reset() {
	e.active = false
	e.title = ""
	e.content = ""
	e.tags = make(map[int64]struct{})
	e.noteID = 0
	e.editing = false
}
