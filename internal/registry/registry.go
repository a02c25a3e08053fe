// Package registry is the local cache of the user's tags, ordered by
// arrival. It only ever changes on successful remote operations: a
// failed refresh leaves the previous cache in place.
package registry

import (
	"sync"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

// Registry caches tags by arrival order with identifier lookup.
type Registry struct {
	mu   sync.RWMutex
	tags []domain.Tag
	byID map[int64]int // identifier -> index in tags
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byID: make(map[int64]int)}
}

// All returns the cached tags in arrival order.
func (r *Registry) All() []domain.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// Len returns the number of cached tags.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tags)
}

// Get looks a tag up by identifier.
func (r *Registry) Get(id int64) (domain.Tag, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return domain.Tag{}, false
	}
	return r.tags[i], true
}

// ReplaceAll swaps the cache for a freshly fetched tag list.
func (r *Registry) ReplaceAll(tags []domain.Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = make([]domain.Tag, len(tags))
	copy(r.tags, tags)
	r.byID = make(map[int64]int, len(tags))
	for i, t := range r.tags {
		r.byID[t.ID] = i
	}
}

// Put appends a newly created tag. A create that fires twice must not
// produce two cache entries for the same identifier, so an existing
// entry is updated in place instead.
func (r *Registry) Put(tag domain.Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.byID[tag.ID]; ok {
		r.tags[i] = tag
		return
	}
	r.tags = append(r.tags, tag)
	r.byID[tag.ID] = len(r.tags) - 1
}

// Rename replaces a tag's name in place. The identifier and the
// arrival position never change. Renaming an unknown tag is a no-op.
func (r *Registry) Rename(id int64, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.byID[id]; ok {
		r.tags[i].Name = name
	}
}

// Remove drops a tag from the cache.
func (r *Registry) Remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byID[id]
	if !ok {
		return
	}
	r.tags = append(r.tags[:i], r.tags[i+1:]...)
	delete(r.byID, id)
	for j := i; j < len(r.tags); j++ {
		r.byID[r.tags[j].ID] = j
	}
}

// Resolve maps identifiers to tags, silently omitting any that are no
// longer in the registry. A note whose tag was deleted degrades to
// showing its remaining tags rather than failing.
func (r *Registry) Resolve(ids []int64) []domain.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Tag, 0, len(ids))
	for _, id := range ids {
		if i, ok := r.byID[id]; ok {
			out = append(out, r.tags[i])
		}
	}
	return out
}
