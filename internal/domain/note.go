package domain

// Note is a titled, content-bearing record owned by exactly one user.
// The server assigns the identifier; a higher identifier means a more
// recently created note, which the client uses as its recency signal.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    []Tag  `json:"tags"`
}

// TagIDs returns the identifiers of the tags referenced by the note.
func (n *Note) TagIDs() []int64 {
	ids := make([]int64, 0, len(n.Tags))
	for _, t := range n.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// TagNames returns the display names of the note's tags.
func (n *Note) TagNames() []string {
	names := make([]string, 0, len(n.Tags))
	for _, t := range n.Tags {
		names = append(names, t.Name)
	}
	return names
}

// HasTag reports whether the note references the given tag.
func (n *Note) HasTag(tagID int64) bool {
	for _, t := range n.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}
