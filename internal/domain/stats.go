package domain

// Stats is the server-computed aggregate over the user's data. It is
// never maintained incrementally on the client; every mutation that
// could change it triggers a re-fetch.
type Stats struct {
	NotesCount int `json:"notes_count"`
	TagsCount  int `json:"tags_count"`
}

// TagsPerNote returns the average number of tag references per note.
func (s Stats) TagsPerNote() float64 {
	if s.NotesCount == 0 {
		return 0
	}
	return float64(s.TagsCount) / float64(s.NotesCount)
}
