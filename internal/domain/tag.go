package domain

import "strings"

// Tag is a user-defined label in a many-to-many relation with notes.
// The identifier is server-assigned and immutable; the name is mutable
// and unique per user (the server enforces uniqueness, the client
// surfaces the conflict).
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NormalizeTagName canonicalizes raw user input for a tag name.
// An empty result means the input was blank and must be rejected
// before any remote call is made.
func NormalizeTagName(raw string) string {
	return strings.TrimSpace(raw)
}
