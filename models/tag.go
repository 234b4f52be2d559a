package models

import "time"

// Tag is a global, unowned label. Names are stored normalized
// (lowercased and trimmed) so uniqueness is case-insensitive.
type Tag struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// TagWithCount is a Tag annotated with how many entries reference it.
// Used by the popular-tags listing.
type TagWithCount struct {
	Tag
	EntryCount int64 `json:"entryCount"`
}

// TagNames is the request body shared by the entry-scoped tag
// mutation endpoints (add / replace / remove).
type TagNames struct {
	Tags []string `json:"tags"`
}
