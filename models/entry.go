package models

import "time"

// Entry is a markdown journal entry. Private entries (IsPublic false)
// are visible to their owner only; lookups by anyone else behave as if
// the entry does not exist.
type Entry struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Summary   *string   `json:"summary,omitempty" db:"summary"`
	IsPublic  bool      `json:"isPublic" db:"is_public"`
	UserID    string    `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Always serialized, even when empty, so clients can tell a cleared
	// collection from one that was never loaded.
	Tags     []Tag     `json:"tags"`
	Snippets []Snippet `json:"snippets"`
}

// OwnerID implements the access-gate resource contract.
func (e Entry) OwnerID() string { return e.UserID }

// Public implements the access-gate resource contract.
func (e Entry) Public() bool { return e.IsPublic }

// EntryInput carries the caller-supplied fields for creating an entry.
type EntryInput struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Summary  *string `json:"summary,omitempty"`
	IsPublic *bool   `json:"isPublic,omitempty"`
}

// EntryUpdate carries a partial update of an entry. Nil fields are
// left unchanged.
type EntryUpdate struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	IsPublic *bool   `json:"isPublic,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u EntryUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Summary == nil && u.IsPublic == nil
}

// EntryFilter narrows an entry listing. Zero values mean "no filter"
// for their dimension; IsPublic is a tri-state (nil = both).
type EntryFilter struct {
	UserID   string
	IsPublic *bool
	Search   string
	Page     int
	Limit    int
}
