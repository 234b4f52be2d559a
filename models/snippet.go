package models

import "time"

// SupportedLanguages is the fixed allow-list for Snippet.Language.
var SupportedLanguages = []string{
	"typescript", "javascript", "python", "java", "csharp", "cpp", "c",
	"go", "rust", "ruby", "php", "swift", "kotlin", "scala", "html",
	"css", "scss", "sql", "bash", "shell", "json", "yaml", "xml",
	"markdown", "plaintext",
}

// IsSupportedLanguage reports whether lang is in the allow-list.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Snippet is a saved piece of code, optionally linked to one of the
// owner's entries. Visibility follows the same rules as Entry.
type Snippet struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Code        string    `json:"code" db:"code"`
	Language    string    `json:"language" db:"language"`
	Description *string   `json:"description,omitempty" db:"description"`
	IsPublic    bool      `json:"isPublic" db:"is_public"`
	UserID      string    `json:"userId" db:"user_id"`
	EntryID     *string   `json:"entryId,omitempty" db:"entry_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// OwnerID implements the access-gate resource contract.
func (s Snippet) OwnerID() string { return s.UserID }

// Public implements the access-gate resource contract.
func (s Snippet) Public() bool { return s.IsPublic }

// SnippetInput carries the caller-supplied fields for creating a snippet.
type SnippetInput struct {
	Title       string  `json:"title"`
	Code        string  `json:"code"`
	Language    string  `json:"language"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
	EntryID     *string `json:"entryId,omitempty"`
}

// SnippetUpdate carries a partial update of a snippet. Nil fields are
// left unchanged.
type SnippetUpdate struct {
	Title       *string `json:"title,omitempty"`
	Code        *string `json:"code,omitempty"`
	Language    *string `json:"language,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
	EntryID     *string `json:"entryId,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u SnippetUpdate) Empty() bool {
	return u.Title == nil && u.Code == nil && u.Language == nil &&
		u.Description == nil && u.IsPublic == nil && u.EntryID == nil
}

// SnippetFilter narrows a snippet listing.
type SnippetFilter struct {
	UserID     string // owner filter; empty means any owner
	Language   string
	Search     string
	PublicOnly bool
	Page       int
	Limit      int
}
