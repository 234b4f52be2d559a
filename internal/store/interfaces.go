package store

import (
	"context"

	"devjournal/models"
)

// UserRepository is the data-access layer for local user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
}

// EntryRepository is the data-access layer for journal entries.
// Owner-scoped mutations carry the owner id in their WHERE clause, so a
// raced delete surfaces as ErrEntryNotFound rather than a cross-owner
// write.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	FindEntryByID(ctx context.Context, id string) (models.Entry, error)
	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int64, error)
	UpdateEntry(ctx context.Context, id, userID string, update models.EntryUpdate) (models.Entry, error)
	SetSummary(ctx context.Context, id, userID, summary string) error
	DeleteEntry(ctx context.Context, id, userID string) error
}

// SnippetRepository is the data-access layer for code snippets.
type SnippetRepository interface {
	CreateSnippet(ctx context.Context, snippet models.Snippet) (models.Snippet, error)
	FindSnippetByID(ctx context.Context, id string) (models.Snippet, error)
	ListSnippets(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error)
	ListSnippetsByEntry(ctx context.Context, entryID string, publicOnly bool) ([]models.Snippet, error)
	UpdateSnippet(ctx context.Context, id, userID string, update models.SnippetUpdate) (models.Snippet, error)
	DeleteSnippet(ctx context.Context, id, userID string) error
}

// TagRepository is the data-access layer for tags and the entry-tag
// relation.
type TagRepository interface {
	UpsertTag(ctx context.Context, name string) (models.Tag, error)
	FindTagByName(ctx context.Context, name string) (models.Tag, error)
	FindTagsByNames(ctx context.Context, names []string) ([]models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	PopularTags(ctx context.Context, limit int) ([]models.TagWithCount, error)
	SearchTags(ctx context.Context, prefix string, limit int) ([]models.Tag, error)
	DeleteTagByName(ctx context.Context, name string) error

	ListEntryTags(ctx context.Context, entryID string) ([]models.Tag, error)
	AttachTags(ctx context.Context, entryID string, tagIDs []string) error
	DetachTags(ctx context.Context, entryID string, tagIDs []string) error
	ReplaceEntryTags(ctx context.Context, entryID string, tagIDs []string) error
	ListEntriesByTag(ctx context.Context, name string, page models.PageQuery) ([]models.Entry, int64, error)
}
