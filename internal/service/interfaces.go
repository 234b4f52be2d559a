package service

import (
	"context"

	"devjournal/models"
)

// IdentityService provisions and serves local user accounts for
// principals verified by the identity provider.
type IdentityService interface {
	// ProvisionUser returns the local account for the principal,
	// creating it on first sight (by subject id, then by email).
	ProvisionUser(ctx context.Context, principal models.Principal) (models.User, error)

	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
}

// EntryService implements journal-entry operations, enforcing the
// visibility and ownership rules on every path.
type EntryService interface {
	Create(ctx context.Context, userID string, input models.EntryInput) (models.Entry, error)

	// Get returns the entry when the caller may see it. Private entries
	// of other users are indistinguishable from missing ones.
	Get(ctx context.Context, id, callerID string) (models.Entry, error)

	ListPublic(ctx context.Context, page, limit int) ([]models.Entry, int64, error)
	SearchPublic(ctx context.Context, query string, page, limit int) ([]models.Entry, int64, error)
	ListPublicByUser(ctx context.Context, userID string, page, limit int) ([]models.Entry, int64, error)
	// ListMine returns the caller's own entries, private included. The
	// filter's IsPublic and Search fields narrow the listing; its UserID
	// is overridden with the caller's id.
	ListMine(ctx context.Context, userID string, filter models.EntryFilter) ([]models.Entry, int64, error)

	Update(ctx context.Context, id, callerID string, update models.EntryUpdate) (models.Entry, error)
	Delete(ctx context.Context, id, callerID string) error

	// Summarize generates and stores an AI summary of the entry's
	// content, returning the updated entry.
	Summarize(ctx context.Context, id, callerID string) (models.Entry, error)
}

// SnippetService implements code-snippet operations.
type SnippetService interface {
	Create(ctx context.Context, userID string, input models.SnippetInput) (models.Snippet, error)
	Get(ctx context.Context, id, callerID string) (models.Snippet, error)
	ListPublic(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error)
	ListMine(ctx context.Context, userID string, page, limit int) ([]models.Snippet, int64, error)
	Update(ctx context.Context, id, callerID string, update models.SnippetUpdate) (models.Snippet, error)
	Delete(ctx context.Context, id, callerID string) error
}

// TagService implements the global tag catalogue and the entry-tag
// association operations.
type TagService interface {
	CreateTag(ctx context.Context, name string) (models.Tag, error)
	GetTag(ctx context.Context, name string) (models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	PopularTags(ctx context.Context, limit int) ([]models.TagWithCount, error)
	SearchTags(ctx context.Context, query string, limit int) ([]models.Tag, error)
	DeleteTag(ctx context.Context, name string) error

	TagEntries(ctx context.Context, name string, page, limit int) ([]models.Entry, int64, error)

	AddTagsToEntry(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error)
	RemoveTagsFromEntry(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error)
	ReplaceEntryTags(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error)
}
