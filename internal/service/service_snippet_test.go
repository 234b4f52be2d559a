package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devjournal/internal/logger"
	"devjournal/internal/store"
	"devjournal/models"
)

func newSnippetServiceWith(snippets *mockSnippetRepository, entries *mockEntryRepository) SnippetService {
	if snippets == nil {
		snippets = &mockSnippetRepository{}
	}
	if entries == nil {
		entries = &mockEntryRepository{}
	}
	return NewSnippetService(snippets, entries, logger.NewLogger("test"))
}

func TestSnippetCreate_RejectsUnsupportedLanguage(t *testing.T) {
	svc := newSnippetServiceWith(nil, nil)

	_, err := svc.Create(context.Background(), "sub-1", models.SnippetInput{
		Title:    "hello",
		Code:     "print 'hi'",
		Language: "cobol",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSnippetCreate_LinkToOwnEntry(t *testing.T) {
	entryID := "entry-1"
	entries := &mockEntryRepository{
		findByIDFn: func(_ context.Context, id string) (models.Entry, error) {
			assert.Equal(t, entryID, id)
			return models.Entry{ID: entryID, UserID: "sub-1"}, nil
		},
	}
	var created models.Snippet
	snippets := &mockSnippetRepository{
		createFn: func(_ context.Context, snippet models.Snippet) (models.Snippet, error) {
			created = snippet
			return snippet, nil
		},
	}

	svc := newSnippetServiceWith(snippets, entries)
	_, err := svc.Create(context.Background(), "sub-1", models.SnippetInput{
		Title:    "worker pool",
		Code:     "go work()",
		Language: "go",
		EntryID:  &entryID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.EntryID)
	assert.Equal(t, entryID, *created.EntryID)
}

func TestSnippetCreate_LinkToForeignEntryForbidden(t *testing.T) {
	entryID := "entry-1"
	entries := &mockEntryRepository{
		findByIDFn: func(_ context.Context, _ string) (models.Entry, error) {
			return models.Entry{ID: entryID, UserID: "someone-else"}, nil
		},
	}

	svc := newSnippetServiceWith(nil, entries)
	_, err := svc.Create(context.Background(), "sub-1", models.SnippetInput{
		Title:    "worker pool",
		Code:     "go work()",
		Language: "go",
		EntryID:  &entryID,
	})
	assert.ErrorIs(t, err, ErrNotResourceOwner)
}

func TestSnippetCreate_LinkToMissingEntry(t *testing.T) {
	entryID := "missing"
	entries := &mockEntryRepository{
		findByIDFn: func(_ context.Context, _ string) (models.Entry, error) {
			return models.Entry{}, store.ErrEntryNotFound
		},
	}

	svc := newSnippetServiceWith(nil, entries)
	_, err := svc.Create(context.Background(), "sub-1", models.SnippetInput{
		Title:    "worker pool",
		Code:     "go work()",
		Language: "go",
		EntryID:  &entryID,
	})
	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestSnippetGet_PrivateHiddenFromOthers(t *testing.T) {
	snippets := &mockSnippetRepository{
		findByIDFn: func(_ context.Context, _ string) (models.Snippet, error) {
			return models.Snippet{ID: "snippet-1", UserID: "owner", IsPublic: false}, nil
		},
	}

	svc := newSnippetServiceWith(snippets, nil)
	_, err := svc.Get(context.Background(), "snippet-1", "visitor")
	assert.ErrorIs(t, err, store.ErrSnippetNotFound)

	got, err := svc.Get(context.Background(), "snippet-1", "owner")
	require.NoError(t, err)
	assert.Equal(t, "snippet-1", got.ID)
}

func TestSnippetListPublic_RejectsUnknownLanguageFilter(t *testing.T) {
	svc := newSnippetServiceWith(nil, nil)

	_, _, err := svc.ListPublic(context.Background(), models.SnippetFilter{Language: "brainfuck"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSnippetListPublic_ForcesPublicOnly(t *testing.T) {
	var gotFilter models.SnippetFilter
	snippets := &mockSnippetRepository{
		listFn: func(_ context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	svc := newSnippetServiceWith(snippets, nil)
	_, _, err := svc.ListPublic(context.Background(), models.SnippetFilter{UserID: "sub-1", Language: "go"})
	require.NoError(t, err)
	assert.True(t, gotFilter.PublicOnly, "public listing must never leak private snippets")
}

func TestSnippetUpdate_RelinkValidatesOwnership(t *testing.T) {
	snippets := &mockSnippetRepository{
		findByIDFn: func(_ context.Context, _ string) (models.Snippet, error) {
			return models.Snippet{ID: "snippet-1", UserID: "sub-1"}, nil
		},
	}
	entries := &mockEntryRepository{
		findByIDFn: func(_ context.Context, _ string) (models.Entry, error) {
			return models.Entry{ID: "entry-2", UserID: "someone-else"}, nil
		},
	}

	svc := newSnippetServiceWith(snippets, entries)
	foreign := "entry-2"
	_, err := svc.Update(context.Background(), "snippet-1", "sub-1", models.SnippetUpdate{EntryID: &foreign})
	assert.ErrorIs(t, err, ErrNotResourceOwner)
}

func TestSnippetDelete_NonOwnerForbidden(t *testing.T) {
	snippets := &mockSnippetRepository{
		findByIDFn: func(_ context.Context, _ string) (models.Snippet, error) {
			return models.Snippet{ID: "snippet-1", UserID: "owner"}, nil
		},
	}

	svc := newSnippetServiceWith(snippets, nil)
	err := svc.Delete(context.Background(), "snippet-1", "attacker")
	assert.ErrorIs(t, err, ErrNotResourceOwner)
}
