package service

import (
	"context"

	"devjournal/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByIDFn       func(ctx context.Context, id string) (models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (models.User, error)
	updateProfileFn  func(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, update)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.EntryRepository
// ─────────────────────────────────────────────

type mockEntryRepository struct {
	createFn     func(ctx context.Context, entry models.Entry) (models.Entry, error)
	findByIDFn   func(ctx context.Context, id string) (models.Entry, error)
	listFn       func(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int64, error)
	updateFn     func(ctx context.Context, id, userID string, update models.EntryUpdate) (models.Entry, error)
	setSummaryFn func(ctx context.Context, id, userID, summary string) error
	deleteFn     func(ctx context.Context, id, userID string) error
}

func (m *mockEntryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return entry, nil
}

func (m *mockEntryRepository) FindEntryByID(ctx context.Context, id string) (models.Entry, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Entry{}, nil
}

func (m *mockEntryRepository) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockEntryRepository) UpdateEntry(ctx context.Context, id, userID string, update models.EntryUpdate) (models.Entry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, userID, update)
	}
	return models.Entry{}, nil
}

func (m *mockEntryRepository) SetSummary(ctx context.Context, id, userID, summary string) error {
	if m.setSummaryFn != nil {
		return m.setSummaryFn(ctx, id, userID, summary)
	}
	return nil
}

func (m *mockEntryRepository) DeleteEntry(ctx context.Context, id, userID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.SnippetRepository
// ─────────────────────────────────────────────

type mockSnippetRepository struct {
	createFn      func(ctx context.Context, snippet models.Snippet) (models.Snippet, error)
	findByIDFn    func(ctx context.Context, id string) (models.Snippet, error)
	listFn        func(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error)
	listByEntryFn func(ctx context.Context, entryID string, publicOnly bool) ([]models.Snippet, error)
	updateFn      func(ctx context.Context, id, userID string, update models.SnippetUpdate) (models.Snippet, error)
	deleteFn      func(ctx context.Context, id, userID string) error
}

func (m *mockSnippetRepository) CreateSnippet(ctx context.Context, snippet models.Snippet) (models.Snippet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, snippet)
	}
	return snippet, nil
}

func (m *mockSnippetRepository) FindSnippetByID(ctx context.Context, id string) (models.Snippet, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Snippet{}, nil
}

func (m *mockSnippetRepository) ListSnippets(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockSnippetRepository) ListSnippetsByEntry(ctx context.Context, entryID string, publicOnly bool) ([]models.Snippet, error) {
	if m.listByEntryFn != nil {
		return m.listByEntryFn(ctx, entryID, publicOnly)
	}
	return []models.Snippet{}, nil
}

func (m *mockSnippetRepository) UpdateSnippet(ctx context.Context, id, userID string, update models.SnippetUpdate) (models.Snippet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, userID, update)
	}
	return models.Snippet{}, nil
}

func (m *mockSnippetRepository) DeleteSnippet(ctx context.Context, id, userID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.TagRepository
// ─────────────────────────────────────────────

type mockTagRepository struct {
	upsertFn           func(ctx context.Context, name string) (models.Tag, error)
	findByNameFn       func(ctx context.Context, name string) (models.Tag, error)
	findByNamesFn      func(ctx context.Context, names []string) ([]models.Tag, error)
	listFn             func(ctx context.Context) ([]models.Tag, error)
	popularFn          func(ctx context.Context, limit int) ([]models.TagWithCount, error)
	searchFn           func(ctx context.Context, prefix string, limit int) ([]models.Tag, error)
	deleteByNameFn     func(ctx context.Context, name string) error
	listEntryTagsFn    func(ctx context.Context, entryID string) ([]models.Tag, error)
	attachFn           func(ctx context.Context, entryID string, tagIDs []string) error
	detachFn           func(ctx context.Context, entryID string, tagIDs []string) error
	replaceFn          func(ctx context.Context, entryID string, tagIDs []string) error
	listEntriesByTagFn func(ctx context.Context, name string, page models.PageQuery) ([]models.Entry, int64, error)
}

func (m *mockTagRepository) UpsertTag(ctx context.Context, name string) (models.Tag, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, name)
	}
	return models.Tag{ID: "tag-" + name, Name: name}, nil
}

func (m *mockTagRepository) FindTagByName(ctx context.Context, name string) (models.Tag, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return models.Tag{}, nil
}

func (m *mockTagRepository) FindTagsByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	if m.findByNamesFn != nil {
		return m.findByNamesFn(ctx, names)
	}
	return nil, nil
}

func (m *mockTagRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTagRepository) PopularTags(ctx context.Context, limit int) ([]models.TagWithCount, error) {
	if m.popularFn != nil {
		return m.popularFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockTagRepository) SearchTags(ctx context.Context, prefix string, limit int) ([]models.Tag, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, prefix, limit)
	}
	return nil, nil
}

func (m *mockTagRepository) DeleteTagByName(ctx context.Context, name string) error {
	if m.deleteByNameFn != nil {
		return m.deleteByNameFn(ctx, name)
	}
	return nil
}

func (m *mockTagRepository) ListEntryTags(ctx context.Context, entryID string) ([]models.Tag, error) {
	if m.listEntryTagsFn != nil {
		return m.listEntryTagsFn(ctx, entryID)
	}
	return []models.Tag{}, nil
}

func (m *mockTagRepository) AttachTags(ctx context.Context, entryID string, tagIDs []string) error {
	if m.attachFn != nil {
		return m.attachFn(ctx, entryID, tagIDs)
	}
	return nil
}

func (m *mockTagRepository) DetachTags(ctx context.Context, entryID string, tagIDs []string) error {
	if m.detachFn != nil {
		return m.detachFn(ctx, entryID, tagIDs)
	}
	return nil
}

func (m *mockTagRepository) ReplaceEntryTags(ctx context.Context, entryID string, tagIDs []string) error {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, entryID, tagIDs)
	}
	return nil
}

func (m *mockTagRepository) ListEntriesByTag(ctx context.Context, name string, page models.PageQuery) ([]models.Entry, int64, error) {
	if m.listEntriesByTagFn != nil {
		return m.listEntriesByTagFn(ctx, name, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: ai.Summarizer
// ─────────────────────────────────────────────

type mockSummarizer struct {
	summarizeFn func(ctx context.Context, text string) (string, error)
}

func (m *mockSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(ctx, text)
	}
	return "", nil
}

func (m *mockSummarizer) Close() error { return nil }
