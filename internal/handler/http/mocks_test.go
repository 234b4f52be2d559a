package http

import (
	"context"

	"devjournal/internal/identity"
	"devjournal/internal/logger"
	"devjournal/internal/service"
	"devjournal/models"
)

// newTestHandler wires a Handler with the given mocks. Nil mocks are
// replaced with empty ones so tests only set up what they exercise.
func newTestHandler(services *service.Services, verifier identity.Verifier) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.IdentityService == nil {
		services.IdentityService = &mockIdentityService{}
	}
	if services.EntryService == nil {
		services.EntryService = &mockEntryService{}
	}
	if services.SnippetService == nil {
		services.SnippetService = &mockSnippetService{}
	}
	if services.TagService == nil {
		services.TagService = &mockTagService{}
	}
	if verifier == nil {
		verifier = &mockVerifier{}
	}
	return NewHandler(services, verifier, logger.Nop())
}

// ─────────────────────────── identity ───────────────────────────

type mockVerifier struct {
	verifyFn func(ctx context.Context, token string) (models.Principal, error)
}

func (m *mockVerifier) Verify(ctx context.Context, token string) (models.Principal, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, token)
	}
	return models.Principal{SubjectID: "sub-1", Email: "sub1@example.com"}, nil
}

type mockIdentityService struct {
	provisionFn     func(ctx context.Context, principal models.Principal) (models.User, error)
	getByIDFn       func(ctx context.Context, id string) (models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (models.User, error)
	updateProfileFn func(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
}

func (m *mockIdentityService) ProvisionUser(ctx context.Context, principal models.Principal) (models.User, error) {
	if m.provisionFn != nil {
		return m.provisionFn(ctx, principal)
	}
	return models.User{ID: principal.SubjectID, Email: principal.Email}, nil
}

func (m *mockIdentityService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.User{ID: id}, nil
}

func (m *mockIdentityService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return models.User{Username: username}, nil
}

func (m *mockIdentityService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, update)
	}
	return models.User{ID: userID}, nil
}

// ─────────────────────────── entries ───────────────────────────

type mockEntryService struct {
	createFn           func(ctx context.Context, userID string, input models.EntryInput) (models.Entry, error)
	getFn              func(ctx context.Context, id, callerID string) (models.Entry, error)
	listPublicFn       func(ctx context.Context, page, limit int) ([]models.Entry, int64, error)
	searchPublicFn     func(ctx context.Context, query string, page, limit int) ([]models.Entry, int64, error)
	listPublicByUserFn func(ctx context.Context, userID string, page, limit int) ([]models.Entry, int64, error)
	listMineFn         func(ctx context.Context, userID string, filter models.EntryFilter) ([]models.Entry, int64, error)
	updateFn           func(ctx context.Context, id, callerID string, update models.EntryUpdate) (models.Entry, error)
	deleteFn           func(ctx context.Context, id, callerID string) error
	summarizeFn        func(ctx context.Context, id, callerID string) (models.Entry, error)
}

func (m *mockEntryService) Create(ctx context.Context, userID string, input models.EntryInput) (models.Entry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, input)
	}
	return models.Entry{UserID: userID, Title: input.Title}, nil
}

func (m *mockEntryService) Get(ctx context.Context, id, callerID string) (models.Entry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id, callerID)
	}
	return models.Entry{ID: id}, nil
}

func (m *mockEntryService) ListPublic(ctx context.Context, page, limit int) ([]models.Entry, int64, error) {
	if m.listPublicFn != nil {
		return m.listPublicFn(ctx, page, limit)
	}
	return []models.Entry{}, 0, nil
}

func (m *mockEntryService) SearchPublic(ctx context.Context, query string, page, limit int) ([]models.Entry, int64, error) {
	if m.searchPublicFn != nil {
		return m.searchPublicFn(ctx, query, page, limit)
	}
	return []models.Entry{}, 0, nil
}

func (m *mockEntryService) ListPublicByUser(ctx context.Context, userID string, page, limit int) ([]models.Entry, int64, error) {
	if m.listPublicByUserFn != nil {
		return m.listPublicByUserFn(ctx, userID, page, limit)
	}
	return []models.Entry{}, 0, nil
}

func (m *mockEntryService) ListMine(ctx context.Context, userID string, filter models.EntryFilter) ([]models.Entry, int64, error) {
	if m.listMineFn != nil {
		return m.listMineFn(ctx, userID, filter)
	}
	return []models.Entry{}, 0, nil
}

func (m *mockEntryService) Update(ctx context.Context, id, callerID string, update models.EntryUpdate) (models.Entry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, callerID, update)
	}
	return models.Entry{ID: id}, nil
}

func (m *mockEntryService) Delete(ctx context.Context, id, callerID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, callerID)
	}
	return nil
}

func (m *mockEntryService) Summarize(ctx context.Context, id, callerID string) (models.Entry, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(ctx, id, callerID)
	}
	return models.Entry{ID: id}, nil
}

// ─────────────────────────── snippets ───────────────────────────

type mockSnippetService struct {
	createFn     func(ctx context.Context, userID string, input models.SnippetInput) (models.Snippet, error)
	getFn        func(ctx context.Context, id, callerID string) (models.Snippet, error)
	listPublicFn func(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error)
	listMineFn   func(ctx context.Context, userID string, page, limit int) ([]models.Snippet, int64, error)
	updateFn     func(ctx context.Context, id, callerID string, update models.SnippetUpdate) (models.Snippet, error)
	deleteFn     func(ctx context.Context, id, callerID string) error
}

func (m *mockSnippetService) Create(ctx context.Context, userID string, input models.SnippetInput) (models.Snippet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, input)
	}
	return models.Snippet{UserID: userID, Title: input.Title}, nil
}

func (m *mockSnippetService) Get(ctx context.Context, id, callerID string) (models.Snippet, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id, callerID)
	}
	return models.Snippet{ID: id}, nil
}

func (m *mockSnippetService) ListPublic(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error) {
	if m.listPublicFn != nil {
		return m.listPublicFn(ctx, filter)
	}
	return []models.Snippet{}, 0, nil
}

func (m *mockSnippetService) ListMine(ctx context.Context, userID string, page, limit int) ([]models.Snippet, int64, error) {
	if m.listMineFn != nil {
		return m.listMineFn(ctx, userID, page, limit)
	}
	return []models.Snippet{}, 0, nil
}

func (m *mockSnippetService) Update(ctx context.Context, id, callerID string, update models.SnippetUpdate) (models.Snippet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, callerID, update)
	}
	return models.Snippet{ID: id}, nil
}

func (m *mockSnippetService) Delete(ctx context.Context, id, callerID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, callerID)
	}
	return nil
}

// ─────────────────────────── tags ───────────────────────────

type mockTagService struct {
	createTagFn   func(ctx context.Context, name string) (models.Tag, error)
	getTagFn      func(ctx context.Context, name string) (models.Tag, error)
	listTagsFn    func(ctx context.Context) ([]models.Tag, error)
	popularTagsFn func(ctx context.Context, limit int) ([]models.TagWithCount, error)
	searchTagsFn  func(ctx context.Context, query string, limit int) ([]models.Tag, error)
	deleteTagFn   func(ctx context.Context, name string) error
	tagEntriesFn  func(ctx context.Context, name string, page, limit int) ([]models.Entry, int64, error)
	addFn         func(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error)
	removeFn      func(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error)
	replaceFn     func(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error)
}

func (m *mockTagService) CreateTag(ctx context.Context, name string) (models.Tag, error) {
	if m.createTagFn != nil {
		return m.createTagFn(ctx, name)
	}
	return models.Tag{Name: name}, nil
}

func (m *mockTagService) GetTag(ctx context.Context, name string) (models.Tag, error) {
	if m.getTagFn != nil {
		return m.getTagFn(ctx, name)
	}
	return models.Tag{Name: name}, nil
}

func (m *mockTagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	if m.listTagsFn != nil {
		return m.listTagsFn(ctx)
	}
	return []models.Tag{}, nil
}

func (m *mockTagService) PopularTags(ctx context.Context, limit int) ([]models.TagWithCount, error) {
	if m.popularTagsFn != nil {
		return m.popularTagsFn(ctx, limit)
	}
	return []models.TagWithCount{}, nil
}

func (m *mockTagService) SearchTags(ctx context.Context, query string, limit int) ([]models.Tag, error) {
	if m.searchTagsFn != nil {
		return m.searchTagsFn(ctx, query, limit)
	}
	return []models.Tag{}, nil
}

func (m *mockTagService) DeleteTag(ctx context.Context, name string) error {
	if m.deleteTagFn != nil {
		return m.deleteTagFn(ctx, name)
	}
	return nil
}

func (m *mockTagService) TagEntries(ctx context.Context, name string, page, limit int) ([]models.Entry, int64, error) {
	if m.tagEntriesFn != nil {
		return m.tagEntriesFn(ctx, name, page, limit)
	}
	return []models.Entry{}, 0, nil
}

func (m *mockTagService) AddTagsToEntry(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error) {
	if m.addFn != nil {
		return m.addFn(ctx, entryID, callerID, names)
	}
	return models.Entry{ID: entryID}, nil
}

func (m *mockTagService) RemoveTagsFromEntry(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error) {
	if m.removeFn != nil {
		return m.removeFn(ctx, entryID, callerID, names)
	}
	return models.Entry{ID: entryID}, nil
}

func (m *mockTagService) ReplaceEntryTags(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, entryID, callerID, names)
	}
	return models.Entry{ID: entryID}, nil
}
