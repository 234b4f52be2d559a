package service

import (
	"context"
	"fmt"

	"devjournal/internal/logger"
	"devjournal/internal/store"
	"devjournal/models"

	"github.com/google/uuid"
)

// snippetService is the concrete implementation of [SnippetService].
type snippetService struct {
	snippetRepository store.SnippetRepository
	entryRepository   store.EntryRepository
	logger            *logger.Logger
}

// NewSnippetService constructs a [SnippetService]. The entry repository
// is needed to validate ownership of the optional entry link.
func NewSnippetService(
	snippetRepository store.SnippetRepository,
	entryRepository store.EntryRepository,
	logger *logger.Logger,
) SnippetService {
	return &snippetService{
		snippetRepository: snippetRepository,
		entryRepository:   entryRepository,
		logger:            logger,
	}
}

// Create validates the input and persists a new snippet for userID.
// Linking to an entry requires that the entry exists and belongs to the
// same user; linking to someone else's entry fails with a permission
// error rather than a silent downgrade.
func (s *snippetService) Create(ctx context.Context, userID string, input models.SnippetInput) (models.Snippet, error) {
	if err := validateSnippetInput(input); err != nil {
		return models.Snippet{}, err
	}

	if err := s.checkEntryLink(ctx, userID, input.EntryID); err != nil {
		return models.Snippet{}, err
	}

	snippet := models.Snippet{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Code:        input.Code,
		Language:    input.Language,
		Description: input.Description,
		UserID:      userID,
	}
	if input.IsPublic != nil {
		snippet.IsPublic = *input.IsPublic
	}
	if input.EntryID != nil && *input.EntryID != "" {
		snippet.EntryID = input.EntryID
	}

	created, err := s.snippetRepository.CreateSnippet(ctx, snippet)
	if err != nil {
		return models.Snippet{}, fmt.Errorf("creating snippet: %w", err)
	}

	return created, nil
}

// Get returns one snippet when the caller may see it.
func (s *snippetService) Get(ctx context.Context, id, callerID string) (models.Snippet, error) {
	snippet, err := s.snippetRepository.FindSnippetByID(ctx, id)
	if err != nil {
		return models.Snippet{}, err
	}
	if err := canRead(snippet, callerID, store.ErrSnippetNotFound); err != nil {
		return models.Snippet{}, err
	}

	return snippet, nil
}

// ListPublic returns one page of public snippets matching the filter.
// An unsupported language filter is rejected rather than silently
// returning nothing.
func (s *snippetService) ListPublic(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error) {
	if filter.Language != "" && !models.IsSupportedLanguage(filter.Language) {
		return nil, 0, invalid("language", "is not supported")
	}

	filter.PublicOnly = true
	return s.snippetRepository.ListSnippets(ctx, filter)
}

// ListMine returns all snippets of the caller, private included.
func (s *snippetService) ListMine(ctx context.Context, userID string, page, limit int) ([]models.Snippet, int64, error) {
	return s.snippetRepository.ListSnippets(ctx, models.SnippetFilter{UserID: userID, Page: page, Limit: limit})
}

// Update applies a partial update to a snippet the caller owns.
// Re-linking to a different entry revalidates entry ownership; an empty
// entry id clears the link.
func (s *snippetService) Update(ctx context.Context, id, callerID string, update models.SnippetUpdate) (models.Snippet, error) {
	if err := validateSnippetUpdate(update); err != nil {
		return models.Snippet{}, err
	}

	snippet, err := s.snippetRepository.FindSnippetByID(ctx, id)
	if err != nil {
		return models.Snippet{}, err
	}
	if err := canWrite(snippet, callerID); err != nil {
		return models.Snippet{}, err
	}

	if err := s.checkEntryLink(ctx, callerID, update.EntryID); err != nil {
		return models.Snippet{}, err
	}

	return s.snippetRepository.UpdateSnippet(ctx, id, callerID, update)
}

// Delete removes a snippet the caller owns.
func (s *snippetService) Delete(ctx context.Context, id, callerID string) error {
	snippet, err := s.snippetRepository.FindSnippetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canWrite(snippet, callerID); err != nil {
		return err
	}

	return s.snippetRepository.DeleteSnippet(ctx, id, callerID)
}

// checkEntryLink verifies that the referenced entry exists and belongs
// to userID. A nil or empty reference is fine: the snippet is (or
// becomes) standalone.
func (s *snippetService) checkEntryLink(ctx context.Context, userID string, entryID *string) error {
	if entryID == nil || *entryID == "" {
		return nil
	}

	entry, err := s.entryRepository.FindEntryByID(ctx, *entryID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return ErrNotResourceOwner
	}

	return nil
}
