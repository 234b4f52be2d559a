package service

import (
	"context"
	"fmt"

	"devjournal/internal/ai"
	"devjournal/internal/logger"
	"devjournal/internal/store"
	"devjournal/models"

	"github.com/google/uuid"
)

// entryService is the concrete implementation of [EntryService]. Every
// read path funnels through the visibility gate; every write path
// checks ownership after existence.
type entryService struct {
	entryRepository   store.EntryRepository
	snippetRepository store.SnippetRepository
	tagRepository     store.TagRepository
	summarizer        ai.Summarizer
	logger            *logger.Logger
}

// NewEntryService constructs an [EntryService].
func NewEntryService(
	entryRepository store.EntryRepository,
	snippetRepository store.SnippetRepository,
	tagRepository store.TagRepository,
	summarizer ai.Summarizer,
	logger *logger.Logger,
) EntryService {
	return &entryService{
		entryRepository:   entryRepository,
		snippetRepository: snippetRepository,
		tagRepository:     tagRepository,
		summarizer:        summarizer,
		logger:            logger,
	}
}

// Create validates the input and persists a new entry for userID.
// Entries are private unless the caller asks otherwise.
func (s *entryService) Create(ctx context.Context, userID string, input models.EntryInput) (models.Entry, error) {
	if err := validateEntryInput(input); err != nil {
		return models.Entry{}, err
	}

	entry := models.Entry{
		ID:      uuid.NewString(),
		Title:   input.Title,
		Content: input.Content,
		Summary: input.Summary,
		UserID:  userID,
	}
	if input.IsPublic != nil {
		entry.IsPublic = *input.IsPublic
	}

	created, err := s.entryRepository.CreateEntry(ctx, entry)
	if err != nil {
		return models.Entry{}, fmt.Errorf("creating entry: %w", err)
	}
	created.Tags = []models.Tag{}
	created.Snippets = []models.Snippet{}

	return created, nil
}

// Get returns one entry with its tags and linked snippets. The owner
// sees all linked snippets; everyone else sees only public ones.
func (s *entryService) Get(ctx context.Context, id, callerID string) (models.Entry, error) {
	entry, err := s.entryRepository.FindEntryByID(ctx, id)
	if err != nil {
		return models.Entry{}, err
	}
	if err := canRead(entry, callerID, store.ErrEntryNotFound); err != nil {
		return models.Entry{}, err
	}

	return s.loadAssociations(ctx, entry, callerID != entry.UserID)
}

// ListPublic returns one page of public entries, newest first.
func (s *entryService) ListPublic(ctx context.Context, page, limit int) ([]models.Entry, int64, error) {
	isPublic := true
	return s.list(ctx, models.EntryFilter{IsPublic: &isPublic, Page: page, Limit: limit})
}

// SearchPublic returns public entries whose title or content matches
// the query, case-insensitively.
func (s *entryService) SearchPublic(ctx context.Context, query string, page, limit int) ([]models.Entry, int64, error) {
	if query == "" {
		return nil, 0, invalid("q", "must not be empty")
	}

	isPublic := true
	return s.list(ctx, models.EntryFilter{IsPublic: &isPublic, Search: query, Page: page, Limit: limit})
}

// ListPublicByUser returns the public entries of one author.
func (s *entryService) ListPublicByUser(ctx context.Context, userID string, page, limit int) ([]models.Entry, int64, error) {
	isPublic := true
	return s.list(ctx, models.EntryFilter{UserID: userID, IsPublic: &isPublic, Page: page, Limit: limit})
}

// ListMine returns the caller's entries, private included, optionally
// narrowed by visibility and a title/content search.
func (s *entryService) ListMine(ctx context.Context, userID string, filter models.EntryFilter) ([]models.Entry, int64, error) {
	filter.UserID = userID
	return s.list(ctx, filter)
}

// Update applies a partial update to an entry the caller owns.
func (s *entryService) Update(ctx context.Context, id, callerID string, update models.EntryUpdate) (models.Entry, error) {
	if err := validateEntryUpdate(update); err != nil {
		return models.Entry{}, err
	}

	entry, err := s.entryRepository.FindEntryByID(ctx, id)
	if err != nil {
		return models.Entry{}, err
	}
	if err := canWrite(entry, callerID); err != nil {
		return models.Entry{}, err
	}

	updated, err := s.entryRepository.UpdateEntry(ctx, id, callerID, update)
	if err != nil {
		return models.Entry{}, err
	}

	return s.loadAssociations(ctx, updated, false)
}

// Delete removes an entry the caller owns.
func (s *entryService) Delete(ctx context.Context, id, callerID string) error {
	entry, err := s.entryRepository.FindEntryByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canWrite(entry, callerID); err != nil {
		return err
	}

	return s.entryRepository.DeleteEntry(ctx, id, callerID)
}

// Summarize generates an AI summary of the entry's content and stores
// it on the entry. Only the owner may trigger summarization, since it
// mutates the entry.
func (s *entryService) Summarize(ctx context.Context, id, callerID string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry, err := s.entryRepository.FindEntryByID(ctx, id)
	if err != nil {
		return models.Entry{}, err
	}
	if err := canWrite(entry, callerID); err != nil {
		return models.Entry{}, err
	}

	summary, err := s.summarizer.Summarize(ctx, entry.Content)
	if err != nil {
		log.Err(err).Str("entry_id", id).Msg("summarization failed")
		return models.Entry{}, fmt.Errorf("summarizing entry: %w", err)
	}

	if err := s.entryRepository.SetSummary(ctx, id, callerID, summary); err != nil {
		return models.Entry{}, err
	}
	entry.Summary = &summary

	return s.loadAssociations(ctx, entry, false)
}

// list runs a filtered listing and attaches tags to every returned
// entry.
func (s *entryService) list(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int64, error) {
	entries, total, err := s.entryRepository.ListEntries(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if err := s.attachTags(ctx, entries); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (s *entryService) attachTags(ctx context.Context, entries []models.Entry) error {
	for i := range entries {
		tags, err := s.tagRepository.ListEntryTags(ctx, entries[i].ID)
		if err != nil {
			return fmt.Errorf("loading entry tags: %w", err)
		}
		entries[i].Tags = tags
		// listings never embed snippets, but both collections still
		// serialize as arrays
		entries[i].Snippets = []models.Snippet{}
	}
	return nil
}

// loadAssociations fills in the entry's tags and linked snippets.
// publicOnly hides private snippets from callers other than the owner.
func (s *entryService) loadAssociations(ctx context.Context, entry models.Entry, publicOnly bool) (models.Entry, error) {
	var err error
	entry.Tags, err = s.tagRepository.ListEntryTags(ctx, entry.ID)
	if err != nil {
		return models.Entry{}, fmt.Errorf("loading entry tags: %w", err)
	}

	entry.Snippets, err = s.snippetRepository.ListSnippetsByEntry(ctx, entry.ID, publicOnly)
	if err != nil {
		return models.Entry{}, fmt.Errorf("loading entry snippets: %w", err)
	}

	return entry, nil
}
