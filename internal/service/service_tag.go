package service

import (
	"context"
	"fmt"

	"devjournal/internal/logger"
	"devjournal/internal/store"
	"devjournal/models"
)

// Default and maximum result counts for the tag listings that do not
// use the shared pagination envelope.
const (
	defaultPopularTagsLimit = 20
	defaultSearchTagsLimit  = 10
	maxTagsLimit            = 50
)

// tagService is the concrete implementation of [TagService]. Tags are
// global and unowned; only the entry-scoped association operations need
// ownership checks, and those apply to the entry, not the tag.
type tagService struct {
	tagRepository     store.TagRepository
	entryRepository   store.EntryRepository
	snippetRepository store.SnippetRepository
	logger            *logger.Logger
}

// NewTagService constructs a [TagService].
func NewTagService(
	tagRepository store.TagRepository,
	entryRepository store.EntryRepository,
	snippetRepository store.SnippetRepository,
	logger *logger.Logger,
) TagService {
	return &tagService{
		tagRepository:     tagRepository,
		entryRepository:   entryRepository,
		snippetRepository: snippetRepository,
		logger:            logger,
	}
}

// CreateTag normalizes the name and returns the matching tag, creating
// it when necessary. Creating an existing tag is not an error.
func (s *tagService) CreateTag(ctx context.Context, name string) (models.Tag, error) {
	normalized, err := normalizeTagNames([]string{name})
	if err != nil {
		return models.Tag{}, err
	}
	if len(normalized) == 0 {
		return models.Tag{}, invalid("name", "must not be empty")
	}

	return s.tagRepository.UpsertTag(ctx, normalized[0])
}

// GetTag returns the tag with the given (normalized) name.
func (s *tagService) GetTag(ctx context.Context, name string) (models.Tag, error) {
	normalized, err := normalizeTagNames([]string{name})
	if err != nil {
		return models.Tag{}, err
	}
	if len(normalized) == 0 {
		return models.Tag{}, invalid("name", "must not be empty")
	}

	return s.tagRepository.FindTagByName(ctx, normalized[0])
}

// ListTags returns the whole tag catalogue ordered by name.
func (s *tagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepository.ListTags(ctx)
}

// PopularTags returns the most used tags with their entry counts.
func (s *tagService) PopularTags(ctx context.Context, limit int) ([]models.TagWithCount, error) {
	if limit < 1 {
		limit = defaultPopularTagsLimit
	}
	if limit > maxTagsLimit {
		limit = maxTagsLimit
	}

	return s.tagRepository.PopularTags(ctx, limit)
}

// SearchTags returns tags whose name starts with the query.
func (s *tagService) SearchTags(ctx context.Context, query string, limit int) ([]models.Tag, error) {
	normalized, err := normalizeTagNames([]string{query})
	if err != nil {
		return nil, err
	}
	if len(normalized) == 0 {
		return nil, invalid("q", "must not be empty")
	}

	if limit < 1 {
		limit = defaultSearchTagsLimit
	}
	if limit > maxTagsLimit {
		limit = maxTagsLimit
	}

	return s.tagRepository.SearchTags(ctx, normalized[0], limit)
}

// DeleteTag removes a tag globally, detaching it from every entry.
func (s *tagService) DeleteTag(ctx context.Context, name string) error {
	normalized, err := normalizeTagNames([]string{name})
	if err != nil {
		return err
	}
	if len(normalized) == 0 {
		return invalid("name", "must not be empty")
	}

	return s.tagRepository.DeleteTagByName(ctx, normalized[0])
}

// TagEntries returns one page of public entries carrying the tag.
// A missing tag is reported as such rather than as an empty listing.
func (s *tagService) TagEntries(ctx context.Context, name string, page, limit int) ([]models.Entry, int64, error) {
	normalized, err := normalizeTagNames([]string{name})
	if err != nil {
		return nil, 0, err
	}
	if len(normalized) == 0 {
		return nil, 0, invalid("name", "must not be empty")
	}

	if _, err := s.tagRepository.FindTagByName(ctx, normalized[0]); err != nil {
		return nil, 0, err
	}

	entries, total, err := s.tagRepository.ListEntriesByTag(ctx, normalized[0], models.NormalizePage(page, limit))
	if err != nil {
		return nil, 0, err
	}

	for i := range entries {
		entries[i].Tags, err = s.tagRepository.ListEntryTags(ctx, entries[i].ID)
		if err != nil {
			return nil, 0, fmt.Errorf("loading entry tags: %w", err)
		}
		entries[i].Snippets = []models.Snippet{}
	}

	return entries, total, nil
}

// AddTagsToEntry attaches the named tags to an entry the caller owns,
// creating unknown tags on the fly. Already attached tags are kept.
func (s *tagService) AddTagsToEntry(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error) {
	entry, err := s.ownedEntry(ctx, entryID, callerID)
	if err != nil {
		return models.Entry{}, err
	}

	normalized, err := normalizeTagNames(names)
	if err != nil {
		return models.Entry{}, err
	}
	if len(normalized) == 0 {
		return models.Entry{}, invalid("tags", "must contain at least one tag")
	}

	tagIDs := make([]string, 0, len(normalized))
	for _, name := range normalized {
		tag, err := s.tagRepository.UpsertTag(ctx, name)
		if err != nil {
			return models.Entry{}, fmt.Errorf("resolving tag %q: %w", name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	if err := s.tagRepository.AttachTags(ctx, entryID, tagIDs); err != nil {
		return models.Entry{}, err
	}

	return s.withTags(ctx, entry)
}

// RemoveTagsFromEntry detaches the named tags from an entry the caller
// owns. Names that are unknown or not attached are ignored; the tags
// themselves survive for other entries.
func (s *tagService) RemoveTagsFromEntry(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error) {
	entry, err := s.ownedEntry(ctx, entryID, callerID)
	if err != nil {
		return models.Entry{}, err
	}

	normalized, err := normalizeTagNames(names)
	if err != nil {
		return models.Entry{}, err
	}
	if len(normalized) == 0 {
		return models.Entry{}, invalid("tags", "must contain at least one tag")
	}

	tags, err := s.tagRepository.FindTagsByNames(ctx, normalized)
	if err != nil {
		return models.Entry{}, err
	}

	tagIDs := make([]string, 0, len(tags))
	for _, tag := range tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	if err := s.tagRepository.DetachTags(ctx, entryID, tagIDs); err != nil {
		return models.Entry{}, err
	}

	return s.withTags(ctx, entry)
}

// ReplaceEntryTags swaps the full tag set of an entry the caller owns.
// An empty list is allowed and clears every tag.
func (s *tagService) ReplaceEntryTags(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error) {
	entry, err := s.ownedEntry(ctx, entryID, callerID)
	if err != nil {
		return models.Entry{}, err
	}

	normalized, err := normalizeTagNames(names)
	if err != nil {
		return models.Entry{}, err
	}

	tagIDs := make([]string, 0, len(normalized))
	for _, name := range normalized {
		tag, err := s.tagRepository.UpsertTag(ctx, name)
		if err != nil {
			return models.Entry{}, fmt.Errorf("resolving tag %q: %w", name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	if err := s.tagRepository.ReplaceEntryTags(ctx, entryID, tagIDs); err != nil {
		return models.Entry{}, err
	}

	return s.withTags(ctx, entry)
}

func (s *tagService) ownedEntry(ctx context.Context, entryID, callerID string) (models.Entry, error) {
	entry, err := s.entryRepository.FindEntryByID(ctx, entryID)
	if err != nil {
		return models.Entry{}, err
	}
	if err := canWrite(entry, callerID); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// withTags reloads the entry's tag list after a mutation and fills in
// the owner's linked snippets, so the response carries both collections
// as arrays.
func (s *tagService) withTags(ctx context.Context, entry models.Entry) (models.Entry, error) {
	tags, err := s.tagRepository.ListEntryTags(ctx, entry.ID)
	if err != nil {
		return models.Entry{}, fmt.Errorf("loading entry tags: %w", err)
	}
	entry.Tags = tags

	entry.Snippets, err = s.snippetRepository.ListSnippetsByEntry(ctx, entry.ID, false)
	if err != nil {
		return models.Entry{}, fmt.Errorf("loading entry snippets: %w", err)
	}

	return entry, nil
}
