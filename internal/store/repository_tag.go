package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"devjournal/internal/logger"
	"devjournal/models"

	"github.com/google/uuid"
)

// tagRepository is the SQL-backed implementation of [TagRepository].
// It manages the global "tags" table and the "entry_tags" relation.
//
// Tag names arrive already normalized (lowercased, trimmed); the
// repository never rewrites them.
type tagRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertTag returns the tag with the given name, creating it if it does
// not exist yet.
//
// A concurrent create of the same name raises a unique violation on the
// insert; the loser of that race re-fetches the winning row, so both
// callers observe the same tag.
func (r *tagRepository) UpsertTag(ctx context.Context, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	tag, err := r.FindTagByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, ErrTagNotFound) {
		return models.Tag{}, err
	}

	tag = models.Tag{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	_, err = r.db.ExecContext(ctx, insertTag, tag.ID, tag.Name, tag.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return r.FindTagByName(ctx, name)
		}

		log.Err(err).Str("func", "*tagRepository.UpsertTag").Str("tag", name).Msg("error: inserting tag")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return tag, nil
}

// FindTagByName retrieves a tag by its exact stored name.
// Returns [ErrTagNotFound] when no row matches.
func (r *tagRepository) FindTagByName(ctx context.Context, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var tag models.Tag
	row := r.db.QueryRowContext(ctx, findTagByName, name)

	if err := row.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrTagNotFound
		}

		log.Err(err).Str("func", "*tagRepository.FindTagByName").Str("tag", name).Msg("error: scanning tag row")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tag, nil
}

// FindTagsByNames retrieves every tag whose name is in names. Missing
// names are simply absent from the result; an empty input returns an
// empty slice without touching the database.
func (r *tagRepository) FindTagsByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	if len(names) == 0 {
		return []models.Tag{}, nil
	}

	query, args, err := buildFindTagsByNamesQuery(names)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.FindTagsByNames").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.FindTagsByNames").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectTags(rows)
}

// ListTags returns all tags ordered by name.
func (r *tagRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTags)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListTags").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectTags(rows)
}

// PopularTags returns up to limit tags ordered by how many entries
// reference them, most used first. Unused tags count as zero and sort
// last (alphabetically among equals).
func (r *tagRepository) PopularTags(ctx context.Context, limit int) ([]models.TagWithCount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, popularTags, limit)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.PopularTags").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.TagWithCount, 0, limit)
	for rows.Next() {
		var tag models.TagWithCount
		if scanErr := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &tag.EntryCount); scanErr != nil {
			log.Err(scanErr).Str("func", "*tagRepository.PopularTags").Msg("failed to scan tag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tags = append(tags, tag)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*tagRepository.PopularTags").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tags, nil
}

// SearchTags returns up to limit tags whose name starts with prefix,
// ordered by name.
func (r *tagRepository) SearchTags(ctx context.Context, prefix string, limit int) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, searchTags, prefix+"%", limit)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.SearchTags").Str("prefix", prefix).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectTags(rows)
}

// DeleteTagByName removes a tag and, through ON DELETE CASCADE, all of
// its entry links. Zero rows affected collapses to [ErrTagNotFound].
func (r *tagRepository) DeleteTagByName(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTagByName, name)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.DeleteTagByName").Str("tag", name).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.DeleteTagByName").Str("tag", name).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	return nil
}

// ListEntryTags returns the tags attached to an entry, ordered by name.
func (r *tagRepository) ListEntryTags(ctx context.Context, entryID string) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listEntryTags, entryID)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListEntryTags").Str("entry_id", entryID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectTags(rows)
}

// AttachTags links every tag id to the entry inside a single transaction.
// Links that already exist are skipped via ON CONFLICT DO NOTHING, so the
// operation is idempotent.
func (r *tagRepository) AttachTags(ctx context.Context, entryID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.AttachTags").Str("entry_id", entryID).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := attachTagsTx(ctx, tx, entryID, tagIDs); err != nil {
		log.Err(err).Str("func", "*tagRepository.AttachTags").Str("entry_id", entryID).Msg("failed to attach tags")
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*tagRepository.AttachTags").Str("entry_id", entryID).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// DetachTags removes the links between the entry and the given tag ids.
// Links that do not exist are ignored; the tags themselves are kept.
func (r *tagRepository) DetachTags(ctx context.Context, entryID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildDetachTagsQuery(entryID, tagIDs)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.DetachTags").Str("entry_id", entryID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tagRepository.DetachTags").Str("entry_id", entryID).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ReplaceEntryTags swaps the entry's tag set for exactly the given tag
// ids inside one transaction. An empty set clears all links.
func (r *tagRepository) ReplaceEntryTags(ctx context.Context, entryID string, tagIDs []string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ReplaceEntryTags").Str("entry_id", entryID).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clearEntryTags, entryID); err != nil {
		log.Err(err).Str("func", "*tagRepository.ReplaceEntryTags").Str("entry_id", entryID).Msg("failed to clear existing links")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := attachTagsTx(ctx, tx, entryID, tagIDs); err != nil {
		log.Err(err).Str("func", "*tagRepository.ReplaceEntryTags").Str("entry_id", entryID).Msg("failed to attach new links")
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*tagRepository.ReplaceEntryTags").Str("entry_id", entryID).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// ListEntriesByTag returns one page of public entries carrying the named
// tag, newest first, together with the total count before paging.
func (r *tagRepository) ListEntriesByTag(ctx context.Context, name string, page models.PageQuery) ([]models.Entry, int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listEntriesByTag, name, page.Limit, page.Offset())
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListEntriesByTag").Str("tag", name).Msg("failed to execute query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, page.Limit)
	for rows.Next() {
		var entry models.Entry
		if scanErr := scanEntry(rows.Scan, &entry); scanErr != nil {
			log.Err(scanErr).Str("func", "*tagRepository.ListEntriesByTag").Str("tag", name).Msg("failed to scan entry row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*tagRepository.ListEntriesByTag").Str("tag", name).Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countEntriesByTag, name).Scan(&total); err != nil {
		log.Err(err).Str("func", "*tagRepository.ListEntriesByTag").Str("tag", name).Msg("failed to count entries")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entries, total, nil
}

// attachTagsTx inserts one entry_tags link per tag id using a prepared
// statement reused across the loop.
func attachTagsTx(ctx context.Context, tx *sql.Tx, entryID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, attachTag)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for _, tagID := range tagIDs {
		if _, err := stmt.ExecContext(ctx, entryID, tagID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// collectTags drains rows into a slice, wrapping scan and iteration
// failures with the shared sentinel errors.
func collectTags(rows *sql.Rows) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, 10)

	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}
