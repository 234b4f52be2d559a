package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"devjournal/internal/logger"
	"devjournal/models"
)

// entryRepository is the SQL-backed implementation of [EntryRepository].
//
// Owner-scoped mutations (update, delete, set summary) include the owner id
// in their WHERE clause. A concurrent delete between a visibility check and
// the mutation therefore matches zero rows and surfaces as
// [ErrEntryNotFound] instead of silently touching another user's row.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEntry persists a new journal entry and returns it with both
// timestamps assigned.
func (r *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, createEntry,
		entry.ID,
		entry.Title,
		entry.Content,
		entry.Summary,
		entry.IsPublic,
		entry.UserID,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Str("user_id", entry.UserID).Msg("error: inserting entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// FindEntryByID retrieves a single entry row regardless of visibility.
// Visibility filtering is the caller's concern. Returns [ErrEntryNotFound]
// when no row matches.
func (r *entryRepository) FindEntryByID(ctx context.Context, id string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	var entry models.Entry
	row := r.db.QueryRowContext(ctx, findEntryByID, id)

	err := scanEntry(row.Scan, &entry)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrEntryNotFound
		}

		log.Err(err).Str("func", "*entryRepository.FindEntryByID").Str("entry_id", id).Msg("error: scanning entry row")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// ListEntries returns one page of entries matching the filter, newest
// first, together with the total match count before paging.
func (r *entryRepository) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to create list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to execute list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, models.DefaultLimit)
	for rows.Next() {
		var entry models.Entry
		if scanErr := scanEntry(rows.Scan, &entry); scanErr != nil {
			log.Err(scanErr).Str("func", "*entryRepository.ListEntries").Msg("failed to scan entry row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*entryRepository.ListEntries").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countQuery, countArgs, err := buildCountEntriesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to create count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to count entries")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entries, total, nil
}

// UpdateEntry applies the non-nil fields of update to the entry owned by
// userID and returns the refreshed row.
//
// Zero rows affected means the entry does not exist or belongs to someone
// else; both collapse to [ErrEntryNotFound].
func (r *entryRepository) UpdateEntry(ctx context.Context, id, userID string, update models.EntryUpdate) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return r.FindEntryByID(ctx, id)
	}

	query, args, err := buildUpdateEntryQuery(id, userID, update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Str("entry_id", id).Msg("failed to create query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Str("entry_id", id).Msg("failed to execute update")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Str("entry_id", id).Msg("failed to read affected rows")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Entry{}, ErrEntryNotFound
	}

	return r.FindEntryByID(ctx, id)
}

// SetSummary stores an AI-generated summary on the entry owned by userID.
// Zero rows affected collapses to [ErrEntryNotFound].
func (r *entryRepository) SetSummary(ctx context.Context, id, userID, summary string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setEntrySummary, summary, time.Now().UTC(), id, userID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.SetSummary").Str("entry_id", id).Msg("failed to store summary")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.SetSummary").Str("entry_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// DeleteEntry removes the entry owned by userID. Tag links are removed by
// the ON DELETE CASCADE on entry_tags; linked snippets have entry_id set
// to NULL. Zero rows affected collapses to [ErrEntryNotFound].
func (r *entryRepository) DeleteEntry(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEntry, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Str("entry_id", id).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Str("entry_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// scanEntry scans the full entry column set via the provided scan
// function, which works for both *sql.Row and *sql.Rows.
func scanEntry(scan func(dest ...any) error, entry *models.Entry) error {
	return scan(
		&entry.ID,
		&entry.Title,
		&entry.Content,
		&entry.Summary,
		&entry.IsPublic,
		&entry.UserID,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}
