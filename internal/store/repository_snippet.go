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

// snippetRepository is the SQL-backed implementation of [SnippetRepository].
// Owner-scoped mutations follow the same zero-rows-means-not-found
// convention as the entry repository.
type snippetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSnippetRepository constructs a [SnippetRepository] backed by the
// provided database connection and logger.
func NewSnippetRepository(db *DB, logger *logger.Logger) SnippetRepository {
	logger.Debug().Msg("creating snippet repository")
	return &snippetRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSnippet persists a new snippet and returns it with both timestamps
// assigned.
func (r *snippetRepository) CreateSnippet(ctx context.Context, snippet models.Snippet) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	snippet.CreatedAt = now
	snippet.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, createSnippet,
		snippet.ID,
		snippet.Title,
		snippet.Code,
		snippet.Language,
		snippet.Description,
		snippet.IsPublic,
		snippet.UserID,
		snippet.EntryID,
		snippet.CreatedAt,
		snippet.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.CreateSnippet").Str("user_id", snippet.UserID).Msg("error: inserting snippet")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return snippet, nil
}

// FindSnippetByID retrieves a single snippet row regardless of visibility.
// Returns [ErrSnippetNotFound] when no row matches.
func (r *snippetRepository) FindSnippetByID(ctx context.Context, id string) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	var snippet models.Snippet
	row := r.db.QueryRowContext(ctx, findSnippetByID, id)

	err := scanSnippet(row.Scan, &snippet)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snippet{}, ErrSnippetNotFound
		}

		log.Err(err).Str("func", "*snippetRepository.FindSnippetByID").Str("snippet_id", id).Msg("error: scanning snippet row")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return snippet, nil
}

// ListSnippets returns one page of snippets matching the filter, newest
// first, together with the total match count before paging.
func (r *snippetRepository) ListSnippets(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSnippetsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.ListSnippets").Msg("failed to create list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.ListSnippets").Msg("failed to execute list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snippets, err := collectSnippets(rows)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.ListSnippets").Msg("failed to collect snippet rows")
		return nil, 0, err
	}

	countQuery, countArgs, err := buildCountSnippetsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.ListSnippets").Msg("failed to create count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*snippetRepository.ListSnippets").Msg("failed to count snippets")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return snippets, total, nil
}

// ListSnippetsByEntry returns every snippet linked to the given entry,
// newest first. When publicOnly is set, private snippets are excluded.
func (r *snippetRepository) ListSnippetsByEntry(ctx context.Context, entryID string, publicOnly bool) ([]models.Snippet, error) {
	log := logger.FromContext(ctx)

	query := listSnippetsByEntry
	if publicOnly {
		query = listPublicSnippetsByEntry
	}

	rows, err := r.db.QueryContext(ctx, query, entryID)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.ListSnippetsByEntry").Str("entry_id", entryID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snippets, err := collectSnippets(rows)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.ListSnippetsByEntry").Str("entry_id", entryID).Msg("failed to collect snippet rows")
		return nil, err
	}

	return snippets, nil
}

// UpdateSnippet applies the non-nil fields of update to the snippet owned
// by userID and returns the refreshed row. Zero rows affected collapses to
// [ErrSnippetNotFound].
func (r *snippetRepository) UpdateSnippet(ctx context.Context, id, userID string, update models.SnippetUpdate) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return r.FindSnippetByID(ctx, id)
	}

	query, args, err := buildUpdateSnippetQuery(id, userID, update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.UpdateSnippet").Str("snippet_id", id).Msg("failed to create query")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.UpdateSnippet").Str("snippet_id", id).Msg("failed to execute update")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.UpdateSnippet").Str("snippet_id", id).Msg("failed to read affected rows")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Snippet{}, ErrSnippetNotFound
	}

	return r.FindSnippetByID(ctx, id)
}

// DeleteSnippet removes the snippet owned by userID. Zero rows affected
// collapses to [ErrSnippetNotFound].
func (r *snippetRepository) DeleteSnippet(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSnippet, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.DeleteSnippet").Str("snippet_id", id).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.DeleteSnippet").Str("snippet_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSnippetNotFound
	}

	return nil
}

// scanSnippet scans the full snippet column set via the provided scan
// function, which works for both *sql.Row and *sql.Rows.
func scanSnippet(scan func(dest ...any) error, snippet *models.Snippet) error {
	return scan(
		&snippet.ID,
		&snippet.Title,
		&snippet.Code,
		&snippet.Language,
		&snippet.Description,
		&snippet.IsPublic,
		&snippet.UserID,
		&snippet.EntryID,
		&snippet.CreatedAt,
		&snippet.UpdatedAt,
	)
}

// collectSnippets drains rows into a slice, wrapping scan and iteration
// failures with the shared sentinel errors.
func collectSnippets(rows *sql.Rows) ([]models.Snippet, error) {
	snippets := make([]models.Snippet, 0, models.DefaultLimit)

	for rows.Next() {
		var snippet models.Snippet
		if err := scanSnippet(rows.Scan, &snippet); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		snippets = append(snippets, snippet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snippets, nil
}
