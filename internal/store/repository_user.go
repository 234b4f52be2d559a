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

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the populated
// [models.User] with both timestamps assigned.
//
// Error handling:
//   - Unique-constraint violation on id, email or username →
//     [ErrUserAlreadyExists]. Provisioning resolves the race by
//     re-fetching the winning row.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, createUser,
		user.ID,
		user.Email,
		user.Username,
		user.Name,
		user.Avatar,
		user.Bio,
		user.GitHubURL,
		user.LinkedinURL,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("user_id", user.ID).Msg("error: inserting user")

		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByID retrieves the user whose primary key equals id.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

// FindUserByEmail retrieves the user with the given email address.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByUsername retrieves the user with the given username.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// UpdateProfile applies the non-nil fields of update to the user row and
// returns the refreshed record.
//
// Error handling:
//   - Zero rows affected → [ErrUserNotFound].
//   - Unique-constraint violation (username collision) →
//     [ErrUserAlreadyExists].
func (r *userRepository) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return r.FindUserByID(ctx, userID)
	}

	query, args, err := buildUpdateProfileQuery(userID, update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Str("user_id", userID).Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Str("user_id", userID).Msg("failed to execute update")

		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Str("user_id", userID).Msg("failed to read affected rows")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.FindUserByID(ctx, userID)
}

// findOne runs a single-row user lookup and scans the full column set.
func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Name,
		&user.Avatar,
		&user.Bio,
		&user.GitHubURL,
		&user.LinkedinURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", funcName).Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
