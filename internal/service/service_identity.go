package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"devjournal/internal/logger"
	"devjournal/internal/store"
	"devjournal/models"
)

const (
	minUsernameLen        = 3
	maxUsernameBaseLen    = 20
	usernameSuffixRetries = 100
	fallbackUsernameBase  = "user"
)

var (
	usernameCharsRe     = regexp.MustCompile(`[^a-z0-9_]`)
	candidateUsernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)
)

// identityService is the concrete implementation of [IdentityService].
// It owns just-in-time provisioning: the first authenticated request of
// a principal creates the matching local account, later requests reuse
// it.
type identityService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewIdentityService constructs an [IdentityService] wired to the given
// UserRepository.
func NewIdentityService(userRepository store.UserRepository, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ProvisionUser resolves a verified principal to a local account.
//
// Resolution order: lookup by subject id, then by email (which adopts
// accounts created under a previous provider identity), then creation
// with a generated unique username. A concurrent first request for the
// same principal loses the insert race on a unique column and resolves
// by re-fetching the winner, so both requests observe one account.
func (s *identityService) ProvisionUser(ctx context.Context, principal models.Principal) (models.User, error) {
	log := logger.FromContext(ctx)

	if principal.SubjectID == "" {
		return models.User{}, invalid("principal", "has no subject id")
	}

	user, err := s.userRepository.FindUserByID(ctx, principal.SubjectID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("looking up user by subject: %w", err)
	}

	if principal.Email == "" {
		log.Error().Str("subject", principal.SubjectID).Msg("cannot provision principal without email")
		return models.User{}, ErrPrincipalMissingEmail
	}

	user, err = s.userRepository.FindUserByEmail(ctx, principal.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("looking up user by email: %w", err)
	}

	return s.createUser(ctx, principal)
}

// GetUserByID returns the account with the given id.
func (s *identityService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	if id == "" {
		return models.User{}, invalid("id", "must not be empty")
	}
	return s.userRepository.FindUserByID(ctx, id)
}

// GetUserByUsername returns the account with the given username.
func (s *identityService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	if username == "" {
		return models.User{}, invalid("username", "must not be empty")
	}
	return s.userRepository.FindUserByUsername(ctx, username)
}

// UpdateProfile validates and applies a partial profile update.
func (s *identityService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	if err := validateProfileUpdate(update); err != nil {
		return models.User{}, err
	}
	return s.userRepository.UpdateProfile(ctx, userID, update)
}

func (s *identityService) createUser(ctx context.Context, principal models.Principal) (models.User, error) {
	log := logger.FromContext(ctx)

	username, err := s.generateUsername(ctx, principal)
	if err != nil {
		return models.User{}, err
	}

	name := principal.Name
	if name == "" {
		name = username
	}

	user := models.User{
		ID:       principal.SubjectID,
		Email:    principal.Email,
		Username: username,
		Name:     name,
	}
	if principal.AvatarURL != "" {
		avatar := principal.AvatarURL
		user.Avatar = &avatar
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err == nil {
		log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("provisioned new user")
		return created, nil
	}
	if !errors.Is(err, store.ErrUserAlreadyExists) {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	// lost the provisioning race; the winner's row must exist now
	user, refetchErr := s.userRepository.FindUserByID(ctx, principal.SubjectID)
	if refetchErr == nil {
		return user, nil
	}
	user, refetchErr = s.userRepository.FindUserByEmail(ctx, principal.Email)
	if refetchErr == nil {
		return user, nil
	}

	return models.User{}, fmt.Errorf("creating user: %w", err)
}

// generateUsername picks a unique username for a new account. A
// well-formed principal-supplied username is kept verbatim, case
// included, when it is still free. Otherwise a base is derived from the
// email local part and collisions are resolved with random numeric
// suffixes; after too many misses a timestamp suffix guarantees
// uniqueness.
func (s *identityService) generateUsername(ctx context.Context, principal models.Principal) (string, error) {
	if candidateUsernameRe.MatchString(principal.Username) {
		available, err := s.usernameAvailable(ctx, principal.Username)
		if err != nil {
			return "", err
		}
		if available {
			return principal.Username, nil
		}
	}

	local, _, _ := strings.Cut(principal.Email, "@")
	base := sanitizeUsername(local)
	if len(base) < minUsernameLen {
		base = fallbackUsernameBase
	}

	available, err := s.usernameAvailable(ctx, base)
	if err != nil {
		return "", err
	}
	if available {
		return base, nil
	}

	for i := 0; i < usernameSuffixRetries; i++ {
		candidate := fmt.Sprintf("%s%04d", base, rand.Intn(10000))
		available, err = s.usernameAvailable(ctx, candidate)
		if err != nil {
			return "", err
		}
		if available {
			return candidate, nil
		}
	}

	return fmt.Sprintf("%s%d", base, time.Now().Unix()), nil
}

func (s *identityService) usernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := s.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking username availability: %w", err)
	}
	return false, nil
}

// sanitizeUsername lowercases the candidate, strips everything outside
// [a-z0-9_] and truncates to the base length limit.
func sanitizeUsername(candidate string) string {
	candidate = usernameCharsRe.ReplaceAllString(strings.ToLower(candidate), "")
	if len(candidate) > maxUsernameBaseLen {
		candidate = candidate[:maxUsernameBaseLen]
	}
	return candidate
}
