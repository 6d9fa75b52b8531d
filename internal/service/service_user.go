package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/contactapp/contact-api/internal/config"
	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/store"
	"github.com/contactapp/contact-api/internal/utils"
	"github.com/contactapp/contact-api/internal/validators"
	"github.com/contactapp/contact-api/models"
)

// userService is the concrete implementation of [UserService]. It handles
// account registration, credential verification, opaque token lifecycle, and
// profile updates using a UserRepository for persistence and bcrypt for
// password hashing.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing passwords at
	// registration and on password change.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository
// and populated with hashing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the payload, hashes the password with bcrypt, and delegates
// persistence to the UserRepository. The response carries only public
// fields; the password hash never leaves the service.
//
// Returns:
//   - A *validators.ValidationError if a field is missing or oversized.
//   - store.ErrUsernameTaken (wrapped) if the username is already registered.
//   - A wrapped storage error if the repository call fails.
func (s *userService) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateRegisterUser(req); err != nil {
		log.Error().Str("username", req.Username).Err(err).Msg("invalid registration payload")
		return models.UserResponse{}, err
	}

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.UserResponse{}, err
	}

	user := models.User{
		Username: req.Username,
		Password: hash,
		Name:     req.Name,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created.PublicUser(), nil
}

// Login authenticates an existing user and rotates their opaque token.
//
// It validates the payload, looks up the account by username, and verifies
// the password against the stored bcrypt hash. On success a fresh random
// token is generated and persisted, replacing any previous session.
//
// Returns:
//   - A *validators.ValidationError on malformed input.
//   - ErrInvalidCredentials for both an unknown username and a wrong
//     password; the caller can never tell which field failed.
//   - A wrapped storage error if a repository call fails.
func (s *userService) Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateLoginUser(req); err != nil {
		log.Error().Str("username", req.Username).Err(err).Msg("invalid login payload")
		return models.TokenResponse{}, err
	}

	user, err := s.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.TokenResponse{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.TokenResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		log.Error().Str("username", req.Username).Msg("wrong password")
		return models.TokenResponse{}, ErrInvalidCredentials
	}

	token := utils.NewToken()
	err = s.userRepository.UpdateUserToken(ctx, user.Username, sql.NullString{String: token, Valid: true})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("token persistence failed")
		return models.TokenResponse{}, fmt.Errorf("token persistence failed: %w", err)
	}

	return models.TokenResponse{Token: token}, nil
}

// Current returns the public projection of the already-authenticated user.
// The middleware has resolved the account, so no further lookup is needed.
func (s *userService) Current(ctx context.Context, user models.User) models.UserResponse {
	return user.PublicUser()
}

// Update applies a profile change to the authenticated user. A supplied
// password is re-hashed before storage so that the old plaintext no longer
// verifies.
//
// Returns a *validators.ValidationError when neither field is present or a
// field is oversized, otherwise the outcome of the repository update.
func (s *userService) Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateUpdateUser(req); err != nil {
		log.Error().Str("username", user.Username).Err(err).Msg("invalid update payload")
		return models.UserResponse{}, err
	}

	change := models.User{
		Username: user.Username,
		Name:     req.Name,
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password, s.bcryptCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.UserResponse{}, err
		}
		change.Password = hash
	}

	updated, err := s.userRepository.UpdateUser(ctx, change)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user update ended with error")
		return models.UserResponse{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated.PublicUser(), nil
}

// Logout clears the user's opaque token. The presented credential becomes
// unusable immediately; a subsequent request with it is unauthorized.
func (s *userService) Logout(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.UpdateUserToken(ctx, user.Username, sql.NullString{}); err != nil {
		log.Err(err).Str("username", user.Username).Msg("token clearing failed")
		return fmt.Errorf("token clearing failed: %w", err)
	}

	return nil
}
