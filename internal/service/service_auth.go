package service

import (
	"context"
	"errors"

	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/store"
	"github.com/contactapp/contact-api/models"
)

// authService is the concrete implementation of [AuthService]. It resolves
// opaque bearer tokens against the user table; no cryptography is involved
// because the token is nothing but a random lookup key.
type authService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate resolves a raw bearer token to the account holding it.
//
// Returns ErrUnauthorized when the token is empty or matches no account;
// storage failures other than a missed lookup are passed through wrapped so
// the boundary can distinguish an outage from a bad credential.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUnauthorized
		}

		log.Err(err).Msg("token lookup failed")
		return models.User{}, err
	}

	return user, nil
}
