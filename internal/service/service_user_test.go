package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactapp/contact-api/internal/config"
	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/store"
	"github.com/contactapp/contact-api/internal/utils"
	"github.com/contactapp/contact-api/internal/validators"
	"github.com/contactapp/contact-api/models"
)

// testApp keeps hashing fast in tests.
var testApp = config.App{BcryptCost: bcrypt.MinCost}

func TestUserService_Register(t *testing.T) {
	repo := &mockUserRepository{
		createUser: func(ctx context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "john", user.Username)
			assert.Equal(t, "John Doe", user.Name)
			assert.NotEqual(t, "secret", user.Password, "password must be stored hashed")
			assert.True(t, utils.CheckPassword(user.Password, "secret"))
			return user, nil
		},
	}
	svc := NewUserService(repo, testApp, logger.Nop())

	got, err := svc.Register(context.Background(), models.RegisterUserRequest{
		Username: "john",
		Password: "secret",
		Name:     "John Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserResponse{Username: "john", Name: "John Doe"}, got)
}

func TestUserService_Register_Invalid(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, testApp, logger.Nop())

	_, err := svc.Register(context.Background(), models.RegisterUserRequest{Username: "john"})

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		createUser: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}
	svc := NewUserService(repo, testApp, logger.Nop())

	_, err := svc.Register(context.Background(), models.RegisterUserRequest{
		Username: "john",
		Password: "secret",
		Name:     "John Doe",
	})
	require.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestUserService_Login(t *testing.T) {
	hash, err := utils.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	var storedToken sql.NullString
	repo := &mockUserRepository{
		findUserByUsername: func(ctx context.Context, username string) (models.User, error) {
			assert.Equal(t, "john", username)
			return models.User{Username: "john", Password: hash, Name: "John Doe"}, nil
		},
		updateUserToken: func(ctx context.Context, username string, token sql.NullString) error {
			assert.Equal(t, "john", username)
			storedToken = token
			return nil
		},
	}
	svc := NewUserService(repo, testApp, logger.Nop())

	got, err := svc.Login(context.Background(), models.LoginUserRequest{Username: "john", Password: "secret"})
	require.NoError(t, err)
	require.True(t, storedToken.Valid)
	assert.Equal(t, storedToken.String, got.Token)
	assert.NotEmpty(t, got.Token)
}

func TestUserService_Login_Rejected(t *testing.T) {
	hash, err := utils.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name string
		find func(ctx context.Context, username string) (models.User, error)
	}{
		{
			name: "unknown username",
			find: func(ctx context.Context, username string) (models.User, error) {
				return models.User{}, store.ErrUserNotFound
			},
		},
		{
			name: "wrong password",
			find: func(ctx context.Context, username string) (models.User, error) {
				return models.User{Username: "john", Password: hash}, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{findUserByUsername: tt.find}
			svc := NewUserService(repo, testApp, logger.Nop())

			_, err := svc.Login(context.Background(), models.LoginUserRequest{Username: "john", Password: "wrong-or-any"})
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestUserService_Current(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, testApp, logger.Nop())

	got := svc.Current(context.Background(), models.User{Username: "john", Password: "hash", Name: "John Doe"})
	assert.Equal(t, models.UserResponse{Username: "john", Name: "John Doe"}, got)
}

func TestUserService_Update(t *testing.T) {
	repo := &mockUserRepository{
		updateUser: func(ctx context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "john", user.Username)
			assert.Equal(t, "John Smith", user.Name)
			assert.Empty(t, user.Password)
			user.Password = "stored-hash"
			return user, nil
		},
	}
	svc := NewUserService(repo, testApp, logger.Nop())

	got, err := svc.Update(context.Background(), models.User{Username: "john"}, models.UpdateUserRequest{Name: "John Smith"})
	require.NoError(t, err)
	assert.Equal(t, models.UserResponse{Username: "john", Name: "John Smith"}, got)
}

func TestUserService_Update_PasswordRehashed(t *testing.T) {
	repo := &mockUserRepository{
		updateUser: func(ctx context.Context, user models.User) (models.User, error) {
			assert.NotEqual(t, "new-secret", user.Password)
			assert.True(t, utils.CheckPassword(user.Password, "new-secret"))
			return user, nil
		},
	}
	svc := NewUserService(repo, testApp, logger.Nop())

	_, err := svc.Update(context.Background(), models.User{Username: "john"}, models.UpdateUserRequest{Password: "new-secret"})
	require.NoError(t, err)
}

func TestUserService_Update_EmptyRequest(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, testApp, logger.Nop())

	_, err := svc.Update(context.Background(), models.User{Username: "john"}, models.UpdateUserRequest{})

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUserService_Logout(t *testing.T) {
	repo := &mockUserRepository{
		updateUserToken: func(ctx context.Context, username string, token sql.NullString) error {
			assert.Equal(t, "john", username)
			assert.False(t, token.Valid, "logout must clear the token")
			return nil
		},
	}
	svc := NewUserService(repo, testApp, logger.Nop())

	require.NoError(t, svc.Logout(context.Background(), models.User{Username: "john"}))
}
