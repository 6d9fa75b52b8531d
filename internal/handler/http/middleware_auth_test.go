package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactapp/contact-api/internal/service"
	"github.com/contactapp/contact-api/models"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{
			name:       "missing header",
			token:      "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown token",
			token:      "stale-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			token:      knownToken,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil, &mockUserService{}, nil, nil)

			rec := doRequest(t, h, http.MethodGet, "/api/users/current", tt.token, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"errors":"Unauthorized"}`, rec.Body.String())
			}
		})
	}
}

// A token made of only spaces must be treated the same as a missing header,
// without ever reaching the auth service.
func TestAuthMiddleware_BlankToken(t *testing.T) {
	auth := &mockAuthService{
		authenticate: func(ctx context.Context, token string) (models.User, error) {
			t.Fatal("auth service must not be called for a blank token")
			return models.User{}, service.ErrUnauthorized
		},
	}
	h := newTestHandler(auth, &mockUserService{}, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/users/current", "   ", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTraceIDMiddleware(t *testing.T) {
	h := newTestHandler(nil, &mockUserService{
		register: func(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
			return models.UserResponse{Username: req.Username, Name: req.Name}, nil
		},
	}, nil, nil)

	t.Run("generated when absent", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/users", "", `{"username":"john","password":"secret","name":"John Doe"}`)
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})

	t.Run("echoed when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"john","password":"secret","name":"John Doe"}`))
		req.Header.Set(traceIDHeader, "trace-42")

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	})
}
