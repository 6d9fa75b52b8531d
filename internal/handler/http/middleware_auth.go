package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It reads the raw token from the "Authorization" header (no scheme prefix),
// resolves it to a user via [service.AuthService.Authenticate], and stores
// the user in the request context under [utils.UserCtxKey] before delegating
// to the next handler. A missing header, an empty token, and a token no user
// holds are all rejected with the same 401 response, so a probing client
// learns nothing about which part failed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := strings.TrimSpace(r.Header.Get("Authorization"))
		if token == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			log.Err(err).Msg("token rejected")
			writeUnauthorized(w)
			return
		}

		// Store the resolved user in the context so downstream handlers can
		// retrieve it without another token lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
