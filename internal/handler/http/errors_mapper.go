package http

import (
	"errors"
	"net/http"

	"github.com/contactapp/contact-api/internal/service"
	"github.com/contactapp/contact-api/internal/store"
	"github.com/contactapp/contact-api/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:       http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,

	store.ErrUsernameTaken:   http.StatusBadRequest,
	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrContactNotFound: http.StatusNotFound,
	store.ErrAddressNotFound: http.StatusNotFound,

	ErrInvalidID: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

// statusFromError translates a service or storage error into the HTTP status
// code of the response. Validation failures carry field detail and map to
// 400; anything unrecognized is a 500.
func statusFromError(err error) int {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
