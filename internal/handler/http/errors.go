// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The contact-api Authors

package http

import "errors"

// Sentinel errors used when parsing incoming requests. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidID is returned when a path parameter that should be a numeric
	// identifier cannot be parsed. It maps to 404: a non-numeric id can never
	// name an existing record.
	ErrInvalidID = errors.New("invalid identifier in request path")
)
