// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The contact-api Authors

package utils

import (
	"context"
	"testing"

	"github.com/contactapp/contact-api/models"
	"github.com/stretchr/testify/assert"
)

func TestGetUserFromContext(t *testing.T) {
	user := models.User{Username: "test", Name: "test"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")
	_, ok := GetUserFromContext(ctx)
	assert.False(t, ok)
}
