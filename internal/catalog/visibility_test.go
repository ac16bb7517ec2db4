// Copyright (c) 2026 BrewBuzz. All rights reserved.

package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
)

func TestVisibilityOnCreate(t *testing.T) {
	tests := []struct {
		name string
		role sec.UserRole
		want Visibility
	}{
		{name: "admin submissions go live immediately", role: sec.RoleAdmin, want: VisibilityPublic},
		{name: "member submissions await moderation", role: sec.RoleMember, want: VisibilityPending},
		{name: "unknown role defaults to pending", role: sec.UserRole("ghost"), want: VisibilityPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibilityOnCreate(tt.role))
		})
	}
}

func TestApproveTransition(t *testing.T) {
	t.Run("pending becomes public", func(t *testing.T) {
		got, err := ApproveTransition(VisibilityPending)
		require.NoError(t, err)
		assert.Equal(t, VisibilityPublic, got)
	})

	t.Run("approving public is idempotent", func(t *testing.T) {
		got, err := ApproveTransition(VisibilityPublic)
		require.NoError(t, err)
		assert.Equal(t, VisibilityPublic, got)
	})

	t.Run("unknown state is rejected", func(t *testing.T) {
		_, err := ApproveTransition(Visibility("archived"))
		require.Error(t, err)

		var appError *apperr.AppError
		require.True(t, errors.As(err, &appError))
		assert.Equal(t, apperr.CodeInvalidTransition, appError.Code)
	})
}

func TestRejectTransition(t *testing.T) {
	t.Run("pending can be rejected", func(t *testing.T) {
		assert.NoError(t, RejectTransition(VisibilityPending))
	})

	t.Run("public entries cannot be rejected", func(t *testing.T) {
		err := RejectTransition(VisibilityPublic)
		require.Error(t, err)

		var appError *apperr.AppError
		require.True(t, errors.As(err, &appError))
		assert.Equal(t, apperr.CodeInvalidTransition, appError.Code)
	})
}
