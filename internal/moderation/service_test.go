// Copyright (c) 2026 BrewBuzz. All rights reserved.

package moderation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewbuzz/brewbuzz/internal/catalog"
	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
)

// # Test Fakes

type fakeRepository struct {
	coffees  map[string]*CoffeeTarget
	roasters map[string]*RoasterTarget

	deletedCoffees  []string
	deletedRoasters []string

	// Simulates another admin approving the row between the state check and
	// the delete statement.
	publishCoffeeAfterFind bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		coffees:  map[string]*CoffeeTarget{},
		roasters: map[string]*RoasterTarget{},
	}
}

func (f *fakeRepository) ListPendingCoffees(_ context.Context, _, _ int) ([]*PendingCoffee, int, error) {
	var out []*PendingCoffee
	for _, c := range f.coffees {
		if c.Visibility == catalog.VisibilityPending {
			out = append(out, &PendingCoffee{ID: c.ID, RoasterID: c.RoasterID})
		}
	}
	return out, len(out), nil
}

func (f *fakeRepository) ListPendingRoasters(_ context.Context, _, _ int) ([]*PendingRoaster, int, error) {
	var out []*PendingRoaster
	for _, r := range f.roasters {
		if r.Visibility == catalog.VisibilityPending {
			out = append(out, &PendingRoaster{ID: r.ID})
		}
	}
	return out, len(out), nil
}

func (f *fakeRepository) FindCoffeeTarget(_ context.Context, id string) (*CoffeeTarget, error) {
	target, ok := f.coffees[id]
	if !ok {
		return nil, apperr.NotFound("Coffee")
	}
	if roaster, ok := f.roasters[target.RoasterID]; ok {
		target.RoasterVisibility = roaster.Visibility
	}
	snapshot := *target
	if f.publishCoffeeAfterFind {
		target.Visibility = catalog.VisibilityPublic
	}
	return &snapshot, nil
}

func (f *fakeRepository) FindRoasterTarget(_ context.Context, id string) (*RoasterTarget, error) {
	target, ok := f.roasters[id]
	if !ok {
		return nil, apperr.NotFound("Roaster")
	}
	return target, nil
}

func (f *fakeRepository) SetCoffeeVisibility(_ context.Context, id string, visibility catalog.Visibility) error {
	target, ok := f.coffees[id]
	if !ok {
		return apperr.NotFound("Coffee")
	}
	target.Visibility = visibility
	return nil
}

func (f *fakeRepository) SetRoasterVisibility(_ context.Context, id string, visibility catalog.Visibility) error {
	target, ok := f.roasters[id]
	if !ok {
		return apperr.NotFound("Roaster")
	}
	target.Visibility = visibility
	return nil
}

func (f *fakeRepository) DeleteCoffee(_ context.Context, id string) error {
	target, ok := f.coffees[id]
	if !ok || target.Visibility != catalog.VisibilityPending {
		return apperr.InvalidTransition("Coffee is no longer pending")
	}
	delete(f.coffees, id)
	f.deletedCoffees = append(f.deletedCoffees, id)
	return nil
}

func (f *fakeRepository) DeleteRoaster(_ context.Context, id string) error {
	target, ok := f.roasters[id]
	if !ok || target.Visibility != catalog.VisibilityPending {
		return apperr.InvalidTransition("Roaster is no longer pending")
	}
	delete(f.roasters, id)
	f.deletedRoasters = append(f.deletedRoasters, id)
	return nil
}

type fakeInvalidator struct {
	coffeeIDs []string
}

func (f *fakeInvalidator) InvalidateStats(_ context.Context, coffeeID string) {
	f.coffeeIDs = append(f.coffeeIDs, coffeeID)
}

// # Fixtures

const (
	coffeeID  = "aaaaaaaa-0000-0000-0000-000000000001"
	roasterID = "bbbbbbbb-0000-0000-0000-000000000001"
)

func admin() *sec.AuthClaims {
	return &sec.AuthClaims{UserID: "admin-1", Role: string(sec.RoleAdmin)}
}

func member() *sec.AuthClaims {
	return &sec.AuthClaims{UserID: "member-1", Role: string(sec.RoleMember)}
}

func newTestService(coffeeState, roasterState catalog.Visibility) (*Service, *fakeRepository, *fakeInvalidator) {
	repo := newFakeRepository()
	repo.roasters[roasterID] = &RoasterTarget{ID: roasterID, Visibility: roasterState}
	repo.coffees[coffeeID] = &CoffeeTarget{
		ID:                coffeeID,
		Visibility:        coffeeState,
		RoasterID:         roasterID,
		RoasterVisibility: roasterState,
	}
	stats := &fakeInvalidator{}
	return NewService(repo, stats), repo, stats
}

// # Tests

func TestApproveCoffee(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a pending coffee and leaves the roaster pending", func(t *testing.T) {
		service, repo, stats := newTestService(catalog.VisibilityPending, catalog.VisibilityPending)

		err := service.ApproveCoffee(ctx, admin(), coffeeID, false)
		require.NoError(t, err)

		assert.Equal(t, catalog.VisibilityPublic, repo.coffees[coffeeID].Visibility)
		assert.Equal(t, catalog.VisibilityPending, repo.roasters[roasterID].Visibility)
		assert.Equal(t, []string{coffeeID}, stats.coffeeIDs)
	})

	t.Run("cascade flag publishes a pending roaster too", func(t *testing.T) {
		service, repo, _ := newTestService(catalog.VisibilityPending, catalog.VisibilityPending)

		err := service.ApproveCoffee(ctx, admin(), coffeeID, true)
		require.NoError(t, err)

		assert.Equal(t, catalog.VisibilityPublic, repo.roasters[roasterID].Visibility)
	})

	t.Run("approving twice is idempotent", func(t *testing.T) {
		service, repo, _ := newTestService(catalog.VisibilityPending, catalog.VisibilityPublic)

		require.NoError(t, service.ApproveCoffee(ctx, admin(), coffeeID, false))
		require.NoError(t, service.ApproveCoffee(ctx, admin(), coffeeID, false))

		assert.Equal(t, catalog.VisibilityPublic, repo.coffees[coffeeID].Visibility)
	})

	t.Run("members are forbidden", func(t *testing.T) {
		service, _, _ := newTestService(catalog.VisibilityPending, catalog.VisibilityPending)

		err := service.ApproveCoffee(ctx, member(), coffeeID, false)

		require.Error(t, err)
		assert.Equal(t, apperr.CodeForbidden, apperr.As(err).Code)
	})

	t.Run("anonymous callers are unauthorized", func(t *testing.T) {
		service, _, _ := newTestService(catalog.VisibilityPending, catalog.VisibilityPending)

		err := service.ApproveCoffee(ctx, nil, coffeeID, false)

		require.Error(t, err)
		assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)
	})

	t.Run("unknown coffee returns NotFound", func(t *testing.T) {
		service, _, _ := newTestService(catalog.VisibilityPending, catalog.VisibilityPending)

		err := service.ApproveCoffee(ctx, admin(), "cccccccc-0000-0000-0000-000000000009", false)

		require.Error(t, err)
		assert.Equal(t, apperr.CodeNotFound, apperr.As(err).Code)
	})
}

func TestRejectCoffee(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a pending coffee", func(t *testing.T) {
		service, repo, stats := newTestService(catalog.VisibilityPending, catalog.VisibilityPending)

		err := service.RejectCoffee(ctx, admin(), coffeeID)
		require.NoError(t, err)

		assert.Equal(t, []string{coffeeID}, repo.deletedCoffees)
		assert.Equal(t, []string{coffeeID}, stats.coffeeIDs)
	})

	t.Run("a public coffee cannot be rejected", func(t *testing.T) {
		service, repo, _ := newTestService(catalog.VisibilityPublic, catalog.VisibilityPublic)

		err := service.RejectCoffee(ctx, admin(), coffeeID)

		require.Error(t, err)
		assert.Equal(t, apperr.CodeInvalidTransition, apperr.As(err).Code)
		assert.Empty(t, repo.deletedCoffees)
	})

	t.Run("a concurrent approve wins over the reject", func(t *testing.T) {
		service, repo, _ := newTestService(catalog.VisibilityPending, catalog.VisibilityPending)
		repo.publishCoffeeAfterFind = true

		err := service.RejectCoffee(ctx, admin(), coffeeID)

		// The coffee went public after the state check; the conditioned
		// delete must refuse rather than destroy a live entry
		require.Error(t, err)
		assert.Equal(t, apperr.CodeInvalidTransition, apperr.As(err).Code)
		assert.Empty(t, repo.deletedCoffees)
		assert.Contains(t, repo.coffees, coffeeID)
	})

	t.Run("members are forbidden", func(t *testing.T) {
		service, _, _ := newTestService(catalog.VisibilityPending, catalog.VisibilityPending)

		err := service.RejectCoffee(ctx, member(), coffeeID)

		require.Error(t, err)
		assert.Equal(t, apperr.CodeForbidden, apperr.As(err).Code)
	})
}

func TestRoasterDecisions(t *testing.T) {
	ctx := context.Background()

	t.Run("approve publishes a pending roaster", func(t *testing.T) {
		service, repo, _ := newTestService(catalog.VisibilityPending, catalog.VisibilityPending)

		err := service.ApproveRoaster(ctx, admin(), roasterID)
		require.NoError(t, err)

		assert.Equal(t, catalog.VisibilityPublic, repo.roasters[roasterID].Visibility)
	})

	t.Run("reject removes a pending roaster", func(t *testing.T) {
		service, repo, _ := newTestService(catalog.VisibilityPending, catalog.VisibilityPending)

		err := service.RejectRoaster(ctx, admin(), roasterID)
		require.NoError(t, err)

		assert.Equal(t, []string{roasterID}, repo.deletedRoasters)
	})

	t.Run("reject fails on a public roaster", func(t *testing.T) {
		service, _, _ := newTestService(catalog.VisibilityPublic, catalog.VisibilityPublic)

		err := service.RejectRoaster(ctx, admin(), roasterID)

		require.Error(t, err)
		assert.Equal(t, apperr.CodeInvalidTransition, apperr.As(err).Code)
	})
}
