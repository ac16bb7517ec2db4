// Copyright (c) 2026 BrewBuzz. All rights reserved.

package moderation

import (
	"context"

	"github.com/brewbuzz/brewbuzz/internal/catalog"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
)

// # Service Layer

// StatsInvalidator drops derived review statistics when a moderation action
// changes what the public catalog shows. The review domain implements it.
type StatsInvalidator interface {
	InvalidateStats(context context.Context, coffeeID string)
}

// Service orchestrates moderation decisions over pending submissions.
//
// Every operation re-checks the admin role even though the router already
// gates the endpoints, so the rules hold when the service is driven from
// anywhere other than HTTP.
type Service struct {
	repository Repository
	stats      StatsInvalidator
}

// NewService constructs a new moderation [Service].
func NewService(repository Repository, stats StatsInvalidator) *Service {
	return &Service{repository: repository, stats: stats}
}

// # Queues

/*
ListPendingCoffees returns the coffee moderation queue, newest first.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Must be an admin)
  - limit: int
  - offset: int

Returns:
  - []*PendingCoffee: Queue rows
  - int: Total queue length
  - error: Unauthorized, Forbidden, or repository failures
*/
func (service *Service) ListPendingCoffees(context context.Context, claims *sec.AuthClaims, limit, offset int) ([]*PendingCoffee, int, error) {
	if err := sec.RequireAdmin(claims); err != nil {
		return nil, 0, err
	}
	return service.repository.ListPendingCoffees(context, limit, offset)
}

/*
ListPendingRoasters returns the roaster moderation queue, newest first.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Must be an admin)
  - limit: int
  - offset: int

Returns:
  - []*PendingRoaster: Queue rows
  - int: Total queue length
  - error: Unauthorized, Forbidden, or repository failures
*/
func (service *Service) ListPendingRoasters(context context.Context, claims *sec.AuthClaims, limit, offset int) ([]*PendingRoaster, int, error) {
	if err := sec.RequireAdmin(claims); err != nil {
		return nil, 0, err
	}
	return service.repository.ListPendingRoasters(context, limit, offset)
}

// # Coffee Decisions

/*
ApproveCoffee publishes a pending coffee.

Description: Approval is idempotent; approving an already-public coffee
succeeds without touching the row. By default the coffee's roaster keeps its
own state and goes through its own queue, so a roaster carrying one approved
coffee and nine dubious ones is not published as a side effect. Passing
cascadeRoaster publishes a pending roaster in the same decision.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Must be an admin)
  - id: string (UUID)
  - cascadeRoaster: bool (Also approve a pending roaster)

Returns:
  - error: Unauthorized, Forbidden, NotFound, InvalidTransition, or storage errors
*/
func (service *Service) ApproveCoffee(context context.Context, claims *sec.AuthClaims, id string, cascadeRoaster bool) error {
	if err := sec.RequireAdmin(claims); err != nil {
		return err
	}

	target, err := service.repository.FindCoffeeTarget(context, id)
	if err != nil {
		return err
	}

	next, err := catalog.ApproveTransition(target.Visibility)
	if err != nil {
		return err
	}

	// Idempotent fast path
	if next != target.Visibility {
		if err := service.repository.SetCoffeeVisibility(context, id, next); err != nil {
			return err
		}
	}

	if cascadeRoaster && target.RoasterVisibility == catalog.VisibilityPending {
		if err := service.repository.SetRoasterVisibility(context, target.RoasterID, catalog.VisibilityPublic); err != nil {
			return err
		}
	}

	service.stats.InvalidateStats(context, id)
	return nil
}

/*
RejectCoffee removes a pending coffee and its reviews.

Description: Only pending coffees can be rejected; a public coffee must not
be silently destroyed through the moderation queue. Review rows cascade at
the database.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Must be an admin)
  - id: string (UUID)

Returns:
  - error: Unauthorized, Forbidden, NotFound, InvalidTransition, or storage errors
*/
func (service *Service) RejectCoffee(context context.Context, claims *sec.AuthClaims, id string) error {
	if err := sec.RequireAdmin(claims); err != nil {
		return err
	}

	target, err := service.repository.FindCoffeeTarget(context, id)
	if err != nil {
		return err
	}

	if err := catalog.RejectTransition(target.Visibility); err != nil {
		return err
	}

	if err := service.repository.DeleteCoffee(context, id); err != nil {
		return err
	}

	service.stats.InvalidateStats(context, id)
	return nil
}

// # Roaster Decisions

/*
ApproveRoaster publishes a pending roaster. Idempotent like coffee approval.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Must be an admin)
  - id: string (UUID)

Returns:
  - error: Unauthorized, Forbidden, NotFound, InvalidTransition, or storage errors
*/
func (service *Service) ApproveRoaster(context context.Context, claims *sec.AuthClaims, id string) error {
	if err := sec.RequireAdmin(claims); err != nil {
		return err
	}

	target, err := service.repository.FindRoasterTarget(context, id)
	if err != nil {
		return err
	}

	next, err := catalog.ApproveTransition(target.Visibility)
	if err != nil {
		return err
	}
	if next == target.Visibility {
		return nil
	}
	return service.repository.SetRoasterVisibility(context, id, next)
}

/*
RejectRoaster removes a pending roaster. Its coffees and their reviews
cascade at the database, which is why a roaster with any public coffee is
never in the pending queue to begin with.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Must be an admin)
  - id: string (UUID)

Returns:
  - error: Unauthorized, Forbidden, NotFound, InvalidTransition, or storage errors
*/
func (service *Service) RejectRoaster(context context.Context, claims *sec.AuthClaims, id string) error {
	if err := sec.RequireAdmin(claims); err != nil {
		return err
	}

	target, err := service.repository.FindRoasterTarget(context, id)
	if err != nil {
		return err
	}

	if err := catalog.RejectTransition(target.Visibility); err != nil {
		return err
	}
	return service.repository.DeleteRoaster(context, id)
}
