// Copyright (c) 2026 BrewBuzz. All rights reserved.

package moderation

import (
	"context"

	"github.com/brewbuzz/brewbuzz/internal/catalog"
)

// # Moderation Data Access

// Repository defines the data access contract for the moderation queue.
type Repository interface {

	/*
		ListPendingCoffees returns the coffee moderation queue, newest first.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*PendingCoffee: Queue rows with submitter and roaster joined
		  - int: Total queue length
		  - error: Database retrieval failures
	*/
	ListPendingCoffees(context context.Context, limit, offset int) ([]*PendingCoffee, int, error)

	/*
		ListPendingRoasters returns the roaster moderation queue, newest first.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*PendingRoaster: Queue rows with submitter joined
		  - int: Total queue length
		  - error: Database retrieval failures
	*/
	ListPendingRoasters(context context.Context, limit, offset int) ([]*PendingRoaster, int, error)

	/*
		FindCoffeeTarget returns the visibility state of a coffee and its
		roaster.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *CoffeeTarget: Current state
		  - error: NotFound if the coffee does not exist
	*/
	FindCoffeeTarget(context context.Context, id string) (*CoffeeTarget, error)

	/*
		FindRoasterTarget returns the visibility state of a roaster.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *RoasterTarget: Current state
		  - error: NotFound if the roaster does not exist
	*/
	FindRoasterTarget(context context.Context, id string) (*RoasterTarget, error)

	/*
		SetCoffeeVisibility updates a coffee's visibility in one statement.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - visibility: catalog.Visibility

		Returns:
		  - error: NotFound if no row was updated, storage failures
	*/
	SetCoffeeVisibility(context context.Context, id string, visibility catalog.Visibility) error

	/*
		SetRoasterVisibility updates a roaster's visibility.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - visibility: catalog.Visibility

		Returns:
		  - error: NotFound if no row was updated, storage failures
	*/
	SetRoasterVisibility(context context.Context, id string, visibility catalog.Visibility) error

	/*
		DeleteCoffee removes a coffee if it is still pending; its reviews
		cascade at the database.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: InvalidTransition when the row is no longer pending,
		    storage failures
	*/
	DeleteCoffee(context context.Context, id string) error

	/*
		DeleteRoaster removes a roaster if it is still pending; its coffees
		and their reviews cascade at the database.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: InvalidTransition when the row is no longer pending,
		    storage failures
	*/
	DeleteRoaster(context context.Context, id string) error
}
