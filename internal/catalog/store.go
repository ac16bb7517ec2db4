// Copyright (c) 2026 BrewBuzz. All rights reserved.

package catalog

import "context"

// # Catalog Data Access

// CoffeeRepository defines the data access contract for coffees.
//
// Read methods return coffees joined with their aggregated review stats and
// the roaster's display name, so listings never need a second round-trip.
type CoffeeRepository interface {

	/*
		List returns a filtered, paginated slice of coffees and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Search, roast level, visibility scope, sorting)
		  - limit: int
		  - offset: int

		Returns:
		  - []*CoffeeWithStats: Matching coffees with review stats attached
		  - int: Total count of records matching the filter
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*CoffeeWithStats, int, error)

	/*
		FindByID returns the coffee with the given ID regardless of visibility.
		Visibility enforcement is the service's responsibility.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *CoffeeWithStats: The hydrated entity with stats
		  - error: NotFound if no row exists
	*/
	FindByID(context context.Context, id string) (*CoffeeWithStats, error)

	/*
		Create persists a new coffee.

		Parameters:
		  - context: context.Context
		  - coffee: *Coffee (Identity, metadata and initial visibility already set)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, coffee *Coffee) error
}

// RoasterRepository defines the data access contract for roasters.
type RoasterRepository interface {

	/*
		List returns a paginated slice of roasters and the total count.

		Parameters:
		  - context: context.Context
		  - publicOnly: bool (Restrict to public roasters)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Roaster: Matching roasters ordered by name
		  - int: Total count
		  - error: Database retrieval failures
	*/
	List(context context.Context, publicOnly bool, limit, offset int) ([]*Roaster, int, error)

	/*
		FindByID returns the roaster with the given ID regardless of visibility.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Roaster: The hydrated entity
		  - error: NotFound if no row exists
	*/
	FindByID(context context.Context, id string) (*Roaster, error)

	/*
		FindBySlug returns the roaster matching the unique URL slug.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Roaster: The hydrated entity
		  - error: NotFound if no row exists
	*/
	FindBySlug(context context.Context, slug string) (*Roaster, error)

	/*
		Create persists a new roaster.

		Parameters:
		  - context: context.Context
		  - roaster: *Roaster

		Returns:
		  - error: Conflict on duplicate slug, other storage failures
	*/
	Create(context context.Context, roaster *Roaster) error

	/*
		Publish flips a roaster to public visibility. Used when a coffee that
		goes live immediately references a roaster still in the queue.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: NotFound if no row exists, other storage failures
	*/
	Publish(context context.Context, id string) error
}
