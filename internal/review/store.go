// Copyright (c) 2026 BrewBuzz. All rights reserved.

package review

import "context"

// # Review Data Access

// CoffeeGate carries the minimum a review operation needs to know about its
// target coffee: whether it is publicly visible and who submitted it.
type CoffeeGate struct {
	ID          string
	Public      bool
	SubmittedBy string
}

// Repository defines the data access contract for reviews.
type Repository interface {

	/*
		ListByCoffee returns every review for one coffee, oldest first.

		Parameters:
		  - context: context.Context
		  - coffeeID: string (UUID)

		Returns:
		  - []Review: Full review set for aggregation and display
		  - error: Database retrieval failures
	*/
	ListByCoffee(context context.Context, coffeeID string) ([]Review, error)

	/*
		ListByAuthor returns a paginated slice of one member's reviews,
		newest first, with coffee names attached.

		Parameters:
		  - context: context.Context
		  - authorID: string (UUID)
		  - limit: int
		  - offset: int

		Returns:
		  - []Review: The author's reviews
		  - int: Total count for pagination metadata
		  - error: Database retrieval failures
	*/
	ListByAuthor(context context.Context, authorID string, limit, offset int) ([]Review, int, error)

	/*
		ListRecent returns the newest reviews across all public coffees,
		with author emails and coffee names attached.

		Parameters:
		  - context: context.Context
		  - limit: int

		Returns:
		  - []Review: Newest first
		  - error: Database retrieval failures
	*/
	ListRecent(context context.Context, limit int) ([]Review, error)

	/*
		FindByID returns one review.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Review: The hydrated entity
		  - error: NotFound if no row exists
	*/
	FindByID(context context.Context, id string) (*Review, error)

	/*
		Create persists a new review.

		Parameters:
		  - context: context.Context
		  - review: *Review

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, review *Review) error

	/*
		Delete removes a review row. Deleting a missing row is a no-op.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: Storage failures
	*/
	Delete(context context.Context, id string) error

	/*
		CoffeeGate returns the visibility gate for a coffee.

		Parameters:
		  - context: context.Context
		  - coffeeID: string (UUID)

		Returns:
		  - *CoffeeGate: Visibility and ownership of the target coffee
		  - error: NotFound if the coffee does not exist
	*/
	CoffeeGate(context context.Context, coffeeID string) (*CoffeeGate, error)
}

// StatsCache caches computed [Stats] per coffee so hot detail pages do not
// re-aggregate on every request.
type StatsCache interface {

	// Get returns the cached stats for a coffee, or (nil, nil) on a miss.
	// Cache failures degrade to a miss; they never fail the read path.
	Get(context context.Context, coffeeID string) (*Stats, error)

	// Set stores freshly computed stats with the configured TTL.
	Set(context context.Context, coffeeID string, stats Stats) error

	// Invalidate drops the cached stats for a coffee after a review write
	// or a moderation action touching it.
	Invalidate(context context.Context, coffeeID string) error
}
