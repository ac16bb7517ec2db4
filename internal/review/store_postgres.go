// Copyright (c) 2026 BrewBuzz. All rights reserved.

/*
PostgreSQL implementation of the review domain's data access.

Flavor tags are stored as a native text[] column, so no join table is needed
for tag aggregation; pgx maps them to []string directly.
*/
package review

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewbuzz/brewbuzz/internal/platform/database/schema"
	"github.com/brewbuzz/brewbuzz/internal/platform/dberr"
)

// reviewRepository implements the [Repository] interface using pgx.
type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed review store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &reviewRepository{pool: pool}
}

/*
ListByCoffee returns every review for one coffee, oldest first.

Description: The full set is intentionally unpaginated: the aggregation
engine folds over all of a coffee's reviews, and detail pages show them in
one scroll.

Parameters:
  - context: context.Context
  - coffeeID: string (UUID)

Returns:
  - []Review: Hydrated reviews with author emails
  - error: Database execution errors
*/
func (repository *reviewRepository) ListByCoffee(context context.Context, coffeeID string) ([]Review, error) {
	query := fmt.Sprintf(`
		SELECT rv.%s, rv.%s, rv.%s, u.%s, rv.%s, rv.%s, rv.%s, rv.%s
		FROM %s rv
		JOIN %s u ON u.%s = rv.%s
		WHERE rv.%s = $1
		ORDER BY rv.%s ASC, rv.%s ASC
	`,
		schema.SocialReview.ID,
		schema.SocialReview.CoffeeID,
		schema.SocialReview.AuthorID,
		schema.UsersAccount.Email,
		schema.SocialReview.Rating,
		schema.SocialReview.Body,
		schema.SocialReview.FlavorTags,
		schema.SocialReview.CreatedAt,
		schema.SocialReview.Table,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID, schema.SocialReview.AuthorID,
		schema.SocialReview.CoffeeID,
		schema.SocialReview.CreatedAt, schema.SocialReview.ID,
	)

	rows, err := repository.pool.Query(context, query, coffeeID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.CoffeeID,
			&review.AuthorID,
			&review.AuthorEmail,
			&review.Rating,
			&review.Body,
			&review.FlavorTags,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read reviews: %w", err)
	}

	return reviews, nil
}

/*
ListByAuthor returns a paginated slice of one member's reviews, newest
first, with coffee names attached for display.

Parameters:
  - context: context.Context
  - authorID: string (UUID)
  - limit: int
  - offset: int

Returns:
  - []Review: The author's reviews
  - int: Total count
  - error: Database execution errors
*/
func (repository *reviewRepository) ListByAuthor(context context.Context, authorID string, limit, offset int) ([]Review, int, error) {
	query := fmt.Sprintf(`
		SELECT rv.%s, rv.%s, c.%s, rv.%s, rv.%s, rv.%s, rv.%s, rv.%s,
			COUNT(*) OVER() AS total_count
		FROM %s rv
		JOIN %s c ON c.%s = rv.%s
		WHERE rv.%s = $1
		ORDER BY rv.%s DESC, rv.%s DESC
		LIMIT $2 OFFSET $3
	`,
		schema.SocialReview.ID,
		schema.SocialReview.CoffeeID,
		schema.CatalogCoffee.Name,
		schema.SocialReview.AuthorID,
		schema.SocialReview.Rating,
		schema.SocialReview.Body,
		schema.SocialReview.FlavorTags,
		schema.SocialReview.CreatedAt,
		schema.SocialReview.Table,
		schema.CatalogCoffee.Table,
		schema.CatalogCoffee.ID, schema.SocialReview.CoffeeID,
		schema.SocialReview.AuthorID,
		schema.SocialReview.CreatedAt, schema.SocialReview.ID,
	)

	rows, err := repository.pool.Query(context, query, authorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list author reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review
	var totalCount int
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.CoffeeID,
			&review.CoffeeName,
			&review.AuthorID,
			&review.Rating,
			&review.Body,
			&review.FlavorTags,
			&review.CreatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan author review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to read author reviews: %w", err)
	}

	return reviews, totalCount, nil
}

/*
ListRecent returns the newest reviews across public coffees only, with
author emails and coffee names attached.

Parameters:
  - context: context.Context
  - limit: int

Returns:
  - []Review: Newest first
  - error: Database execution errors
*/
func (repository *reviewRepository) ListRecent(context context.Context, limit int) ([]Review, error) {
	query := fmt.Sprintf(`
		SELECT rv.%s, rv.%s, c.%s, rv.%s, u.%s, rv.%s, rv.%s, rv.%s, rv.%s
		FROM %s rv
		JOIN %s c ON c.%s = rv.%s
		JOIN %s u ON u.%s = rv.%s
		WHERE c.%s = 'public'
		ORDER BY rv.%s DESC, rv.%s DESC
		LIMIT $1
	`,
		schema.SocialReview.ID,
		schema.SocialReview.CoffeeID,
		schema.CatalogCoffee.Name,
		schema.SocialReview.AuthorID,
		schema.UsersAccount.Email,
		schema.SocialReview.Rating,
		schema.SocialReview.Body,
		schema.SocialReview.FlavorTags,
		schema.SocialReview.CreatedAt,
		schema.SocialReview.Table,
		schema.CatalogCoffee.Table,
		schema.CatalogCoffee.ID, schema.SocialReview.CoffeeID,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID, schema.SocialReview.AuthorID,
		schema.CatalogCoffee.Visibility,
		schema.SocialReview.CreatedAt, schema.SocialReview.ID,
	)

	rows, err := repository.pool.Query(context, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list recent reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.CoffeeID,
			&review.CoffeeName,
			&review.AuthorID,
			&review.AuthorEmail,
			&review.Rating,
			&review.Body,
			&review.FlavorTags,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan recent review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read recent reviews: %w", err)
	}

	return reviews, nil
}

/*
FindByID retrieves one review by primary key.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Review: The hydrated entity
  - error: apperr.NotFound when no row exists
*/
func (repository *reviewRepository) FindByID(context context.Context, id string) (*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.SocialReview.ID,
		schema.SocialReview.CoffeeID,
		schema.SocialReview.AuthorID,
		schema.SocialReview.Rating,
		schema.SocialReview.Body,
		schema.SocialReview.FlavorTags,
		schema.SocialReview.CreatedAt,
		schema.SocialReview.Table,
		schema.SocialReview.ID,
	)

	review := &Review{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&review.ID,
		&review.CoffeeID,
		&review.AuthorID,
		&review.Rating,
		&review.Body,
		&review.FlavorTags,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Review")
	}
	return review, nil
}

/*
Create persists a new review row.

Parameters:
  - context: context.Context
  - review: *Review

Returns:
  - error: apperr mapped storage failures
*/
func (repository *reviewRepository) Create(context context.Context, review *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.SocialReview.Table,
		schema.SocialReview.ID,
		schema.SocialReview.CoffeeID,
		schema.SocialReview.AuthorID,
		schema.SocialReview.Rating,
		schema.SocialReview.Body,
		schema.SocialReview.FlavorTags,
		schema.SocialReview.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		review.ID,
		review.CoffeeID,
		review.AuthorID,
		review.Rating,
		review.Body,
		review.FlavorTags,
	).Scan(&review.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "Review")
	}
	return nil
}

/*
Delete removes a review row; deleting a missing row is a no-op.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Execution errors
*/
func (repository *reviewRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.SocialReview.Table,
		schema.SocialReview.ID,
	)

	if _, err := repository.pool.Exec(context, query, id); err != nil {
		return fmt.Errorf("postgres: failed to delete review: %w", err)
	}
	return nil
}

/*
CoffeeGate returns the visibility gate for one coffee.

Parameters:
  - context: context.Context
  - coffeeID: string (UUID)

Returns:
  - *CoffeeGate: Visibility and ownership of the coffee
  - error: apperr.NotFound when the coffee does not exist
*/
func (repository *reviewRepository) CoffeeGate(context context.Context, coffeeID string) (*CoffeeGate, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s = 'public', %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogCoffee.ID,
		schema.CatalogCoffee.Visibility,
		schema.CatalogCoffee.SubmittedBy,
		schema.CatalogCoffee.Table,
		schema.CatalogCoffee.ID,
	)

	gate := &CoffeeGate{}
	err := repository.pool.QueryRow(context, query, coffeeID).Scan(&gate.ID, &gate.Public, &gate.SubmittedBy)
	if err != nil {
		return nil, dberr.Wrap(err, "Coffee")
	}
	return gate, nil
}
