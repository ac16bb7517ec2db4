// Copyright (c) 2026 BrewBuzz. All rights reserved.

/*
PostgreSQL implementation of the moderation queue's data access.

Visibility flips are single-statement UPDATEs keyed on the primary key, so
two admins deciding the same submission concurrently both converge on the
same terminal state.
*/
package moderation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewbuzz/brewbuzz/internal/catalog"
	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/database/schema"
	"github.com/brewbuzz/brewbuzz/internal/platform/dberr"
)

// moderationRepository implements the [Repository] interface using pgx.
type moderationRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed moderation store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &moderationRepository{pool: pool}
}

/*
ListPendingCoffees returns the coffee queue joined with submitter email and
roaster name, newest submissions first.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*PendingCoffee: Queue rows
  - int: Total queue length
  - error: Database execution errors
*/
func (repository *moderationRepository) ListPendingCoffees(context context.Context, limit, offset int) ([]*PendingCoffee, int, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s, r.%s, u.%s, c.%s,
			COUNT(*) OVER() AS total_count
		FROM %s c
		JOIN %s r ON r.%s = c.%s
		JOIN %s u ON u.%s = c.%s
		WHERE c.%s = 'pending'
		ORDER BY c.%s DESC, c.%s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.CatalogCoffee.ID,
		schema.CatalogCoffee.Name,
		schema.CatalogCoffee.RoastLevel,
		schema.CatalogCoffee.RoasterID,
		schema.CatalogRoaster.Name,
		schema.UsersAccount.Email,
		schema.CatalogCoffee.CreatedAt,
		schema.CatalogCoffee.Table,
		schema.CatalogRoaster.Table,
		schema.CatalogRoaster.ID, schema.CatalogCoffee.RoasterID,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID, schema.CatalogCoffee.SubmittedBy,
		schema.CatalogCoffee.Visibility,
		schema.CatalogCoffee.CreatedAt, schema.CatalogCoffee.ID,
	)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list pending coffees: %w", err)
	}
	defer rows.Close()

	var pending []*PendingCoffee
	var totalCount int
	for rows.Next() {
		row := &PendingCoffee{}
		err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.RoastLevel,
			&row.RoasterID,
			&row.RoasterName,
			&row.SubmitterEmail,
			&row.CreatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan pending coffee: %w", err)
		}
		pending = append(pending, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to read pending coffees: %w", err)
	}

	return pending, totalCount, nil
}

/*
ListPendingRoasters returns the roaster queue with submitter email and the
number of coffees each roaster would carry if published.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*PendingRoaster: Queue rows
  - int: Total queue length
  - error: Database execution errors
*/
func (repository *moderationRepository) ListPendingRoasters(context context.Context, limit, offset int) ([]*PendingRoaster, int, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, r.%s, r.%s, u.%s, r.%s,
			(SELECT COUNT(*) FROM %s c WHERE c.%s = r.%s)::int AS coffee_count,
			COUNT(*) OVER() AS total_count
		FROM %s r
		JOIN %s u ON u.%s = r.%s
		WHERE r.%s = 'pending'
		ORDER BY r.%s DESC, r.%s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.CatalogRoaster.ID,
		schema.CatalogRoaster.Name,
		schema.CatalogRoaster.Country,
		schema.UsersAccount.Email,
		schema.CatalogRoaster.CreatedAt,
		schema.CatalogCoffee.Table,
		schema.CatalogCoffee.RoasterID, schema.CatalogRoaster.ID,
		schema.CatalogRoaster.Table,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID, schema.CatalogRoaster.SubmittedBy,
		schema.CatalogRoaster.Visibility,
		schema.CatalogRoaster.CreatedAt, schema.CatalogRoaster.ID,
	)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list pending roasters: %w", err)
	}
	defer rows.Close()

	var pending []*PendingRoaster
	var totalCount int
	for rows.Next() {
		row := &PendingRoaster{}
		err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Country,
			&row.SubmitterEmail,
			&row.CreatedAt,
			&row.CoffeeCount,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan pending roaster: %w", err)
		}
		pending = append(pending, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to read pending roasters: %w", err)
	}

	return pending, totalCount, nil
}

/*
FindCoffeeTarget returns the joined visibility state for one coffee and its
roaster.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *CoffeeTarget: Current state
  - error: apperr.NotFound when the coffee does not exist
*/
func (repository *moderationRepository) FindCoffeeTarget(context context.Context, id string) (*CoffeeTarget, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, r.%s
		FROM %s c
		JOIN %s r ON r.%s = c.%s
		WHERE c.%s = $1
	`,
		schema.CatalogCoffee.ID,
		schema.CatalogCoffee.Visibility,
		schema.CatalogCoffee.RoasterID,
		schema.CatalogRoaster.Visibility,
		schema.CatalogCoffee.Table,
		schema.CatalogRoaster.Table,
		schema.CatalogRoaster.ID, schema.CatalogCoffee.RoasterID,
		schema.CatalogCoffee.ID,
	)

	target := &CoffeeTarget{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&target.ID,
		&target.Visibility,
		&target.RoasterID,
		&target.RoasterVisibility,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Coffee")
	}
	return target, nil
}

// FindRoasterTarget returns the visibility state for one roaster.
func (repository *moderationRepository) FindRoasterTarget(context context.Context, id string) (*RoasterTarget, error) {
	query := fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = $1",
		schema.CatalogRoaster.ID,
		schema.CatalogRoaster.Visibility,
		schema.CatalogRoaster.Table,
		schema.CatalogRoaster.ID,
	)

	target := &RoasterTarget{}
	if err := repository.pool.QueryRow(context, query, id).Scan(&target.ID, &target.Visibility); err != nil {
		return nil, dberr.Wrap(err, "Roaster")
	}
	return target, nil
}

// SetCoffeeVisibility flips a coffee's visibility in one statement.
func (repository *moderationRepository) SetCoffeeVisibility(context context.Context, id string, visibility catalog.Visibility) error {
	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2",
		schema.CatalogCoffee.Table,
		schema.CatalogCoffee.Visibility,
		schema.CatalogCoffee.ID,
	)
	return repository.execExpectingRow(context, query, "Coffee", string(visibility), id)
}

// SetRoasterVisibility flips a roaster's visibility in one statement.
func (repository *moderationRepository) SetRoasterVisibility(context context.Context, id string, visibility catalog.Visibility) error {
	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2",
		schema.CatalogRoaster.Table,
		schema.CatalogRoaster.Visibility,
		schema.CatalogRoaster.ID,
	)
	return repository.execExpectingRow(context, query, "Roaster", string(visibility), id)
}

// DeleteCoffee removes a pending coffee row; reviews cascade at the database.
// The visibility condition guards against a concurrent approve: the caller
// checked the state before deciding, but only the delete statement itself can
// see the row's state at deletion time.
func (repository *moderationRepository) DeleteCoffee(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = 'pending'",
		schema.CatalogCoffee.Table,
		schema.CatalogCoffee.ID,
		schema.CatalogCoffee.Visibility,
	)
	return repository.deletePending(context, query, "Coffee", id)
}

// DeleteRoaster removes a pending roaster row; coffees and reviews cascade.
func (repository *moderationRepository) DeleteRoaster(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = 'pending'",
		schema.CatalogRoaster.Table,
		schema.CatalogRoaster.ID,
		schema.CatalogRoaster.Visibility,
	)
	return repository.deletePending(context, query, "Roaster", id)
}

// deletePending runs a pending-conditioned delete. Zero rows means the entry
// left the pending state between the caller's check and this statement, so
// the rejection is no longer a legal transition.
func (repository *moderationRepository) deletePending(context context.Context, query, resource string, id string) error {
	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	if tag.RowsAffected() == 0 {
		return apperr.InvalidTransition(fmt.Sprintf("%s is no longer pending", resource))
	}
	return nil
}

// execExpectingRow runs a mutation that must touch exactly one row and maps
// a zero-row result to NotFound.
func (repository *moderationRepository) execExpectingRow(context context.Context, query, resource string, args ...any) error {
	tag, err := repository.pool.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}
