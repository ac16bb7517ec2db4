// Copyright (c) 2026 BrewBuzz. All rights reserved.

/*
PostgreSQL implementation of the catalog's data access.

Listing queries lean on a few Postgres features to keep discovery to a single
round-trip per request:
  - Window Functions: COUNT(*) OVER() returns the total result count without
    a second query.
  - Lateral Joins: review statistics (average rating, review count) are
    aggregated per coffee inside the same statement.
  - Array Aggregation: flavor tags from every review are flattened into one
    text array; ranking happens in Go so the ordering rules live in one place.
*/
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/database/schema"
	"github.com/brewbuzz/brewbuzz/internal/platform/dberr"
	"github.com/brewbuzz/brewbuzz/internal/review"
)

// # PostgreSQL Repositories

// coffeeRepository implements the [CoffeeRepository] interface using pgx.
type coffeeRepository struct {
	pool *pgxpool.Pool
}

// NewCoffeeRepository constructs a PostgreSQL backed coffee store.
func NewCoffeeRepository(pool *pgxpool.Pool) CoffeeRepository {
	return &coffeeRepository{pool: pool}
}

// selectCoffeeWithStats is the shared projection for coffee reads: the
// coffee row, the roaster name, and the aggregated review statistics.
// extraColumns (e.g. a window function) are appended to the SELECT list.
func selectCoffeeWithStats(extraColumns string) string {
	return fmt.Sprintf(`
		SELECT
			c.%s, c.%s, c.%s, r.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
			COALESCE(s.avg_rating, 0) AS avg_rating,
			COALESCE(s.review_count, 0) AS review_count,
			COALESCE((
				SELECT array_agg(tag ORDER BY rv2.%s, rv2.%s, position)
				FROM %s rv2, unnest(rv2.%s) WITH ORDINALITY AS t(tag, position)
				WHERE rv2.%s = c.%s
			), '{}') AS flavor_tags%s
		FROM %s c
		JOIN %s r ON r.%s = c.%s
		LEFT JOIN LATERAL (
			SELECT AVG(rv.%s)::float8 AS avg_rating, COUNT(*)::int AS review_count
			FROM %s rv
			WHERE rv.%s = c.%s
		) s ON true
	`,
		schema.CatalogCoffee.ID,
		schema.CatalogCoffee.Name,
		schema.CatalogCoffee.RoasterID,
		schema.CatalogRoaster.Name,
		schema.CatalogCoffee.RoastLevel,
		schema.CatalogCoffee.Process,
		schema.CatalogCoffee.Description,
		schema.CatalogCoffee.ImageURL,
		schema.CatalogCoffee.Visibility,
		schema.CatalogCoffee.SubmittedBy,
		schema.CatalogCoffee.CreatedAt,
		schema.SocialReview.CreatedAt,
		schema.SocialReview.ID,
		schema.SocialReview.Table,
		schema.SocialReview.FlavorTags,
		schema.SocialReview.CoffeeID, schema.CatalogCoffee.ID,
		extraColumns,
		schema.CatalogCoffee.Table,
		schema.CatalogRoaster.Table,
		schema.CatalogRoaster.ID, schema.CatalogCoffee.RoasterID,
		schema.SocialReview.Rating,
		schema.SocialReview.Table,
		schema.SocialReview.CoffeeID, schema.CatalogCoffee.ID,
	)
}

// scanCoffeeWithStats hydrates one row of the shared projection. The raw tag
// array carries every tag from every review; ranking is pure Go.
func scanCoffeeWithStats(row interface{ Scan(dest ...any) error }, extra ...any) (*CoffeeWithStats, error) {
	coffee := &CoffeeWithStats{}
	var rawTags []string
	dest := []any{
		&coffee.ID,
		&coffee.Name,
		&coffee.RoasterID,
		&coffee.RoasterName,
		&coffee.RoastLevel,
		&coffee.Process,
		&coffee.Description,
		&coffee.ImageURL,
		&coffee.Visibility,
		&coffee.SubmittedBy,
		&coffee.CreatedAt,
		&coffee.Stats.AverageRating,
		&coffee.Stats.ReviewCount,
		&rawTags,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	coffee.Stats.TopFlavors = review.RankFlavors(rawTags, review.TopFlavorCount)
	return coffee, nil
}

/*
List returns a filtered, paginated slice of coffees with stats and the total
count.

Description: Filters compose into a dynamic WHERE clause with positional
arguments. The text query matches case-insensitively against both the coffee
name and the roaster name, mirroring how people search the catalog.

Parameters:
  - context: context.Context
  - filter: Filter (Search, roast level, visibility scope, sorting)
  - limit: int
  - offset: int

Returns:
  - []*CoffeeWithStats: Hydrated entities with stats
  - int: Total count matching filters
  - error: Database execution errors
*/
func (repository *coffeeRepository) List(context context.Context, filter Filter, limit, offset int) ([]*CoffeeWithStats, int, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	// COUNT(*) OVER() rides along so no second count query is needed
	queryBuilder.WriteString(selectCoffeeWithStats(",\n\t\t\tCOUNT(*) OVER() AS total_count"))
	queryBuilder.WriteString(" WHERE true")

	// Apply Filters (Dynamic WHERE clause construction)
	if filter.Visibility != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", schema.CatalogCoffee.Visibility, argID))
		args = append(args, string(filter.Visibility))
		argID++
	}

	// Submitter scoping (profile listings)
	if filter.SubmittedBy != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", schema.CatalogCoffee.SubmittedBy, argID))
		args = append(args, filter.SubmittedBy)
		argID++
	}

	// Roaster scoping (roaster detail page)
	if filter.RoasterID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", schema.CatalogCoffee.RoasterID, argID))
		args = append(args, filter.RoasterID)
		argID++
	}

	// Roast level filtering
	if filter.RoastLevel != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", schema.CatalogCoffee.RoastLevel, argID))
		args = append(args, string(filter.RoastLevel))
		argID++
	}

	// Search matches coffee name or roaster name
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (c.%s ILIKE $%d OR r.%s ILIKE $%d)",
			schema.CatalogCoffee.Name, argID, schema.CatalogRoaster.Name, argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	// Review count floor (trending excludes unreviewed coffees)
	if filter.MinReviews > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND COALESCE(s.review_count, 0) >= $%d", argID))
		args = append(args, filter.MinReviews)
		argID++
	}

	// Apply Sorting Logic
	switch filter.Sort {
	case SortTrending:
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY COALESCE(s.avg_rating, 0) DESC, COALESCE(s.review_count, 0) DESC, c.%s ASC", schema.CatalogCoffee.Name))
	case SortRecent:
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY c.%s DESC, c.%s DESC", schema.CatalogCoffee.CreatedAt, schema.CatalogCoffee.ID))
	default:
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY c.%s ASC, c.%s ASC", schema.CatalogCoffee.Name, schema.CatalogCoffee.ID))
	}

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	// Query Execution
	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list coffees: %w", err)
	}
	defer rows.Close()

	var coffees []*CoffeeWithStats
	var totalCount int
	for rows.Next() {
		coffee, err := scanCoffeeWithStats(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan coffee: %w", err)
		}
		coffees = append(coffees, coffee)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to read coffees: %w", err)
	}

	return coffees, totalCount, nil
}

/*
FindByID retrieves one coffee with stats by primary key.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *CoffeeWithStats: The hydrated entity
  - error: apperr.NotFound when no row exists
*/
func (repository *coffeeRepository) FindByID(context context.Context, id string) (*CoffeeWithStats, error) {
	query := selectCoffeeWithStats("") + fmt.Sprintf(" WHERE c.%s = $1", schema.CatalogCoffee.ID)

	coffee, err := scanCoffeeWithStats(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Coffee")
	}
	return coffee, nil
}

/*
Create persists a new coffee row.

Parameters:
  - context: context.Context
  - coffee: *Coffee (Identity and visibility already assigned)

Returns:
  - error: apperr mapped storage failures
*/
func (repository *coffeeRepository) Create(context context.Context, coffee *Coffee) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`,
		schema.CatalogCoffee.Table,
		schema.CatalogCoffee.ID,
		schema.CatalogCoffee.Name,
		schema.CatalogCoffee.RoasterID,
		schema.CatalogCoffee.RoastLevel,
		schema.CatalogCoffee.Process,
		schema.CatalogCoffee.Description,
		schema.CatalogCoffee.ImageURL,
		schema.CatalogCoffee.Visibility,
		schema.CatalogCoffee.SubmittedBy,
		schema.CatalogCoffee.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		coffee.ID,
		coffee.Name,
		coffee.RoasterID,
		string(coffee.RoastLevel),
		coffee.Process,
		coffee.Description,
		coffee.ImageURL,
		string(coffee.Visibility),
		coffee.SubmittedBy,
	).Scan(&coffee.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "Coffee")
	}
	return nil
}

// # Roaster Repository

// roasterRepository implements the [RoasterRepository] interface using pgx.
type roasterRepository struct {
	pool *pgxpool.Pool
}

// NewRoasterRepository constructs a PostgreSQL backed roaster store.
func NewRoasterRepository(pool *pgxpool.Pool) RoasterRepository {
	return &roasterRepository{pool: pool}
}

/*
List returns a paginated slice of roasters and the total count, ordered by
name.

Parameters:
  - context: context.Context
  - publicOnly: bool
  - limit: int
  - offset: int

Returns:
  - []*Roaster: Hydrated entities
  - int: Total count
  - error: Database execution errors
*/
func (repository *roasterRepository) List(context context.Context, publicOnly bool, limit, offset int) ([]*Roaster, int, error) {

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s,
			COUNT(*) OVER() AS total_count
		FROM %s
		WHERE true
	`,
		schema.CatalogRoaster.ID,
		schema.CatalogRoaster.Name,
		schema.CatalogRoaster.Slug,
		schema.CatalogRoaster.Country,
		schema.CatalogRoaster.Website,
		schema.CatalogRoaster.Visibility,
		schema.CatalogRoaster.SubmittedBy,
		schema.CatalogRoaster.CreatedAt,
		schema.CatalogRoaster.Table,
	))

	if publicOnly {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.CatalogRoaster.Visibility, argID))
		args = append(args, string(VisibilityPublic))
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC", schema.CatalogRoaster.Name))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list roasters: %w", err)
	}
	defer rows.Close()

	var roasters []*Roaster
	var totalCount int
	for rows.Next() {
		roaster := &Roaster{}
		err := rows.Scan(
			&roaster.ID,
			&roaster.Name,
			&roaster.Slug,
			&roaster.Country,
			&roaster.Website,
			&roaster.Visibility,
			&roaster.SubmittedBy,
			&roaster.CreatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan roaster: %w", err)
		}
		roasters = append(roasters, roaster)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to read roasters: %w", err)
	}

	return roasters, totalCount, nil
}

// FindByID retrieves a roaster by primary key.
func (repository *roasterRepository) FindByID(context context.Context, id string) (*Roaster, error) {
	return repository.findBy(context, schema.CatalogRoaster.ID, id)
}

// FindBySlug retrieves a roaster by its unique URL slug.
func (repository *roasterRepository) FindBySlug(context context.Context, slug string) (*Roaster, error) {
	return repository.findBy(context, schema.CatalogRoaster.Slug, slug)
}

// findBy performs a single-row lookup keyed on the given column.
func (repository *roasterRepository) findBy(context context.Context, column, value string) (*Roaster, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogRoaster.ID,
		schema.CatalogRoaster.Name,
		schema.CatalogRoaster.Slug,
		schema.CatalogRoaster.Country,
		schema.CatalogRoaster.Website,
		schema.CatalogRoaster.Visibility,
		schema.CatalogRoaster.SubmittedBy,
		schema.CatalogRoaster.CreatedAt,
		schema.CatalogRoaster.Table,
		column,
	)

	roaster := &Roaster{}
	err := repository.pool.QueryRow(context, query, value).Scan(
		&roaster.ID,
		&roaster.Name,
		&roaster.Slug,
		&roaster.Country,
		&roaster.Website,
		&roaster.Visibility,
		&roaster.SubmittedBy,
		&roaster.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Roaster")
	}
	return roaster, nil
}

/*
Create persists a new roaster row.

Parameters:
  - context: context.Context
  - roaster: *Roaster

Returns:
  - error: apperr.Conflict on duplicate slug, other mapped storage failures
*/
func (repository *roasterRepository) Create(context context.Context, roaster *Roaster) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`,
		schema.CatalogRoaster.Table,
		schema.CatalogRoaster.ID,
		schema.CatalogRoaster.Name,
		schema.CatalogRoaster.Slug,
		schema.CatalogRoaster.Country,
		schema.CatalogRoaster.Website,
		schema.CatalogRoaster.Visibility,
		schema.CatalogRoaster.SubmittedBy,
		schema.CatalogRoaster.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		roaster.ID,
		roaster.Name,
		roaster.Slug,
		roaster.Country,
		roaster.Website,
		string(roaster.Visibility),
		roaster.SubmittedBy,
	).Scan(&roaster.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "Roaster")
	}
	return nil
}

// Publish flips a roaster to public visibility in one statement.
func (repository *roasterRepository) Publish(context context.Context, id string) error {
	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2",
		schema.CatalogRoaster.Table,
		schema.CatalogRoaster.Visibility,
		schema.CatalogRoaster.ID,
	)

	tag, err := repository.pool.Exec(context, query, string(VisibilityPublic), id)
	if err != nil {
		return dberr.Wrap(err, "Roaster")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Roaster")
	}
	return nil
}
