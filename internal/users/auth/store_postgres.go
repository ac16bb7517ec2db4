// Copyright (c) 2026 BrewBuzz. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewbuzz/brewbuzz/internal/platform/database/schema"
	"github.com/brewbuzz/brewbuzz/internal/platform/dberr"
)

// userRepository implements the [UserRepository] interface using pgx.
type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a PostgreSQL backed account store.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

// FindByEmail retrieves an account by its unique email.
func (repository *userRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findBy(context, schema.UsersAccount.Email, email)
}

// FindByID retrieves an account by primary key.
func (repository *userRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findBy(context, schema.UsersAccount.ID, id)
}

// findBy performs a single-row lookup keyed on the given column.
func (repository *userRepository) findBy(context context.Context, column, value string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UsersAccount.ID,
		schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash,
		schema.UsersAccount.Role,
		schema.UsersAccount.CreatedAt,
		schema.UsersAccount.Table,
		column,
	)

	user := &User{}
	err := repository.pool.QueryRow(context, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return user, nil
}

/*
Create persists a new account row.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: apperr.Conflict on duplicate email, other mapped failures
*/
func (repository *userRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID,
		schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash,
		schema.UsersAccount.Role,
		schema.UsersAccount.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		string(user.Role),
	).Scan(&user.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "User")
	}
	return nil
}
