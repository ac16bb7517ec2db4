// Copyright (c) 2026 BrewBuzz. All rights reserved.

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for accounts.
type UserRepository interface {

	/*
		FindByEmail returns the account registered under the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: The hydrated account
		  - error: NotFound if no account exists
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *User: The hydrated account
		  - error: NotFound if no account exists
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		Create persists a new account.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Conflict on duplicate email, other storage failures
	*/
	Create(context context.Context, user *User) error
}
