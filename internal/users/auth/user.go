// Copyright (c) 2026 BrewBuzz. All rights reserved.

/*
Package auth implements identity and access management for BrewBuzz.

It covers account registration, login with bcrypt password verification, and
RSA-signed JWT issuance. Every other domain trusts the [sec.AuthClaims] this
package's tokens carry.
*/
package auth

import (
	"time"

	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
)

// User is a registered BrewBuzz account.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Field identifiers used by validation.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)
