// Copyright (c) 2026 BrewBuzz. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/constants"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
	"github.com/brewbuzz/brewbuzz/internal/platform/validate"
	"github.com/brewbuzz/brewbuzz/pkg/uuid"
)

// # Contracts & Types

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 8

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with its dependencies.
func NewService(userRepository UserRepository, tokenProvider TokenProvider) *Service {
	return &Service{
		userRepository: userRepository,
		tokenProvider:  tokenProvider,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new account.

Description: Every self-registered account starts as a member; admin accounts
are provisioned operationally, never through this endpoint. Passwords are
bcrypt hashed before they touch the database.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: Conflict (if the email is taken), validation, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password).MinLen(FieldPassword, input.Password, MinPasswordLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Verify email uniqueness with a client-safe Conflict error
	if _, err := service.userRepository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation
	user := &User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         sec.RoleMember,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}
	return user, nil
}

// # Login Flow

// LoginInput holds the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession is the issued session: the account and its access token.
type LoginSession struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
}

/*
Login verifies credentials and issues a signed access token.

Description: Both an unknown email and a wrong password return the same
Unauthorized error, so the endpoint cannot be used to probe which emails
hold accounts.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: The account and its RS256-signed JWT
  - error: Unauthorized on bad credentials, storage errors
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	invalidCredentials := apperr.Unauthorized("Invalid email or password")

	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, invalidCredentials
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, invalidCredentials
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, string(user.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_failed: %w", err)
	}

	return &LoginSession{User: user, AccessToken: token}, nil
}

// # Session Introspection

/*
Me returns the account behind the presented claims.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (The authenticated caller)

Returns:
  - *User: The caller's account
  - error: Unauthorized when claims are nil, NotFound if the account vanished
*/
func (service *Service) Me(context context.Context, claims *sec.AuthClaims) (*User, error) {
	if err := sec.RequireRole(claims, sec.RoleMember); err != nil {
		return nil, err
	}
	return service.userRepository.FindByID(context, claims.UserID)
}
