// Copyright (c) 2026 BrewBuzz. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
//
// # Safety
//
// Keys use a private, unexported type so per-request values (user identity,
// request ID, logger) cannot collide with third-party packages that also use
// context for storage: Go's [context.Context] matches on both value AND type.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
)

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// keyRequestID is the context key for the X-Request-ID correlation value.
	keyRequestID key = "request_id"

	// keyUser is the context key for the authenticated user claim ([*sec.AuthClaims]).
	keyUser key = "user"

	// keyLogger is the context key for the per-request [*log/slog.Logger].
	keyLogger key = "logger"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(keyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// WithAuthUser returns a new context with the provided auth claims attached.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, keyUser, user)
}

// GetAuthUser retrieves the [*sec.AuthClaims] from the [context.Context].
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(keyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
