// Copyright (c) 2026 BrewBuzz. All rights reserved.

package review

import (
	"context"
	"log/slog"

	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/ctxutil"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
	"github.com/brewbuzz/brewbuzz/internal/platform/validate"
	"github.com/brewbuzz/brewbuzz/pkg/uuid"
)

// # Service Layer

// Input bounds for a review submission.
const (
	MaxBodyLen    = 2000
	MaxFlavorTags = 10
)

// Service orchestrates review intake, deletion, and the read-time
// aggregation the catalog builds its rating surfaces on.
type Service struct {
	repository Repository
	cache      StatsCache
}

// NewService constructs a new [Service] with its repository and cache.
func NewService(repository Repository, cache StatsCache) *Service {
	return &Service{repository: repository, cache: cache}
}

// # Review Intake

/*
AddReview validates and persists a new review.

Description: Reviews target public coffees; a member may additionally review
their own pending submission, and admins may review anything they can see.
Flavor tags arrive comma-separated and are trimmed and de-blanked before
persistence. A successful write invalidates the coffee's cached stats.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (The authenticated reviewer)
  - input: AddReviewInput

Returns:
  - *Review: The persisted review
  - error: Unauthorized, validation, NotFound, or persistence errors
*/
func (service *Service) AddReview(context context.Context, claims *sec.AuthClaims, input AddReviewInput) (*Review, error) {
	if err := sec.RequireRole(claims, sec.RoleMember); err != nil {
		return nil, err
	}

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldCoffeeID, input.CoffeeID).UUID(FieldCoffeeID, input.CoffeeID)
	validator.Range(FieldRating, input.Rating, MinRating, MaxRating)
	validator.MaxLen(FieldBody, input.Body, MaxBodyLen)

	tags := NormalizeTags(input.FlavorTags)
	validator.Custom(FieldFlavorTags, len(tags) > MaxFlavorTags, "Too many flavor tags")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Target coffee must be visible to the reviewer
	gate, err := service.repository.CoffeeGate(context, input.CoffeeID)
	if err != nil {
		return nil, err
	}
	if !canReview(claims, gate) {
		return nil, apperr.NotFound("Coffee")
	}

	review := &Review{
		ID:         uuid.New(),
		CoffeeID:   input.CoffeeID,
		AuthorID:   claims.UserID,
		Rating:     input.Rating,
		Body:       input.Body,
		FlavorTags: tags,
	}
	if err := service.repository.Create(context, review); err != nil {
		return nil, err
	}

	service.invalidate(context, input.CoffeeID)
	return review, nil
}

/*
DeleteReview removes a review.

Description: Deletion is idempotent: a review that no longer exists deletes
successfully, so double-submitted delete requests never surface an error.
When the review does exist, only its author may remove it.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (The authenticated caller)
  - id: string (UUID)

Returns:
  - error: Unauthorized, Forbidden, or persistence errors
*/
func (service *Service) DeleteReview(context context.Context, claims *sec.AuthClaims, id string) error {
	if err := sec.RequireRole(claims, sec.RoleMember); err != nil {
		return err
	}

	existing, err := service.repository.FindByID(context, id)
	if err != nil {
		// Already gone: treat as success
		if appError := apperr.As(err); appError != nil && appError.Code == apperr.CodeNotFound {
			return nil
		}
		return err
	}

	if existing.AuthorID != claims.UserID {
		return apperr.Forbidden("Only the author can delete this review")
	}

	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.invalidate(context, existing.CoffeeID)
	return nil
}

// # Aggregation

/*
GetStats returns the aggregated statistics for one coffee.

Description: The visibility gate runs before the cache so cached stats for a
pending coffee never leak past its submitter. On a cache miss the full review
set is loaded and folded through [Aggregate], and the result is written back
with a TTL. Cache failures degrade to recomputation and never fail the read.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (nil for anonymous visitors)
  - coffeeID: string (UUID)

Returns:
  - Stats: Derived statistics; zero-valued for a coffee with no reviews
  - error: NotFound when the coffee is missing or not visible to the caller
*/
func (service *Service) GetStats(context context.Context, claims *sec.AuthClaims, coffeeID string) (Stats, error) {
	gate, err := service.repository.CoffeeGate(context, coffeeID)
	if err != nil {
		return Stats{}, err
	}
	if !canReview(claims, gate) {
		return Stats{}, apperr.NotFound("Coffee")
	}

	if cached, err := service.cache.Get(context, coffeeID); err == nil && cached != nil {
		return *cached, nil
	} else if err != nil {
		ctxutil.GetLogger(context).Warn("stats cache read failed", slog.String("coffee_id", coffeeID), slog.Any("error", err))
	}

	reviews, err := service.repository.ListByCoffee(context, coffeeID)
	if err != nil {
		return Stats{}, err
	}
	stats := Aggregate(reviews)

	if err := service.cache.Set(context, coffeeID, stats); err != nil {
		ctxutil.GetLogger(context).Warn("stats cache write failed", slog.String("coffee_id", coffeeID), slog.Any("error", err))
	}
	return stats, nil
}

// InvalidateStats drops the cached stats for a coffee. Moderation calls this
// when an action changes what the public listing derives from.
func (service *Service) InvalidateStats(context context.Context, coffeeID string) {
	service.invalidate(context, coffeeID)
}

// # Listings

/*
ListByCoffee returns every review for a coffee, oldest first.

Description: Applies the same visibility gate as the coffee detail page:
reviews on a pending coffee are visible only to its submitter and admins.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (nil for anonymous visitors)
  - coffeeID: string (UUID)

Returns:
  - []Review: Full review set
  - error: NotFound when the coffee is missing or not visible
*/
func (service *Service) ListByCoffee(context context.Context, claims *sec.AuthClaims, coffeeID string) ([]Review, error) {
	gate, err := service.repository.CoffeeGate(context, coffeeID)
	if err != nil {
		return nil, err
	}
	if !canReview(claims, gate) {
		return nil, apperr.NotFound("Coffee")
	}
	return service.repository.ListByCoffee(context, coffeeID)
}

/*
ListMine returns the caller's reviews, newest first.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (The authenticated caller)
  - limit: int
  - offset: int

Returns:
  - []Review: The caller's reviews with coffee names attached
  - int: Total count for pagination metadata
  - error: Unauthorized or repository failures
*/
func (service *Service) ListMine(context context.Context, claims *sec.AuthClaims, limit, offset int) ([]Review, int, error) {
	if err := sec.RequireRole(claims, sec.RoleMember); err != nil {
		return nil, 0, err
	}
	return service.repository.ListByAuthor(context, claims.UserID, limit, offset)
}

// ListRecent returns the newest reviews across all public coffees. The
// catalog's home page consumes this feed.
func (service *Service) ListRecent(context context.Context, limit int) ([]Review, error) {
	return service.repository.ListRecent(context, limit)
}

// # Helpers

// canReview reports whether the caller may interact with a coffee's reviews:
// public coffees always, pending only for the submitter and admins.
func canReview(claims *sec.AuthClaims, gate *CoffeeGate) bool {
	if gate.Public {
		return true
	}
	if claims == nil {
		return false
	}
	return claims.UserID == gate.SubmittedBy || sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin)
}

// invalidate drops cached stats; failures are logged, never propagated.
func (service *Service) invalidate(context context.Context, coffeeID string) {
	if err := service.cache.Invalidate(context, coffeeID); err != nil {
		ctxutil.GetLogger(context).Warn("stats cache invalidation failed", slog.String("coffee_id", coffeeID), slog.Any("error", err))
	}
}
