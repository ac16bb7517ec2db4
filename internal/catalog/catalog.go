// Copyright (c) 2026 BrewBuzz. All rights reserved.

/*
Package catalog defines the core domain entities for the BrewBuzz catalog.

It manages the lifecycle of community-submitted coffees and their roasters:
intake validation, the publication visibility rules, and the public discovery
surfaces (browse, trending, recent).

Core Responsibility:

  - Catalog: Defines roast levels (Light, Medium, Dark) and the visibility
    lifecycle (pending, public).
  - Intake: Validates submissions and assigns initial visibility based on the
    submitter's role.
  - Discovery: Filtered, sorted listings joined with aggregated review stats.

This package acts as the source of truth for all catalog-related data models.
*/
package catalog

import (
	"time"

	"github.com/brewbuzz/brewbuzz/internal/review"
)

// # Domain Enums

// RoastLevel classifies how dark a coffee has been roasted.
type RoastLevel string

const (
	RoastLight  RoastLevel = "Light"
	RoastMedium RoastLevel = "Medium"
	RoastDark   RoastLevel = "Dark"
)

// IsValid reports whether r is a recognised [RoastLevel] value.
func (r RoastLevel) IsValid() bool {
	switch r {
	case RoastLight, RoastMedium, RoastDark:
		return true
	}
	return false
}

// # Core Entities

// Roaster is a coffee producer. Coffees always belong to exactly one roaster.
type Roaster struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`    // URL-safe identifier derived from Name
	Country     string     `json:"country,omitempty"`
	Website     string     `json:"website,omitempty"`
	Visibility  Visibility `json:"visibility"`
	SubmittedBy string     `json:"submitted_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Coffee is the central aggregate of the BrewBuzz domain: a single reviewable
// catalog entry owned by a roaster.
type Coffee struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	RoasterID   string     `json:"roaster_id"`
	RoasterName string     `json:"roaster_name,omitempty"` // Denormalized for display
	RoastLevel  RoastLevel `json:"roast_level"`
	Process     string     `json:"process,omitempty"` // e.g. Washed, Natural
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Visibility  Visibility `json:"visibility"`
	SubmittedBy string     `json:"submitted_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CoffeeWithStats couples a coffee with its read-time aggregated review
// statistics. This mirrors the store's "coffee_with_stats" read surface.
type CoffeeWithStats struct {
	Coffee
	Stats review.Stats `json:"stats"`
}

// SubmitCoffeeInput carries a coffee submission from the presentation layer.
//
// Exactly one of RoasterID / NewRoasterName must be set: submitters either
// pick an existing roaster or create a new one in the same request.
type SubmitCoffeeInput struct {
	Name           string `json:"name"`
	RoasterID      string `json:"roaster_id,omitempty"`
	NewRoasterName string `json:"new_roaster_name,omitempty"`
	RoasterCountry string `json:"roaster_country,omitempty"`
	RoasterWebsite string `json:"roaster_website,omitempty"`
	RoastLevel     string `json:"roast_level"`
	Process        string `json:"process,omitempty"`
	Description    string `json:"description,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

// # Search & Filtering

// Sort orders available for coffee listings. Each read surface picks its own
// default: browse uses name, the home page uses trending and recent.
const (
	SortName     = "name"     // Name ascending
	SortTrending = "trending" // Average rating descending
	SortRecent   = "recent"   // Creation time descending
)

// Filter holds the parameters for a filtered coffee list query.
//
// Query matches as a case-insensitive substring of either the coffee name or
// the roaster name; RoastLevel matches exactly. Both are optional and combine
// with AND.
type Filter struct {
	Query       string     `json:"q,omitempty"`
	RoastLevel  RoastLevel `json:"roast_level,omitempty"`
	RoasterID   string     `json:"roaster_id,omitempty"`
	Visibility  Visibility `json:"-"` // Scope set by the service, never by clients
	SubmittedBy string     `json:"-"` // Restrict to one submitter (profile listings)
	MinReviews  int        `json:"min_reviews,omitempty"` // e.g. trending requires > 0 reviews
	Sort        string     `json:"sort,omitempty"`
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldName           = "name"
	FieldRoasterID      = "roaster_id"
	FieldNewRoasterName = "new_roaster_name"
	FieldRoasterWebsite = "roaster_website"
	FieldRoastLevel     = "roast_level"
	FieldImageURL       = "image_url"
)
