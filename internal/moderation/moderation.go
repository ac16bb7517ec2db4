// Copyright (c) 2026 BrewBuzz. All rights reserved.

/*
Package moderation implements the admin review queue for community
submissions.

Approving a pending coffee or roaster makes it publicly visible; rejecting
one removes it outright. All operations are admin-only and enforced at the
service layer as well as at the router.
*/
package moderation

import (
	"time"

	"github.com/brewbuzz/brewbuzz/internal/catalog"
)

// PendingCoffee is one row of the coffee moderation queue, joined with the
// submitter's email and the roaster's name for display.
type PendingCoffee struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	RoastLevel     catalog.RoastLevel `json:"roast_level"`
	RoasterID      string             `json:"roaster_id"`
	RoasterName    string             `json:"roaster_name"`
	SubmitterEmail string             `json:"submitter_email"`
	CreatedAt      time.Time          `json:"created_at"`
}

// PendingRoaster is one row of the roaster moderation queue.
type PendingRoaster struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Country        string    `json:"country,omitempty"`
	SubmitterEmail string    `json:"submitter_email"`
	CoffeeCount    int       `json:"coffee_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// CoffeeTarget carries the visibility state a coffee moderation decision
// needs: the coffee's own state and its roaster's.
type CoffeeTarget struct {
	ID                string
	Visibility        catalog.Visibility
	RoasterID         string
	RoasterVisibility catalog.Visibility
}

// RoasterTarget carries the visibility state for a roaster decision.
type RoasterTarget struct {
	ID         string
	Visibility catalog.Visibility
}
