// Copyright (c) 2026 BrewBuzz. All rights reserved.

/*
Package review manages coffee reviews and their read-time aggregation.

It owns the review lifecycle (create, list, delete) and the statistics the
catalog surfaces for every coffee: average rating, review count, and the
most frequent flavor tags. Statistics are recomputed from the review rows on
demand and cached; they are never stored as authoritative state.
*/
package review

import (
	"strings"
	"time"

	"github.com/brewbuzz/brewbuzz/pkg/query"
)

// Rating bounds for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a single member's take on a coffee: a 1-5 rating, optional
// tasting notes, and free-form flavor tags.
type Review struct {
	ID          string    `json:"id"`
	CoffeeID    string    `json:"coffee_id"`
	AuthorID    string    `json:"author_id"`
	AuthorEmail string    `json:"author_email,omitempty"` // Denormalized for display
	CoffeeName  string    `json:"coffee_name,omitempty"`  // Denormalized for display
	Rating      int       `json:"rating"`
	Body        string    `json:"body,omitempty"`
	FlavorTags  []string  `json:"flavor_tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddReviewInput carries a review submission from the presentation layer.
// FlavorTags arrives as a single comma-separated string, matching the tag
// input field on the review form.
type AddReviewInput struct {
	CoffeeID   string `json:"coffee_id"`
	Rating     int    `json:"rating"`
	Body       string `json:"body,omitempty"`
	FlavorTags string `json:"flavor_tags,omitempty"`
}

// NormalizeTags splits a comma-separated tag string into trimmed, non-empty
// tags, deduplicated case-insensitively. The first-seen casing and position
// win, so "fruity, Floral, FRUITY ,," becomes ["fruity", "Floral"]. Without
// the dedupe a single review repeating a tag would count it once per copy in
// the flavor ranking.
func NormalizeTags(raw string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, tag := range query.StringSlice(raw) {
		key := strings.ToLower(tag)
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// Field identifiers used by validation and dynamic queries.
const (
	FieldCoffeeID   = "coffee_id"
	FieldRating     = "rating"
	FieldBody       = "body"
	FieldFlavorTags = "flavor_tags"
)
