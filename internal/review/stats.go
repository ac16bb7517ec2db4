// Copyright (c) 2026 BrewBuzz. All rights reserved.

package review

import "strings"

// # Aggregated Statistics

// TopFlavorCount caps how many flavor tags are surfaced per coffee.
const TopFlavorCount = 5

// Stats holds read-time aggregated review data for a single coffee.
//
// Stats are always derived from the underlying reviews, never stored: a
// coffee with zero reviews has an AverageRating of 0, a ReviewCount of 0,
// and no TopFlavors.
type Stats struct {
	AverageRating float64  `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
	TopFlavors    []string `json:"top_flavors,omitempty"`
}

/*
Aggregate computes the statistics for one coffee from its full review set.

# Description

The average is the arithmetic mean of all ratings. Flavor tags are counted
case-insensitively across every review and ranked by frequency; ties keep
the order in which a tag was first seen, so repeated aggregation over the
same reviews is deterministic.

# Parameters

  - reviews: Every review belonging to the coffee, in creation order.

# Returns

  - Stats: The derived statistics. Zero-valued when reviews is empty.
*/
func Aggregate(reviews []Review) Stats {
	if len(reviews) == 0 {
		return Stats{}
	}

	total := 0
	tags := make([]string, 0, len(reviews)*2)
	for _, r := range reviews {
		total += r.Rating
		tags = append(tags, r.FlavorTags...)
	}

	return Stats{
		AverageRating: float64(total) / float64(len(reviews)),
		ReviewCount:   len(reviews),
		TopFlavors:    RankFlavors(tags, TopFlavorCount),
	}
}

/*
RankFlavors ranks flavor tags by frequency and returns at most limit of them.

Tags are matched case-insensitively but reported with the casing of their
first occurrence. Ties between tags with the same count resolve by first
appearance, keeping the output stable across runs.
*/
func RankFlavors(tags []string, limit int) []string {
	if len(tags) == 0 || limit <= 0 {
		return nil
	}

	type entry struct {
		display string
		count   int
		order   int
	}

	index := make(map[string]*entry, len(tags))
	entries := make([]*entry, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if existing, ok := index[key]; ok {
			existing.count++
			continue
		}
		e := &entry{display: tag, count: 1, order: len(entries)}
		index[key] = e
		entries = append(entries, e)
	}

	// Insertion sort by count desc keeps the first-seen order on ties and is
	// plenty for the handful of tags a coffee accumulates.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].count > entries[j-1].count; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	if limit > len(entries) {
		limit = len(entries)
	}
	ranked := make([]string, 0, limit)
	for _, e := range entries[:limit] {
		ranked = append(ranked, e.display)
	}
	return ranked
}
