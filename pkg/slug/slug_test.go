// Copyright (c) 2026 BrewBuzz. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brewbuzz/brewbuzz/pkg/slug"
)

/*
TestFrom tests the slug transformation pipeline.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Night Owl Coffee", "night-owl-coffee"},
		{"accents_removed", "Café Brûlée Roasters", "cafe-brulee-roasters"},
		{"special_chars", "Brew & Co. (Portland)", "brew-co-portland"},
		{"multiple_spaces", "Slow   Drip", "slow-drip"},
		{"leading_trailing", "  --Ristretto--  ", "ristretto"},
		{"digits_kept", "3rd Wave Roastery", "3rd-wave-roastery"},
		{"already_slugged", "stumptown-coffee-roasters", "stumptown-coffee-roasters"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
