// Copyright (c) 2026 BrewBuzz. All rights reserved.

package catalog

import (
	"fmt"

	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
)

// # Visibility Lifecycle

// Visibility is the publication state of a catalog entry. Entries are either
// visible to everyone (public) or awaiting moderation (pending).
type Visibility string

const (
	VisibilityPending Visibility = "pending"
	VisibilityPublic  Visibility = "public"
)

// IsValid reports whether v is a recognised [Visibility] value.
func (v Visibility) IsValid() bool {
	return v == VisibilityPending || v == VisibilityPublic
}

/*
VisibilityOnCreate returns the initial visibility for a new catalog entry
based on who submitted it.

Admin submissions go live immediately; member submissions enter the
moderation queue. A roaster created as part of a coffee submission inherits
the same initial visibility, which keeps the invariant that a public coffee
never points at an invisible roaster.
*/
func VisibilityOnCreate(role sec.UserRole) Visibility {
	if role == sec.RoleAdmin {
		return VisibilityPublic
	}
	return VisibilityPending
}

/*
ApproveTransition validates an approval against the current visibility and
returns the resulting state.

Approval is idempotent: approving an already-public entry succeeds and leaves
it public, so concurrent moderators never see a spurious failure.
*/
func ApproveTransition(current Visibility) (Visibility, error) {
	switch current {
	case VisibilityPending, VisibilityPublic:
		return VisibilityPublic, nil
	}
	return "", apperr.InvalidTransition(fmt.Sprintf("cannot approve entry in state %q", current))
}

/*
RejectTransition validates a rejection against the current visibility.

Only pending entries can be rejected; rejection removes the entry entirely,
so rejecting something already public would silently destroy live catalog
data. Callers delete the entry only when this returns nil.
*/
func RejectTransition(current Visibility) error {
	if current == VisibilityPending {
		return nil
	}
	return apperr.InvalidTransition(fmt.Sprintf("cannot reject entry in state %q", current))
}
