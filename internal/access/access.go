// Package access decides which of a kid's moments a caller may see.
//
// The policy is fail-closed: an include-private request from a caller who is
// not on the kid's allowed list silently downgrades to the public-only view.
// It never produces an error, so callers cannot distinguish "no private
// moments exist" from "not authorized" — the returned disclosure flag is the
// only signal that the request was not honored in full.
package access

import "littleyears/internal/models"

// Query is the effective moment filter sent to storage. Exactly two shapes
// exist: all of a kid's moments, or only the public ones.
type Query struct {
	KidID      string
	PublicOnly bool
}

// Decide computes the effective query and the disclosed includes-private
// flag for a timeline request. Pure function, no side effects.
//
// Email matching against the allowed list is exact-string and
// case-sensitive; an empty email or an empty allowed list never authorizes.
func Decide(kid *models.Kid, includePrivate bool, grandparentEmail string) (Query, bool) {
	query := Query{KidID: kid.ID, PublicOnly: true}

	if !includePrivate {
		return query, false
	}

	if !kid.AllowsGrandparent(grandparentEmail) {
		// Unauthorized: same result as never having asked
		return query, false
	}

	query.PublicOnly = false
	return query, true
}
