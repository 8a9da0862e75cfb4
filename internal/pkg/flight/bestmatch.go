package flight

import (
	"sort"
	"strings"
	"time"
)

// NormalizeIdent canonicalizes a queried flight number for comparison:
// whitespace stripped, uppercased.
func NormalizeIdent(ident string) string {
	return strings.ToUpper(strings.Join(strings.Fields(ident), ""))
}

// BestMatch picks the single candidate best matching the queried flight
// identifier. It is shared by all status sources, parameterized by field
// accessors so each source's schema plugs in.
//
// Candidates whose identifier exactly equals the normalized query are
// preferred; when none match exactly the full set is used, since provider
// identifiers are inconsistently cased and prefixed. Within the chosen
// partition the earliest usable departure wins; candidates with no usable
// departure sort last.
func BestMatch[T any](
	candidates []T,
	query string,
	ident func(T) string,
	departure func(T) (time.Time, bool),
) (T, bool) {
	var zero T

	if len(candidates) == 0 {
		return zero, false
	}

	normalized := NormalizeIdent(query)

	exact := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if NormalizeIdent(ident(c)) == normalized {
			exact = append(exact, c)
		}
	}

	pool := candidates
	if len(exact) > 0 {
		pool = exact
	}

	ranked := make([]T, len(pool))
	copy(ranked, pool)

	sort.SliceStable(ranked, func(i, j int) bool {
		ti, iOK := departure(ranked[i])
		tj, jOK := departure(ranked[j])

		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}

		return ti.Before(tj)
	})

	return ranked[0], true
}

// EarliestTimestamp returns the first of the given labels that parses as
// an RFC 3339 instant. Status sources pass scheduled, estimated and
// actual departure fields in that preference order.
func EarliestTimestamp(labels ...string) (time.Time, bool) {
	for _, label := range labels {
		if label == "" {
			continue
		}

		if t, err := time.Parse(time.RFC3339, label); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
