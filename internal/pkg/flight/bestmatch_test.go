//go:build unit

package flight

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type candidate struct {
	ID  string
	Dep string
}

func TestBestMatch(t *testing.T) {
	ident := func(c candidate) string { return c.ID }
	departure := func(c candidate) (time.Time, bool) {
		return EarliestTimestamp(c.Dep)
	}

	matchRequest := func(candidates []candidate, query, wantID string, wantOK bool) func(t *testing.T) {
		return func(t *testing.T) {
			got, ok := BestMatch(candidates, query, ident, departure)
			if ok != wantOK {
				t.Fatalf("BestMatch() ok = %v, want %v", ok, wantOK)
			}
			if wantOK {
				if diff := cmp.Diff(wantID, got.ID); diff != "" {
					t.Fatalf("BestMatch() mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	t.Run("no_candidates", matchRequest(nil, "AA100", "", false))

	// both are exact matches after normalization; earlier departure wins
	t.Run("case_insensitive_exact_earliest_departure", matchRequest([]candidate{
		{ID: "aa100", Dep: "2026-06-01T12:00:00Z"},
		{ID: "AA100", Dep: "2026-06-01T08:00:00Z"},
	}, "aa100", "AA100", true))

	t.Run("whitespace_in_query_normalized", matchRequest([]candidate{
		{ID: "BA142", Dep: "2026-06-01T08:00:00Z"},
	}, " ba 142 ", "BA142", true))

	// no exact match: fall back to the full candidate set rather than
	// returning nothing
	t.Run("no_exact_match_falls_back", matchRequest([]candidate{
		{ID: "AAL100", Dep: "2026-06-01T10:00:00Z"},
		{ID: "AAL100-1", Dep: "2026-06-01T07:00:00Z"},
	}, "AA100", "AAL100-1", true))

	// exact partition preferred even when a non-match departs earlier
	t.Run("exact_partition_preferred", matchRequest([]candidate{
		{ID: "UA9999", Dep: "2026-06-01T05:00:00Z"},
		{ID: "AA100", Dep: "2026-06-01T22:00:00Z"},
	}, "AA100", "AA100", true))

	// records with no usable timestamp sort last
	t.Run("unusable_timestamp_sorts_last", matchRequest([]candidate{
		{ID: "AA100", Dep: ""},
		{ID: "AA100", Dep: "2026-06-01T09:00:00Z"},
	}, "AA100", "AA100", true))
}

func TestBestMatch_UnusableTimestampsLast(t *testing.T) {
	ident := func(c candidate) string { return c.ID }
	departure := func(c candidate) (time.Time, bool) {
		return EarliestTimestamp(c.Dep)
	}

	got, ok := BestMatch([]candidate{
		{ID: "AA100", Dep: "not-a-time"},
		{ID: "AA100", Dep: "2026-06-01T09:00:00Z"},
	}, "AA100", ident, departure)

	if !ok || got.Dep != "2026-06-01T09:00:00Z" {
		t.Fatalf("BestMatch() = %+v, want the candidate with a parseable departure", got)
	}
}

func TestEarliestTimestamp(t *testing.T) {
	// preference order: first parseable label wins
	ts, ok := EarliestTimestamp("", "bad", "2026-06-01T09:00:00Z", "2026-06-01T05:00:00Z")
	if !ok {
		t.Fatal("expected a usable timestamp")
	}

	want := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("EarliestTimestamp() = %v, want %v", ts, want)
	}

	if _, ok := EarliestTimestamp("", "nope"); ok {
		t.Fatal("expected no usable timestamp")
	}
}

func TestNormalizeIdent(t *testing.T) {
	if diff := cmp.Diff("AA100", NormalizeIdent(" aa 100 ")); diff != "" {
		t.Fatalf("NormalizeIdent() mismatch (-want +got):\n%s", diff)
	}
}
