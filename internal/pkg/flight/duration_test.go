//go:build unit

package flight

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatMinutes(t *testing.T) {
	formatRequest := func(minutes int, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FormatMinutes(minutes)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("FormatMinutes(%d) mismatch (-want +got):\n%s", minutes, diff)
			}
		}
	}

	t.Run("under_an_hour", formatRequest(45, "45m"))
	t.Run("exact_hour", formatRequest(60, "1h"))
	t.Run("hours_and_minutes", formatRequest(150, "2h 30m"))
	t.Run("long_haul", formatRequest(125, "2h 5m"))
	t.Run("zero", formatRequest(0, "0m"))
}

func TestFormatISODuration(t *testing.T) {
	formatRequest := func(iso, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FormatISODuration(iso)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("FormatISODuration(%q) mismatch (-want +got):\n%s", iso, diff)
			}
		}
	}

	// both representations must yield the same label
	t.Run("hours_and_minutes", formatRequest("PT2H30M", "2h 30m"))
	t.Run("exact_hour", formatRequest("PT1H", "1h"))
	t.Run("minutes_only", formatRequest("PT45M", "45m"))
	t.Run("lowercase", formatRequest("pt2h30m", "2h 30m"))
	t.Run("empty", formatRequest("", ""))
	t.Run("garbage", formatRequest("2h 30m", ""))
	t.Run("unsupported_component", formatRequest("PT1H30S", ""))
}

func TestParseISOMinutes(t *testing.T) {
	parseRequest := func(iso string, wantMinutes int, wantOK bool) func(t *testing.T) {
		return func(t *testing.T) {
			minutes, ok := ParseISOMinutes(iso)
			if ok != wantOK {
				t.Fatalf("ParseISOMinutes(%q) ok = %v, want %v", iso, ok, wantOK)
			}
			if minutes != wantMinutes {
				t.Fatalf("ParseISOMinutes(%q) = %d, want %d", iso, minutes, wantMinutes)
			}
		}
	}

	t.Run("full", parseRequest("PT2H30M", 150, true))
	t.Run("hours_only", parseRequest("PT3H", 180, true))
	t.Run("minutes_only", parseRequest("PT90M", 90, true))
	t.Run("prefix_only", parseRequest("PT", 0, false))
	t.Run("no_prefix", parseRequest("150", 0, false))
}
