package flight

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMinutes converts a minute count to the presentation label used
// everywhere in the engine. Every normalizer routes through this rather
// than re-deriving labels.
// Example: 45 -> "45m", 60 -> "1h", 150 -> "2h 30m"
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	h := minutes / 60
	m := minutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatISODuration converts the offer-request upstream's ISO-8601
// duration ("PT2H30M") to the same label FormatMinutes produces.
// Unparseable input yields "".
func FormatISODuration(iso string) string {
	minutes, ok := ParseISOMinutes(iso)
	if !ok {
		return ""
	}

	return FormatMinutes(minutes)
}

// ParseISOMinutes parses the PT#H#M subset of ISO-8601 durations the
// upstream emits. Day components and fractional values do not occur.
func ParseISOMinutes(iso string) (int, bool) {
	s, found := strings.CutPrefix(strings.ToUpper(strings.TrimSpace(iso)), "PT")
	if !found || s == "" {
		return 0, false
	}

	var hours, minutes int

	if h, rest, ok := cutNumber(s, 'H'); ok {
		hours = h
		s = rest
	}

	if m, rest, ok := cutNumber(s, 'M'); ok {
		minutes = m
		s = rest
	}

	if s != "" {
		return 0, false
	}

	return hours*60 + minutes, true
}

func cutNumber(s string, unit byte) (int, string, bool) {
	idx := strings.IndexByte(s, unit)
	if idx < 0 {
		return 0, s, false
	}

	n, err := strconv.Atoi(s[:idx])
	if err != nil {
		return 0, s, false
	}

	return n, s[idx+1:], true
}
