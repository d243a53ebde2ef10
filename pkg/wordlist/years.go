package wordlist

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minYear = 1900
	maxYear = 2100
)

// YearRange is an inclusive range of years appended to candidates when set on
// Options. Both bounds are clamped to 1900–2100.
type YearRange struct {
	Start int
	End   int
}

// ParseYearRange parses a user-supplied year range: "1990-2025", "1990:2025",
// or a bare "1990" whose open end resolves to the current year at parse time.
// Reversed bounds are swapped. An empty string yields a nil range, which
// disables the stage. ErrInvalidYearRange wraps any unparsable input.
func ParseYearRange(s string) (*YearRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	first, second := s, ""
	for _, sep := range []string{"-", ":"} {
		if a, b, ok := strings.Cut(s, sep); ok {
			first, second = a, b
			break
		}
	}

	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidYearRange, s)
	}
	end := time.Now().Year()
	if second != "" {
		if end, err = strconv.Atoi(strings.TrimSpace(second)); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidYearRange, s)
		}
	}

	if start > end {
		start, end = end, start
	}
	return &YearRange{Start: max(start, minYear), End: min(end, maxYear)}, nil
}

// clamp normalizes a range built directly rather than parsed.
func (r YearRange) clamp() YearRange {
	start, end := r.Start, r.End
	if start > end {
		start, end = end, start
	}
	return YearRange{Start: max(start, minYear), End: min(end, maxYear)}
}
