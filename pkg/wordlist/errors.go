package wordlist

import "errors"

var (
	// ErrInvalidYearRange is returned by ParseYearRange for input that cannot
	// be read as a year or a pair of years.
	ErrInvalidYearRange = errors.New("invalid year range")
)
