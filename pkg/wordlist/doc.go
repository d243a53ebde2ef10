// Package wordlist generates candidate password guesses from a small set of
// user-supplied seed tokens (names, dates, pets, favorite words).
//
// A generation run applies a fixed pipeline of string transformations to the
// seeds — case variants, leetspeak substitution, suffix augmentation, pairwise
// concatenation, and date-pattern expansion — each stage toggled independently
// through Options. The result is an ordered, duplicate-free list of candidates
// whose order is fully deterministic for identical inputs.
//
// # Usage
//
//	import "github.com/dmitrymomot/pwkit/pkg/wordlist"
//
//	seeds := wordlist.SplitSeeds("alice, rex2004, 14-02-1999")
//	result := wordlist.Generate(seeds, wordlist.Options{
//	    CaseVariation: true,
//	    Leetspeak:     true,
//	    Suffixes:      true,
//	    Pairs:         true,
//	    Dates:         true,
//	})
//	for _, w := range result.Words {
//	    fmt.Println(w)
//	}
//
// Generate is a pure function: it performs no I/O, keeps no state between
// runs, and never returns an error. Malformed seeds are filtered rather than
// rejected, and output size is bounded by a hard cap (DefaultMaxCandidates,
// overridable per run) reported through Result.Truncated.
//
// The substitution table, suffix set, and pair separators are fixed
// configuration constants declared in tables.go.
package wordlist
