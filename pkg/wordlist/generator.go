package wordlist

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Generate produces candidate password guesses from the seeds by running the
// enabled transformation stages in a fixed order. The result is deduplicated
// in first-seen order and deterministic for identical inputs. Seeds that are
// empty after trimming are discarded; an empty seed list yields an empty
// result, never an error.
func Generate(seeds []string, opts Options) Result {
	set := newCandidateSet(opts.limit())
	bases := baseForms(seeds)

	stageBases(set, bases)
	if opts.CaseVariation && !set.full() {
		stageCaseVariants(set, bases)
	}
	if opts.Leetspeak && !set.full() {
		stageLeet(set)
	}
	if opts.Pairs && !set.full() {
		stagePairs(set, bases)
	}
	if opts.Dates && !set.full() {
		stageDates(set, seeds)
	}
	if opts.Suffixes && !set.full() {
		stageSuffixes(set, seeds)
	}
	if opts.Years != nil && !set.full() {
		stageYears(set, opts.Years.clamp())
	}

	return set.result()
}

func stageBases(set *candidateSet, bases []string) {
	for _, b := range bases {
		if !set.add(b) {
			return
		}
	}
}

func stageCaseVariants(set *candidateSet, bases []string) {
	title := cases.Title(language.English)
	for _, b := range bases {
		lower := strings.ToLower(b)
		for _, v := range []string{lower, strings.ToUpper(b), title.String(lower)} {
			if !set.add(v) {
				return
			}
		}
	}
}

// stageLeet emits two substituted variants per candidate produced so far: the
// full table and the vowels-only pass. Substitutions are applied to all
// matching characters at once, so output stays linear in the input.
func stageLeet(set *candidateSet) {
	for _, w := range set.snapshot() {
		if !set.add(substitute(w, leetTable)) {
			return
		}
		if !set.add(substitute(w, leetVowels)) {
			return
		}
	}
}

// stagePairs concatenates ordered pairs of distinct base forms, plain and
// separator-joined. Only base forms are paired, never mutated variants, to
// keep the product bounded.
func stagePairs(set *candidateSet, bases []string) {
	for i, a := range bases {
		for j, b := range bases {
			if i == j {
				continue
			}
			if !set.add(a + b) {
				return
			}
			for _, sep := range pairSeparators {
				if !set.add(a + sep + b) {
					return
				}
			}
		}
	}
}

func stageDates(set *candidateSet, seeds []string) {
	for _, seed := range seeds {
		for _, f := range dateForms(strings.TrimSpace(seed)) {
			if !set.add(f) {
				return
			}
		}
	}
}

func stageSuffixes(set *candidateSet, seeds []string) {
	suffixes := append(slices.Clone(commonSuffixes), yearTokens(seeds)...)
	for _, w := range set.snapshot() {
		for _, suf := range suffixes {
			if !set.add(w + suf) {
				return
			}
		}
	}
}

func stageYears(set *candidateSet, r YearRange) {
	for _, w := range set.snapshot() {
		for y := r.Start; y <= r.End; y++ {
			full := strconv.Itoa(y)
			if !set.add(w + full) {
				return
			}
			if !set.add(w + full[2:]) {
				return
			}
		}
	}
}

// substitute replaces every rune present in the table, case-insensitively,
// in a single pass.
func substitute(w string, table map[rune]rune) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := table[unicode.ToLower(r)]; ok {
			return sub
		}
		return r
	}, w)
}

// candidateSet is an order-preserving unique collection with a hard size cap.
// Once the cap is hit, add refuses further words so generation stops at the
// same point for identical inputs.
type candidateSet struct {
	seen      map[string]bool
	words     []string
	limit     int
	truncated bool
}

func newCandidateSet(limit int) *candidateSet {
	return &candidateSet{seen: make(map[string]bool), limit: limit}
}

// add reports whether the set can accept more words. Duplicates, empty
// strings, and words beyond MaxWordLength are skipped without consuming
// capacity.
func (s *candidateSet) add(w string) bool {
	if s.truncated {
		return false
	}
	if w == "" || len(w) > MaxWordLength || s.seen[w] {
		return true
	}
	if len(s.words) >= s.limit {
		s.truncated = true
		return false
	}
	s.seen[w] = true
	s.words = append(s.words, w)
	return true
}

func (s *candidateSet) full() bool {
	return s.truncated
}

// snapshot freezes the current contents so a stage can iterate while adding.
func (s *candidateSet) snapshot() []string {
	return slices.Clone(s.words)
}

func (s *candidateSet) result() Result {
	return Result{Words: s.words, Truncated: s.truncated}
}
