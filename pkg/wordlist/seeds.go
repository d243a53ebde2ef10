package wordlist

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	seedSplitRegex = regexp.MustCompile(`[\s,;]+`)
	digitRunRegex  = regexp.MustCompile(`\d+`)
	datePartsRegex = regexp.MustCompile(`^(\d{1,4})[-/](\d{1,2})[-/](\d{1,4})$`)
)

// SplitSeeds tokenizes free-form user input into seed tokens. Tokens are
// separated by whitespace, commas, or semicolons; tokens without a single
// letter or digit are discarded.
func SplitSeeds(input string) []string {
	var seeds []string
	for _, tok := range seedSplitRegex.Split(input, -1) {
		tok = strings.TrimSpace(tok)
		if tok == "" || !hasAlnum(tok) {
			continue
		}
		seeds = append(seeds, tok)
	}
	return seeds
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// baseForms normalizes seeds into the base forms the pipeline works on: the
// trimmed original, its lowercase copy, and any digit runs extracted from
// mixed seeds ("rex2004" contributes "2004"). Order of first appearance is
// preserved; empty and whitespace-only seeds are dropped silently.
func baseForms(seeds []string) []string {
	var bases []string
	seen := make(map[string]bool)
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		bases = append(bases, s)
	}
	for _, seed := range seeds {
		seed = strings.TrimSpace(seed)
		if seed == "" {
			continue
		}
		add(seed)
		add(strings.ToLower(seed))
	}
	for _, seed := range seeds {
		seed = strings.TrimSpace(seed)
		for _, digits := range digitRunRegex.FindAllString(seed, -1) {
			if digits != seed {
				add(digits)
			}
		}
	}
	return bases
}

// dateForms returns common reformattings of a date-like seed, or nil when the
// seed does not look like a date. Recognized shapes are digit groups joined
// by "-" or "/" and contiguous 4/6/8-digit runs.
func dateForms(seed string) []string {
	var forms []string
	if m := datePartsRegex.FindStringSubmatch(seed); m != nil {
		d, mo, y := pad2(m[1]), pad2(m[2]), m[3]
		if len(m[1]) == 4 {
			// year-first input, swap into day-month-year order
			d, mo, y = pad2(m[3]), pad2(m[2]), m[1]
		}
		forms = append(forms, d+mo+y)
		if len(y) == 4 {
			forms = append(forms, y+mo+d, d+mo+y[2:], y, y[2:])
		}
		return forms
	}
	if digitRunRegex.FindString(seed) != seed {
		return nil
	}
	switch len(seed) {
	case 8:
		// assume DDMMYYYY
		d, mo, y := seed[:2], seed[2:4], seed[4:]
		forms = append(forms, y+mo+d, d+mo+y[2:], y, y[2:])
	case 6:
		// assume DDMMYY, nothing beyond the two-digit year to derive
		forms = append(forms, seed[4:])
	case 4:
		if isYear(seed) {
			forms = append(forms, seed[2:])
		}
	}
	return forms
}

// yearTokens extracts four-digit years found anywhere in the seeds, each with
// its two-digit form, for use as extra suffixes.
func yearTokens(seeds []string) []string {
	var tokens []string
	seen := make(map[string]bool)
	for _, seed := range seeds {
		for _, run := range digitRunRegex.FindAllString(seed, -1) {
			if len(run) == 4 && isYear(run) && !seen[run] {
				seen[run] = true
				tokens = append(tokens, run, run[2:])
			}
		}
	}
	return tokens
}

func isYear(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= minYear && n <= maxYear
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
