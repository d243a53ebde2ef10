package wordlist

// Options selects which transformation stages run and bounds the output.
// The zero value produces only the normalized seed base forms.
type Options struct {
	// CaseVariation emits lowercase, UPPERCASE, and Capitalized variants of
	// every base form.
	CaseVariation bool

	// Leetspeak emits leet-substituted variants of every candidate produced
	// by the earlier stages.
	Leetspeak bool

	// Suffixes appends the common suffix set plus year tokens derived from
	// date-like seeds to every candidate.
	Suffixes bool

	// Pairs concatenates every ordered pair of distinct base forms, both
	// plain and joined by the common separators. Requires at least two seeds
	// to have any effect.
	Pairs bool

	// Dates emits common reformattings of date-like seeds (DDMMYYYY,
	// YYYYMMDD, two-digit-year variants).
	Dates bool

	// Years optionally appends every year of an inclusive range, in both
	// four-digit and two-digit form, to every candidate.
	Years *YearRange

	// MaxCandidates overrides DefaultMaxCandidates when positive.
	MaxCandidates int
}

// AllOptions enables every transformation stage with the default cap.
// The year-range appendix stays off because it needs an explicit range.
func AllOptions() Options {
	return Options{
		CaseVariation: true,
		Leetspeak:     true,
		Suffixes:      true,
		Pairs:         true,
		Dates:         true,
	}
}

func (o Options) limit() int {
	if o.MaxCandidates > 0 {
		return o.MaxCandidates
	}
	return DefaultMaxCandidates
}

// Result is the outcome of a single generation run.
type Result struct {
	// Words holds the unique candidates in first-seen order.
	Words []string

	// Truncated reports that the output cap was reached and generation
	// stopped early. Truncation is a successful outcome, not an error.
	Truncated bool
}
