package strength

// MaxPasswordLength bounds estimation cost. Longer passwords are truncated
// before scoring, not rejected.
const MaxPasswordLength = 128

// Label is the qualitative tier derived from a verdict's score.
type Label int

const (
	VeryWeak Label = iota
	Weak
	Fair
	Strong
	VeryStrong
)

func (l Label) String() string {
	switch l {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Fair:
		return "fair"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	default:
		return "unknown"
	}
}

// MarshalText renders the label as its human-readable name in JSON and text
// encodings.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// LabelFor maps a 0–100 score onto its label. The thresholds are fixed and
// strategy-independent: both estimation strategies feed through this one
// mapping.
func LabelFor(score int) Label {
	switch {
	case score < 20:
		return VeryWeak
	case score < 40:
		return Weak
	case score < 60:
		return Fair
	case score < 80:
		return Strong
	default:
		return VeryStrong
	}
}

// Verdict is the outcome of one estimation call. It is created fresh per
// call and never mutated afterwards.
type Verdict struct {
	// Score is normalized to 0–100.
	Score int `json:"score"`

	// Label is derived from Score via LabelFor.
	Label Label `json:"label"`

	// Hints are short imperative suggestions, ordered by importance. Empty
	// for passwords with nothing left to improve.
	Hints []string `json:"hints,omitempty"`
}

// strategy is the capability set both estimation models implement.
type strategy interface {
	score(password string) (int, error)
	explain(password string) []string
}

// Estimator scores passwords with the strategy chosen at construction time.
type Estimator struct {
	strategy strategy
	advanced bool
}

// Option configures estimator construction.
type Option func(*Estimator)

// WithBasicOnly forces the heuristic strategy even when the advanced entropy
// model is available, standing in for an environment without it.
func WithBasicOnly() Option {
	return func(e *Estimator) { e.strategy = heuristicStrategy{} }
}

// New builds an Estimator, probing the advanced entropy model once. If the
// probe fails the heuristic strategy serves every call for the lifetime of
// the returned Estimator; there is no later re-probe or per-call fallback.
func New(opts ...Option) *Estimator {
	e := &Estimator{}
	for _, opt := range opts {
		opt(e)
	}
	if e.strategy == nil {
		if probeAdvanced() {
			e.strategy = zxcvbnStrategy{}
			e.advanced = true
		} else {
			e.strategy = heuristicStrategy{}
		}
	}
	return e
}

// Advanced reports whether the entropy-model strategy is active.
func (e *Estimator) Advanced() bool {
	return e.advanced
}

// Estimate scores one password. An empty password yields the lowest label
// with a hint, not an error; passwords beyond MaxPasswordLength are truncated
// first. A non-nil error means the active strategy itself failed and the
// verdict must be discarded.
func (e *Estimator) Estimate(password string) (Verdict, error) {
	if password == "" {
		return Verdict{
			Score: 0,
			Label: VeryWeak,
			Hints: []string{"Enter a password"},
		}, nil
	}

	if runes := []rune(password); len(runes) > MaxPasswordLength {
		password = string(runes[:MaxPasswordLength])
	}

	score, err := e.strategy.score(password)
	if err != nil {
		return Verdict{}, err
	}

	return Verdict{
		Score: score,
		Label: LabelFor(score),
		Hints: e.strategy.explain(password),
	}, nil
}
