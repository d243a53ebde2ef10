package strength

import (
	"fmt"

	"github.com/nbutton23/zxcvbn-go"
)

// scoreBands maps the entropy model's 0–4 score onto band midpoints of the
// 0–100 scale, so the shared label thresholds see comparable numbers from
// both strategies.
var scoreBands = [...]int{10, 30, 50, 70, 90}

// probeAdvanced exercises the entropy model once on a fixed sample. A panic
// or out-of-range score disables the advanced strategy for the process.
func probeAdvanced() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	res := zxcvbn.PasswordStrength("correct horse battery staple", nil)
	return res.Score >= 0 && res.Score < len(scoreBands)
}

// zxcvbnStrategy delegates to the zxcvbn entropy model. Internal panics are
// converted to ErrEstimation: a model that worked at probe time and fails
// mid-run is broken, and the caller must hear about it.
type zxcvbnStrategy struct{}

func (zxcvbnStrategy) score(password string) (score int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrEstimation, r)
		}
	}()

	res := zxcvbn.PasswordStrength(password, nil)
	if res.Score < 0 || res.Score >= len(scoreBands) {
		return 0, fmt.Errorf("%w: score %d out of range", ErrEstimation, res.Score)
	}
	return scoreBands[res.Score], nil
}

// explain derives hints from the model's match sequence. It is best-effort:
// a panic here yields no hints rather than an error, since the score already
// succeeded.
func (zxcvbnStrategy) explain(password string) (hints []string) {
	defer func() {
		if recover() != nil {
			hints = nil
		}
	}()

	if len([]rune(password)) < 12 {
		hints = append(hints, "Use at least 12 characters")
	}

	seen := make(map[string]bool)
	res := zxcvbn.PasswordStrength(password, nil)
	for _, m := range res.MatchSequence {
		var hint string
		switch m.Pattern {
		case "dictionary":
			hint = "Avoid common words and names"
		case "sequence":
			hint = "Avoid sequences like abc or 6543"
		case "repeat":
			hint = "Avoid repeated characters"
		case "spatial":
			hint = "Avoid keyboard patterns like qwerty"
		case "date":
			hint = "Avoid dates and years"
		default:
			continue
		}
		if !seen[hint] {
			seen[hint] = true
			hints = append(hints, hint)
		}
	}
	return hints
}
