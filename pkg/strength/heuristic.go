package strength

import (
	"math"
	"strings"
	"unicode"
)

// heuristicStrategy is the always-available basic model: charset entropy with
// penalties for predictable structure. It never fails.
type heuristicStrategy struct{}

func (heuristicStrategy) score(password string) (int, error) {
	lower := strings.ToLower(password)
	if commonPasswords[lower] {
		return 5, nil
	}

	bits := entropyBits(password)
	if containsCommonPassword(lower) {
		bits /= 2
	}
	if hasSequentialDigits(password, 4) {
		bits -= 10
	}
	if hasRepeatedRun(password, 3) {
		bits -= 10
	}
	if bits < 0 {
		bits = 0
	}
	return bitsToScore(bits), nil
}

func (heuristicStrategy) explain(password string) []string {
	var hints []string
	if len([]rune(password)) < 12 {
		hints = append(hints, "Use at least 12 characters")
	}

	hasLower, hasUpper, hasDigit, hasSymbol := charClasses(password)
	if !hasLower {
		hints = append(hints, "Add a lowercase letter")
	}
	if !hasUpper {
		hints = append(hints, "Add an uppercase letter")
	}
	if !hasDigit {
		hints = append(hints, "Add a digit")
	}
	if !hasSymbol {
		hints = append(hints, "Add a symbol")
	}
	if containsCommonPassword(strings.ToLower(password)) {
		hints = append(hints, "Avoid common words")
	}
	if hasSequentialDigits(password, 4) {
		hints = append(hints, "Avoid sequential digits")
	}
	if hasRepeatedRun(password, 3) {
		hints = append(hints, "Avoid repeated characters")
	}
	return hints
}

// entropyBits estimates length × log2(charset), where the charset sums the
// sizes of the character classes present: 26 lower, 26 upper, 10 digits, 32
// for everything else.
func entropyBits(password string) float64 {
	hasLower, hasUpper, hasDigit, hasSymbol := charClasses(password)

	charset := 0
	if hasLower {
		charset += 26
	}
	if hasUpper {
		charset += 26
	}
	if hasDigit {
		charset += 10
	}
	if hasSymbol {
		charset += 32
	}
	if charset == 0 {
		return 0
	}
	return float64(len([]rune(password))) * math.Log2(float64(charset))
}

// bitsToScore maps entropy bits onto the 0–100 scale piecewise over the
// 28/36/60/80-bit tier boundaries, which correspond to scores 20/40/60/80.
func bitsToScore(bits float64) int {
	segments := []struct{ bits, score float64 }{
		{0, 0}, {28, 20}, {36, 40}, {60, 60}, {80, 80}, {100, 100},
	}
	if bits >= 100 {
		return 100
	}
	for i := 1; i < len(segments); i++ {
		if bits <= segments[i].bits {
			lo, hi := segments[i-1], segments[i]
			frac := (bits - lo.bits) / (hi.bits - lo.bits)
			return int(math.Round(lo.score + frac*(hi.score-lo.score)))
		}
	}
	return 100
}

func charClasses(password string) (hasLower, hasUpper, hasDigit, hasSymbol bool) {
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return
}

func containsCommonPassword(lower string) bool {
	for w := range commonPasswords {
		if len(w) >= 4 && strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func hasSequentialDigits(password string, minRun int) bool {
	runes := []rune(password)
	run := 1
	for i := 1; i < len(runes); i++ {
		if unicode.IsDigit(runes[i]) && unicode.IsDigit(runes[i-1]) &&
			(runes[i] == runes[i-1]+1 || runes[i] == runes[i-1]-1) {
			run++
			if run >= minRun {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

func hasRepeatedRun(password string, minRun int) bool {
	runes := []rune(password)
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= minRun {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}
