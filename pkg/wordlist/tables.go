package wordlist

const (
	// DefaultMaxCandidates caps a generation run unless Options.MaxCandidates
	// overrides it. The cap bounds memory for pathological seed/option
	// combinations; hitting it is reported via Result.Truncated, not an error.
	DefaultMaxCandidates = 50000

	// MaxWordLength is the longest candidate kept in a result. Concatenation
	// products beyond it are silently dropped.
	MaxWordLength = 64
)

// leetTable maps letters to their usual leetspeak digit. Substitutions run in
// a single simultaneous pass over a word, never per-character combinatorially,
// so each base form contributes a fixed number of variants.
var leetTable = map[rune]rune{
	'a': '4',
	'b': '8',
	'e': '3',
	'g': '9',
	'i': '1',
	'l': '1',
	'o': '0',
	's': '5',
	't': '7',
	'z': '2',
}

// leetVowels is the lighter pass people actually type: only vowels swapped,
// consonants kept ("p4ssw0rd" rather than "p455w0rd").
var leetVowels = map[rune]rune{
	'a': '4',
	'e': '3',
	'i': '1',
	'o': '0',
}

// commonSuffixes are appended verbatim by the suffix stage. Year tokens
// derived from date-like seeds are added on top per run.
var commonSuffixes = []string{"1", "123", "1234", "!", "@", "#", "2024", "2025", "2026"}

// pairSeparators join ordered seed pairs in addition to plain concatenation.
var pairSeparators = []string{".", "_", "-"}
