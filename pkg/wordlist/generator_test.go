package wordlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pwkit/pkg/wordlist"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields empty result", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate(nil, wordlist.Options{})
		assert.Empty(t, result.Words)
		assert.False(t, result.Truncated)
	})

	t.Run("whitespace-only seeds are discarded", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"  ", "\t", ""}, wordlist.AllOptions())
		assert.Empty(t, result.Words)
		assert.False(t, result.Truncated)
	})

	t.Run("no options reduces to base forms", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"Alice"}, wordlist.Options{})
		assert.Equal(t, []string{"Alice", "alice"}, result.Words)
	})

	t.Run("case variation", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"Rex"}, wordlist.Options{CaseVariation: true})
		assert.Contains(t, result.Words, "rex")
		assert.Contains(t, result.Words, "REX")
		assert.Contains(t, result.Words, "Rex")
	})

	t.Run("leetspeak", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"password"}, wordlist.Options{Leetspeak: true})
		assert.Contains(t, result.Words, "p4ssw0rd")
		assert.Contains(t, result.Words, "p455w0rd")
	})

	t.Run("pair symmetry", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"alice", "2020"}, wordlist.Options{Pairs: true})
		assert.Contains(t, result.Words, "alice2020")
		assert.Contains(t, result.Words, "2020alice")
	})

	t.Run("separator-joined pairs", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"alice", "rex"}, wordlist.Options{Pairs: true})
		assert.Contains(t, result.Words, "alice.rex")
		assert.Contains(t, result.Words, "alice_rex")
		assert.Contains(t, result.Words, "rex-alice")
	})

	t.Run("pairs need two seeds", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"alice"}, wordlist.Options{Pairs: true})
		assert.Equal(t, []string{"alice"}, result.Words)
	})

	t.Run("digit runs join the base forms", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"rex2004"}, wordlist.Options{})
		assert.Contains(t, result.Words, "2004")
	})

	t.Run("suffix augmentation", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"rex"}, wordlist.Options{Suffixes: true})
		assert.Contains(t, result.Words, "rex1")
		assert.Contains(t, result.Words, "rex123")
		assert.Contains(t, result.Words, "rex!")
	})

	t.Run("year tokens from date-like seeds become suffixes", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"rex", "1999"}, wordlist.Options{Suffixes: true})
		assert.Contains(t, result.Words, "rex1999")
		assert.Contains(t, result.Words, "rex99")
	})

	t.Run("date expansion", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"14-02-1999"}, wordlist.Options{Dates: true})
		assert.Contains(t, result.Words, "14021999")
		assert.Contains(t, result.Words, "19990214")
		assert.Contains(t, result.Words, "140299")
		assert.Contains(t, result.Words, "1999")
		assert.Contains(t, result.Words, "99")
	})

	t.Run("date expansion of contiguous digits", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"14021999"}, wordlist.Options{Dates: true})
		assert.Contains(t, result.Words, "19990214")
		assert.Contains(t, result.Words, "140299")
	})

	t.Run("year range appendix", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"rex"}, wordlist.Options{
			Years: &wordlist.YearRange{Start: 2020, End: 2021},
		})
		assert.Contains(t, result.Words, "rex2020")
		assert.Contains(t, result.Words, "rex20")
		assert.Contains(t, result.Words, "rex2021")
		assert.Contains(t, result.Words, "rex21")
	})

	t.Run("candidates beyond the length bound are dropped", func(t *testing.T) {
		t.Parallel()

		long := make([]byte, 70)
		for i := range long {
			long[i] = 'a'
		}
		result := wordlist.Generate([]string{string(long)}, wordlist.Options{})
		assert.Empty(t, result.Words)
	})
}

func TestGenerateDeterminism(t *testing.T) {
	t.Parallel()

	seeds := []string{"alice", "Rex2004", "14-02-1999"}
	opts := wordlist.AllOptions()

	first := wordlist.Generate(seeds, opts)
	for i := 0; i < 5; i++ {
		again := wordlist.Generate(seeds, opts)
		require.Equal(t, first.Words, again.Words)
		require.Equal(t, first.Truncated, again.Truncated)
	}
}

func TestGenerateNoDuplicates(t *testing.T) {
	t.Parallel()

	result := wordlist.Generate([]string{"alice", "ALICE", "Alice", "rex", "1999"}, wordlist.AllOptions())

	seen := make(map[string]bool, len(result.Words))
	for _, w := range result.Words {
		require.False(t, seen[w], "duplicate candidate %q", w)
		seen[w] = true
	}
}

func TestGenerateMonotonicOptions(t *testing.T) {
	t.Parallel()

	seeds := []string{"alice", "rex", "1999"}
	base := wordlist.Options{}
	grown := []wordlist.Options{
		{CaseVariation: true},
		{CaseVariation: true, Leetspeak: true},
		{CaseVariation: true, Leetspeak: true, Pairs: true},
		{CaseVariation: true, Leetspeak: true, Pairs: true, Dates: true},
		{CaseVariation: true, Leetspeak: true, Pairs: true, Dates: true, Suffixes: true},
	}

	prev := wordlist.Generate(seeds, base)
	for _, opts := range grown {
		next := wordlist.Generate(seeds, opts)
		require.GreaterOrEqual(t, len(next.Words), len(prev.Words))

		seen := make(map[string]bool, len(next.Words))
		for _, w := range next.Words {
			seen[w] = true
		}
		for _, w := range prev.Words {
			require.True(t, seen[w], "candidate %q disappeared after enabling an option", w)
		}
		prev = next
	}
}

func TestGenerateCap(t *testing.T) {
	t.Parallel()

	t.Run("overflow truncates at the cap", func(t *testing.T) {
		t.Parallel()

		opts := wordlist.AllOptions()
		opts.MaxCandidates = 25
		result := wordlist.Generate([]string{"alice", "bob", "carol", "rex"}, opts)

		assert.Len(t, result.Words, 25)
		assert.True(t, result.Truncated)
	})

	t.Run("truncation point is deterministic", func(t *testing.T) {
		t.Parallel()

		opts := wordlist.AllOptions()
		opts.MaxCandidates = 40
		seeds := []string{"alice", "bob", "1999"}

		first := wordlist.Generate(seeds, opts)
		second := wordlist.Generate(seeds, opts)
		require.True(t, first.Truncated)
		require.Equal(t, first.Words, second.Words)
	})

	t.Run("result under the cap is not truncated", func(t *testing.T) {
		t.Parallel()

		result := wordlist.Generate([]string{"alice"}, wordlist.Options{CaseVariation: true})
		assert.False(t, result.Truncated)
	})
}
