package textstats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_NilAndEmpty(t *testing.T) {
	t.Run("nil text", func(t *testing.T) {
		got := Compute(nil)
		assert.Equal(t, Statistics{}, got)
		assert.Equal(t, 0.0, got.AvgLen)
	})

	t.Run("empty string", func(t *testing.T) {
		empty := ""
		assert.Equal(t, Statistics{}, Compute(&empty))
	})

	t.Run("punctuation only", func(t *testing.T) {
		assert.Equal(t, Statistics{}, ComputeString("... !!! ,,, ---"))
	})

	t.Run("whitespace only", func(t *testing.T) {
		assert.Equal(t, Statistics{}, ComputeString(" \t\n  "))
	})
}

func TestCompute_KnownScenarios(t *testing.T) {
	t.Run("mixed case with trailing period", func(t *testing.T) {
		got := ComputeString("Hello hello world.")
		assert.Equal(t, Statistics{Words: 3, Unique: 2, AvgLen: 5.0}, got)
	})

	t.Run("comma separated", func(t *testing.T) {
		got := ComputeString("One, two, two.")
		assert.Equal(t, Statistics{Words: 3, Unique: 2, AvgLen: 3.0}, got)
	})

	t.Run("single word", func(t *testing.T) {
		got := ComputeString("word")
		assert.Equal(t, Statistics{Words: 1, Unique: 1, AvgLen: 4.0}, got)
	})
}

// Guards against an integer-division regression: (2+3)/2 must be 2.5, not 2.
func TestCompute_RealDivision(t *testing.T) {
	got := ComputeString("aa bbb")
	assert.Equal(t, 2.5, got.AvgLen)
}

func TestCompute_RoundingBoundary(t *testing.T) {
	// Seven 1-rune tokens plus one 10-rune token: 17/8 = 2.125 exactly.
	// Half-away-from-zero rounding gives 2.13, not 2.12.
	got := ComputeString("a a a a a a a aaaaaaaaaa")
	assert.Equal(t, 8, got.Words)
	assert.Equal(t, 2.13, got.AvgLen)
}

func TestCompute_Unicode(t *testing.T) {
	// Rune-based lengths: "naïve" and "café" are 5 and 4 characters.
	got := ComputeString("naïve café naïve")
	assert.Equal(t, 3, got.Words)
	assert.Equal(t, 2, got.Unique)
	assert.InDelta(t, 4.67, got.AvgLen, 1e-9)
}

func TestCompute_Properties(t *testing.T) {
	inputs := []string{
		"",
		"one",
		"The quick brown fox jumps over the lazy dog",
		"A a A a B b",
		"state-of-the-art, really!",
		"42 foo 42 bar 42",
		"naïve NAÏVE Café",
	}

	for _, s := range inputs {
		got := ComputeString(s)

		t.Run("unique <= words", func(t *testing.T) {
			assert.LessOrEqual(t, got.Unique, got.Words, "input %q", s)
		})

		t.Run("avg_len zero iff no words", func(t *testing.T) {
			assert.GreaterOrEqual(t, got.AvgLen, 0.0, "input %q", s)
			if got.Words == 0 {
				assert.Equal(t, 0.0, got.AvgLen, "input %q", s)
			} else {
				assert.Greater(t, got.AvgLen, 0.0, "input %q", s)
			}
		})

		t.Run("case invariance", func(t *testing.T) {
			upper := ComputeString(strings.ToUpper(s))
			assert.Equal(t, got, upper, "input %q", s)
		})
	}
}

func TestCompute_PunctuationInvariance(t *testing.T) {
	plain := ComputeString("alpha beta gamma beta")
	decorated := ComputeString("alpha, (beta)! gamma... 'beta'")
	assert.Equal(t, plain.Words, decorated.Words)
	assert.Equal(t, plain.Unique, decorated.Unique)
	assert.Equal(t, plain.AvgLen, decorated.AvgLen)
}
