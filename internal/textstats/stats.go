package textstats

import (
	"math"
	"unicode/utf8"
)

// Statistics is the result of a single computation over one text.
// Invariants: Unique <= Words; AvgLen >= 0; AvgLen == 0 exactly when Words == 0.
type Statistics struct {
	// Words is the total token count, duplicates included.
	Words int `json:"words"`

	// Unique is the number of distinct lowercased tokens.
	Unique int `json:"unique"`

	// AvgLen is the mean token length in runes, rounded to 2 decimal places.
	AvgLen float64 `json:"avg_len"`
}

// Compute calculates word statistics for an optional text.
// A nil text yields the zero Statistics; it never returns an error.
func Compute(text *string) Statistics {
	if text == nil {
		return Statistics{}
	}
	return ComputeString(*text)
}

// ComputeString calculates word statistics for text.
//
// The text is lowercased and split into tokens (see Tokenize). Words counts
// every token, Unique counts distinct terms, and AvgLen is the real-valued
// mean of token rune lengths rounded half-away-from-zero to 2 decimals
// (math.Round semantics). Empty or punctuation-only input yields the zero
// Statistics. The function is pure and safe for concurrent use.
func ComputeString(text string) Statistics {
	terms := Terms(text)
	if len(terms) == 0 {
		return Statistics{}
	}

	seen := make(map[string]struct{}, len(terms))
	totalLen := 0
	for _, term := range terms {
		seen[term] = struct{}{}
		// Rune count, not byte count: "naïve" is 5 characters long.
		totalLen += utf8.RuneCountInString(term)
	}

	return Statistics{
		Words:  len(terms),
		Unique: len(seen),
		AvgLen: round2(float64(totalLen) / float64(len(terms))),
	}
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
