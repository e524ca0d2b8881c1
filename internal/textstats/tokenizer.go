// Package textstats computes word-level statistics over plain text.
// Tokenization treats any run of Unicode letters/digits as a token;
// punctuation and whitespace are pure separators and never attach to a token.
package textstats

import (
	"strings"
	"unicode"
)

// Token is a single token extracted from text.
type Token struct {
	// Term is the lowercased token text.
	Term string

	// Position is the 0-based index of the token in the token stream.
	Position int

	// Start and End are byte offsets into the original (non-lowercased) text,
	// so callers can map tokens back to the source.
	Start int
	End   int
}

// Tokenize extracts all tokens from text in order of appearance.
// Terms are lowercased; offsets refer to the original text.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{
				Term:     strings.ToLower(text[start:i]),
				Position: len(tokens),
				Start:    start,
				End:      i,
			})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{
			Term:     strings.ToLower(text[start:]),
			Position: len(tokens),
			Start:    start,
			End:      len(text),
		})
	}
	return tokens
}

// Terms returns just the lowercased token terms, in order.
func Terms(text string) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, len(tokens))
	for i, t := range tokens {
		terms[i] = t.Term
	}
	return terms
}
