// Package report builds analysis reports on top of the core word statistics:
// term frequencies, top-N words, and an LLM token estimate.
package report

import (
	"sort"
	"unicode/utf8"

	"textstat/internal/textstats"
)

// charsPerToken is the estimation calibration (~4 characters per token
// for English text, the common heuristic for LLM tokenizers).
const charsPerToken = 4.0

// WordCount pairs a term with its occurrence count.
type WordCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Report is the full analysis result for one source text.
type Report struct {
	Source        string               `json:"source"`
	Stats         textstats.Statistics `json:"stats"`
	TopWords      []WordCount          `json:"top_words,omitempty"`
	TokenEstimate int                  `json:"token_estimate"`
}

// Frequency returns the case-insensitive term frequency map for text.
// Tokenization rules match textstats: letter/digit runs, punctuation discarded.
func Frequency(text string) map[string]int {
	freq := make(map[string]int)
	for _, term := range textstats.Terms(text) {
		freq[term]++
	}
	return freq
}

// TopWords returns up to n terms ordered by descending count,
// ties broken alphabetically. n <= 0 returns nil.
func TopWords(text string, n int) []WordCount {
	if n <= 0 {
		return nil
	}

	freq := Frequency(text)
	counts := make([]WordCount, 0, len(freq))
	for term, count := range freq {
		counts = append(counts, WordCount{Term: term, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Term < counts[j].Term
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// EstimateTokens estimates how many LLM tokens text would consume.
// Uses rune count for proper unicode handling.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return int(float64(utf8.RuneCountInString(text)) / charsPerToken)
}

// Build assembles the full report for one source text.
func Build(source, text string, topN int) Report {
	return Report{
		Source:        source,
		Stats:         textstats.ComputeString(text),
		TopWords:      TopWords(text, topN),
		TokenEstimate: EstimateTokens(text),
	}
}
