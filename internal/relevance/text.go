// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relevance scores paper records against a configured interest
// profile. It fuses lexical keyword overlap, subject-category membership,
// and a semantic similarity signal into one bounded score per paper, with
// optional citation-graph re-weighting of whole batches.
package relevance

import (
	"regexp"
	"strings"
)

// wordRe tokenizes free text into word runs. Matches the \w+ class: letters,
// digits, underscore.
var wordRe = regexp.MustCompile(`\w+`)

// Normalize lowercases text and collapses runs of whitespace.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Tokenize returns the lowercase word tokens of text in order.
func Tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// wordSet returns the set of lowercase word tokens in text.
func wordSet(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range Tokenize(text) {
		words[w] = struct{}{}
	}
	return words
}

// clamp01 bounds v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
