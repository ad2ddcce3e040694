// File: similar.go
// Title: Fuzzy Matching
// Description: Scores candidate strings against a mistyped name and formats
//              "did you mean" hints.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"sort"
	"strings"
)

// Scoring weights; prefixes count most because names are typed left to right.
const (
	scoreExact          = 1000
	scorePrefixWeight   = 20
	scoreContainsWeight = 15
	scoreDistanceWeight = 5
)

// FindSimilar returns up to maxResults candidates close to target, best first.
// Comparison is case-insensitive; ties keep candidate order.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if len(candidates) == 0 || maxResults <= 0 {
		return nil
	}

	type match struct {
		value string
		score int
	}

	target = strings.ToLower(strings.TrimSpace(target))
	var matches []match
	for _, c := range candidates {
		if score := similarity(target, strings.ToLower(c)); score > 0 {
			matches = append(matches, match{c, score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.value
	}
	return result
}

func similarity(a, b string) int {
	if a == b {
		return scoreExact
	}

	ra, rb := []rune(a), []rune(b)
	score := commonPrefixLength(ra, rb) * scorePrefixWeight

	if a != "" && strings.Contains(b, a) {
		score += len(ra) * scoreContainsWeight
	} else if b != "" && strings.Contains(a, b) {
		score += len(rb) * scoreContainsWeight
	}

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if dist := Levenshtein(a, b); maxLen > 0 && dist <= maxLen/2 {
		score += (maxLen - dist) * scoreDistanceWeight
	}
	return score
}

func commonPrefixLength(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// Levenshtein returns the edit distance between a and b in runes
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// FormatSuggestion renders "<entity> '<name>' not found" followed by the
// suggestions, if any.
func FormatSuggestion(entity, name string, suggestions []string) string {
	var sb strings.Builder
	sb.WriteString(entity)
	sb.WriteString(" '")
	sb.WriteString(name)
	sb.WriteString("' not found")
	if len(suggestions) > 0 {
		sb.WriteString("; did you mean ")
		for i, s := range suggestions {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("'" + s + "'")
		}
		sb.WriteString("?")
	}
	return sb.String()
}
