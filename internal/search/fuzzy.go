// Package search scores and ranks template names against a typed query.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	substringBase = 1000
	charBase      = 100
	usageWeight   = 10
	maxSuggest    = 3
)

// Match reports whether query matches text and how well. Matching is
// case-insensitive. A contiguous occurrence scores 1000 minus its rune
// offset; otherwise every query rune must appear in order, each adding 100
// minus its position in text.
func Match(query, text string) (bool, int) {
	if query == "" {
		return true, 0
	}

	q := []rune(strings.ToLower(query))
	t := []rune(strings.ToLower(text))

	if idx := indexRunes(t, q); idx >= 0 {
		return true, substringBase - idx
	}

	qi, score := 0, 0
	for i, c := range t {
		if qi < len(q) && c == q[qi] {
			score += charBase - i
			qi++
		}
	}
	if qi == len(q) {
		return true, score
	}
	return false, 0
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) > len(haystack) {
		return -1
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j := range needle {
			if haystack[i+j] != needle[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

// Score is the display score of a matching name
func Score(matchScore, usageCount int) int {
	return matchScore + usageCount*usageWeight
}

type ranked struct {
	name  string
	lower string
	score int
}

// Rank filters names by query and orders them by match score plus usage
// boost, highest first, ties broken by case-insensitive name. An empty query
// keeps every name in alphabetical order.
func Rank(names []string, query string, usage map[string]int) []string {
	if query == "" {
		return Alphabetical(names)
	}

	matches := make([]ranked, 0, len(names))
	for _, name := range names {
		ok, s := Match(query, name)
		if !ok {
			continue
		}
		matches = append(matches, ranked{
			name:  name,
			lower: strings.ToLower(name),
			score: Score(s, usage[name]),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		if matches[i].lower != matches[j].lower {
			return matches[i].lower < matches[j].lower
		}
		return matches[i].name < matches[j].name
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// Alphabetical returns a case-insensitively sorted copy of names
func Alphabetical(names []string) []string {
	out := append([]string(nil), names...)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i]), strings.ToLower(out[j])
		if li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})
	return out
}

// Contains returns the names containing pattern, ignoring case
func Contains(names []string, pattern string) []string {
	if pattern == "" {
		return append([]string(nil), names...)
	}
	p := strings.ToLower(pattern)
	var out []string
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), p) {
			out = append(out, name)
		}
	}
	return out
}

// Suggest returns up to three catalog names close to a mistyped name
func Suggest(name string, candidates []string) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}

	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(ranks) == 0 {
		ranks = nearByEditDistance(name, candidates)
	}
	sort.Sort(ranks)

	var out []string
	for _, r := range ranks {
		if len(out) == maxSuggest {
			break
		}
		out = append(out, r.Target)
	}
	return out
}

// nearByEditDistance catches transpositions and typos that are not
// subsequences of any candidate
func nearByEditDistance(name string, candidates []string) fuzzy.Ranks {
	lower := strings.ToLower(name)
	limit := len([]rune(lower)) / 3
	if limit < 2 {
		limit = 2
	}

	var ranks fuzzy.Ranks
	for i, candidate := range candidates {
		d := fuzzy.LevenshteinDistance(lower, strings.ToLower(candidate))
		if d <= limit {
			ranks = append(ranks, fuzzy.Rank{
				Source:        name,
				Target:        candidate,
				Distance:      d,
				OriginalIndex: i,
			})
		}
	}
	return ranks
}
