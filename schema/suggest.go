package schema

import (
	"sort"
	"strings"
)

const (
	// maxSuggestDistance is the edit-distance threshold for a field
	// name to count as a near miss.
	maxSuggestDistance = 3

	// maxSuggestions caps how many candidates a suggestion returns.
	maxSuggestions = 5
)

// spellingVariants pairs US spellings with their UK forms. Both
// directions are tried when proposing substitutions.
var spellingVariants = [][2]string{
	{"color", "colour"},
	{"canceled", "cancelled"},
	{"center", "centre"},
	{"customize", "customise"},
	{"favorite", "favourite"},
	{"fulfill", "fulfil"},
	{"program", "programme"},
	{"license", "licence"},
}

// SuggestFields proposes near-miss field names on typeName for a
// fieldName that failed an existence check. Candidates within
// Levenshtein distance 3 are returned closest first, capped at 5.
// US/UK spelling-variant substitutions that name a real field are
// placed ahead of the edit-distance candidates. An unknown type yields
// no suggestions.
func (x *Index) SuggestFields(typeName, fieldName string) []string {
	fields, err := x.Fields(typeName)
	if err != nil || len(fields) == 0 {
		return nil
	}

	byLower := make(map[string]string, len(fields))
	for _, f := range fields {
		byLower[strings.ToLower(f.Name)] = f.Name
	}

	var out []string
	seen := make(map[string]bool, maxSuggestions)

	// Spelling-variant substitutions take display priority.
	lower := strings.ToLower(fieldName)
	for _, pair := range spellingVariants {
		for _, dir := range [2][2]string{{pair[0], pair[1]}, {pair[1], pair[0]}} {
			if !strings.Contains(lower, dir[0]) {
				continue
			}
			candidate := strings.ReplaceAll(lower, dir[0], dir[1])
			if actual, ok := byLower[candidate]; ok && !seen[actual] {
				seen[actual] = true
				out = append(out, actual)
			}
		}
	}

	type scored struct {
		name string
		dist int
	}
	candidates := make([]scored, 0, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			continue
		}
		if d := levenshtein(fieldName, f.Name); d <= maxSuggestDistance {
			candidates = append(candidates, scored{name: f.Name, dist: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	for _, c := range candidates {
		if len(out) >= maxSuggestions {
			break
		}
		out = append(out, c.name)
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// levenshtein returns the edit distance between a and b compared
// case-insensitively, counting 1 for each insertion, deletion, or
// substitution.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}
