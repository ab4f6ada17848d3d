package commands

import (
	"sort"
	"strings"

	"flatkit/internal/domain"
)

// SearchHit wraps domain.NoteEntry with a relevance score
type SearchHit struct {
	domain.NoteEntry
	Score int `json:"score"`
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '/' || target[i-1] == '-' || target[i-1] == '_') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort ranks notes by the better of their title and path scores.
// Notes with equal scores keep their input order.
func FuzzySort(entries []domain.NoteEntry, query string) []SearchHit {
	scored := make([]SearchHit, 0, len(entries))

	for _, e := range entries {
		best := max(FuzzyScore(e.Title, query), FuzzyScore(e.Path, query))
		if best > 0 {
			scored = append(scored, SearchHit{
				NoteEntry: e,
				Score:     best,
			})
		}
	}

	// Sort by score descending
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
