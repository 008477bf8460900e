package trivia

import (
	"math/rand/v2"
	"strings"
)

// filterByText keeps questions whose text contains term case-insensitively,
// preserving store order.
func filterByText(term string, corpus []Question) []Question {
	needle := strings.ToLower(term)
	var matched []Question
	for _, q := range corpus {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matched = append(matched, q)
		}
	}
	return matched
}

// filterByCategory keeps questions whose category id equals categoryID
// exactly. The comparison is plain string equality: the category field is a
// soft reference, not an enforced foreign key.
func filterByCategory(categoryID string, corpus []Question) []Question {
	var matched []Question
	for _, q := range corpus {
		if q.Category == categoryID {
			matched = append(matched, q)
		}
	}
	return matched
}

// excludeIDs drops every question whose id appears in seen.
func excludeIDs(corpus []Question, seen []int) []Question {
	if len(seen) == 0 {
		return corpus
	}
	exclude := make(map[int]struct{}, len(seen))
	for _, id := range seen {
		exclude[id] = struct{}{}
	}
	var rest []Question
	for _, q := range corpus {
		if _, ok := exclude[q.ID]; !ok {
			rest = append(rest, q)
		}
	}
	return rest
}

// pickRandom draws one candidate uniformly. Callers guarantee a non-empty
// slice.
func pickRandom(candidates []Question) Question {
	return candidates[rand.IntN(len(candidates))]
}
