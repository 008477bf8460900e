package trivia

import "strconv"

// ParsePage interprets a raw page query value. Absent, non-numeric or
// non-positive input falls back to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// paginate slices items into the fixed-size page addressed by page (1-based).
// A start index past the end yields an empty page, never an error.
func paginate(items []Question, page int) []Question {
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return nil
	}
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
