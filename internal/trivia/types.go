package trivia

import "errors"

// Sentinel outcomes surfaced by the service; handlers map these onto the
// HTTP failure envelope.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("bad request")
	ErrUnprocessable = errors.New("unprocessable")
)

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// AllCategories is the quiz category id meaning "no category scope".
const AllCategories = 0

// Question is a stored trivia question. Category is a string-typed soft
// reference to a Category id; orphaned references are tolerated.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is a read-only question grouping.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap renders categories in the wire shape {id: type}.
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

// NewQuestionInput carries the fields of a creation request.
type NewQuestionInput struct {
	Question   string
	Answer     string
	Category   string
	Difficulty int
}
