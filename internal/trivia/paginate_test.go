package trivia

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 2, ParsePage("2"))
	assert.Equal(t, 42, ParsePage("42"))
}

func TestPaginateBounds(t *testing.T) {
	items := corpusOf(19)

	assert.Len(t, paginate(items, 1), QuestionsPerPage)
	assert.Len(t, paginate(items, 2), 9)
	assert.Empty(t, paginate(items, 3))
	assert.Empty(t, paginate(nil, 1))
}

func TestPaginateCoversAllItemsInOrder(t *testing.T) {
	items := corpusOf(33)

	var collected []Question
	for page := 1; ; page++ {
		chunk := paginate(items, page)
		if len(chunk) == 0 {
			break
		}
		assert.LessOrEqual(t, len(chunk), QuestionsPerPage)
		collected = append(collected, chunk...)
	}

	assert.Equal(t, items, collected)
}

func corpusOf(n int) []Question {
	items := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, Question{
			ID:       i,
			Question: fmt.Sprintf("Question %d", i),
			Answer:   fmt.Sprintf("Answer %d", i),
			Category: "1",
		})
	}
	return items
}
