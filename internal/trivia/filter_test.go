package trivia

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var filterCorpus = []Question{
	{ID: 1, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Category: "4"},
	{ID: 2, Question: "What movie earned Tom Hanks his third straight Oscar nomination?", Category: "5"},
	{ID: 3, Question: "What is the heaviest organ in the human body?", Category: "1"},
	{ID: 4, Question: "Which organ is primarily responsible for filtering blood?", Category: "1"},
	{ID: 5, Question: "What boxer's original name is Cassius Clay?", Category: "4"},
}

func TestFilterByTextCaseInsensitive(t *testing.T) {
	matched := filterByText("ORGAN", filterCorpus)

	assert.Len(t, matched, 2)
	for _, q := range matched {
		assert.True(t, strings.Contains(strings.ToLower(q.Question), "organ"))
	}
	// store order preserved
	assert.Equal(t, []int{3, 4}, []int{matched[0].ID, matched[1].ID})
}

func TestFilterByTextIdempotent(t *testing.T) {
	once := filterByText("what", filterCorpus)
	twice := filterByText("what", once)

	assert.Equal(t, once, twice)
}

func TestFilterByTextNoMatch(t *testing.T) {
	assert.Empty(t, filterByText("zebra", filterCorpus))
}

func TestFilterByCategoryExactMatch(t *testing.T) {
	matched := filterByCategory("4", filterCorpus)

	assert.Len(t, matched, 2)
	for _, q := range matched {
		assert.Equal(t, "4", q.Category)
	}

	// soft reference: an unknown category id just matches nothing
	assert.Empty(t, filterByCategory("99", filterCorpus))
}

func TestExcludeIDs(t *testing.T) {
	rest := excludeIDs(filterCorpus, []int{1, 3, 5})

	assert.Len(t, rest, 2)
	for _, q := range rest {
		assert.NotContains(t, []int{1, 3, 5}, q.ID)
	}

	assert.Equal(t, filterCorpus, excludeIDs(filterCorpus, nil))
	assert.Empty(t, excludeIDs(filterCorpus, []int{1, 2, 3, 4, 5}))
}

func TestPickRandomIsMemberOfSet(t *testing.T) {
	ids := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for range 50 {
		picked := pickRandom(filterCorpus)
		assert.True(t, ids[picked.ID])
	}
}

func TestPickRandomSingleton(t *testing.T) {
	singleton := filterCorpus[2:3]
	for range 10 {
		assert.Equal(t, singleton[0], pickRandom(singleton))
	}
}
