package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okozlova/bookshelf/internal/entities"
)

func TestSummarize_EmptyCatalogue(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalBooks)
	assert.Equal(t, 0, s.RatedBooks)
	assert.Zero(t, s.AverageRating)
	assert.Empty(t, s.TopTag)
}

func TestSummarize_AverageIgnoresUnrated(t *testing.T) {
	s := Summarize([]entities.Book{
		{Rating: 5},
		{Rating: 3},
		{Rating: 0},
	})
	assert.Equal(t, 3, s.TotalBooks)
	assert.Equal(t, 2, s.RatedBooks)
	assert.Equal(t, 4.0, s.AverageRating)
}

func TestSummarize_TopTag(t *testing.T) {
	s := Summarize([]entities.Book{
		{Tags: entities.StringList{"liked", "want to own"}},
		{Tags: entities.StringList{"liked"}},
		{Tags: entities.StringList{"dislike"}},
	})
	assert.Equal(t, "liked", s.TopTag)
	assert.Equal(t, 2, s.TagCounts["liked"])
}

func TestSummarize_TopTagTieIsStable(t *testing.T) {
	s := Summarize([]entities.Book{
		{Tags: entities.StringList{"want to own"}},
		{Tags: entities.StringList{"dislike"}},
	})
	assert.Equal(t, "dislike", s.TopTag, "ties resolve alphabetically")
}
