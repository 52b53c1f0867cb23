// Package stats derives the home-screen summary figures from the full
// record set.
package stats

import (
	"math"
	"sort"

	"github.com/okozlova/bookshelf/internal/entities"
)

// Summary holds the catalogue-level figures the home screen displays.
type Summary struct {
	TotalBooks    int            `json:"total_books"`
	RatedBooks    int            `json:"rated_books"`
	AverageRating float64        `json:"average_rating"` // over rated books only, 0 when none
	TopTag        string         `json:"top_tag"`        // empty when no book is tagged
	TagCounts     map[string]int `json:"tag_counts"`
}

// Summarize computes the summary in one pass. Unrated books (rating 0) are
// excluded from the average. Ties for the top tag resolve to the
// lexicographically smallest name so the result is stable.
func Summarize(books []entities.Book) Summary {
	s := Summary{
		TotalBooks: len(books),
		TagCounts:  make(map[string]int),
	}

	ratingSum := 0
	for _, b := range books {
		if b.Rating > 0 {
			s.RatedBooks++
			ratingSum += b.Rating
		}
		for _, tag := range b.Tags {
			s.TagCounts[tag]++
		}
	}

	if s.RatedBooks > 0 {
		avg := float64(ratingSum) / float64(s.RatedBooks)
		s.AverageRating = math.Round(avg*10) / 10
	}

	tags := make([]string, 0, len(s.TagCounts))
	for tag := range s.TagCounts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	best := 0
	for _, tag := range tags {
		if s.TagCounts[tag] > best {
			best = s.TagCounts[tag]
			s.TopTag = tag
		}
	}
	return s
}
