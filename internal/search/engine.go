// Package search filters the in-memory record set the way the app's search
// screen does: one free-text term matched over several fields, combined with
// conjunctive facet filters, plus the genre grouping the library view
// renders. Everything here is pure; callers re-run it whenever the record
// set or the query changes.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/okozlova/bookshelf/internal/entities"
)

// Options tunes the fuzzy matcher.
type Options struct {
	// Threshold is the worst acceptable normalized edit distance for a
	// token-level match, on a 0-1 scale where 0 is identical.
	Threshold float64
	// MinTermLength disables fuzzy scoring for search tokens shorter than
	// this; such tokens still match as plain substrings.
	MinTermLength int
}

// DefaultOptions matches the tuning the mobile search screen shipped with:
// single-character typos match, unrelated terms do not.
func DefaultOptions() Options {
	return Options{Threshold: 0.35, MinTermLength: 2}
}

// Engine applies a Query to a record set.
type Engine struct {
	opts Options
}

// New builds an engine; zero option fields fall back to the defaults.
func New(opts Options) *Engine {
	def := DefaultOptions()
	if opts.Threshold <= 0 {
		opts.Threshold = def.Threshold
	}
	if opts.MinTermLength <= 0 {
		opts.MinTermLength = def.MinTermLength
	}
	return &Engine{opts: opts}
}

// Query is one search-screen state. Zero values mean "filter not active":
// an empty term, no required tags, rating 0, spice level 0.
type Query struct {
	Term       string
	Tags       []string
	Rating     int
	SpicyLevel int
}

// Filter returns the records matching every active criterion. Filters
// compose by AND and commute; the input order is preserved.
func (e *Engine) Filter(books []entities.Book, q Query) []entities.Book {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	out := make([]entities.Book, 0, len(books))
	for _, b := range books {
		if term != "" && !e.matches(term, b) {
			continue
		}
		if !hasAllTags(b.Tags, q.Tags) {
			continue
		}
		if q.Rating != 0 && b.Rating != q.Rating {
			continue
		}
		if q.SpicyLevel != 0 && b.SpicyLevel != q.SpicyLevel {
			continue
		}
		out = append(out, b)
	}
	return out
}

// hasAllTags reports whether the record's tag list is a superset of the
// required tags.
func hasAllTags(have entities.StringList, want []string) bool {
	for _, w := range want {
		if !have.Contains(w) {
			return false
		}
	}
	return true
}

// searchFields mirrors the keys the search screen feeds to its matcher.
func searchFields(b entities.Book) []string {
	fields := []string{b.Title, b.Author, b.Description, b.Category}
	return append(fields, b.Tags...)
}

// matches reports whether every token of the lowercased term is found
// somewhere in the record, either as a substring of a field or as a fuzzy
// match against one of the field's tokens.
func (e *Engine) matches(term string, b entities.Book) bool {
	fields := searchFields(b)
	for i := range fields {
		fields[i] = strings.ToLower(fields[i])
	}
	for _, tok := range tokenize(term) {
		if !e.tokenMatches(tok, fields) {
			return false
		}
	}
	return true
}

func (e *Engine) tokenMatches(tok string, fields []string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(f, tok) {
			return true
		}
	}
	if len([]rune(tok)) < e.opts.MinTermLength {
		return false
	}
	for _, f := range fields {
		for _, ft := range tokenize(f) {
			if score(tok, ft) <= e.opts.Threshold {
				return true
			}
		}
	}
	return false
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// GroupByGenre partitions records into display buckets. A record appears in
// one bucket per genre; a record with no genres appears in no bucket.
func GroupByGenre(books []entities.Book) map[string][]entities.Book {
	groups := make(map[string][]entities.Book)
	for _, b := range books {
		for _, g := range b.Genres {
			groups[g] = append(groups[g], b)
		}
	}
	return groups
}

// Genres returns the bucket keys sorted for a stable shelf order.
func Genres(groups map[string][]entities.Book) []string {
	keys := make([]string, 0, len(groups))
	for g := range groups {
		keys = append(keys, g)
	}
	sort.Strings(keys)
	return keys
}
