package entities

import (
	"database/sql/driver"
	"encoding/json"
)

// Tag vocabulary the mobile client offers as filter chips.
const (
	TagLiked          = "liked"
	TagDislike        = "dislike"
	TagWantToOwn      = "want to own"
	TagNeverReadAgain = "never read again"
)

// TagOptions lists the fixed tag vocabulary in display order.
var TagOptions = []string{TagLiked, TagDislike, TagWantToOwn, TagNeverReadAgain}

// IsKnownTag reports whether tag belongs to the fixed vocabulary.
func IsKnownTag(tag string) bool {
	for _, t := range TagOptions {
		if t == tag {
			return true
		}
	}
	return false
}

// StringList is an ordered list stored as a JSON array in a TEXT column.
// Older databases hold NULL or hand-written values in these columns, so the
// decode path is deliberately tolerant.
type StringList []string

// Value serializes the list for storage. An empty or nil list is stored as
// an empty JSON array, never as NULL.
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan decodes the stored text. NULL and malformed values decode to an empty
// list: a single bad row must not abort a full table read.
func (l *StringList) Scan(value interface{}) error {
	*l = StringList{}
	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	var decoded []string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	if decoded != nil {
		*l = decoded
	}
	return nil
}

// Contains reports whether the list holds the given value.
func (l StringList) Contains(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}

// Book is the sole persisted entity: one catalogued book. Column names match
// the schema written by older versions of the mobile app, including the
// camelCase spicyLevel column, so databases carried over from those versions
// keep working.
type Book struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	Photo       string     `gorm:"column:photo" json:"photo"`
	Description string     `gorm:"column:description" json:"description"`
	Title       string     `gorm:"column:title" json:"title"`
	Author      string     `gorm:"column:author" json:"author"`
	Rating      int        `gorm:"column:rating" json:"rating"` // 0 = unrated
	Tags        StringList `gorm:"column:tags;type:text" json:"tags"`
	Category    string     `gorm:"column:category" json:"category"` // legacy single genre, superseded by Genres
	Genres      StringList `gorm:"column:genres;type:text" json:"genres"`
	SpicyLevel  int        `gorm:"column:spicyLevel" json:"spicyLevel"`
}

func (Book) TableName() string {
	return "books"
}

// BookDraft is the input to a create: everything but the store-assigned id.
type BookDraft struct {
	Photo       string
	Description string
	Title       string
	Author      string
	Rating      int
	Tags        []string
	Category    string
	Genres      []string
	SpicyLevel  int
}

// BookPatch is a partial update. Nil fields keep the stored value; only
// non-nil fields are written.
type BookPatch struct {
	ID          int64
	Photo       *string
	Description *string
	Title       *string
	Author      *string
	Rating      *int
	Tags        *[]string
	Category    *string
	Genres      *[]string
	SpicyLevel  *int
}
