package database

import (
	"go.uber.org/zap"

	"github.com/okozlova/bookshelf/internal/entities"
)

// Create inserts one record. The list fields are serialized by the codec,
// empty genres fall back to the legacy category, and an unset spicy level
// defaults to 1. Returns the stored record with its assigned id, or nil when
// the write was absorbed.
func (s *Store) Create(draft entities.BookDraft) *entities.Book {
	db := s.handle("create")
	if db == nil {
		return nil
	}

	book := entities.Book{
		Photo:       draft.Photo,
		Description: draft.Description,
		Title:       draft.Title,
		Author:      draft.Author,
		Rating:      draft.Rating,
		Tags:        entities.StringList(draft.Tags),
		Category:    draft.Category,
		Genres:      entities.StringList(draft.Genres),
		SpicyLevel:  draft.SpicyLevel,
	}
	if book.Tags == nil {
		book.Tags = entities.StringList{}
	}
	if len(book.Genres) == 0 && book.Category != "" {
		book.Genres = entities.StringList{book.Category}
	}
	if book.SpicyLevel < 1 {
		book.SpicyLevel = 1
	}

	if err := db.Create(&book).Error; err != nil {
		s.log.Error("creating book", zap.Error(err))
		return nil
	}
	return &book
}

// ReadAll returns every record with tags and genres materialized as lists.
// The result is empty, never nil, when the store is uninitialized or the
// read fails.
func (s *Store) ReadAll() []entities.Book {
	db := s.handle("readAll")
	if db == nil {
		return []entities.Book{}
	}

	var books []entities.Book
	if err := db.Order("id").Find(&books).Error; err != nil {
		s.log.Error("reading books", zap.Error(err))
		return []entities.Book{}
	}
	for i := range books {
		normalize(&books[i])
	}
	return books
}

// normalize upholds the read-path invariants: list fields are never nil, and
// a record without stored genres inherits its legacy category as a
// single-element genre list.
func normalize(b *entities.Book) {
	if b.Tags == nil {
		b.Tags = entities.StringList{}
	}
	if len(b.Genres) > 0 {
		return
	}
	if b.Category != "" {
		b.Genres = entities.StringList{b.Category}
	} else {
		b.Genres = entities.StringList{}
	}
}

// Update applies a partial patch; nil fields keep their stored value.
// Reports whether a row changed. Unknown ids, empty patches and an
// uninitialized store are logged no-ops, not failures.
func (s *Store) Update(patch entities.BookPatch) bool {
	db := s.handle("update")
	if db == nil {
		return false
	}

	cols := map[string]interface{}{}
	if patch.Photo != nil {
		cols["photo"] = *patch.Photo
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}
	if patch.Title != nil {
		cols["title"] = *patch.Title
	}
	if patch.Author != nil {
		cols["author"] = *patch.Author
	}
	if patch.Rating != nil {
		cols["rating"] = *patch.Rating
	}
	if patch.Tags != nil {
		cols["tags"] = entities.StringList(*patch.Tags)
	}
	if patch.Category != nil {
		cols["category"] = *patch.Category
	}
	if patch.Genres != nil {
		cols["genres"] = entities.StringList(*patch.Genres)
	}
	if patch.SpicyLevel != nil {
		cols["spicyLevel"] = *patch.SpicyLevel
	}
	if len(cols) == 0 {
		s.log.Warn("empty book patch", zap.Int64("id", patch.ID))
		return false
	}

	res := db.Model(&entities.Book{}).Where("id = ?", patch.ID).Updates(cols)
	if res.Error != nil {
		s.log.Error("updating book", zap.Int64("id", patch.ID), zap.Error(res.Error))
		return false
	}
	if res.RowsAffected == 0 {
		s.log.Warn("updating unknown book", zap.Int64("id", patch.ID))
		return false
	}
	return true
}

// Delete removes the row with the given id. Deleting an id that does not
// exist is not an error; false means only that the store absorbed a failure.
func (s *Store) Delete(id int64) bool {
	db := s.handle("delete")
	if db == nil {
		return false
	}
	if err := db.Delete(&entities.Book{}, id).Error; err != nil {
		s.log.Error("deleting book", zap.Int64("id", id), zap.Error(err))
		return false
	}
	return true
}
