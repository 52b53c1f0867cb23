package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okozlova/bookshelf/internal/database"
	"github.com/okozlova/bookshelf/internal/entities"
)

type BooksController struct {
	store *database.Store
}

func NewBooksController(store *database.Store) *BooksController {
	return &BooksController{store: store}
}

// bookDraftRequest mirrors the add-book form. Tags must come from the fixed
// vocabulary; genres are free-form.
type bookDraftRequest struct {
	Photo       string   `json:"photo"`
	Description string   `json:"description"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Rating      int      `json:"rating" binding:"min=0,max=5"`
	Tags        []string `json:"tags" binding:"omitempty,dive,shelftag"`
	Category    string   `json:"category"`
	Genres      []string `json:"genres"`
	SpicyLevel  int      `json:"spicyLevel" binding:"omitempty,min=1,max=5"`
}

// bookPatchRequest carries a partial update; absent fields keep their stored
// value.
type bookPatchRequest struct {
	Photo       *string   `json:"photo"`
	Description *string   `json:"description"`
	Title       *string   `json:"title"`
	Author      *string   `json:"author"`
	Rating      *int      `json:"rating" binding:"omitempty,min=0,max=5"`
	Tags        *[]string `json:"tags" binding:"omitempty,dive,shelftag"`
	Category    *string   `json:"category"`
	Genres      *[]string `json:"genres"`
	SpicyLevel  *int      `json:"spicyLevel" binding:"omitempty,min=1,max=5"`
}

func (controller *BooksController) List(c *gin.Context) {
	books := controller.store.ReadAll()
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (controller *BooksController) Create(c *gin.Context) {
	var req bookDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := controller.store.Create(entities.BookDraft{
		Photo:       req.Photo,
		Description: req.Description,
		Title:       req.Title,
		Author:      req.Author,
		Rating:      req.Rating,
		Tags:        req.Tags,
		Category:    req.Category,
		Genres:      req.Genres,
		SpicyLevel:  req.SpicyLevel,
	})
	if book == nil {
		c.IndentedJSON(http.StatusServiceUnavailable, gin.H{"error": "book store unavailable"})
		return
	}
	c.IndentedJSON(http.StatusCreated, book)
}

func (controller *BooksController) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	var req bookPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated := controller.store.Update(entities.BookPatch{
		ID:          id,
		Photo:       req.Photo,
		Description: req.Description,
		Title:       req.Title,
		Author:      req.Author,
		Rating:      req.Rating,
		Tags:        req.Tags,
		Category:    req.Category,
		Genres:      req.Genres,
		SpicyLevel:  req.SpicyLevel,
	})
	c.IndentedJSON(http.StatusOK, gin.H{"updated": updated})
}

func (controller *BooksController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}
	deleted := controller.store.Delete(id)
	c.IndentedJSON(http.StatusOK, gin.H{"deleted": deleted})
}
