package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okozlova/bookshelf/internal/database"
	"github.com/okozlova/bookshelf/internal/search"
)

type LibraryController struct {
	store *database.Store
}

func NewLibraryController(store *database.Store) *LibraryController {
	return &LibraryController{store: store}
}

// Grouped returns the browse view: every record bucketed by genre, with the
// bucket names sorted. A record with several genres appears in each of its
// buckets.
func (controller *LibraryController) Grouped(c *gin.Context) {
	books := controller.store.ReadAll()
	groups := search.GroupByGenre(books)
	c.IndentedJSON(http.StatusOK, gin.H{
		"genres": search.Genres(groups),
		"groups": groups,
		"count":  len(books),
	})
}
