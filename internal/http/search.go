package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okozlova/bookshelf/internal/database"
	"github.com/okozlova/bookshelf/internal/search"
)

type SearchController struct {
	store  *database.Store
	engine *search.Engine
}

func NewSearchController(store *database.Store, engine *search.Engine) *SearchController {
	return &SearchController{store: store, engine: engine}
}

// Search runs the query engine over the full record set. Parameters:
// q (free text), tags (repeatable, all required), rating and spicy (exact
// 1-5 match).
func (controller *SearchController) Search(c *gin.Context) {
	query := search.Query{
		Term: c.Query("q"),
		Tags: c.QueryArray("tags"),
	}

	var err error
	if query.Rating, err = facetParam(c, "rating"); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if query.SpicyLevel, err = facetParam(c, "spicy"); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	books := controller.engine.Filter(controller.store.ReadAll(), query)
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// facetParam reads an optional exact-match 1-5 facet; 0 means unset.
func facetParam(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > 5 {
		return 0, &facetError{name: name}
	}
	return value, nil
}

type facetError struct {
	name string
}

func (e *facetError) Error() string {
	return e.name + " must be an integer between 1 and 5"
}
