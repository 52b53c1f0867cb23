package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okozlova/bookshelf/internal/database"
	"github.com/okozlova/bookshelf/internal/stats"
)

type StatsController struct {
	store *database.Store
}

func NewStatsController(store *database.Store) *StatsController {
	return &StatsController{store: store}
}

func (controller *StatsController) Summary(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, stats.Summarize(controller.store.ReadAll()))
}
