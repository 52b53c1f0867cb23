// Package http exposes the store and the query engine to the mobile client
// over a small JSON API.
package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/okozlova/bookshelf/internal/database"
	"github.com/okozlova/bookshelf/internal/search"
)

// RouterConfig carries every dependency the router needs, keeping the
// constructor signature stable as endpoints are added.
type RouterConfig struct {
	Store          *database.Store
	Engine         *search.Engine
	Logger         *zap.Logger
	UploadsDir     string
	UploadsMaxSize int64
	AllowedOrigins []string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	registerValidations()

	router := gin.New()
	router.Use(RequestLogger(cfg.Logger))
	router.Use(gin.Recovery())
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	router.GET("/health", Health)

	books := NewBooksController(cfg.Store)
	router.GET("/api/books", books.List)
	router.POST("/api/books", books.Create)
	router.PATCH("/api/books/:id", books.Update)
	router.DELETE("/api/books/:id", books.Delete)

	searchController := NewSearchController(cfg.Store, cfg.Engine)
	router.GET("/api/books/search", searchController.Search)

	library := NewLibraryController(cfg.Store)
	router.GET("/api/library", library.Grouped)

	statsController := NewStatsController(cfg.Store)
	router.GET("/api/stats", statsController.Summary)

	uploads := NewUploadsController(cfg.UploadsDir, cfg.UploadsMaxSize, cfg.Logger)
	router.POST("/api/uploads", uploads.Upload)
	router.Static("/uploads", cfg.UploadsDir)

	return router
}
