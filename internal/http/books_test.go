package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/okozlova/bookshelf/internal/database"
	"github.com/okozlova/bookshelf/internal/entities"
	"github.com/okozlova/bookshelf/internal/search"
)

func setupRouter(t *testing.T) (*gin.Engine, *database.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	t.Cleanup(func() { os.Remove(dbPath) })

	store := database.New(dbPath, zap.NewNop())
	require.True(t, store.Initialize())

	router := NewRouter(RouterConfig{
		Store:          store,
		Engine:         search.New(search.DefaultOptions()),
		Logger:         zap.NewNop(),
		UploadsDir:     t.TempDir(),
		UploadsMaxSize: 1 << 20,
		AllowedOrigins: []string{"http://localhost:8081"},
	})
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBooksController_CreateAndList(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/books", gin.H{
		"title":       "The Fifth Season",
		"author":      "N. K. Jemisin",
		"description": "the world ends, again",
		"rating":      5,
		"tags":        []string{"liked", "want to own"},
		"category":    "Sci-Fi",
		"genres":      []string{"Sci-Fi", "Fantasy"},
		"spicyLevel":  2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Positive(t, created.ID)
	assert.Equal(t, entities.StringList{"liked", "want to own"}, created.Tags)

	w = doJSON(t, router, "GET", "/api/books", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Books []entities.Book `json:"books"`
		Count int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Count)
	require.Len(t, response.Books, 1)
	assert.Equal(t, entities.StringList{"Sci-Fi", "Fantasy"}, response.Books[0].Genres)
}

func TestBooksController_CreateValidation(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("rating out of range", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/books", gin.H{"title": "x", "rating": 9})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown tag", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/books", gin.H{"title": "x", "tags": []string{"favourite"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("spicy level out of range", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/books", gin.H{"title": "x", "spicyLevel": 6})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBooksController_Update(t *testing.T) {
	router, store := setupRouter(t)

	created := store.Create(entities.BookDraft{Title: "before", Rating: 2, Category: "Crime"})
	require.NotNil(t, created)

	w := doJSON(t, router, "PATCH", "/api/books/1", gin.H{"rating": 4})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated": true`)

	books := store.ReadAll()
	require.Len(t, books, 1)
	assert.Equal(t, 4, books[0].Rating)
	assert.Equal(t, "before", books[0].Title)

	t.Run("invalid id", func(t *testing.T) {
		w := doJSON(t, router, "PATCH", "/api/books/abc", gin.H{"rating": 4})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id is not fatal", func(t *testing.T) {
		w := doJSON(t, router, "PATCH", "/api/books/999", gin.H{"rating": 4})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"updated": false`)
	})
}

func TestBooksController_Delete(t *testing.T) {
	router, store := setupRouter(t)

	created := store.Create(entities.BookDraft{Title: "short-lived"})
	require.NotNil(t, created)

	w := doJSON(t, router, "DELETE", "/api/books/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.ReadAll())
}

func TestBooksController_DegradedStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// A store that never initialized: reads come back empty, writes are
	// absorbed, nothing panics.
	store := database.New("./no-such-dir/sub/books.db", zap.NewNop())
	router := NewRouter(RouterConfig{
		Store:          store,
		Engine:         search.New(search.DefaultOptions()),
		Logger:         zap.NewNop(),
		UploadsDir:     t.TempDir(),
		UploadsMaxSize: 1 << 20,
	})

	w := doJSON(t, router, "GET", "/api/books", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count": 0`)

	w = doJSON(t, router, "POST", "/api/books", gin.H{"title": "lost"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
