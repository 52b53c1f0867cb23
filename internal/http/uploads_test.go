package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func uploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", "/api/uploads", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func uploadsRouter(t *testing.T, maxSize int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewUploadsController(t.TempDir(), maxSize, zap.NewNop())
	router.POST("/api/uploads", controller.Upload)
	return router
}

func TestUploadsController_Upload(t *testing.T) {
	router := uploadsRouter(t, 1<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "photo", "cover.png", []byte("png-bytes")))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"/uploads/`)
	assert.Contains(t, w.Body.String(), `.png`)
}

func TestUploadsController_RejectsUnknownFormat(t *testing.T) {
	router := uploadsRouter(t, 1<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "photo", "notes.txt", []byte("plain text")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadsController_RejectsOversizedFile(t *testing.T) {
	router := uploadsRouter(t, 8)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "photo", "big.jpg", bytes.Repeat([]byte("x"), 64)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestUploadsController_RequiresFile(t *testing.T) {
	router := uploadsRouter(t, 1<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "attachment", "cover.png", []byte("png-bytes")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
