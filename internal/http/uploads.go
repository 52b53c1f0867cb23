package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedPhotoExtensions limits uploads to the image formats the camera and
// gallery pickers produce.
var allowedPhotoExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

type UploadsController struct {
	dir     string
	maxSize int64
	log     *zap.Logger
}

func NewUploadsController(dir string, maxSize int64, log *zap.Logger) *UploadsController {
	return &UploadsController{dir: dir, maxSize: maxSize, log: log}
}

// Upload stores a book photo under a uuid filename and returns the URI the
// client should save in the record's photo field.
func (controller *UploadsController) Upload(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	if file.Size > controller.maxSize {
		c.IndentedJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo exceeds the size limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !isAllowedPhotoExtension(ext) {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "unsupported photo format"})
		return
	}

	if err := os.MkdirAll(controller.dir, 0o755); err != nil {
		controller.log.Error("creating uploads directory", zap.Error(err))
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
		return
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(controller.dir, name)); err != nil {
		controller.log.Error("saving photo", zap.String("name", name), zap.Error(err))
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
		return
	}

	c.IndentedJSON(http.StatusCreated, gin.H{
		"photo": "/uploads/" + name,
		"size":  file.Size,
	})
}

func isAllowedPhotoExtension(ext string) bool {
	for _, allowed := range allowedPhotoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
