package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/twitter-lite/internal/database"
)

type MediaHandler struct {
	db *database.Database
}

func NewMediaHandler(db *database.Database) *MediaHandler {
	return &MediaHandler{db: db}
}

// Upload сохраняет медиафайл и возвращает его идентификатор
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}

	mediaID, err := h.db.SaveMedia(fileHeader.Filename, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save media"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true, "media_id": mediaID})
}

// Download отдает медиафайл по идентификатору
func (h *MediaHandler) Download(c *gin.Context) {
	mediaID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
		return
	}

	media, err := h.db.GetMedia(mediaID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"result": false, "message": "Media not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", media.Filename))
	c.Data(http.StatusOK, "application/octet-stream", media.FileData)
}
