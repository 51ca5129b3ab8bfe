package handlers

import (
	"io"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/haveanidea/api/internal/database"
	"github.com/haveanidea/api/internal/models"
	"github.com/haveanidea/api/internal/services"
	"github.com/haveanidea/api/pkg/apperrors"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

var allowedUploadTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

type UploadHandler struct {
	db      *database.Database
	storage services.ObjectStorage
}

func NewUploadHandler(db *database.Database, storage services.ObjectStorage) *UploadHandler {
	return &UploadHandler{db: db, storage: storage}
}

type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload pushes a single multipart image to object storage and records the
// resulting URL alongside the uploader.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		respondError(c, apperrors.Internal("object storage is not configured"))
		return
	}

	user, _, err := callerUser(c, h.db)
	if err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperrors.InvalidArg("file field is required"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		respondError(c, apperrors.InvalidArg("unsupported file type"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		respondError(c, apperrors.InvalidArg("file exceeds the 10MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not read upload", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not read upload", err))
		return
	}

	filename := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	key := "uploads/" + filename

	url, err := h.storage.Put(c.Request.Context(), key, data, contentType)
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "storage upload failed", err))
		return
	}

	upload := models.Upload{
		Filename:     filename,
		OriginalName: fileHeader.Filename,
		MimeType:     contentType,
		FileSize:     fileHeader.Size,
		URL:          url,
		UploaderID:   user.ID,
	}
	if err := h.db.SaveUpload(&upload); err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not record upload", err))
		return
	}

	respondOK(c, UploadResponse{URL: url, Filename: filename}, "File uploaded successfully")
}
