package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"loonbedrijf/internal/pkg/response"
)

// Handler handles HTTP requests for image uploads. Any authenticated user
// can upload; ownership is tracked by user_id.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	uploads := protected.Group("/uploads")
	{
		uploads.POST("", h.Upload)
		uploads.GET("", h.ListMy)
		uploads.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return
	}

	rec, err := h.service.Upload(c.Request.Context(), userID, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "EMPTY_FILE", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Upload failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":         rec.ID,
		"url":        rec.FileURL,
		"name":       rec.OriginalName,
		"mime_type":  rec.MimeType,
		"size":       rec.Size,
		"created_at": rec.CreatedAt,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, ErrUploadNotFound):
			response.Error(c, http.StatusNotFound, "UPLOAD_NOT_FOUND", "Upload not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this upload")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Delete failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "deleted"})
}

func (h *Handler) ListMy(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	uploads, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list uploads")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"uploads": uploads})
}
