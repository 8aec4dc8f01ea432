package blog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"loonbedrijf/internal/pkg/response"
)

// Handler manages the public blog endpoints and the admin CRUD variant.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	posts := v1.Group("/posts")
	{
		posts.GET("", h.ListPublished)
		posts.GET("/latest", h.Latest)
		posts.GET("/categories", h.Categories)
		posts.GET("/:slug", h.GetBySlug)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	posts := admin.Group("/posts")
	{
		posts.GET("", h.ListAll)
		posts.POST("", h.Create)
		posts.PUT("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
	}
}

func parseListQuery(c *gin.Context) ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))

	return ListQuery{
		Page:      page,
		PageSize:  pageSize,
		SortField: c.DefaultQuery("sort", "created_at"),
		SortAsc:   c.DefaultQuery("order", "desc") == "asc",
		Search:    c.Query("search"),
		Category:  c.Query("category"),
	}
}

func (h *Handler) ListPublished(c *gin.Context) {
	pageData, err := h.service.List(c.Request.Context(), parseListQuery(c), true)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load posts")
		return
	}
	response.Success(c, http.StatusOK, pageData)
}

func (h *Handler) ListAll(c *gin.Context) {
	pageData, err := h.service.List(c.Request.Context(), parseListQuery(c), false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load posts")
		return
	}
	response.Success(c, http.StatusOK, pageData)
}

func (h *Handler) Latest(c *gin.Context) {
	posts, err := h.service.Latest(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load posts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load categories")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "POST_NOT_FOUND", "Blog post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load post")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Create(c *gin.Context) {
	var req SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.saveError(c, err, "Failed to create post")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"post": post})
}

func (h *Handler) Update(c *gin.Context) {
	var req SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		h.saveError(c, err, "Failed to update post")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "POST_NOT_FOUND", "Blog post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "deleted"})
}

func (h *Handler) saveError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "POST_NOT_FOUND", "Blog post not found")
	case errors.Is(err, ErrSlugTaken):
		response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A post with this title already exists")
	case errors.Is(err, ErrInvalidCategory):
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown category")
	default:
		response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", fallback)
	}
}
