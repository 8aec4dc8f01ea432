package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"loonbedrijf/internal/pkg/response"
	"loonbedrijf/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	content := r.Group("/content")
	{
		content.GET("/services", h.ListServices)
		content.GET("/services/:slug", h.GetService)
		content.GET("/testimonials", h.ListTestimonials)
		content.GET("/gallery", h.ListGallery)
	}
	r.POST("/contact", h.SubmitInquiry)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	inquiries := admin.Group("/inquiries")
	{
		inquiries.GET("", h.ListInquiries)
		inquiries.PUT("/:id/handled", h.MarkHandled)
	}
}

func (h *Handler) ListServices(c *gin.Context) {
	pages, err := h.service.Services(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": pages})
}

func (h *Handler) GetService(c *gin.Context) {
	page, err := h.service.ServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": page})
}

func (h *Handler) ListTestimonials(c *gin.Context) {
	items, err := h.service.Testimonials(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load testimonials")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"testimonials": items})
}

func (h *Handler) ListGallery(c *gin.Context) {
	items, err := h.service.Gallery(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load gallery")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"gallery": items})
}

func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if violations := validator.Validate(req); violations != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contact data", violations)
		return
	}

	inq, err := h.service.SubmitInquiry(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SUBMIT_FAILED", "Failed to submit inquiry")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"inquiry": inq})
}

func (h *Handler) ListInquiries(c *gin.Context) {
	items, err := h.service.Inquiries(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load inquiries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inquiries": items})
}

func (h *Handler) MarkHandled(c *gin.Context) {
	inq, err := h.service.MarkInquiryHandled(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrInquiryNotFound) {
			response.Error(c, http.StatusNotFound, "INQUIRY_NOT_FOUND", "Inquiry not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update inquiry")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inquiry": inq})
}
