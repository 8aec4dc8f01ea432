package portal

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"loonbedrijf/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	portal := protected.Group("/portal")
	{
		portal.GET("/client", h.GetClient)
		portal.PUT("/client", h.UpdateClient)
		portal.GET("/invoices", h.ListInvoices)
		portal.GET("/operations", h.ListOperations)
	}
}

func (h *Handler) GetClient(c *gin.Context) {
	client, err := h.service.ClientForUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.portalError(c, err, "Failed to load company details")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": client})
}

func (h *Handler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	client, err := h.service.UpdateClient(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.portalError(c, err, "Failed to update company details")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": client})
}

func (h *Handler) ListInvoices(c *gin.Context) {
	invoices, err := h.service.Invoices(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.portalError(c, err, "Failed to load invoices")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoices": invoices})
}

func (h *Handler) ListOperations(c *gin.Context) {
	overview, err := h.service.Operations(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.portalError(c, err, "Failed to load operations")
		return
	}
	response.Success(c, http.StatusOK, overview)
}

func (h *Handler) portalError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, ErrClientNotFound) {
		response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "No company is linked to this account")
		return
	}
	response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", fallback)
}
