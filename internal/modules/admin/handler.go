package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"loonbedrijf/internal/pkg/response"
	"loonbedrijf/internal/pkg/validator"
)

// Handler exposes customer management to the admin dashboard.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	customers := admin.Group("/customers")
	{
		customers.GET("", h.List)
		customers.POST("", h.Create)
		customers.PUT("/:id", h.Update)
	}
}

func (h *Handler) List(c *gin.Context) {
	customers, err := h.service.ListCustomers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load customers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customers": customers})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if violations := validator.Validate(req); violations != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer data", violations)
		return
	}

	client, password, err := h.service.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create customer")
		return
	}

	// The generated password is shown once and never retrievable again.
	response.Success(c, http.StatusCreated, gin.H{
		"customer": client,
		"password": password,
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	client, err := h.service.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update customer")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customer": client})
}
