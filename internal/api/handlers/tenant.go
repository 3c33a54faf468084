package handlers

import (
	"net/http"

	apperrors "shadowbrook-backend/internal/errors"
	"shadowbrook-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles HTTP requests for tenants
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant handles POST /api/v1/tenants
// @Summary Register a new tenant
// @Description Register an organization with contact details
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Tenant data"
// @Success 201 {object} service.TenantResponse "Successfully registered tenant"
// @Failure 400 {object} ErrorResponse "Invalid request body or failed validation"
// @Failure 409 {object} ErrorResponse "Organization name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tenant", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// ListTenants handles GET /api/v1/tenants
// @Summary List all tenants
// @Description Get all tenants with their course counts
// @Tags tenants
// @Accept json
// @Produce json
// @Success 200 {array} service.TenantListItemResponse "Successfully retrieved tenants"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tenants", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// GetTenant handles GET /api/v1/tenants/:id
// @Summary Get tenant by ID
// @Description Get a tenant with its course summaries
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.TenantDetailResponse "Successfully retrieved tenant"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return
	}

	tenant, err := h.service.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tenant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenant)
}
