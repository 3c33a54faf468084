package handlers

import (
	"net/http"

	"shadowbrook-backend/internal/api/middleware"
	apperrors "shadowbrook-backend/internal/errors"
	"shadowbrook-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CourseHandler handles HTTP requests for courses
type CourseHandler struct {
	service service.CourseServiceInterface
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(service service.CourseServiceInterface) *CourseHandler {
	return &CourseHandler{service: service}
}

// CreateCourse handles POST /api/v1/courses
// @Summary Register a new course
// @Description Register a course under a tenant; the tenant comes from the X-Tenant-Id header or the request body
// @Tags courses
// @Accept json
// @Produce json
// @Param X-Tenant-Id header string false "Tenant ID (UUID)"
// @Param course body service.CreateCourseRequest true "Course data"
// @Success 201 {object} service.CourseResponse "Successfully registered course"
// @Failure 400 {object} ErrorResponse "Invalid request body, missing tenant, or tenant does not exist"
// @Failure 409 {object} ErrorResponse "Course name already taken for this tenant"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	course, err := h.service.Create(&req, middleware.TenantIDFrom(c))
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, course)
}

// ListCourses handles GET /api/v1/courses
// @Summary List courses
// @Description Get all courses visible under the request's tenant scope
// @Tags courses
// @Accept json
// @Produce json
// @Param X-Tenant-Id header string false "Tenant ID (UUID)"
// @Success 200 {array} service.CourseResponse "Successfully retrieved courses"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.service.GetAll(middleware.TenantIDFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list courses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GetCourse handles GET /api/v1/courses/:id
// @Summary Get course by ID
// @Description Get a course if visible under the request's tenant scope
// @Tags courses
// @Accept json
// @Produce json
// @Param X-Tenant-Id header string false "Tenant ID (UUID)"
// @Param id path string true "Course ID (UUID)"
// @Success 200 {object} service.CourseResponse "Successfully retrieved course"
// @Failure 400 {object} ErrorResponse "Invalid course ID"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID: invalid UUID format"})
		return
	}

	course, err := h.service.GetByID(id, middleware.TenantIDFrom(c))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get course", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, course)
}

// UpdateTeeTimeSettings handles PUT /api/v1/courses/:id/tee-time-settings
// @Summary Update tee time settings
// @Description Configure a course's tee-time interval and operating window
// @Tags courses
// @Accept json
// @Produce json
// @Param X-Tenant-Id header string false "Tenant ID (UUID)"
// @Param id path string true "Course ID (UUID)"
// @Param settings body service.UpdateTeeTimeSettingsRequest true "Tee time settings"
// @Success 200 {object} service.TeeTimeSettingsResponse "Successfully updated settings"
// @Failure 400 {object} ErrorResponse "Invalid interval or time ordering"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /courses/{id}/tee-time-settings [put]
func (h *CourseHandler) UpdateTeeTimeSettings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID: invalid UUID format"})
		return
	}

	var req service.UpdateTeeTimeSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	settings, err := h.service.UpdateTeeTimeSettings(id, middleware.TenantIDFrom(c), &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tee time settings", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, settings)
}

// GetTeeTimeSettings handles GET /api/v1/courses/:id/tee-time-settings
// @Summary Get tee time settings
// @Description Get a course's tee-time configuration; an unconfigured course returns an empty object
// @Tags courses
// @Accept json
// @Produce json
// @Param X-Tenant-Id header string false "Tenant ID (UUID)"
// @Param id path string true "Course ID (UUID)"
// @Success 200 {object} service.TeeTimeSettingsResponse "Settings, or empty object when unconfigured"
// @Failure 400 {object} ErrorResponse "Invalid course ID"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /courses/{id}/tee-time-settings [get]
func (h *CourseHandler) GetTeeTimeSettings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID: invalid UUID format"})
		return
	}

	settings, err := h.service.GetTeeTimeSettings(id, middleware.TenantIDFrom(c))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tee time settings", "details": err.Error()})
		return
	}
	if settings == nil {
		// not configured yet is not an error
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdatePricing handles PUT /api/v1/courses/:id/pricing
// @Summary Update pricing
// @Description Set a course's flat-rate price
// @Tags courses
// @Accept json
// @Produce json
// @Param X-Tenant-Id header string false "Tenant ID (UUID)"
// @Param id path string true "Course ID (UUID)"
// @Param pricing body service.UpdatePricingRequest true "Pricing data"
// @Success 200 {object} service.PricingResponse "Successfully updated pricing"
// @Failure 400 {object} ErrorResponse "Price out of bounds"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /courses/{id}/pricing [put]
func (h *CourseHandler) UpdatePricing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID: invalid UUID format"})
		return
	}

	var req service.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	pricing, err := h.service.UpdatePricing(id, middleware.TenantIDFrom(c), &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pricing", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, pricing)
}

// GetPricing handles GET /api/v1/courses/:id/pricing
// @Summary Get pricing
// @Description Get a course's flat-rate price; an unset price returns an empty object
// @Tags courses
// @Accept json
// @Produce json
// @Param X-Tenant-Id header string false "Tenant ID (UUID)"
// @Param id path string true "Course ID (UUID)"
// @Success 200 {object} service.PricingResponse "Price, or empty object when unset"
// @Failure 400 {object} ErrorResponse "Invalid course ID"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /courses/{id}/pricing [get]
func (h *CourseHandler) GetPricing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID: invalid UUID format"})
		return
	}

	pricing, err := h.service.GetPricing(id, middleware.TenantIDFrom(c))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pricing", "details": err.Error()})
		return
	}
	if pricing == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, pricing)
}
