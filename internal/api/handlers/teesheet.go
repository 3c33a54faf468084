package handlers

import (
	"net/http"

	"shadowbrook-backend/internal/api/middleware"
	apperrors "shadowbrook-backend/internal/errors"
	"shadowbrook-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeeSheetHandler handles HTTP requests for tee sheets
type TeeSheetHandler struct {
	service service.TeeSheetServiceInterface
}

// NewTeeSheetHandler creates a new tee sheet handler
func NewTeeSheetHandler(service service.TeeSheetServiceInterface) *TeeSheetHandler {
	return &TeeSheetHandler{service: service}
}

// GetTeeSheet handles GET /api/v1/tee-sheets?courseId=&date=
// @Summary Get the tee sheet for a course and date
// @Description Get the full list of bookable slots for a date, each marked open or booked
// @Tags tee-sheets
// @Accept json
// @Produce json
// @Param X-Tenant-Id header string false "Tenant ID (UUID)"
// @Param courseId query string true "Course ID (UUID)"
// @Param date query string true "Date (yyyy-MM-dd)"
// @Success 200 {object} service.TeeSheetResponse "Successfully generated tee sheet"
// @Failure 400 {object} ErrorResponse "Missing or malformed courseId or date"
// @Failure 404 {object} ErrorResponse "Course not found or settings not configured"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tee-sheets [get]
func (h *TeeSheetHandler) GetTeeSheet(c *gin.Context) {
	courseIDParam := c.Query("courseId")
	if courseIDParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId query parameter is required"})
		return
	}
	courseID, err := uuid.Parse(courseIDParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID: invalid UUID format"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	sheet, err := h.service.Get(courseID, date, middleware.TenantIDFrom(c))
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tee sheet", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, sheet)
}
