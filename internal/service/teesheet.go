package service

import (
	"errors"
	"fmt"

	"shadowbrook-backend/internal/database/models"
	apperrors "shadowbrook-backend/internal/errors"
	"shadowbrook-backend/internal/repository"
	"shadowbrook-backend/internal/teesheet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeeSheetService assembles the daily tee sheet for a course
type TeeSheetService struct {
	courseRepo  repository.CourseRepositoryInterface
	bookingRepo repository.BookingRepositoryInterface
}

// NewTeeSheetService creates a new tee sheet service
func NewTeeSheetService(courseRepo repository.CourseRepositoryInterface, bookingRepo repository.BookingRepositoryInterface) *TeeSheetService {
	return &TeeSheetService{
		courseRepo:  courseRepo,
		bookingRepo: bookingRepo,
	}
}

// TeeSheetResponse is the full slot list for a course and date
type TeeSheetResponse struct {
	CourseID   uuid.UUID       `json:"course_id"`
	CourseName string          `json:"course_name"`
	Date       string          `json:"date"`
	Slots      []teesheet.Slot `json:"slots"`
}

// Get builds the tee sheet for a course on a date. The course must be
// visible under the request's tenant scope and must have its tee-time
// settings configured; an unconfigured course reads as not-found rather
// than producing an empty sheet.
func (s *TeeSheetService) Get(courseID uuid.UUID, date string, tenantID *uuid.UUID) (*TeeSheetResponse, error) {
	day, err := models.ParseDateOnly(date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "date must be in yyyy-MM-dd format")
	}

	course, err := s.courseRepo.GetByID(courseID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	settings := course.TeeTimeSettings()
	if settings == nil {
		return nil, apperrors.ErrTeeTimeSettingsNotConfigured
	}

	bookings, err := s.bookingRepo.GetByCourseAndDate(course.ID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	return &TeeSheetResponse{
		CourseID:   course.ID,
		CourseName: course.Name,
		Date:       day.String(),
		Slots:      teesheet.Generate(*settings, bookings),
	}, nil
}
