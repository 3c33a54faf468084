package service

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"shadowbrook-backend/internal/database/models"
	apperrors "shadowbrook-backend/internal/errors"
	"shadowbrook-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// allowedIntervals is the whitelist of tee-time intervals in minutes.
var allowedIntervals = []int{8, 10, 12}

const (
	minFlatRatePrice = 0
	maxFlatRatePrice = 10000
)

// CourseService handles business logic for courses
type CourseService struct {
	repo       repository.CourseRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	validator  *validator.Validate
}

// NewCourseService creates a new course service
func NewCourseService(repo repository.CourseRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, validator *validator.Validate) *CourseService {
	return &CourseService{
		repo:       repo,
		tenantRepo: tenantRepo,
		validator:  validator,
	}
}

// CreateCourseRequest represents the request to register a course. TenantID
// is the body-level fallback used when the request carries no tenant header.
type CreateCourseRequest struct {
	Name          string     `json:"name" validate:"required,min=1,max=200"`
	TenantID      *uuid.UUID `json:"tenant_id,omitempty"`
	StreetAddress *string    `json:"street_address,omitempty" validate:"omitempty,max=200"`
	City          *string    `json:"city,omitempty" validate:"omitempty,max=100"`
	State         *string    `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode       *string    `json:"zip_code,omitempty" validate:"omitempty,max=20"`
	ContactEmail  *string    `json:"contact_email,omitempty" validate:"omitempty,max=200"`
	ContactPhone  *string    `json:"contact_phone,omitempty" validate:"omitempty,max=50"`
}

// UpdateTeeTimeSettingsRequest carries the full tee-time configuration; all
// three fields are set together.
type UpdateTeeTimeSettingsRequest struct {
	TeeTimeIntervalMinutes int              `json:"tee_time_interval_minutes"`
	FirstTeeTime           models.TimeOfDay `json:"first_tee_time"`
	LastTeeTime            models.TimeOfDay `json:"last_tee_time"`
}

// UpdatePricingRequest carries the flat-rate price for a course
type UpdatePricingRequest struct {
	FlatRatePrice *float64 `json:"flat_rate_price" validate:"required"`
}

// TenantInfo is the tenant summary embedded in course responses
type TenantInfo struct {
	ID               uuid.UUID `json:"id"`
	OrganizationName string    `json:"organization_name"`
}

// CourseResponse represents the response for course operations
type CourseResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	StreetAddress *string    `json:"street_address"`
	City          *string    `json:"city"`
	State         *string    `json:"state"`
	ZipCode       *string    `json:"zip_code"`
	ContactEmail  *string    `json:"contact_email"`
	ContactPhone  *string    `json:"contact_phone"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
	Tenant        TenantInfo `json:"tenant"`
}

// TeeTimeSettingsResponse is the configured tee-time window; times render as
// HH:mm:ss
type TeeTimeSettingsResponse struct {
	TeeTimeIntervalMinutes int              `json:"tee_time_interval_minutes"`
	FirstTeeTime           models.TimeOfDay `json:"first_tee_time"`
	LastTeeTime            models.TimeOfDay `json:"last_tee_time"`
}

// PricingResponse is the configured flat-rate price
type PricingResponse struct {
	FlatRatePrice float64 `json:"flat_rate_price"`
}

// Create registers a course under a tenant. The effective tenant is the
// header scope when present, else the body's tenant_id. Course names collide
// case-insensitively within the target tenant only; the composite unique
// index settles races the pre-check misses.
func (s *CourseService) Create(req *CreateCourseRequest, headerTenantID *uuid.UUID) (*CourseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	tenantID := headerTenantID
	if tenantID == nil {
		tenantID = req.TenantID
	}
	if tenantID == nil {
		return nil, apperrors.NewValidationError("tenant_id", "required via X-Tenant-Id header or request body")
	}

	tenant, err := s.tenantRepo.GetByID(*tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("tenant_id", "tenant does not exist")
		}
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}

	existing, err := s.repo.GetByTenantAndName(*tenantID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing course by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCourseExists
	}

	course := &models.Course{
		TenantID:      *tenantID,
		Name:          req.Name,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	}

	if err := s.repo.Create(course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCourseExists
		}
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	course.Tenant = *tenant
	return s.toResponse(course), nil
}

// GetAll retrieves all courses visible under the request's tenant scope
func (s *CourseService) GetAll(tenantID *uuid.UUID) ([]CourseResponse, error) {
	courses, err := s.repo.GetAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	responses := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, *s.toResponse(&courses[i]))
	}
	return responses, nil
}

// GetByID retrieves a course if visible under the request's tenant scope.
// Rows of other tenants read as not-found, never forbidden.
func (s *CourseService) GetByID(id uuid.UUID, tenantID *uuid.UUID) (*CourseResponse, error) {
	course, err := s.getCourse(id, tenantID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(course), nil
}

// UpdateTeeTimeSettings configures the course's tee-time window
func (s *CourseService) UpdateTeeTimeSettings(id uuid.UUID, tenantID *uuid.UUID, req *UpdateTeeTimeSettingsRequest) (*TeeTimeSettingsResponse, error) {
	course, err := s.getCourse(id, tenantID)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(allowedIntervals, req.TeeTimeIntervalMinutes) {
		return nil, apperrors.NewValidationError("tee_time_interval_minutes", "interval must be 8, 10, or 12 minutes")
	}
	if !req.FirstTeeTime.Before(req.LastTeeTime) {
		return nil, apperrors.NewValidationError("first_tee_time", "first tee time must be before last tee time")
	}

	course.TeeTimeIntervalMinutes = &req.TeeTimeIntervalMinutes
	course.FirstTeeTime = &req.FirstTeeTime
	course.LastTeeTime = &req.LastTeeTime

	if err := s.repo.Update(course); err != nil {
		return nil, fmt.Errorf("failed to update tee time settings: %w", err)
	}

	return &TeeTimeSettingsResponse{
		TeeTimeIntervalMinutes: *course.TeeTimeIntervalMinutes,
		FirstTeeTime:           *course.FirstTeeTime,
		LastTeeTime:            *course.LastTeeTime,
	}, nil
}

// GetTeeTimeSettings returns the configured window, or nil (no error) when
// the course has not been configured yet
func (s *CourseService) GetTeeTimeSettings(id uuid.UUID, tenantID *uuid.UUID) (*TeeTimeSettingsResponse, error) {
	course, err := s.getCourse(id, tenantID)
	if err != nil {
		return nil, err
	}

	settings := course.TeeTimeSettings()
	if settings == nil {
		return nil, nil
	}
	return &TeeTimeSettingsResponse{
		TeeTimeIntervalMinutes: settings.IntervalMinutes,
		FirstTeeTime:           settings.FirstTime,
		LastTeeTime:            settings.LastTime,
	}, nil
}

// UpdatePricing sets the course's flat-rate price
func (s *CourseService) UpdatePricing(id uuid.UUID, tenantID *uuid.UUID, req *UpdatePricingRequest) (*PricingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	course, err := s.getCourse(id, tenantID)
	if err != nil {
		return nil, err
	}

	if *req.FlatRatePrice < minFlatRatePrice {
		return nil, apperrors.NewValidationError("flat_rate_price", "price must be greater than or equal to 0")
	}
	if *req.FlatRatePrice > maxFlatRatePrice {
		return nil, apperrors.NewValidationError("flat_rate_price", "price must be less than or equal to 10000")
	}

	course.FlatRatePrice = req.FlatRatePrice
	if err := s.repo.Update(course); err != nil {
		return nil, fmt.Errorf("failed to update pricing: %w", err)
	}

	return &PricingResponse{FlatRatePrice: *course.FlatRatePrice}, nil
}

// GetPricing returns the configured price, or nil (no error) when unset
func (s *CourseService) GetPricing(id uuid.UUID, tenantID *uuid.UUID) (*PricingResponse, error) {
	course, err := s.getCourse(id, tenantID)
	if err != nil {
		return nil, err
	}

	if course.FlatRatePrice == nil {
		return nil, nil
	}
	return &PricingResponse{FlatRatePrice: *course.FlatRatePrice}, nil
}

func (s *CourseService) getCourse(id uuid.UUID, tenantID *uuid.UUID) (*models.Course, error) {
	course, err := s.repo.GetByID(id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

func (s *CourseService) toResponse(course *models.Course) *CourseResponse {
	return &CourseResponse{
		ID:            course.ID,
		Name:          course.Name,
		StreetAddress: course.StreetAddress,
		City:          course.City,
		State:         course.State,
		ZipCode:       course.ZipCode,
		ContactEmail:  course.ContactEmail,
		ContactPhone:  course.ContactPhone,
		CreatedAt:     course.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     course.UpdatedAt.Format(time.RFC3339),
		Tenant: TenantInfo{
			ID:               course.Tenant.ID,
			OrganizationName: course.Tenant.OrganizationName,
		},
	}
}
