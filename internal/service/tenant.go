package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"shadowbrook-backend/internal/database/models"
	apperrors "shadowbrook-backend/internal/errors"
	"shadowbrook-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// emailPattern requires local-part@domain with at least one dot and no
// embedded whitespace.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// TenantService handles business logic for tenants
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	validator *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTenantRequest represents the request to register a tenant
type CreateTenantRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=1,max=200"`
	ContactName      string `json:"contact_name" validate:"required,max=200"`
	ContactEmail     string `json:"contact_email" validate:"required,max=200"`
	ContactPhone     string `json:"contact_phone" validate:"required,max=50"`
}

// TenantResponse represents the response for tenant operations
type TenantResponse struct {
	ID               uuid.UUID `json:"id"`
	OrganizationName string    `json:"organization_name"`
	ContactName      string    `json:"contact_name"`
	ContactEmail     string    `json:"contact_email"`
	ContactPhone     string    `json:"contact_phone"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

// TenantListItemResponse is a tenant list entry with its course count
type TenantListItemResponse struct {
	TenantResponse
	CourseCount int `json:"course_count"`
}

// CourseSummary is the id+name view of a course embedded in tenant details
type CourseSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TenantDetailResponse is a tenant with its course summaries
type TenantDetailResponse struct {
	TenantResponse
	Courses []CourseSummary `json:"courses"`
}

// Create registers a new tenant. Organization names collide
// case-insensitively: the repository lookup is the fast-path pre-check and
// the store's unique index settles races, both surfacing as the same
// conflict error.
func (s *TenantService) Create(req *CreateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !emailPattern.MatchString(req.ContactEmail) {
		return nil, apperrors.NewValidationError("contact_email", "must be a valid email address")
	}

	existing, err := s.repo.GetByOrganizationName(req.OrganizationName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing tenant by organization name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTenantExists
	}

	tenant := &models.Tenant{
		OrganizationName: req.OrganizationName,
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
	}

	if err := s.repo.Create(tenant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTenantExists
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

// GetAll retrieves all tenants with their course counts
func (s *TenantService) GetAll() ([]TenantListItemResponse, error) {
	tenants, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	responses := make([]TenantListItemResponse, 0, len(tenants))
	for i := range tenants {
		responses = append(responses, TenantListItemResponse{
			TenantResponse: *s.toResponse(&tenants[i]),
			CourseCount:    len(tenants[i].Courses),
		})
	}
	return responses, nil
}

// GetByID retrieves a tenant with its course summaries
func (s *TenantService) GetByID(id uuid.UUID) (*TenantDetailResponse, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	courses := make([]CourseSummary, 0, len(tenant.Courses))
	for _, course := range tenant.Courses {
		courses = append(courses, CourseSummary{ID: course.ID, Name: course.Name})
	}

	return &TenantDetailResponse{
		TenantResponse: *s.toResponse(tenant),
		Courses:        courses,
	}, nil
}

func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:               tenant.ID,
		OrganizationName: tenant.OrganizationName,
		ContactName:      tenant.ContactName,
		ContactEmail:     tenant.ContactEmail,
		ContactPhone:     tenant.ContactPhone,
		CreatedAt:        tenant.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        tenant.UpdatedAt.Format(time.RFC3339),
	}
}
