package repository

import (
	"shadowbrook-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByOrganizationName(name string) (*models.Tenant, error)
	GetAll() ([]models.Tenant, error)
	Delete(id uuid.UUID) error
}

// CourseRepositoryInterface defines the interface for course repository
// operations. The tenantID parameter on reads is the tenant-scoping filter:
// nil means unscoped (administrative view), non-nil restricts visible rows
// to that tenant.
type CourseRepositoryInterface interface {
	Create(course *models.Course) error
	GetByID(id uuid.UUID, tenantID *uuid.UUID) (*models.Course, error)
	GetAll(tenantID *uuid.UUID) ([]models.Course, error)
	GetByTenantAndName(tenantID uuid.UUID, name string) (*models.Course, error)
	Update(course *models.Course) error
}

// BookingRepositoryInterface defines the interface for booking repository
// operations. Bookings are read-only from the service's perspective; Create
// exists for fixtures and the seed script.
type BookingRepositoryInterface interface {
	Create(booking *models.Booking) error
	GetByCourseAndDate(courseID uuid.UUID, date models.DateOnly) ([]models.Booking, error)
}
