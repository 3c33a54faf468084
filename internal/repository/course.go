package repository

import (
	"shadowbrook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// scoped applies the tenant-scoping filter. A nil tenantID means unscoped
// (administrative view); otherwise only rows of that tenant are visible. A
// course of tenant A therefore reads as record-not-found to tenant B, never
// as forbidden.
func (r *CourseRepository) scoped(tenantID *uuid.UUID) *gorm.DB {
	if tenantID == nil {
		return r.db
	}
	return r.db.Where("tenant_id = ?", *tenantID)
}

// Create creates a new course
func (r *CourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

// GetByID retrieves a course by ID under the given tenant scope, with its
// tenant preloaded
func (r *CourseRepository) GetByID(id uuid.UUID, tenantID *uuid.UUID) (*models.Course, error) {
	var course models.Course
	err := r.scoped(tenantID).Preload("Tenant").First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetAll retrieves all courses visible under the given tenant scope, with
// tenants preloaded
func (r *CourseRepository) GetAll(tenantID *uuid.UUID) ([]models.Course, error) {
	var courses []models.Course
	err := r.scoped(tenantID).Preload("Tenant").Order("created_at").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// GetByTenantAndName retrieves a course by name within a tenant,
// case-insensitively with an exact literal match. Always scoped to the
// target tenant of a new course regardless of the caller's request scope.
func (r *CourseRepository) GetByTenantAndName(tenantID uuid.UUID, name string) (*models.Course, error) {
	var course models.Course
	err := r.db.First(&course, "tenant_id = ? AND LOWER(name) = LOWER(?)", tenantID, name).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Update persists changes to a course
func (r *CourseRepository) Update(course *models.Course) error {
	return r.db.Save(course).Error
}
