package repository

import (
	"shadowbrook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID retrieves a tenant by ID with its courses preloaded
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.Preload("Courses").First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByOrganizationName retrieves a tenant by organization name,
// case-insensitively. Used as the fast-path duplicate pre-check; the
// functional unique index is the real arbiter.
func (r *TenantRepository) GetByOrganizationName(name string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "LOWER(organization_name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetAll retrieves all tenants with their courses preloaded
func (r *TenantRepository) GetAll() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.Preload("Courses").Order("created_at").Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

// Delete deletes a tenant; courses and their bookings cascade
func (r *TenantRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tenant{}, "id = ?", id).Error
}
