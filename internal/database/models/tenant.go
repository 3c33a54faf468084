package models

// Tenant represents the root entity for multi-tenancy: an organization that
// owns one or more golf courses. Organization names are unique
// case-insensitively across all tenants, enforced by a functional unique
// index on LOWER(organization_name) created in database.Initialize.
type Tenant struct {
	BaseModel
	OrganizationName string `json:"organization_name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ContactName      string `json:"contact_name" gorm:"not null;size:200" validate:"required,max=200"`
	ContactEmail     string `json:"contact_email" gorm:"not null;size:200" validate:"required,max=200"`
	ContactPhone     string `json:"contact_phone" gorm:"not null;size:50" validate:"required,max=50"`

	// Relationships
	Courses []Course `json:"courses,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
