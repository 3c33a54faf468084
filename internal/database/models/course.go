package models

import (
	"github.com/google/uuid"
)

// Course represents a golf facility owned by a tenant. Course names are
// unique case-insensitively within a tenant (the same name may repeat across
// tenants), enforced by a functional unique index on
// (tenant_id, LOWER(name)) created in database.Initialize.
type Course struct {
	BaseModel
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name     string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`

	StreetAddress *string `json:"street_address,omitempty" gorm:"size:200"`
	City          *string `json:"city,omitempty" gorm:"size:100"`
	State         *string `json:"state,omitempty" gorm:"size:100"`
	ZipCode       *string `json:"zip_code,omitempty" gorm:"size:20"`
	ContactEmail  *string `json:"contact_email,omitempty" gorm:"size:200"`
	ContactPhone  *string `json:"contact_phone,omitempty" gorm:"size:50"`

	// Tee-time configuration is an all-or-nothing optional group; read it
	// through TeeTimeSettings rather than the individual columns.
	TeeTimeIntervalMinutes *int       `json:"tee_time_interval_minutes,omitempty"`
	FirstTeeTime           *TimeOfDay `json:"first_tee_time,omitempty"`
	LastTeeTime            *TimeOfDay `json:"last_tee_time,omitempty"`

	FlatRatePrice *float64 `json:"flat_rate_price,omitempty"`

	// Relationships
	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Course
func (Course) TableName() string {
	return "courses"
}

// TeeTimeSettings is the configured tee-time window for a course.
type TeeTimeSettings struct {
	IntervalMinutes int
	FirstTime       TimeOfDay
	LastTime        TimeOfDay
}

// TeeTimeSettings returns the course's configuration, or nil when the course
// has not been configured yet. All three columns must be present for the
// configuration to count as set.
func (c *Course) TeeTimeSettings() *TeeTimeSettings {
	if c.TeeTimeIntervalMinutes == nil || c.FirstTeeTime == nil || c.LastTeeTime == nil {
		return nil
	}
	return &TeeTimeSettings{
		IntervalMinutes: *c.TeeTimeIntervalMinutes,
		FirstTime:       *c.FirstTeeTime,
		LastTime:        *c.LastTeeTime,
	}
}
