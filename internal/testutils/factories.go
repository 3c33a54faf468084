package testutils

import (
	"time"

	"shadowbrook-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationName: "Shadowbrook Golf Group",
		ContactName:      "Pat Morgan",
		ContactEmail:     "pat.morgan@shadowbrook.test",
		ContactPhone:     "+1-555-0142",
	}
}

// WithOrganizationName sets a custom organization name for the tenant
func (f *TenantFactory) WithOrganizationName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.OrganizationName = name
	return tenant
}

// WithContactEmail sets a custom contact email for the tenant
func (f *TenantFactory) WithContactEmail(email string) *models.Tenant {
	tenant := f.Create()
	tenant.ContactEmail = email
	return tenant
}

// CourseFactory provides methods to create test Course data
type CourseFactory struct{}

// NewCourseFactory creates a new CourseFactory
func NewCourseFactory() *CourseFactory {
	return &CourseFactory{}
}

// Create creates a test Course with default values. The course has no
// tee-time configuration or pricing until the With* helpers set them.
func (f *CourseFactory) Create() *models.Course {
	city := "Maplewood"
	state := "OR"
	return &models.Course{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: uuid.New(),
		Name:     "Shadowbrook North",
		City:     &city,
		State:    &state,
	}
}

// WithTenant sets the owning tenant ID for the course
func (f *CourseFactory) WithTenant(tenantID uuid.UUID) *models.Course {
	course := f.Create()
	course.TenantID = tenantID
	return course
}

// WithName sets a custom name for the course
func (f *CourseFactory) WithName(tenantID uuid.UUID, name string) *models.Course {
	course := f.WithTenant(tenantID)
	course.Name = name
	return course
}

// WithTeeTimeSettings configures the course's interval and operating window
func (f *CourseFactory) WithTeeTimeSettings(tenantID uuid.UUID, intervalMinutes int, first, last models.TimeOfDay) *models.Course {
	course := f.WithTenant(tenantID)
	course.TeeTimeIntervalMinutes = &intervalMinutes
	course.FirstTeeTime = &first
	course.LastTeeTime = &last
	return course
}

// WithFlatRatePrice sets the course's flat-rate price
func (f *CourseFactory) WithFlatRatePrice(tenantID uuid.UUID, price float64) *models.Course {
	course := f.WithTenant(tenantID)
	course.FlatRatePrice = &price
	return course
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant  *TenantFactory
	Course  *CourseFactory
	Booking *BookingFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:  NewTenantFactory(),
		Course:  NewCourseFactory(),
		Booking: NewBookingFactory(),
	}
}

// BookingFactory provides methods to create test Booking data
type BookingFactory struct{}

// NewBookingFactory creates a new BookingFactory
func NewBookingFactory() *BookingFactory {
	return &BookingFactory{}
}

// Create creates a test Booking with default values
func (f *BookingFactory) Create(courseID uuid.UUID, date models.DateOnly, teeTime models.TimeOfDay) *models.Booking {
	return &models.Booking{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CourseID:    courseID,
		Date:        date,
		Time:        teeTime,
		GolferName:  "John Doe",
		PlayerCount: 4,
	}
}

// WithGolfer sets the golfer name and party size for the booking
func (f *BookingFactory) WithGolfer(courseID uuid.UUID, date models.DateOnly, teeTime models.TimeOfDay, golferName string, playerCount int) *models.Booking {
	booking := f.Create(courseID, date, teeTime)
	booking.GolferName = golferName
	booking.PlayerCount = playerCount
	return booking
}
