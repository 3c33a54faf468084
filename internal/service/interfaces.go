package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	Create(req *CreateTenantRequest) (*TenantResponse, error)
	GetAll() ([]TenantListItemResponse, error)
	GetByID(id uuid.UUID) (*TenantDetailResponse, error)
}

// CourseServiceInterface defines the interface for course service. The
// tenantID parameter is the resolved request scope (nil = unscoped) threaded
// explicitly through every read.
type CourseServiceInterface interface {
	Create(req *CreateCourseRequest, headerTenantID *uuid.UUID) (*CourseResponse, error)
	GetAll(tenantID *uuid.UUID) ([]CourseResponse, error)
	GetByID(id uuid.UUID, tenantID *uuid.UUID) (*CourseResponse, error)
	UpdateTeeTimeSettings(id uuid.UUID, tenantID *uuid.UUID, req *UpdateTeeTimeSettingsRequest) (*TeeTimeSettingsResponse, error)
	GetTeeTimeSettings(id uuid.UUID, tenantID *uuid.UUID) (*TeeTimeSettingsResponse, error)
	UpdatePricing(id uuid.UUID, tenantID *uuid.UUID, req *UpdatePricingRequest) (*PricingResponse, error)
	GetPricing(id uuid.UUID, tenantID *uuid.UUID) (*PricingResponse, error)
}

// TeeSheetServiceInterface defines the interface for tee sheet service
type TeeSheetServiceInterface interface {
	Get(courseID uuid.UUID, date string, tenantID *uuid.UUID) (*TeeSheetResponse, error)
}

// TextMessageServiceInterface defines the interface for outbound SMS
type TextMessageServiceInterface interface {
	Send(ctx context.Context, toPhoneNumber, message string) error
}
