package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "shadowbrook-backend/internal/errors"
	"shadowbrook-backend/internal/mocks"
	"shadowbrook-backend/internal/service"
	"shadowbrook-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TenantHandlerTestSuite defines the test suite for TenantHandler
type TenantHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTenantService *mocks.MockTenantServiceInterface
	handler           *TenantHandler
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TenantHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantService = mocks.NewMockTenantServiceInterface(suite.ctrl)

	suite.handler = NewTenantHandler(suite.mockTenantService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	tenants := v1.Group("/tenants")
	{
		tenants.POST("", suite.handler.CreateTenant)
		tenants.GET("", suite.handler.ListTenants)
		tenants.GET("/:id", suite.handler.GetTenant)
	}
}

// TearDownTest cleans up after each test
func (suite *TenantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTenant tests registering a tenant
func (suite *TenantHandlerTestSuite) TestCreateTenant() {
	tenantID := uuid.New()
	requestBody := map[string]interface{}{
		"organization_name": "Shadowbrook Golf Group",
		"contact_name":      "Pat Morgan",
		"contact_email":     "pat.morgan@shadowbrook.test",
		"contact_phone":     "+1-555-0142",
	}

	expectedResponse := &service.TenantResponse{
		ID:               tenantID,
		OrganizationName: "Shadowbrook Golf Group",
		ContactName:      "Pat Morgan",
		ContactEmail:     "pat.morgan@shadowbrook.test",
		ContactPhone:     "+1-555-0142",
		CreatedAt:        "2025-06-01T00:00:00Z",
		UpdatedAt:        "2025-06-01T00:00:00Z",
	}

	suite.mockTenantService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.TenantResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), tenantID, response.ID)
	assert.Equal(suite.T(), "Shadowbrook Golf Group", response.OrganizationName)
}

// TestCreateTenantValidationError tests a validation failure mapping to 400
func (suite *TenantHandlerTestSuite) TestCreateTenantValidationError() {
	requestBody := map[string]interface{}{
		"organization_name": "Shadowbrook Golf Group",
		"contact_name":      "Pat Morgan",
		"contact_email":     "not-an-email",
		"contact_phone":     "+1-555-0142",
	}

	suite.mockTenantService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("contact_email", "must be a valid email address")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "contact_email")
}

// TestCreateTenantConflict tests a duplicate organization name mapping to 409
func (suite *TenantHandlerTestSuite) TestCreateTenantConflict() {
	requestBody := map[string]interface{}{
		"organization_name": "Shadowbrook Golf Group",
		"contact_name":      "Pat Morgan",
		"contact_email":     "pat.morgan@shadowbrook.test",
		"contact_phone":     "+1-555-0142",
	}

	suite.mockTenantService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrTenantExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "tenant already exists")
}

// TestCreateTenantServiceError tests an unexpected failure mapping to 500
func (suite *TenantHandlerTestSuite) TestCreateTenantServiceError() {
	requestBody := map[string]interface{}{
		"organization_name": "Shadowbrook Golf Group",
		"contact_name":      "Pat Morgan",
		"contact_email":     "pat.morgan@shadowbrook.test",
		"contact_phone":     "+1-555-0142",
	}

	suite.mockTenantService.EXPECT().
		Create(gomock.Any()).
		Return(nil, fmt.Errorf("database is down")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to create tenant")
}

// TestCreateTenantMalformedBody tests a non-JSON body mapping to 400
func (suite *TenantHandlerTestSuite) TestCreateTenantMalformedBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants", "not an object")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestListTenants tests listing tenants with course counts
func (suite *TenantHandlerTestSuite) TestListTenants() {
	expected := []service.TenantListItemResponse{
		{
			TenantResponse: service.TenantResponse{
				ID:               uuid.New(),
				OrganizationName: "Shadowbrook Golf Group",
			},
			CourseCount: 2,
		},
	}

	suite.mockTenantService.EXPECT().
		GetAll().
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.TenantListItemResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), 2, response[0].CourseCount)
}

// TestGetTenant tests getting a tenant by ID
func (suite *TenantHandlerTestSuite) TestGetTenant() {
	tenantID := uuid.New()
	expected := &service.TenantDetailResponse{
		TenantResponse: service.TenantResponse{
			ID:               tenantID,
			OrganizationName: "Shadowbrook Golf Group",
		},
		Courses: []service.CourseSummary{
			{ID: uuid.New(), Name: "North"},
		},
	}

	suite.mockTenantService.EXPECT().
		GetByID(tenantID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/tenants/%s", tenantID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.TenantDetailResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), tenantID, response.ID)
	assert.Len(suite.T(), response.Courses, 1)
}

// TestGetTenantInvalidID tests a malformed tenant ID mapping to 400
func (suite *TenantHandlerTestSuite) TestGetTenantInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid tenant ID")
}

// TestGetTenantNotFound tests a missing tenant mapping to 404
func (suite *TenantHandlerTestSuite) TestGetTenantNotFound() {
	tenantID := uuid.New()

	suite.mockTenantService.EXPECT().
		GetByID(tenantID).
		Return(nil, apperrors.ErrTenantNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/tenants/%s", tenantID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "tenant not found")
}

// TestTenantHandlerTestSuite runs the test suite
func TestTenantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}
