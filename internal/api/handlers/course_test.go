package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"shadowbrook-backend/internal/api/middleware"
	"shadowbrook-backend/internal/database/models"
	apperrors "shadowbrook-backend/internal/errors"
	"shadowbrook-backend/internal/mocks"
	"shadowbrook-backend/internal/service"
	"shadowbrook-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CourseHandlerTestSuite defines the test suite for CourseHandler
type CourseHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockCourseService *mocks.MockCourseServiceInterface
	handler           *CourseHandler
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CourseHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCourseService = mocks.NewMockCourseServiceInterface(suite.ctrl)

	suite.handler = NewCourseHandler(suite.mockCourseService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(middleware.TenantScope())

	v1 := suite.httpSuite.Router.Group("/api/v1")
	courses := v1.Group("/courses")
	{
		courses.POST("", suite.handler.CreateCourse)
		courses.GET("", suite.handler.ListCourses)
		courses.GET("/:id", suite.handler.GetCourse)
		courses.PUT("/:id/tee-time-settings", suite.handler.UpdateTeeTimeSettings)
		courses.GET("/:id/tee-time-settings", suite.handler.GetTeeTimeSettings)
		courses.PUT("/:id/pricing", suite.handler.UpdatePricing)
		courses.GET("/:id/pricing", suite.handler.GetPricing)
	}
}

// TearDownTest cleans up after each test
func (suite *CourseHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CourseHandlerTestSuite) mustTime(s string) models.TimeOfDay {
	tod, err := models.ParseTimeOfDay(s)
	require.NoError(suite.T(), err)
	return tod
}

// TestCreateCourseWithTenantHeader tests that the header scope reaches the service
func (suite *CourseHandlerTestSuite) TestCreateCourseWithTenantHeader() {
	tenantID := uuid.New()
	courseID := uuid.New()
	requestBody := map[string]interface{}{
		"name": "Shadowbrook North",
	}

	expectedResponse := &service.CourseResponse{
		ID:   courseID,
		Name: "Shadowbrook North",
		Tenant: service.TenantInfo{
			ID:               tenantID,
			OrganizationName: "Shadowbrook Golf Group",
		},
	}

	suite.mockCourseService.EXPECT().
		Create(gomock.Any(), &tenantID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/courses", requestBody, map[string]string{
		middleware.TenantHeader: tenantID.String(),
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.CourseResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), courseID, response.ID)
	assert.Equal(suite.T(), tenantID, response.Tenant.ID)
}

// TestCreateCourseWithoutHeader tests the unscoped path (body tenant fallback)
func (suite *CourseHandlerTestSuite) TestCreateCourseWithoutHeader() {
	bodyTenantID := uuid.New()
	requestBody := map[string]interface{}{
		"name":      "Shadowbrook South",
		"tenant_id": bodyTenantID.String(),
	}

	suite.mockCourseService.EXPECT().
		Create(gomock.Any(), gomock.Nil()).
		DoAndReturn(func(req *service.CreateCourseRequest, headerTenantID *uuid.UUID) (*service.CourseResponse, error) {
			require.NotNil(suite.T(), req.TenantID)
			assert.Equal(suite.T(), bodyTenantID, *req.TenantID)
			return &service.CourseResponse{ID: uuid.New(), Name: req.Name}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/courses", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestCreateCourseMalformedHeaderIsUnscoped tests the fail-open header resolver
func (suite *CourseHandlerTestSuite) TestCreateCourseMalformedHeaderIsUnscoped() {
	requestBody := map[string]interface{}{
		"name": "Shadowbrook West",
	}

	suite.mockCourseService.EXPECT().
		Create(gomock.Any(), gomock.Nil()).
		Return(nil, apperrors.NewValidationError("tenant_id", "required via X-Tenant-Id header or request body")).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/courses", requestBody, map[string]string{
		middleware.TenantHeader: "not-a-uuid",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "tenant_id")
}

// TestCreateCourseConflict tests a duplicate course name mapping to 409
func (suite *CourseHandlerTestSuite) TestCreateCourseConflict() {
	tenantID := uuid.New()
	requestBody := map[string]interface{}{
		"name": "Shadowbrook North",
	}

	suite.mockCourseService.EXPECT().
		Create(gomock.Any(), &tenantID).
		Return(nil, apperrors.ErrCourseExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/courses", requestBody, map[string]string{
		middleware.TenantHeader: tenantID.String(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "course already exists")
}

// TestListCoursesScoped tests that the tenant scope reaches the list call
func (suite *CourseHandlerTestSuite) TestListCoursesScoped() {
	tenantID := uuid.New()
	expected := []service.CourseResponse{
		{ID: uuid.New(), Name: "North"},
	}

	suite.mockCourseService.EXPECT().
		GetAll(&tenantID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/api/v1/courses", nil, map[string]string{
		middleware.TenantHeader: tenantID.String(),
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.CourseResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}

// TestGetCourseNotFound tests a missing course mapping to 404
func (suite *CourseHandlerTestSuite) TestGetCourseNotFound() {
	courseID := uuid.New()

	suite.mockCourseService.EXPECT().
		GetByID(courseID, gomock.Nil()).
		Return(nil, apperrors.ErrCourseNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/courses/%s", courseID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "course not found")
}

// TestGetCourseInvalidID tests a malformed course ID mapping to 400
func (suite *CourseHandlerTestSuite) TestGetCourseInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/courses/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid course ID")
}

// TestUpdateTeeTimeSettings tests a successful settings update
func (suite *CourseHandlerTestSuite) TestUpdateTeeTimeSettings() {
	courseID := uuid.New()
	requestBody := map[string]interface{}{
		"tee_time_interval_minutes": 10,
		"first_tee_time":            "07:00",
		"last_tee_time":             "17:00",
	}

	expected := &service.TeeTimeSettingsResponse{
		TeeTimeIntervalMinutes: 10,
		FirstTeeTime:           suite.mustTime("07:00"),
		LastTeeTime:            suite.mustTime("17:00"),
	}

	suite.mockCourseService.EXPECT().
		UpdateTeeTimeSettings(courseID, gomock.Nil(), gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/courses/%s/tee-time-settings", courseID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), float64(10), response["tee_time_interval_minutes"])
	assert.Equal(suite.T(), "07:00:00", response["first_tee_time"])
	assert.Equal(suite.T(), "17:00:00", response["last_tee_time"])
}

// TestUpdateTeeTimeSettingsInvalidInterval tests a whitelist violation mapping to 400
func (suite *CourseHandlerTestSuite) TestUpdateTeeTimeSettingsInvalidInterval() {
	courseID := uuid.New()
	requestBody := map[string]interface{}{
		"tee_time_interval_minutes": 9,
		"first_tee_time":            "07:00",
		"last_tee_time":             "17:00",
	}

	suite.mockCourseService.EXPECT().
		UpdateTeeTimeSettings(courseID, gomock.Nil(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("tee_time_interval_minutes", "interval must be 8, 10, or 12 minutes")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/courses/%s/tee-time-settings", courseID), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "interval must be 8, 10, or 12 minutes")
}

// TestUpdateTeeTimeSettingsCourseNotFound tests a missing course mapping to 404
func (suite *CourseHandlerTestSuite) TestUpdateTeeTimeSettingsCourseNotFound() {
	courseID := uuid.New()
	requestBody := map[string]interface{}{
		"tee_time_interval_minutes": 10,
		"first_tee_time":            "07:00",
		"last_tee_time":             "17:00",
	}

	suite.mockCourseService.EXPECT().
		UpdateTeeTimeSettings(courseID, gomock.Nil(), gomock.Any()).
		Return(nil, apperrors.ErrCourseNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/courses/%s/tee-time-settings", courseID), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "course not found")
}

// TestGetTeeTimeSettingsUnconfigured tests the empty-object response for an unconfigured course
func (suite *CourseHandlerTestSuite) TestGetTeeTimeSettingsUnconfigured() {
	courseID := uuid.New()

	suite.mockCourseService.EXPECT().
		GetTeeTimeSettings(courseID, gomock.Nil()).
		Return(nil, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/courses/%s/tee-time-settings", courseID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{}`, recorder.Body.String())
}

// TestGetTeeTimeSettingsConfigured tests reading back configured settings
func (suite *CourseHandlerTestSuite) TestGetTeeTimeSettingsConfigured() {
	courseID := uuid.New()
	expected := &service.TeeTimeSettingsResponse{
		TeeTimeIntervalMinutes: 12,
		FirstTeeTime:           suite.mustTime("06:30"),
		LastTeeTime:            suite.mustTime("18:00"),
	}

	suite.mockCourseService.EXPECT().
		GetTeeTimeSettings(courseID, gomock.Nil()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/courses/%s/tee-time-settings", courseID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{
		"tee_time_interval_minutes": 12,
		"first_tee_time": "06:30:00",
		"last_tee_time": "18:00:00"
	}`, recorder.Body.String())
}

// TestUpdatePricing tests a successful pricing update
func (suite *CourseHandlerTestSuite) TestUpdatePricing() {
	courseID := uuid.New()
	requestBody := map[string]interface{}{
		"flat_rate_price": 49.99,
	}

	suite.mockCourseService.EXPECT().
		UpdatePricing(courseID, gomock.Nil(), gomock.Any()).
		Return(&service.PricingResponse{FlatRatePrice: 49.99}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/courses/%s/pricing", courseID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{"flat_rate_price": 49.99}`, recorder.Body.String())
}

// TestUpdatePricingOutOfBounds tests a price bound violation mapping to 400
func (suite *CourseHandlerTestSuite) TestUpdatePricingOutOfBounds() {
	courseID := uuid.New()
	requestBody := map[string]interface{}{
		"flat_rate_price": 10000.01,
	}

	suite.mockCourseService.EXPECT().
		UpdatePricing(courseID, gomock.Nil(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("flat_rate_price", "price must be less than or equal to 10000")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/courses/%s/pricing", courseID), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "less than or equal to 10000")
}

// TestGetPricingUnset tests the empty-object response for an unset price
func (suite *CourseHandlerTestSuite) TestGetPricingUnset() {
	courseID := uuid.New()

	suite.mockCourseService.EXPECT().
		GetPricing(courseID, gomock.Nil()).
		Return(nil, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/courses/%s/pricing", courseID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{}`, recorder.Body.String())
}

// TestCourseHandlerTestSuite runs the test suite
func TestCourseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CourseHandlerTestSuite))
}
