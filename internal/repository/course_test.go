//go:build integration
// +build integration

package repository

import (
	"testing"

	"shadowbrook-backend/internal/database/models"
	"shadowbrook-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CourseRepositoryTestSuite tests the CourseRepository
type CourseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CourseRepository
	tenantRepo    *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CourseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCourseRepository(suite.baseTestSuite.DB)
	suite.tenantRepo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CourseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CourseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CourseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CourseRepositoryTestSuite) createTenant(name string) *models.Tenant {
	tenant := suite.factories.Tenant.WithOrganizationName(name)
	suite.Require().NoError(suite.tenantRepo.Create(tenant))
	return tenant
}

// TestCreate tests creating a new course
func (suite *CourseRepositoryTestSuite) TestCreate() {
	tenant := suite.createTenant("Shadowbrook Golf Group")
	course := suite.factories.Course.WithTenant(tenant.ID)

	err := suite.repo.Create(course)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, course.ID)
}

// TestCreateDuplicateNameWithinTenant tests the per-tenant case-insensitive unique index
func (suite *CourseRepositoryTestSuite) TestCreateDuplicateNameWithinTenant() {
	tenant := suite.createTenant("Shadowbrook Golf Group")

	course1 := suite.factories.Course.WithName(tenant.ID, "North Course")
	suite.NoError(suite.repo.Create(course1))

	course2 := suite.factories.Course.WithName(tenant.ID, "NORTH COURSE")

	err := suite.repo.Create(course2)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestCreateSameNameAcrossTenants tests that the name constraint is per tenant
func (suite *CourseRepositoryTestSuite) TestCreateSameNameAcrossTenants() {
	tenant1 := suite.createTenant("Alpha Golf")
	tenant2 := suite.createTenant("Beta Golf")

	course1 := suite.factories.Course.WithName(tenant1.ID, "North Course")
	course2 := suite.factories.Course.WithName(tenant2.ID, "North Course")

	suite.NoError(suite.repo.Create(course1))
	suite.NoError(suite.repo.Create(course2))
}

// TestGetByIDScoping tests tenant scoping on single-course reads
func (suite *CourseRepositoryTestSuite) TestGetByIDScoping() {
	owner := suite.createTenant("Owner Golf")
	other := suite.createTenant("Other Golf")

	course := suite.factories.Course.WithTenant(owner.ID)
	suite.NoError(suite.repo.Create(course))

	// unscoped read sees the course
	retrieved, err := suite.repo.GetByID(course.ID, nil)
	suite.NoError(err)
	suite.Equal(course.ID, retrieved.ID)
	suite.Equal(owner.OrganizationName, retrieved.Tenant.OrganizationName)

	// owner-scoped read sees the course
	retrieved, err = suite.repo.GetByID(course.ID, &owner.ID)
	suite.NoError(err)
	suite.Equal(course.ID, retrieved.ID)

	// the other tenant's scope reads as record-not-found
	retrieved, err = suite.repo.GetByID(course.ID, &other.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestGetAllScoping tests tenant scoping on list reads
func (suite *CourseRepositoryTestSuite) TestGetAllScoping() {
	tenant1 := suite.createTenant("Alpha Golf")
	tenant2 := suite.createTenant("Beta Golf")

	suite.NoError(suite.repo.Create(suite.factories.Course.WithName(tenant1.ID, "Alpha One")))
	suite.NoError(suite.repo.Create(suite.factories.Course.WithName(tenant1.ID, "Alpha Two")))
	suite.NoError(suite.repo.Create(suite.factories.Course.WithName(tenant2.ID, "Beta One")))

	all, err := suite.repo.GetAll(nil)
	suite.NoError(err)
	suite.Len(all, 3)

	scoped, err := suite.repo.GetAll(&tenant1.ID)
	suite.NoError(err)
	suite.Len(scoped, 2)
	for _, course := range scoped {
		suite.Equal(tenant1.ID, course.TenantID)
	}
}

// TestGetByTenantAndName tests the case-insensitive duplicate pre-check lookup
func (suite *CourseRepositoryTestSuite) TestGetByTenantAndName() {
	tenant := suite.createTenant("Shadowbrook Golf Group")
	course := suite.factories.Course.WithName(tenant.ID, "North Course")
	suite.NoError(suite.repo.Create(course))

	retrieved, err := suite.repo.GetByTenantAndName(tenant.ID, "north COURSE")
	suite.NoError(err)
	suite.Equal(course.ID, retrieved.ID)

	// a different tenant gets a miss for the same name
	other := suite.createTenant("Other Golf")
	_, err = suite.repo.GetByTenantAndName(other.ID, "North Course")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdatePersistsSettings tests saving tee-time settings and pricing columns
func (suite *CourseRepositoryTestSuite) TestUpdatePersistsSettings() {
	tenant := suite.createTenant("Shadowbrook Golf Group")
	course := suite.factories.Course.WithTenant(tenant.ID)
	suite.NoError(suite.repo.Create(course))

	interval := 10
	first, err := models.ParseTimeOfDay("07:00")
	suite.Require().NoError(err)
	last, err := models.ParseTimeOfDay("17:00")
	suite.Require().NoError(err)
	price := 49.99

	course.TeeTimeIntervalMinutes = &interval
	course.FirstTeeTime = &first
	course.LastTeeTime = &last
	course.FlatRatePrice = &price

	suite.NoError(suite.repo.Update(course))

	retrieved, err := suite.repo.GetByID(course.ID, nil)
	suite.NoError(err)

	settings := retrieved.TeeTimeSettings()
	suite.Require().NotNil(settings)
	suite.Equal(10, settings.IntervalMinutes)
	suite.Equal("07:00", settings.FirstTime.Short())
	suite.Equal("17:00", settings.LastTime.Short())
	suite.Require().NotNil(retrieved.FlatRatePrice)
	suite.Equal(49.99, *retrieved.FlatRatePrice)
}

// TestCourseRepositoryTestSuite runs the test suite
func TestCourseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CourseRepositoryTestSuite))
}
