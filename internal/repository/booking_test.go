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

// BookingRepositoryTestSuite tests the BookingRepository
type BookingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BookingRepository
	courseRepo    *CourseRepository
	tenantRepo    *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BookingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewBookingRepository(suite.baseTestSuite.DB)
	suite.courseRepo = NewCourseRepository(suite.baseTestSuite.DB)
	suite.tenantRepo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BookingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BookingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BookingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *BookingRepositoryTestSuite) createCourse() *models.Course {
	// unique org name per call so the functional unique index stays quiet
	tenant := suite.factories.Tenant.WithOrganizationName("Org " + uuid.NewString())
	suite.Require().NoError(suite.tenantRepo.Create(tenant))
	course := suite.factories.Course.WithTenant(tenant.ID)
	suite.Require().NoError(suite.courseRepo.Create(course))
	return course
}

func (suite *BookingRepositoryTestSuite) mustDate(s string) models.DateOnly {
	date, err := models.ParseDateOnly(s)
	suite.Require().NoError(err)
	return date
}

func (suite *BookingRepositoryTestSuite) mustTime(s string) models.TimeOfDay {
	tod, err := models.ParseTimeOfDay(s)
	suite.Require().NoError(err)
	return tod
}

// TestCreate tests seeding a booking
func (suite *BookingRepositoryTestSuite) TestCreate() {
	course := suite.createCourse()

	booking := suite.factories.Booking.Create(course.ID, suite.mustDate("2025-06-15"), suite.mustTime("07:30"))

	suite.NoError(suite.repo.Create(booking))
}

// TestCreateDuplicateSlot tests the one-occupant-per-slot unique index
func (suite *BookingRepositoryTestSuite) TestCreateDuplicateSlot() {
	course := suite.createCourse()
	date := suite.mustDate("2025-06-15")
	teeTime := suite.mustTime("07:30")

	first := suite.factories.Booking.WithGolfer(course.ID, date, teeTime, "First Golfer", 2)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Booking.WithGolfer(course.ID, date, teeTime, "Second Golfer", 4)

	err := suite.repo.Create(second)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByCourseAndDate tests loading bookings in time order
func (suite *BookingRepositoryTestSuite) TestGetByCourseAndDate() {
	course := suite.createCourse()
	otherCourse := suite.createCourse()
	date := suite.mustDate("2025-06-15")

	late := suite.factories.Booking.WithGolfer(course.ID, date, suite.mustTime("09:00"), "Late Golfer", 3)
	early := suite.factories.Booking.WithGolfer(course.ID, date, suite.mustTime("07:00"), "Early Golfer", 2)
	otherDay := suite.factories.Booking.Create(course.ID, suite.mustDate("2025-06-16"), suite.mustTime("07:00"))
	elsewhere := suite.factories.Booking.Create(otherCourse.ID, date, suite.mustTime("07:00"))

	suite.NoError(suite.repo.Create(late))
	suite.NoError(suite.repo.Create(early))
	suite.NoError(suite.repo.Create(otherDay))
	suite.NoError(suite.repo.Create(elsewhere))

	bookings, err := suite.repo.GetByCourseAndDate(course.ID, date)

	suite.NoError(err)
	suite.Require().Len(bookings, 2)
	suite.Equal("Early Golfer", bookings[0].GolferName)
	suite.Equal("Late Golfer", bookings[1].GolferName)
	suite.Equal("2025-06-15", bookings[0].Date.String())
	suite.Equal("07:00", bookings[0].Time.Short())
}

// TestGetByCourseAndDateEmpty tests a day with no bookings
func (suite *BookingRepositoryTestSuite) TestGetByCourseAndDateEmpty() {
	course := suite.createCourse()

	bookings, err := suite.repo.GetByCourseAndDate(course.ID, suite.mustDate("2025-06-15"))

	suite.NoError(err)
	suite.Empty(bookings)
}

// TestBookingRepositoryTestSuite runs the test suite
func TestBookingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BookingRepositoryTestSuite))
}
