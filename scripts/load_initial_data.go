package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"shadowbrook-backend/internal/config"
	"shadowbrook-backend/internal/database"
	"shadowbrook-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	OrganizationName string `yaml:"organization_name"`
	ContactName      string `yaml:"contact_name"`
	ContactEmail     string `yaml:"contact_email"`
	ContactPhone     string `yaml:"contact_phone"`
}

type CourseData struct {
	Name             string   `yaml:"name"`
	OrganizationName string   `yaml:"organization_name"`
	StreetAddress    *string  `yaml:"street_address,omitempty"`
	City             *string  `yaml:"city,omitempty"`
	State            *string  `yaml:"state,omitempty"`
	ZipCode          *string  `yaml:"zip_code,omitempty"`
	ContactEmail     *string  `yaml:"contact_email,omitempty"`
	ContactPhone     *string  `yaml:"contact_phone,omitempty"`
	IntervalMinutes  *int     `yaml:"tee_time_interval_minutes,omitempty"`
	FirstTeeTime     *string  `yaml:"first_tee_time,omitempty"`
	LastTeeTime      *string  `yaml:"last_tee_time,omitempty"`
	FlatRatePrice    *float64 `yaml:"flat_rate_price,omitempty"`
}

type BookingData struct {
	CourseName  string `yaml:"course_name"`
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	GolferName  string `yaml:"golfer_name"`
	PlayerCount int    `yaml:"player_count"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type CoursesFile struct {
	Courses []CourseData `yaml:"courses"`
}

type BookingsFile struct {
	Bookings []BookingData `yaml:"bookings"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // suppress SQL noise during data loading
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	courses, err := loadCourses(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load courses: %w", err)
	}

	bookings, err := loadBookings(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	// Create tenants first
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated := 0
	for _, tenantData := range tenants {
		tenant, created, err := createTenant(db, tenantData)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.OrganizationName, err)
		}
		tenantMap[tenantData.OrganizationName] = tenant
		if created {
			tenantCreated++
		}
	}
	log.Printf("Tenants: %d created, %d total", tenantCreated, len(tenants))

	// Create courses
	courseMap := make(map[string]*models.Course)
	courseCreated := 0
	for _, courseData := range courses {
		course, created, err := createCourse(db, courseData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create course %s: %w", courseData.Name, err)
		}
		courseMap[courseData.Name] = course
		if created {
			courseCreated++
		}
	}
	log.Printf("Courses: %d created, %d total", courseCreated, len(courses))

	// Create bookings
	bookingCreated := 0
	for _, bookingData := range bookings {
		created, err := createBooking(db, bookingData, courseMap)
		if err != nil {
			return fmt.Errorf("failed to create booking for %s on %s: %w", bookingData.CourseName, bookingData.Date, err)
		}
		if created {
			bookingCreated++
		}
	}
	log.Printf("Bookings: %d created, %d total", bookingCreated, len(bookings))

	return nil
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var file TenantsFile
	if err := readYAML(filepath.Join(dataDir, "tenants.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Tenants, nil
}

func loadCourses(dataDir string) ([]CourseData, error) {
	var file CoursesFile
	if err := readYAML(filepath.Join(dataDir, "courses.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Courses, nil
}

func loadBookings(dataDir string) ([]BookingData, error) {
	var file BookingsFile
	if err := readYAML(filepath.Join(dataDir, "bookings.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Bookings, nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// createTenant is idempotent: an existing tenant with the same organization
// name (any casing) is reused.
func createTenant(db *gorm.DB, data TenantData) (*models.Tenant, bool, error) {
	var existing models.Tenant
	err := db.First(&existing, "LOWER(organization_name) = LOWER(?)", data.OrganizationName).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	tenant := &models.Tenant{
		OrganizationName: data.OrganizationName,
		ContactName:      data.ContactName,
		ContactEmail:     data.ContactEmail,
		ContactPhone:     data.ContactPhone,
	}
	if err := db.Create(tenant).Error; err != nil {
		return nil, false, err
	}
	return tenant, true, nil
}

func createCourse(db *gorm.DB, data CourseData, tenantMap map[string]*models.Tenant) (*models.Course, bool, error) {
	tenant, ok := tenantMap[data.OrganizationName]
	if !ok {
		return nil, false, fmt.Errorf("unknown organization %q", data.OrganizationName)
	}

	var existing models.Course
	err := db.First(&existing, "tenant_id = ? AND LOWER(name) = LOWER(?)", tenant.ID, data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	course := &models.Course{
		TenantID:               tenant.ID,
		Name:                   data.Name,
		StreetAddress:          data.StreetAddress,
		City:                   data.City,
		State:                  data.State,
		ZipCode:                data.ZipCode,
		ContactEmail:           data.ContactEmail,
		ContactPhone:           data.ContactPhone,
		TeeTimeIntervalMinutes: data.IntervalMinutes,
		FlatRatePrice:          data.FlatRatePrice,
	}

	if data.FirstTeeTime != nil {
		first, err := models.ParseTimeOfDay(*data.FirstTeeTime)
		if err != nil {
			return nil, false, err
		}
		course.FirstTeeTime = &first
	}
	if data.LastTeeTime != nil {
		last, err := models.ParseTimeOfDay(*data.LastTeeTime)
		if err != nil {
			return nil, false, err
		}
		course.LastTeeTime = &last
	}

	if err := db.Create(course).Error; err != nil {
		return nil, false, err
	}
	return course, true, nil
}

func createBooking(db *gorm.DB, data BookingData, courseMap map[string]*models.Course) (bool, error) {
	course, ok := courseMap[data.CourseName]
	if !ok {
		return false, fmt.Errorf("unknown course %q", data.CourseName)
	}

	date, err := models.ParseDateOnly(data.Date)
	if err != nil {
		return false, err
	}
	teeTime, err := models.ParseTimeOfDay(data.Time)
	if err != nil {
		return false, err
	}

	booking := &models.Booking{
		CourseID:    course.ID,
		Date:        date,
		Time:        teeTime,
		GolferName:  data.GolferName,
		PlayerCount: data.PlayerCount,
	}

	if err := db.Create(booking).Error; err != nil {
		// the slot index makes re-runs idempotent
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
