package repository

import (
	"shadowbrook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking (fixtures and seed data only; the API exposes
// no booking-write endpoint)
func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByCourseAndDate retrieves all bookings for a course on a date, in time
// order
func (r *BookingRepository) GetByCourseAndDate(courseID uuid.UUID, date models.DateOnly) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("course_id = ? AND date = ?", courseID, date).Order("time").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
