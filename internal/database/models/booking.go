package models

import (
	"github.com/google/uuid"
)

// Booking represents a reservation for a course slot on a given date and
// time. Bookings are externally populated facts in this service: there is no
// booking-write endpoint, the tee sheet only reads them. The unique index on
// (course_id, date, time) keeps one occupant per slot at the store layer.
type Booking struct {
	BaseModel
	CourseID    uuid.UUID `json:"course_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookings_course_date_time" validate:"required"`
	Date        DateOnly  `json:"date" gorm:"not null;uniqueIndex:idx_bookings_course_date_time" validate:"required"`
	Time        TimeOfDay `json:"time" gorm:"not null;uniqueIndex:idx_bookings_course_date_time"`
	GolferName  string    `json:"golfer_name" gorm:"not null;size:200" validate:"required,max=200"`
	PlayerCount int       `json:"player_count" gorm:"not null" validate:"min=1,max=4"`

	// Relationships
	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
