// Package teesheet derives the bookable time slots for a course and date.
// Generation is a pure computation: the same settings and booking set always
// produce the same slot list.
package teesheet

import (
	"shadowbrook-backend/internal/database/models"
)

// SlotStatus marks a slot as open or booked.
type SlotStatus string

const (
	SlotStatusOpen   SlotStatus = "open"
	SlotStatusBooked SlotStatus = "booked"
)

// Slot is one bookable tee time on the sheet.
type Slot struct {
	Time        string     `json:"time"` // HH:mm
	Status      SlotStatus `json:"status"`
	GolferName  *string    `json:"golfer_name"`
	PlayerCount int        `json:"player_count"`
}

// Generate produces the ordered slot list for one date. Starting at the
// configured first tee time, it emits a slot every interval while strictly
// before the last tee time; the last tee time itself is never a slot start,
// and first == last yields an empty sheet. A slot is booked when a booking
// exists at exactly its time; with duplicate bookings at one time (not
// expected, but the generator must not error) the first in the given order
// wins. Ascending time order holds by construction.
func Generate(settings models.TeeTimeSettings, bookings []models.Booking) []Slot {
	slots := []Slot{}
	if settings.IntervalMinutes <= 0 {
		// a non-positive interval would never advance past FirstTime
		return slots
	}
	for current := settings.FirstTime; current.Before(settings.LastTime); current = current.Add(settings.IntervalMinutes) {
		slot := Slot{
			Time:   current.Short(),
			Status: SlotStatusOpen,
		}
		if booking := findBooking(bookings, current); booking != nil {
			slot.Status = SlotStatusBooked
			slot.GolferName = &booking.GolferName
			slot.PlayerCount = booking.PlayerCount
		}
		slots = append(slots, slot)
	}
	return slots
}

func findBooking(bookings []models.Booking, t models.TimeOfDay) *models.Booking {
	for i := range bookings {
		if bookings[i].Time == t {
			return &bookings[i]
		}
	}
	return nil
}
