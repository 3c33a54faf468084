package teesheet_test

import (
	"testing"

	"shadowbrook-backend/internal/database/models"
	"shadowbrook-backend/internal/teesheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) models.TimeOfDay {
	t.Helper()
	tod, err := models.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestGenerateEmptySheet(t *testing.T) {
	settings := models.TeeTimeSettings{
		IntervalMinutes: 10,
		FirstTime:       mustTime(t, "07:00"),
		LastTime:        mustTime(t, "08:00"),
	}

	slots := teesheet.Generate(settings, nil)

	require.Len(t, slots, 6)
	assert.Equal(t, "07:00", slots[0].Time)
	assert.Equal(t, "07:10", slots[1].Time)
	assert.Equal(t, "07:50", slots[5].Time)
	for _, slot := range slots {
		assert.Equal(t, teesheet.SlotStatusOpen, slot.Status)
		assert.Nil(t, slot.GolferName)
		assert.Zero(t, slot.PlayerCount)
	}
}

func TestGenerateLastTimeIsNeverASlot(t *testing.T) {
	settings := models.TeeTimeSettings{
		IntervalMinutes: 12,
		FirstTime:       mustTime(t, "07:00"),
		LastTime:        mustTime(t, "07:36"),
	}

	slots := teesheet.Generate(settings, nil)

	require.Len(t, slots, 3)
	assert.Equal(t, "07:00", slots[0].Time)
	assert.Equal(t, "07:12", slots[1].Time)
	assert.Equal(t, "07:24", slots[2].Time)
}

func TestGenerateMarksBookedSlots(t *testing.T) {
	settings := models.TeeTimeSettings{
		IntervalMinutes: 10,
		FirstTime:       mustTime(t, "07:00"),
		LastTime:        mustTime(t, "08:00"),
	}
	bookings := []models.Booking{
		{Time: mustTime(t, "07:20"), GolferName: "John Doe", PlayerCount: 4},
	}

	slots := teesheet.Generate(settings, bookings)

	require.Len(t, slots, 6)
	booked := slots[2]
	assert.Equal(t, "07:20", booked.Time)
	assert.Equal(t, teesheet.SlotStatusBooked, booked.Status)
	require.NotNil(t, booked.GolferName)
	assert.Equal(t, "John Doe", *booked.GolferName)
	assert.Equal(t, 4, booked.PlayerCount)

	for i, slot := range slots {
		if i == 2 {
			continue
		}
		assert.Equal(t, teesheet.SlotStatusOpen, slot.Status)
	}
}

func TestGenerateIgnoresBookingsOffTheGrid(t *testing.T) {
	settings := models.TeeTimeSettings{
		IntervalMinutes: 10,
		FirstTime:       mustTime(t, "07:00"),
		LastTime:        mustTime(t, "07:30"),
	}
	bookings := []models.Booking{
		{Time: mustTime(t, "07:15"), GolferName: "Off Grid", PlayerCount: 2},
	}

	slots := teesheet.Generate(settings, bookings)

	require.Len(t, slots, 3)
	for _, slot := range slots {
		assert.Equal(t, teesheet.SlotStatusOpen, slot.Status)
	}
}

func TestGenerateFirstBookingWinsOnDuplicates(t *testing.T) {
	settings := models.TeeTimeSettings{
		IntervalMinutes: 8,
		FirstTime:       mustTime(t, "07:00"),
		LastTime:        mustTime(t, "07:16"),
	}
	bookings := []models.Booking{
		{Time: mustTime(t, "07:08"), GolferName: "First", PlayerCount: 2},
		{Time: mustTime(t, "07:08"), GolferName: "Second", PlayerCount: 3},
	}

	slots := teesheet.Generate(settings, bookings)

	require.Len(t, slots, 2)
	require.NotNil(t, slots[1].GolferName)
	assert.Equal(t, "First", *slots[1].GolferName)
	assert.Equal(t, 2, slots[1].PlayerCount)
}

func TestGenerateEqualFirstAndLastYieldsNoSlots(t *testing.T) {
	settings := models.TeeTimeSettings{
		IntervalMinutes: 10,
		FirstTime:       mustTime(t, "07:00"),
		LastTime:        mustTime(t, "07:00"),
	}

	slots := teesheet.Generate(settings, nil)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateIsDeterministic(t *testing.T) {
	settings := models.TeeTimeSettings{
		IntervalMinutes: 12,
		FirstTime:       mustTime(t, "06:00"),
		LastTime:        mustTime(t, "18:00"),
	}
	bookings := []models.Booking{
		{Time: mustTime(t, "09:24"), GolferName: "Repeat", PlayerCount: 1},
	}

	first := teesheet.Generate(settings, bookings)
	second := teesheet.Generate(settings, bookings)

	assert.Equal(t, first, second)
}
