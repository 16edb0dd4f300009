package booking

import (
	"testing"

	"dentax/models"

	"github.com/stretchr/testify/assert"
)

func option(name string, slots ...string) models.AppointmentOption {
	return models.AppointmentOption{Name: name, Slots: slots}
}

func TestRemainingSlotsNoBookings(t *testing.T) {
	opt := option("Teeth Cleaning", "08.00 AM - 09.00 AM", "09.00 AM - 10.00 AM")

	remaining := RemainingSlots(opt, nil)

	assert.Equal(t, opt.Slots, remaining)
}

func TestRemainingSlotsRemovesBookedSlots(t *testing.T) {
	opt := option("Teeth Cleaning",
		"08.00 AM - 09.00 AM",
		"09.00 AM - 10.00 AM",
		"10.00 AM - 11.00 AM",
	)
	booked := []models.Booking{
		{Treatment: "Teeth Cleaning", Slot: "09.00 AM - 10.00 AM"},
	}

	remaining := RemainingSlots(opt, booked)

	assert.Equal(t, []string{"08.00 AM - 09.00 AM", "10.00 AM - 11.00 AM"}, remaining)
}

func TestRemainingSlotsIgnoresOtherTreatments(t *testing.T) {
	opt := option("Teeth Cleaning", "08.00 AM - 09.00 AM")
	booked := []models.Booking{
		{Treatment: "Cavity Protection", Slot: "08.00 AM - 09.00 AM"},
	}

	remaining := RemainingSlots(opt, booked)

	assert.Equal(t, []string{"08.00 AM - 09.00 AM"}, remaining)
}

func TestRemainingSlotsPreservesOrder(t *testing.T) {
	opt := option("Oral Surgery", "a", "b", "c", "d", "e")
	booked := []models.Booking{
		{Treatment: "Oral Surgery", Slot: "b"},
		{Treatment: "Oral Surgery", Slot: "d"},
	}

	remaining := RemainingSlots(opt, booked)

	assert.Equal(t, []string{"a", "c", "e"}, remaining)
}

func TestRemainingSlotsFullyBooked(t *testing.T) {
	opt := option("Oral Surgery", "a", "b")
	booked := []models.Booking{
		{Treatment: "Oral Surgery", Slot: "a"},
		{Treatment: "Oral Surgery", Slot: "b"},
	}

	remaining := RemainingSlots(opt, booked)

	assert.Empty(t, remaining)
}

func TestApplyAvailability(t *testing.T) {
	options := []models.AppointmentOption{
		option("Teeth Cleaning", "a", "b"),
		option("Cavity Protection", "a", "b"),
	}
	booked := []models.Booking{
		{Treatment: "Teeth Cleaning", Slot: "a"},
	}

	ApplyAvailability(options, booked)

	assert.Equal(t, []string{"b"}, options[0].Slots)
	assert.Equal(t, []string{"a", "b"}, options[1].Slots)
}
