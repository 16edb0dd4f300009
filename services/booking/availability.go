package booking

import "dentax/models"

// RemainingSlots returns the option's slots minus the slots already taken by
// bookings for the same treatment. Original slot order is preserved; bookings
// for other treatments are ignored.
func RemainingSlots(option models.AppointmentOption, booked []models.Booking) []string {
	taken := make(map[string]struct{})
	for _, b := range booked {
		if b.Treatment == option.Name {
			taken[b.Slot] = struct{}{}
		}
	}

	remaining := make([]string, 0, len(option.Slots))
	for _, slot := range option.Slots {
		if _, ok := taken[slot]; !ok {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}

// ApplyAvailability rewrites each option's slot list to the slots still open
// given the day's bookings.
func ApplyAvailability(options []models.AppointmentOption, booked []models.Booking) {
	for i := range options {
		options[i].Slots = RemainingSlots(options[i], booked)
	}
}
