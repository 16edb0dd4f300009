package booking

import "fmt"

// ConflictError reports a duplicate (email, treatment, appointmentDate) booking.
// The message is shown to the patient as-is.
type ConflictError struct {
	Date string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("You already have a booking on %s", e.Date)
}
