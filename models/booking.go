package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's reservation of one slot for one treatment on one date.
// The (email, treatment, appointmentDate) triple is unique; a compound index
// on the collection backs the pre-insert conflict check.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Treatment       string             `bson:"treatment" json:"treatment"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Slot            string             `bson:"slot" json:"slot"`
	PatientName     string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid            bool               `bson:"paid" json:"paid"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
