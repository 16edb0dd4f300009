package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a treatment type with its bookable time slots and price.
// Slots hold display strings like "10.00 AM - 10.30 AM"; availability is
// computed per date by removing already-booked slots.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price" json:"price"`
}

// SpecialtyRef is the name-only projection of an appointment option.
type SpecialtyRef struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
