package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	ImageURL  string             `bson:"image,omitempty" json:"image,omitempty"`
}
