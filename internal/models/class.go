package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassStatus string

const (
	StatusPending  ClassStatus = "pending"
	StatusApproved ClassStatus = "approved"
	StatusDenied   ClassStatus = "denied"
)

// ClassOffering is an instructor-authored course instance stored in the
// allClasses collection. ItemID duplicates the identifier the frontend puts
// on cart rows; the enrollment counter update matches on it instead of _id.
type ClassOffering struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ItemID          string             `json:"itemId,omitempty" bson:"itemId,omitempty"`
	Name            string             `json:"name" bson:"name" validate:"required"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	Price           float64            `json:"price" bson:"price" validate:"required,gt=0"`
	AvailableSet    int                `json:"available_set" bson:"available_set" validate:"gte=0"`
	InstructorName  string             `json:"instructorName,omitempty" bson:"instructorName,omitempty"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail" validate:"required,email"`
	Status          ClassStatus        `json:"status" bson:"status"`
	EnrollCount     int                `json:"enroll_count" bson:"enroll_count"`
	Feedback        string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

// PopularClass lives in the classes collection: read-only showcase entries
// sorted by how many students they have.
type PopularClass struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Image    string             `json:"image,omitempty" bson:"image,omitempty"`
	Students int                `json:"students" bson:"students"`
}
