package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Instructor is the read-only directory listing, separate from User records.
// Number_of_Courses keeps the field name the stored documents already use.
type Instructor struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	Email           string             `json:"email,omitempty" bson:"email,omitempty"`
	NumberOfCourses int                `json:"Number_of_Courses" bson:"Number_of_Courses"`
}
