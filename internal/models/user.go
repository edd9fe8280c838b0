package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email" validate:"required,email"`
	Photo string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role  Role               `json:"role,omitempty" bson:"role,omitempty"`
}
