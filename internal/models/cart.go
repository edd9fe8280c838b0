package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartSelection is a pending, not-yet-paid class selection owned by a user.
type CartSelection struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ItemID string             `json:"itemId" bson:"itemId"`
	Name   string             `json:"name" bson:"name"`
	Image  string             `json:"image,omitempty" bson:"image,omitempty"`
	Price  float64            `json:"price" bson:"price"`
	Email  string             `json:"email" bson:"email"`
}
