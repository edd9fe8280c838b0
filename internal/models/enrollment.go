package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment is the immutable snapshot written once a payment goes through.
// It carries the cart row it originated from (SelectedClassID) and the class
// reference (ItemID) whose counters get adjusted.
type Enrollment struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email           string             `json:"email" bson:"email"`
	TransactionID   string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Price           float64            `json:"price" bson:"price"`
	ItemID          string             `json:"itemId" bson:"itemId"`
	SelectedClassID string             `json:"selectedClassId" bson:"selectedClassId"`
	ClassName       string             `json:"className,omitempty" bson:"className,omitempty"`
	Date            time.Time          `json:"date" bson:"date"`
}
