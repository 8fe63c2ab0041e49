// internal/domain/models/review.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is one user's rating of a bootcamp. A unique (bootcamp_id, user_id)
// index enforces one review per user per bootcamp.
type Review struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	BootcampID primitive.ObjectID `bson:"bootcamp_id" json:"bootcampId"`
	UserID     primitive.ObjectID `bson:"user_id" json:"userId"`
	Title      string             `bson:"title" json:"title"`
	Text       string             `bson:"text" json:"text"`
	Rating     int                `bson:"rating" json:"rating"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}
