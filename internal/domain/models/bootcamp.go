// internal/domain/models/bootcamp.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultBootcampPhoto is the placeholder filename used until a photo is uploaded.
const DefaultBootcampPhoto = "no-photo.jpg"

// Careers a bootcamp may advertise. Payload values outside this set are rejected.
var AllowedCareers = []string{
	"Web Development",
	"Mobile Development",
	"UI/UX",
	"Data Science",
	"Business",
	"Other",
}

// Location is a GeoJSON point with the address fields the geocoder resolved.
// Coordinates are [longitude, latitude] per the GeoJSON spec, which is the
// order the 2dsphere index and $centerSphere queries expect.
type Location struct {
	Type             string    `bson:"type" json:"type"`
	Coordinates      []float64 `bson:"coordinates" json:"coordinates"`
	FormattedAddress string    `bson:"formatted_address,omitempty" json:"formattedAddress,omitempty"`
	Street           string    `bson:"street,omitempty" json:"street,omitempty"`
	City             string    `bson:"city,omitempty" json:"city,omitempty"`
	State            string    `bson:"state,omitempty" json:"state,omitempty"`
	Zipcode          string    `bson:"zipcode,omitempty" json:"zipcode,omitempty"`
	Country          string    `bson:"country,omitempty" json:"country,omitempty"`
}

// Bootcamp is the primary record managed by this service.
// Slug is always derived from Name and is unique across the collection.
type Bootcamp struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	OwnerID       primitive.ObjectID `bson:"owner_id" json:"ownerId"`
	Name          string             `bson:"name" json:"name"`
	Slug          string             `bson:"slug" json:"slug"`
	Description   string             `bson:"description" json:"description"`
	Website       string             `bson:"website,omitempty" json:"website,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Address       string             `bson:"-" json:"address,omitempty"` // input only; geocoded into Location
	Location      Location           `bson:"location" json:"location"`
	Careers       []string           `bson:"careers" json:"careers"`
	Housing       bool               `bson:"housing" json:"housing"`
	JobAssistance bool               `bson:"job_assistance" json:"jobAssistance"`
	JobGuarantee  bool               `bson:"job_guarantee" json:"jobGuarantee"`
	AcceptGI      bool               `bson:"accept_gi" json:"acceptGi"`
	AverageCost   int                `bson:"average_cost,omitempty" json:"averageCost,omitempty"`
	Photo         string             `bson:"photo" json:"photo"`
	Published     bool               `bson:"published" json:"published"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
