package models

import "time"

// Experience is a bookable tour from the catalog. Catalog management is
// external; this service only reads seeded records.
type Experience struct {
	ID             string    `bson:"id" json:"id"`
	Title          string    `bson:"title" json:"title"`
	Slug           string    `bson:"slug" json:"slug"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Image          string    `bson:"image,omitempty" json:"image,omitempty"`
	PricePerPerson float64   `bson:"pricePerPerson" json:"pricePerPerson"`
	Duration       string    `bson:"duration,omitempty" json:"duration,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
