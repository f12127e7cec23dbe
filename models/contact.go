package models

import "time"

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID      string    `bson:"id" json:"id"`
	Name    string    `bson:"name" json:"name"`
	Email   string    `bson:"email" json:"email"`
	Phone   string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message string    `bson:"message" json:"message"`
	Date    time.Time `bson:"date" json:"date"`
}
