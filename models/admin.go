package models

import "time"

// Admin is a dashboard administrator account. The password is stored as a
// bcrypt hash and never serialized.
type Admin struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AdminIdentity is the verified identity returned by login and verify.
type AdminIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
