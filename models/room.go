package models

import "time"

// RoomStatusAvailable is the only room status the stats aggregation
// distinguishes; every other value counts as unavailable.
const RoomStatusAvailable = "available"

// Room represents a single hotel room in the inventory.
type Room struct {
	ID            string    `bson:"id" json:"id"`
	Number        string    `bson:"number,omitempty" json:"number,omitempty"`
	Type          string    `bson:"type,omitempty" json:"type,omitempty"`
	Floor         int       `bson:"floor,omitempty" json:"floor,omitempty"`
	PricePerNight float64   `bson:"pricePerNight,omitempty" json:"pricePerNight,omitempty"`
	Status        string    `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt     time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
