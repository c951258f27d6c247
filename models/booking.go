package models

import "time"

// Booking represents a reservation record as written by the front desk.
//
// The revenue and check-in fields come in two generations of the schema:
// older records carry Amount/ArrivalDate, newer ones TotalAmount/CheckIn.
// The stats aggregation resolves them through ordered fallback chains
// (see services/stats), so all variants stay readable here.
type Booking struct {
	ID          string     `bson:"id" json:"id"`
	GuestName   string     `bson:"guestName,omitempty" json:"guestName,omitempty"`
	RoomNumber  string     `bson:"roomNumber,omitempty" json:"roomNumber,omitempty"`
	TotalAmount *float64   `bson:"totalAmount,omitempty" json:"totalAmount,omitempty"`
	Amount      *float64   `bson:"amount,omitempty" json:"amount,omitempty"`
	CheckIn     *string    `bson:"checkIn,omitempty" json:"checkIn,omitempty"`
	CheckInDate *string    `bson:"checkInDate,omitempty" json:"checkInDate,omitempty"`
	ArrivalDate *string    `bson:"arrivalDate,omitempty" json:"arrivalDate,omitempty"`
	CheckOut    *string    `bson:"checkOut,omitempty" json:"checkOut,omitempty"`
	Guests      int        `bson:"guests,omitempty" json:"guests,omitempty"`
	Status      string     `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
