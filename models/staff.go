package models

import "time"

// StaffStatusActive is the status string older staff records use before
// the IsActive boolean was introduced.
const StaffStatusActive = "active"

// Staff represents an employee on the hotel roster. IsActive is nil on
// records written before the boolean flag existed; for those the Status
// string decides activity (see services/stats).
type Staff struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	IsActive  *bool     `bson:"isActive,omitempty" json:"isActive,omitempty"`
	Status    string    `bson:"status,omitempty" json:"status,omitempty"`
	HiredAt   time.Time `bson:"hiredAt,omitempty" json:"hiredAt,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
