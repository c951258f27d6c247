package models

import "time"

// InventoryItem represents a consumable stock item (linens, toiletries,
// minibar supplies). An item is considered low on stock when its quantity
// has dropped to or below its reorder level.
type InventoryItem struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	Category     string    `bson:"category,omitempty" json:"category,omitempty"`
	Quantity     int       `bson:"quantity" json:"quantity"`
	ReorderLevel int       `bson:"reorderLevel" json:"reorderLevel"`
	CreatedAt    time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
