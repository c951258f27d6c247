package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Source collection names carried on write events.
const (
	CollectionBookings  = "bookings"
	CollectionRooms     = "rooms"
	CollectionStaff     = "staff"
	CollectionInventory = "inventory"
)

// SourceWriteEvent captures one write to a source collection as a pair of
// document snapshots: Before is empty on create, After is empty on delete.
// EventID is the deduplication handle. Delivery is at-least-once, so the
// same event may arrive more than once with the same ID.
type SourceWriteEvent struct {
	EventID    string          `json:"eventId"`
	Collection string          `json:"collection"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// NewSourceWriteEvent marshals the before/after snapshots and stamps the
// event with a fresh ID. A nil snapshot stays empty (absent document).
func NewSourceWriteEvent(collection string, before, after interface{}) (SourceWriteEvent, error) {
	evt := SourceWriteEvent{
		EventID:    uuid.New().String(),
		Collection: collection,
		OccurredAt: time.Now(),
	}
	if before != nil {
		b, err := json.Marshal(before)
		if err != nil {
			return SourceWriteEvent{}, err
		}
		evt.Before = b
	}
	if after != nil {
		b, err := json.Marshal(after)
		if err != nil {
			return SourceWriteEvent{}, err
		}
		evt.After = b
	}
	return evt, nil
}
