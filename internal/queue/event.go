// Package queue defines message payloads exchanged over the broker.
package queue

// BookingCreatedEvent is published after a booking is persisted. It
// carries enough detail for downstream consumers (notifications,
// analytics) without a trip back to the primary database.
type BookingCreatedEvent struct {
	BookingID      uint64   `json:"booking_id"`
	UserID         uint64   `json:"user_id"`
	Date           string   `json:"date"`
	EventType      string   `json:"event_type"`
	GuestCount     int      `json:"guest_count"`
	ChildName      string   `json:"child_name"`
	ProgramID      uint64   `json:"program_id"`
	AddonIDs       []uint64 `json:"addon_ids"`
	MasterclassIDs []uint64 `json:"masterclass_ids"`
	TotalPrice     int64    `json:"total_price"`
}
