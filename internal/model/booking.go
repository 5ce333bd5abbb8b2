package model

import "time"

// Booking records a client's reserved event in the `bookings` table.
// AddonIDs and MasterclassIDs are stored as JSON text columns and
// decoded by the repository on read; the stored order matches the
// request order and duplicates are kept as sent.
//
// TotalPrice is captured at creation time from the catalog prices
// visible during validation and never recomputed. ProgramID is a weak
// reference: deleting the program later leaves it dangling and the
// booking keeps its captured total.
//
// Fields:
//  ID             – primary key identifier.
//  Date           – calendar date of the event (as entered).
//  EventType      – free-form event kind (e.g. birthday).
//  GuestCount     – number of children, positive.
//  Phone          – contact phone for the client.
//  ChildName      – name of the celebrated child.
//  ProgramID      – referenced program id (dangling-tolerant).
//  AddonIDs       – referenced addon ids, order preserved.
//  MasterclassIDs – referenced masterclass ids, order preserved.
//  TotalPrice     – captured total, immutable after creation.
//  Completed      – one-way flag flipped by admins.
//  CreatedAt      – timestamp of creation.
type Booking struct {
	ID             uint64    `json:"id"`
	Date           string    `json:"date"`
	EventType      string    `json:"event_type"`
	GuestCount     int       `json:"guest_count"`
	Phone          string    `json:"phone"`
	ChildName      string    `json:"child_name"`
	ProgramID      uint64    `json:"program_id"`
	AddonIDs       []uint64  `json:"addon_ids"`
	MasterclassIDs []uint64  `json:"masterclass_ids"`
	TotalPrice     int64     `json:"total_price"`
	Completed      bool      `json:"completed"`
	CreatedAt      time.Time `json:"created_at"`
}
