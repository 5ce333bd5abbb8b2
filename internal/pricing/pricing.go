// Package pricing computes booking totals against a point-in-time
// catalog snapshot. The computation is pure: callers load the snapshot
// once per request so a concurrent catalog edit cannot produce a total
// priced against two different catalog states.
package pricing

import (
	"fmt"

	"github.com/kidfest/event-booking/internal/model"
)

// Validation failure reasons. Handlers surface these verbatim so
// clients can tell which reference was rejected.
const (
	ReasonInvalidProgram     = "invalid_program"
	ReasonInvalidAddon       = "invalid_addon"
	ReasonInvalidMasterclass = "invalid_masterclass"
)

// ValidationError reports a booking request that references a catalog
// item missing from the snapshot. ID carries the offending reference
// for addon/masterclass failures; for an invalid program it is the
// requested program id.
type ValidationError struct {
	Reason string
	ID     uint64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: id %d", e.Reason, e.ID)
}

// Snapshot is an immutable view of the catalog keyed by id. Build one
// with NewSnapshot from the repository's list results.
type Snapshot struct {
	Programs      map[uint64]model.Program
	Addons        map[uint64]model.Addon
	Masterclasses map[uint64]model.Masterclass
}

// NewSnapshot indexes catalog listings by id for constant-time lookup
// during total computation.
func NewSnapshot(programs []model.Program, addons []model.Addon, masterclasses []model.Masterclass) Snapshot {
	s := Snapshot{
		Programs:      make(map[uint64]model.Program, len(programs)),
		Addons:        make(map[uint64]model.Addon, len(addons)),
		Masterclasses: make(map[uint64]model.Masterclass, len(masterclasses)),
	}
	for _, p := range programs {
		s.Programs[p.ID] = p
	}
	for _, a := range addons {
		s.Addons[a.ID] = a
	}
	for _, m := range masterclasses {
		s.Masterclasses[m.ID] = m
	}
	return s
}

// Request is the priced part of a booking request.
type Request struct {
	ProgramID      uint64
	AddonIDs       []uint64
	MasterclassIDs []uint64
	GuestCount     int
}

// ComputeTotal validates every catalog reference in req against snap
// and returns the booking total:
//
//	program.price + Σ addon.price + guest_count * Σ masterclass.price_per_child
//
// Addon and masterclass ids are processed in request order and are NOT
// deduplicated: a repeated id is billed each time it appears. The first
// missing reference aborts with a *ValidationError and no partial
// result.
func ComputeTotal(snap Snapshot, req Request) (int64, error) {
	program, ok := snap.Programs[req.ProgramID]
	if !ok {
		return 0, &ValidationError{Reason: ReasonInvalidProgram, ID: req.ProgramID}
	}
	total := program.Price

	for _, id := range req.AddonIDs {
		addon, ok := snap.Addons[id]
		if !ok {
			return 0, &ValidationError{Reason: ReasonInvalidAddon, ID: id}
		}
		total += addon.Price
	}

	for _, id := range req.MasterclassIDs {
		mc, ok := snap.Masterclasses[id]
		if !ok {
			return 0, &ValidationError{Reason: ReasonInvalidMasterclass, ID: id}
		}
		total += mc.PricePerChild * int64(req.GuestCount)
	}

	return total, nil
}
