package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/kidfest/event-booking/internal/model"
)

// BookingRepo persists bookings. The addon and masterclass id lists
// are stored as JSON text in the row itself rather than a join table:
// they are only ever read back whole. Write order and duplicates are
// preserved exactly as validated.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a validated booking and returns its ID. The caller
// has already computed TotalPrice against a catalog snapshot; this
// method never recomputes or re-checks references.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) (uint64, error) {
	addonIDs, err := encodeIDs(b.AddonIDs)
	if err != nil {
		return 0, err
	}
	mcIDs, err := encodeIDs(b.MasterclassIDs)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO bookings
		 (date, event_type, guest_count, phone, child_name, program_id, addon_ids, masterclass_ids, total_price)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		b.Date, b.EventType, b.GuestCount, b.Phone, b.ChildName,
		b.ProgramID, addonIDs, mcIDs, b.TotalPrice)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	b.ID = uint64(id)
	return b.ID, nil
}

// ListAll returns every booking with the id lists decoded.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, date, event_type, guest_count, phone, child_name,
		        program_id, addon_ids, masterclass_ids, total_price, completed, created_at
		 FROM bookings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Booking{}
	for rows.Next() {
		var (
			b        model.Booking
			addonRaw string
			mcRaw    string
		)
		if err := rows.Scan(&b.ID, &b.Date, &b.EventType, &b.GuestCount, &b.Phone,
			&b.ChildName, &b.ProgramID, &addonRaw, &mcRaw, &b.TotalPrice,
			&b.Completed, &b.CreatedAt); err != nil {
			return nil, err
		}
		if b.AddonIDs, err = decodeIDs(addonRaw); err != nil {
			return nil, err
		}
		if b.MasterclassIDs, err = decodeIDs(mcRaw); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

// Delete removes a booking. A missing id is a no-op, not an error.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	return err
}

// Complete flips a booking to completed. The flip is one-way and
// idempotent: completing an already-completed or missing booking
// affects zero rows and succeeds.
func (r *BookingRepo) Complete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE bookings SET completed=1 WHERE id=?", id)
	return err
}

func encodeIDs(ids []uint64) (string, error) {
	if ids == nil {
		ids = []uint64{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeIDs(raw string) ([]uint64, error) {
	if raw == "" {
		return []uint64{}, nil
	}
	ids := []uint64{}
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
