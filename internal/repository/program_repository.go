package repository

import (
	"context"
	"database/sql"

	"github.com/kidfest/event-booking/internal/model"
)

// ProgramRepo provides CRUD over the 'programs' table. Programs have
// no back-references to bookings: deleting one referenced by an old
// booking is allowed and leaves that booking's program_id dangling.
type ProgramRepo struct{ DB *sql.DB }

func NewProgramRepo(db *sql.DB) *ProgramRepo { return &ProgramRepo{DB: db} }

// List returns all programs ordered by id.
func (r *ProgramRepo) List(ctx context.Context) ([]model.Program, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, price FROM programs ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Program{}
	for rows.Next() {
		var p model.Program
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// Create inserts a program and returns its ID.
func (r *ProgramRepo) Create(ctx context.Context, name string, price int64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO programs (name, price) VALUES (?,?)", name, price)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Delete removes a program. Deleting a missing id is a no-op.
func (r *ProgramRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM programs WHERE id=?", id)
	return err
}
