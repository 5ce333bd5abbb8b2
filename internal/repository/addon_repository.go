package repository

import (
	"context"
	"database/sql"

	"github.com/kidfest/event-booking/internal/model"
)

// AddonRepo provides CRUD over the 'addons' table.
type AddonRepo struct{ DB *sql.DB }

func NewAddonRepo(db *sql.DB) *AddonRepo { return &AddonRepo{DB: db} }

// List returns all addons ordered by id.
func (r *AddonRepo) List(ctx context.Context) ([]model.Addon, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, price FROM addons ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Addon{}
	for rows.Next() {
		var a model.Addon
		if err := rows.Scan(&a.ID, &a.Name, &a.Price); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// Create inserts an addon and returns its ID.
func (r *AddonRepo) Create(ctx context.Context, name string, price int64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO addons (name, price) VALUES (?,?)", name, price)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Delete removes an addon. Deleting a missing id is a no-op.
func (r *AddonRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM addons WHERE id=?", id)
	return err
}
