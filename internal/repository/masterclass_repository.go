package repository

import (
	"context"
	"database/sql"

	"github.com/kidfest/event-booking/internal/model"
)

// MasterclassRepo provides CRUD over the 'masterclasses' table.
type MasterclassRepo struct{ DB *sql.DB }

func NewMasterclassRepo(db *sql.DB) *MasterclassRepo { return &MasterclassRepo{DB: db} }

// List returns all masterclasses ordered by id.
func (r *MasterclassRepo) List(ctx context.Context) ([]model.Masterclass, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, price_per_child FROM masterclasses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Masterclass{}
	for rows.Next() {
		var m model.Masterclass
		if err := rows.Scan(&m.ID, &m.Name, &m.PricePerChild); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// Create inserts a masterclass and returns its ID.
func (r *MasterclassRepo) Create(ctx context.Context, name string, pricePerChild int64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO masterclasses (name, price_per_child) VALUES (?,?)", name, pricePerChild)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Delete removes a masterclass. Deleting a missing id is a no-op.
func (r *MasterclassRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM masterclasses WHERE id=?", id)
	return err
}
