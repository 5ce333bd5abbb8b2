package handler

import (
	"context"
	"time"

	"github.com/kidfest/event-booking/internal/model"
)

// Store interfaces consumed by the handlers. The concrete SQL
// repositories satisfy them; tests substitute in-memory fakes. No
// handler touches *sql.DB directly.

// ProgramStore is keyed CRUD over programs.
type ProgramStore interface {
	List(ctx context.Context) ([]model.Program, error)
	Create(ctx context.Context, name string, price int64) (uint64, error)
	Delete(ctx context.Context, id uint64) error
}

// AddonStore is keyed CRUD over addons.
type AddonStore interface {
	List(ctx context.Context) ([]model.Addon, error)
	Create(ctx context.Context, name string, price int64) (uint64, error)
	Delete(ctx context.Context, id uint64) error
}

// MasterclassStore is keyed CRUD over masterclasses.
type MasterclassStore interface {
	List(ctx context.Context) ([]model.Masterclass, error)
	Create(ctx context.Context, name string, pricePerChild int64) (uint64, error)
	Delete(ctx context.Context, id uint64) error
}

// BookingStore persists validated bookings. Delete and Complete are
// no-ops on missing ids.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) (uint64, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	Delete(ctx context.Context, id uint64) error
	Complete(ctx context.Context, id uint64) error
}

// UserStore manages credentials. Create returns
// repository.ErrUsernameExists on a taken username.
type UserStore interface {
	Create(ctx context.Context, username, password, role string, cost int) (uint64, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// TokenStore is the refresh-token revocation list.
type TokenStore interface {
	StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID uint64) error
}
