package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/kidfest/event-booking/internal/model"
	"github.com/kidfest/event-booking/internal/repository"
	"github.com/kidfest/event-booking/internal/utils"
)

// In-memory store fakes backing the handler tests.

type fakeProgramStore struct{ items []model.Program }

func (f *fakeProgramStore) List(context.Context) ([]model.Program, error) { return f.items, nil }
func (f *fakeProgramStore) Create(_ context.Context, name string, price int64) (uint64, error) {
	id := uint64(len(f.items) + 1)
	f.items = append(f.items, model.Program{ID: id, Name: name, Price: price})
	return id, nil
}
func (f *fakeProgramStore) Delete(_ context.Context, id uint64) error {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeAddonStore struct{ items []model.Addon }

func (f *fakeAddonStore) List(context.Context) ([]model.Addon, error) { return f.items, nil }
func (f *fakeAddonStore) Create(_ context.Context, name string, price int64) (uint64, error) {
	id := uint64(len(f.items) + 1)
	f.items = append(f.items, model.Addon{ID: id, Name: name, Price: price})
	return id, nil
}
func (f *fakeAddonStore) Delete(_ context.Context, id uint64) error {
	for i, a := range f.items {
		if a.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeMasterclassStore struct{ items []model.Masterclass }

func (f *fakeMasterclassStore) List(context.Context) ([]model.Masterclass, error) {
	return f.items, nil
}
func (f *fakeMasterclassStore) Create(_ context.Context, name string, pricePerChild int64) (uint64, error) {
	id := uint64(len(f.items) + 1)
	f.items = append(f.items, model.Masterclass{ID: id, Name: name, PricePerChild: pricePerChild})
	return id, nil
}
func (f *fakeMasterclassStore) Delete(_ context.Context, id uint64) error {
	for i, m := range f.items {
		if m.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeBookingStore struct {
	items  []model.Booking
	nextID uint64
}

func (f *fakeBookingStore) Create(_ context.Context, b *model.Booking) (uint64, error) {
	f.nextID++
	b.ID = f.nextID
	f.items = append(f.items, *b)
	return b.ID, nil
}
func (f *fakeBookingStore) ListAll(context.Context) ([]model.Booking, error) {
	return append([]model.Booking{}, f.items...), nil
}
func (f *fakeBookingStore) Delete(_ context.Context, id uint64) error {
	for i, b := range f.items {
		if b.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}
func (f *fakeBookingStore) Complete(_ context.Context, id uint64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Completed = true
			break
		}
	}
	return nil
}

type fakeUserStore struct {
	users  map[string]model.User
	nextID uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]model.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, username, password, role string, cost int) (uint64, error) {
	if _, exists := f.users[username]; exists {
		return 0, repository.ErrUsernameExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	f.nextID++
	f.users[username] = model.User{
		ID: f.nextID, Username: username, PasswordHash: hash, Role: role,
	}
	return f.nextID, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	u, ok := f.users[username]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, sql.ErrNoRows
}

type fakeTokenStore struct {
	tokens map[string]model.RefreshToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]model.RefreshToken{}}
}

func (f *fakeTokenStore) StoreRefresh(_ context.Context, userID uint64, tokenHash string, exp time.Time) error {
	f.tokens[tokenHash] = model.RefreshToken{UserID: userID, TokenHash: tokenHash, ExpiresAt: exp}
	return nil
}

func (f *fakeTokenStore) ValidateRefresh(_ context.Context, tokenHash string) (uint64, error) {
	t, ok := f.tokens[tokenHash]
	if !ok || t.RevokedAt != nil || time.Now().UTC().After(t.ExpiresAt) {
		return 0, sql.ErrNoRows
	}
	return t.UserID, nil
}

func (f *fakeTokenStore) RevokeByHash(_ context.Context, tokenHash string) error {
	if t, ok := f.tokens[tokenHash]; ok {
		now := time.Now().UTC()
		t.RevokedAt = &now
		f.tokens[tokenHash] = t
	}
	return nil
}

func (f *fakeTokenStore) RevokeAllForUser(_ context.Context, userID uint64) error {
	now := time.Now().UTC()
	for h, t := range f.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &now
			f.tokens[h] = t
		}
	}
	return nil
}
