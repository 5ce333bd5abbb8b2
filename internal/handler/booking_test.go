package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidfest/event-booking/internal/model"
)

func seededBookingHandler() (*BookingHandler, *fakeBookingStore) {
	bookings := &fakeBookingStore{}
	h := NewBookingHandler(
		&fakeProgramStore{items: []model.Program{
			{ID: 1, Name: "Transformers", Price: 8000},
			{ID: 2, Name: "Disney", Price: 8000},
		}},
		&fakeAddonStore{items: []model.Addon{
			{ID: 1, Name: "Soap Show", Price: 2000},
		}},
		&fakeMasterclassStore{items: []model.Masterclass{
			{ID: 1, Name: "Young Confectioner", PricePerChild: 350},
		}},
		bookings,
		"", // publishing disabled in tests
	)
	return h, bookings
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateBookingComputesTotal(t *testing.T) {
	h, bookings := seededBookingHandler()
	e := echo.New()
	c, rec := postJSON(e, "/v1/bookings", `{
		"date": "2026-09-12",
		"event_type": "birthday",
		"guest_count": 5,
		"phone": "+1-555-0101",
		"child_name": "Mia",
		"program_id": 1,
		"addon_ids": [1],
		"masterclass_ids": [1]
	}`)
	c.Set("user_id", float64(7))

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		BookingID  uint64 `json:"booking_id"`
		TotalPrice int64  `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// 8000 + 2000 + 5*350
	assert.Equal(t, int64(11750), resp.TotalPrice)
	assert.Equal(t, uint64(1), resp.BookingID)

	require.Len(t, bookings.items, 1)
	assert.Equal(t, int64(11750), bookings.items[0].TotalPrice)
	assert.False(t, bookings.items[0].Completed)
}

func TestCreateBookingKeepsDuplicateIDs(t *testing.T) {
	h, bookings := seededBookingHandler()
	e := echo.New()
	c, rec := postJSON(e, "/v1/bookings", `{
		"date": "2026-09-12",
		"guest_count": 3,
		"program_id": 1,
		"addon_ids": [1, 1],
		"masterclass_ids": [1, 1]
	}`)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Duplicates stay in the stored lists and are billed each time.
	require.Len(t, bookings.items, 1)
	assert.Equal(t, []uint64{1, 1}, bookings.items[0].AddonIDs)
	assert.Equal(t, []uint64{1, 1}, bookings.items[0].MasterclassIDs)
	assert.Equal(t, int64(8000+2*2000+3*2*350), bookings.items[0].TotalPrice)
}

func TestCreateBookingUnknownProgram(t *testing.T) {
	h, bookings := seededBookingHandler()
	e := echo.New()
	// Addon and masterclass ids are valid; the bad program still wins.
	c, rec := postJSON(e, "/v1/bookings", `{
		"date": "2026-09-12",
		"guest_count": 5,
		"program_id": 99,
		"addon_ids": [1],
		"masterclass_ids": [1]
	}`)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_program", resp["error"])
	assert.Empty(t, bookings.items)
}

func TestCreateBookingUnknownMasterclassLeavesStoreUntouched(t *testing.T) {
	h, bookings := seededBookingHandler()
	e := echo.New()
	c, rec := postJSON(e, "/v1/bookings", `{
		"date": "2026-09-12",
		"guest_count": 5,
		"program_id": 1,
		"addon_ids": [1],
		"masterclass_ids": [42]
	}`)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_masterclass", resp["error"])
	assert.Equal(t, float64(42), resp["id"])
	assert.Empty(t, bookings.items)
}

func TestCreateBookingRejectsNonPositiveGuests(t *testing.T) {
	h, _ := seededBookingHandler()
	e := echo.New()
	c, rec := postJSON(e, "/v1/bookings", `{"date": "2026-09-12", "guest_count": 0, "program_id": 1}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBookingsReturnsDecodedIDLists(t *testing.T) {
	h, bookings := seededBookingHandler()
	bookings.items = []model.Booking{{
		ID: 1, Date: "2026-09-12", GuestCount: 5, ProgramID: 1,
		AddonIDs: []uint64{1, 1}, MasterclassIDs: []uint64{1}, TotalPrice: 11750,
	}}
	bookings.nextID = 1

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []model.Booking `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, []uint64{1, 1}, resp.Items[0].AddonIDs)
	assert.Equal(t, []uint64{1}, resp.Items[0].MasterclassIDs)
}

func TestDeleteBookingMissingIDIsNoop(t *testing.T) {
	h, _ := seededBookingHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("123")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCompleteBookingIsIdempotent(t *testing.T) {
	h, bookings := seededBookingHandler()
	bookings.items = []model.Booking{{ID: 1, Date: "2026-09-12", GuestCount: 2}}
	bookings.nextID = 1

	e := echo.New()
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPut, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, h.Complete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, bookings.items[0].Completed)
	}
}
