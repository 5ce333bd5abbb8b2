package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kidfest/event-booking/internal/model"
	"github.com/kidfest/event-booking/internal/pricing"
	"github.com/kidfest/event-booking/internal/queue"
	queue_publisher "github.com/kidfest/event-booking/internal/service"
)

// BookingHandler orchestrates the booking use cases: snapshot the
// catalog, price the request, persist, and announce.
type BookingHandler struct {
	Programs      ProgramStore
	Addons        AddonStore
	Masterclasses MasterclassStore
	Bookings      BookingStore
	AMQPURL       string // empty disables event publishing
}

func NewBookingHandler(programs ProgramStore, addons AddonStore, masterclasses MasterclassStore, bookings BookingStore, amqpURL string) *BookingHandler {
	return &BookingHandler{
		Programs:      programs,
		Addons:        addons,
		Masterclasses: masterclasses,
		Bookings:      bookings,
		AMQPURL:       amqpURL,
	}
}

type createBookingReq struct {
	Date           string   `json:"date"`
	EventType      string   `json:"event_type"`
	GuestCount     int      `json:"guest_count"`
	Phone          string   `json:"phone"`
	ChildName      string   `json:"child_name"`
	ProgramID      uint64   `json:"program_id"`
	AddonIDs       []uint64 `json:"addon_ids"`
	MasterclassIDs []uint64 `json:"masterclass_ids"`
}

// Create validates and persists a booking for any authenticated user.
// The catalog is read once into a snapshot so pricing sees a single
// consistent view; the snapshot read and the insert are deliberately
// not one transaction, so a concurrent catalog delete can leave the
// stored program_id dangling with the captured price intact.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Date) == "" || req.GuestCount < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date and positive guest_count required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	snap, err := h.loadSnapshot(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog read failed"})
	}

	total, err := pricing.ComputeTotal(snap, pricing.Request{
		ProgramID:      req.ProgramID,
		AddonIDs:       req.AddonIDs,
		MasterclassIDs: req.MasterclassIDs,
		GuestCount:     req.GuestCount,
	})
	if err != nil {
		var verr *pricing.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Reason, "id": verr.ID})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "pricing failed"})
	}

	booking := &model.Booking{
		Date:           strings.TrimSpace(req.Date),
		EventType:      strings.TrimSpace(req.EventType),
		GuestCount:     req.GuestCount,
		Phone:          strings.TrimSpace(req.Phone),
		ChildName:      strings.TrimSpace(req.ChildName),
		ProgramID:      req.ProgramID,
		AddonIDs:       req.AddonIDs,
		MasterclassIDs: req.MasterclassIDs,
		TotalPrice:     total,
	}
	id, err := h.Bookings.Create(ctx, booking)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	// Best effort: a broker outage never fails the booking.
	userID, _ := getUserID(c)
	_ = queue_publisher.PublishBookingCreated(ctx, h.AMQPURL, queue.BookingCreatedEvent{
		BookingID:      id,
		UserID:         userID,
		Date:           booking.Date,
		EventType:      booking.EventType,
		GuestCount:     booking.GuestCount,
		ChildName:      booking.ChildName,
		ProgramID:      booking.ProgramID,
		AddonIDs:       booking.AddonIDs,
		MasterclassIDs: booking.MasterclassIDs,
		TotalPrice:     total,
	})

	return c.JSON(http.StatusCreated, echo.Map{"booking_id": id, "total_price": total})
}

// List returns every booking with decoded id lists. Admin only.
func (h *BookingHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Delete removes a booking. A missing id still answers with
// confirmation: removal is the desired end state either way.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking deleted"})
}

// Complete marks a booking completed. Idempotent: re-completing or
// completing a missing id answers with confirmation.
func (h *BookingHandler) Complete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Complete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "complete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking marked as completed"})
}

func (h *BookingHandler) loadSnapshot(ctx context.Context) (pricing.Snapshot, error) {
	programs, err := h.Programs.List(ctx)
	if err != nil {
		return pricing.Snapshot{}, err
	}
	addons, err := h.Addons.List(ctx)
	if err != nil {
		return pricing.Snapshot{}, err
	}
	masterclasses, err := h.Masterclasses.List(ctx)
	if err != nil {
		return pricing.Snapshot{}, err
	}
	return pricing.NewSnapshot(programs, addons, masterclasses), nil
}
