package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oceanview/resort-api/internal/booking"
	"github.com/oceanview/resort-api/internal/model"
	"github.com/oceanview/resort-api/internal/pricing"
	"github.com/oceanview/resort-api/internal/queue"
	"github.com/oceanview/resort-api/internal/repository"
	queue_publisher "github.com/oceanview/resort-api/internal/service"
)

// ReservationHandler bundles dependencies for the reservation endpoints.
// RoomCount is the number of lettable rooms and feeds the occupancy
// statistic.
type ReservationHandler struct {
	Repo      *repository.ReservationRepo
	RoomCount int
}

func NewReservationHandler(repo *repository.ReservationRepo, roomCount int) *ReservationHandler {
	return &ReservationHandler{Repo: repo, RoomCount: roomCount}
}

// Create handles POST /api/reservations.  The raw form fields go through
// booking.BuildSubmission; a validation failure is a 400 listing every
// offending field.  The total bill is recomputed here from the rate
// table; whatever estimate the client displayed is never trusted.  On
// success a reservation.created event is published best-effort.
func (h *ReservationHandler) Create(c echo.Context) error {
	var fields booking.Fields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON format"})
	}

	req, err := booking.BuildSubmission(fields)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": verr.Error(),
				"errors":  verr.Fields,
			})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	// BuildSubmission guarantees valid categories and a positive night
	// count, so the estimate always exists here.
	total, ok := pricing.Estimate(req.CheckInDate, req.CheckOutDate, req.RoomType, req.BoardType)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Check-out must be at least one day after Check-in"})
	}

	res := model.Reservation{
		GuestName:    req.GuestName,
		Address:      req.Address,
		Phone:        req.Phone,
		RoomType:     req.RoomType,
		BoardType:    req.BoardType,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		TotalBill:    &total,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Repo.Create(ctx, &res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create reservation"})
	}

	// Publish the domain event after the booking is safely persisted.
	// The publisher logs its own failures; the guest still gets a 201.
	go func(ev queue.ReservationCreatedEvent) {
		pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pcancel()
		_ = queue_publisher.PublishReservationCreated(pctx, ev)
	}(queue.ReservationCreatedEvent{
		ReferenceID:  res.ReferenceID,
		GuestName:    res.GuestName,
		RoomType:     string(res.RoomType),
		BoardType:    string(res.BoardType),
		CheckInDate:  res.CheckInDate,
		CheckOutDate: res.CheckOutDate,
		Nights:       req.Nights,
		TotalBill:    total,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, res)
}

// List handles GET /api/reservations and returns every reservation,
// newest first.
func (h *ReservationHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	all, err := h.Repo.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to load reservations"})
	}
	return c.JSON(http.StatusOK, all)
}

// Table handles GET /api/reservations/table: the same reservations
// projected into display rows for the dashboard list.
func (h *ReservationHandler) Table(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	all, err := h.Repo.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to load reservations"})
	}
	rows := make([]booking.Row, 0, len(all))
	for _, r := range all {
		rows = append(rows, booking.DisplayRow(r))
	}
	return c.JSON(http.StatusOK, rows)
}

// Stats handles GET /api/reservations/stats.  Occupancy is the share of
// rooms occupied tonight against the configured room count, capped at
// 100% and reported as an opaque display string.
func (h *ReservationHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	today := time.Now().UTC().Format(model.DateLayout)
	bookings, revenue, occupied, err := h.Repo.Stats(ctx, today)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to load statistics"})
	}

	rate := int64(0)
	if h.RoomCount > 0 {
		rate = occupied * 100 / int64(h.RoomCount)
		if rate > 100 {
			rate = 100
		}
	}
	return c.JSON(http.StatusOK, model.Stats{
		TotalBookings: bookings,
		TotalRevenue:  revenue,
		OccupancyRate: fmt.Sprintf("%d%%", rate),
	})
}

// GetByReference handles GET /api/reservations/:referenceId for invoice
// lookup.  An unknown reference is a normal outcome and maps to 404.
func (h *ReservationHandler) GetByReference(c echo.Context) error {
	refID := c.Param("referenceId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Repo.GetByReferenceID(ctx, refID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to load reservation"})
	}
	return c.JSON(http.StatusOK, res)
}
