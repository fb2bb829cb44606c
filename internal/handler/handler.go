package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ParkBooker/internal/domain"
	"github.com/stpnv0/ParkBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	CheckAvailability(ctx context.Context, from, to time.Time) (*domain.AvailabilityReport, error)
	CalculatePrice(from, to time.Time) int64
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListActive(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Amend(ctx context.Context, id string, input domain.AmendBookingInput) (*domain.AmendResult, error)
	Cancel(ctx context.Context, id string) error
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
	}
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	from, to, ok := h.parseDateRange(c, req.ParkingFrom, req.ParkingTo)
	if !ok {
		return
	}

	report, err := h.bookingService.CheckAvailability(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(report))
}

func (h *Handler) CheckPrice(c *ginext.Context) {
	var req dto.CheckPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	from, to, ok := h.parseDateRange(c, req.ParkingFrom, req.ParkingTo)
	if !ok {
		return
	}

	price := h.bookingService.CalculatePrice(from, to)

	c.JSON(http.StatusOK, dto.PriceResponse{
		PricePence: price,
		PriceGBP:   dto.FormatGBP(price),
		Message:    "Parking price calculated successfully.",
	})
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	from, to, ok := h.parseDateRange(c, req.ParkingFrom, req.ParkingTo)
	if !ok {
		return
	}

	if from.Before(today()) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "parking_from must not be in the past"})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		CarPlate:     req.CarPlate,
		CustomerName: req.CustomerName,
		ParkingFrom:  from,
		ParkingTo:    to,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// ListBookings отдаёт активные брони, пересекающиеся с диапазоном
// from/to из query-параметров (по умолчанию — сегодня).
func (h *Handler) ListBookings(c *ginext.Context) {
	fromStr := c.DefaultQuery("from", today().Format(time.DateOnly))
	toStr := c.DefaultQuery("to", fromStr)

	from, to, ok := h.parseDateRange(c, fromStr, toStr)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListActive(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, ginext.H{"bookings": resp})
}

func (h *Handler) AmendBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.AmendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	from, to, ok := h.parseDateRange(c, req.ParkingFrom, req.ParkingTo)
	if !ok {
		return
	}

	result, err := h.bookingService.Amend(c.Request.Context(), id, domain.AmendBookingInput{
		CarPlate:     req.CarPlate,
		CustomerName: req.CustomerName,
		ParkingFrom:  from,
		ParkingTo:    to,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAmendBookingResponse(result))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// parseDateRange валидирует даты до вызова ядра: ядро порядок дат не проверяет.
func (h *Handler) parseDateRange(c *ginext.Context, fromStr, toStr string) (time.Time, time.Time, bool) {
	from, err := time.ParseInLocation(time.DateOnly, fromStr, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid parking_from, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	to, err := time.ParseInLocation(time.DateOnly, toStr, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid parking_to, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	if to.Before(from) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "parking_to must not be before parking_from"})
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrAmendmentNotAllowed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
