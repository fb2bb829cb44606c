package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ParkBooker/internal/capacity"
	"github.com/stpnv0/ParkBooker/internal/domain"
	"github.com/stpnv0/ParkBooker/internal/pricing"
	"github.com/stpnv0/ParkBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	repo     ports.BookingRepo
	capacity *capacity.Engine
	pricing  *pricing.Engine
	notifier ports.BookingNotifier
	logger   logger.Logger
}

func NewBookingService(
	repo ports.BookingRepo,
	capacity *capacity.Engine,
	pricing *pricing.Engine,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:     repo,
		capacity: capacity,
		pricing:  pricing,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *BookingService) CheckAvailability(ctx context.Context, from, to time.Time) (*domain.AvailabilityReport, error) {
	days, err := s.capacity.Availability(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	isAvailable := true
	for _, d := range days {
		if !d.IsAvailable {
			isAvailable = false
			break
		}
	}

	return &domain.AvailabilityReport{
		IsAvailable:   isAvailable,
		TotalCapacity: s.capacity.MaxCapacity(),
		Days:          days,
	}, nil
}

func (s *BookingService) CalculatePrice(from, to time.Time) int64 {
	return s.pricing.CalculatePrice(from, to)
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookingService) ListActive(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	bookings, err := s.repo.ActiveOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	available, err := s.capacity.IsAvailable(ctx, input.ParkingFrom, input.ParkingTo, "")
	if err != nil {
		return nil, fmt.Errorf("check capacity: %w", err)
	}
	if !available {
		return nil, domain.ErrCapacityExceeded
	}

	price := s.pricing.CalculatePrice(input.ParkingFrom, input.ParkingTo)

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:           uuid.New().String(),
		CarPlate:     strings.ToUpper(input.CarPlate),
		CustomerName: input.CustomerName,
		ParkingFrom:  input.ParkingFrom,
		ParkingTo:    input.ParkingTo,
		PricePence:   price,
		Status:       domain.BookingStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.repo.Create(ctx, booking, s.capacity.MaxCapacity()); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("car_plate", booking.CarPlate),
		logger.Int64("price_pence", booking.PricePence),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// Amend меняет активную бронь целиком: даты, номер, имя, цену.
// Отменённую бронь менять нельзя — проверяется до любых обращений
// к capacity и pricing.
func (s *BookingService) Amend(ctx context.Context, id string, input domain.AmendBookingInput) (*domain.AmendResult, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}

	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAmendmentNotAllowed
	}

	oldPrice := booking.PricePence

	// свою бронь из подсчёта занятости исключаем
	available, err := s.capacity.IsAvailable(ctx, input.ParkingFrom, input.ParkingTo, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("check capacity: %w", err)
	}
	if !available {
		return nil, domain.ErrCapacityExceeded
	}

	newPrice := s.pricing.CalculatePrice(input.ParkingFrom, input.ParkingTo)

	updated := *booking
	if input.CarPlate != "" {
		updated.CarPlate = strings.ToUpper(input.CarPlate)
	}
	if input.CustomerName != "" {
		updated.CustomerName = input.CustomerName
	}
	updated.ParkingFrom = input.ParkingFrom
	updated.ParkingTo = input.ParkingTo
	updated.PricePence = newPrice
	updated.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, &updated, s.capacity.MaxCapacity()); err != nil {
		return nil, fmt.Errorf("amend booking %s: %w", id, err)
	}

	priceChange := newPrice - oldPrice

	s.logger.Info("booking amended",
		logger.String("booking_id", updated.ID),
		logger.Int64("price_change_pence", priceChange),
	)

	go s.notifier.NotifyBookingAmended(context.WithoutCancel(ctx), &updated, priceChange)

	return &domain.AmendResult{
		Booking:          &updated,
		PriceChangePence: priceChange,
	}, nil
}

// Cancel идемпотентен: повторная отмена — успех без записи.
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}

	if booking.Status == domain.BookingStatusCancelled {
		return nil
	}

	if err = s.repo.SoftDelete(ctx, booking); err != nil {
		return fmt.Errorf("cancel booking %s: %w", id, err)
	}

	booking.Status = domain.BookingStatusCancelled

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return nil
}
