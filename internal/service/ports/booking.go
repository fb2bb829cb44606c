package ports

import (
	"context"
	"time"

	"github.com/stpnv0/ParkBooker/internal/domain"
)

type BookingRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// Create и Update перепроверяют вместимость внутри транзакции,
	// maxCapacity — предел мест на день.
	Create(ctx context.Context, b *domain.Booking, maxCapacity int) error
	Update(ctx context.Context, b *domain.Booking, maxCapacity int) error
	SoftDelete(ctx context.Context, b *domain.Booking) error
	ActiveOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}
