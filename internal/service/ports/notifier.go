package ports

import (
	"context"

	"github.com/stpnv0/ParkBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingAmended(ctx context.Context, b *domain.Booking, priceChangePence int64)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
}
