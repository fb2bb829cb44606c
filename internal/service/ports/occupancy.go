package ports

import (
	"context"
	"time"
)

type OccupancyReader interface {
	// CountOccupied возвращает число активных броней, чей интервал
	// [parking_from, parking_to] пересекает календарный день day.
	// excludeBookingID ("" — без исключения) нужен, чтобы amendment
	// не считал собственную бронь занятым местом.
	CountOccupied(ctx context.Context, day time.Time, excludeBookingID string) (int, error)
}
