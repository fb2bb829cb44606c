package capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/ParkBooker/internal/domain"
	"github.com/stpnv0/ParkBooker/internal/service/ports"
)

// Engine отвечает на вопрос "есть ли место" по дням.
// Занятость читает через OccupancyReader, сам состояния не хранит.
type Engine struct {
	occupancy   ports.OccupancyReader
	maxCapacity int
}

func NewEngine(occupancy ports.OccupancyReader, maxCapacity int) *Engine {
	return &Engine{
		occupancy:   occupancy,
		maxCapacity: maxCapacity,
	}
}

func (e *Engine) MaxCapacity() int {
	return e.maxCapacity
}

// IsAvailable проверяет каждый день включительного диапазона [from, to]
// и останавливается на первом заполненном дне.
func (e *Engine) IsAvailable(ctx context.Context, from, to time.Time, excludeBookingID string) (bool, error) {
	last := startOfDay(to)
	for day := startOfDay(from); !day.After(last); day = day.AddDate(0, 0, 1) {
		occupied, err := e.occupancy.CountOccupied(ctx, day, excludeBookingID)
		if err != nil {
			return false, fmt.Errorf("count occupied on %s: %w", day.Format(time.DateOnly), err)
		}
		if occupied >= e.maxCapacity {
			return false, nil
		}
	}

	return true, nil
}

// Availability возвращает разбивку по дням в порядке возрастания дат.
func (e *Engine) Availability(ctx context.Context, from, to time.Time) ([]domain.DayAvailability, error) {
	var days []domain.DayAvailability

	last := startOfDay(to)
	for day := startOfDay(from); !day.After(last); day = day.AddDate(0, 0, 1) {
		occupied, err := e.occupancy.CountOccupied(ctx, day, "")
		if err != nil {
			return nil, fmt.Errorf("count occupied on %s: %w", day.Format(time.DateOnly), err)
		}

		available := e.maxCapacity - occupied
		days = append(days, domain.DayAvailability{
			Date:            day,
			DayOfWeek:       day.Weekday().String(),
			TotalSpaces:     e.maxCapacity,
			OccupiedSpaces:  occupied,
			AvailableSpaces: available,
			IsAvailable:     available > 0,
		})
	}

	return days, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
