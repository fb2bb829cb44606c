package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/ParkBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type availabilitySource interface {
	Availability(ctx context.Context, from, to time.Time) ([]domain.DayAvailability, error)
}

// Scheduler периодически пишет в лог занятость парковки на сегодня.
type Scheduler struct {
	capacity availabilitySource
	interval time.Duration
	logger   logger.Logger
}

func New(
	capacity availabilitySource,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		capacity: capacity,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("occupancy reporter started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("occupancy reporter stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days, err := s.capacity.Availability(ctx, today, today)
	if err != nil {
		s.logger.Error("failed to read occupancy",
			logger.String("error", err.Error()),
		)
		return
	}
	if len(days) == 0 {
		return
	}

	report := days[0]
	s.logger.Info("occupancy report",
		logger.String("date", report.Date.Format(time.DateOnly)),
		logger.Int("occupied", report.OccupiedSpaces),
		logger.Int("available", report.AvailableSpaces),
	)

	if !report.IsAvailable {
		s.logger.Warn("car park is full",
			logger.String("date", report.Date.Format(time.DateOnly)),
		)
	}
}
