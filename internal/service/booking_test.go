package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/ParkBooker/internal/capacity"
	"github.com/stpnv0/ParkBooker/internal/config"
	"github.com/stpnv0/ParkBooker/internal/domain"
	"github.com/stpnv0/ParkBooker/internal/pricing"
	"github.com/stpnv0/ParkBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const maxCapacity = 10

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func pricingConfig() config.PricingConfig {
	return config.PricingConfig{
		WeekdayPence:   1500,
		WeekendPence:   2000,
		SurchargePence: 500,
		SummerStart:    6,
		SummerEnd:      9,
		WinterStart:    11,
		WinterEnd:      12,
	}
}

type testEnv struct {
	repo      *mocks.MockBookingRepo
	occupancy *mocks.MockOccupancyReader
	notifier  *mocks.MockBookingNotifier
	svc       *BookingService
}

func newTestEnv(t *testing.T, maxCap int) *testEnv {
	t.Helper()

	repo := mocks.NewMockBookingRepo(t)
	occupancy := mocks.NewMockOccupancyReader(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(
		repo,
		capacity.NewEngine(occupancy, maxCap),
		pricing.NewEngine(pricingConfig()),
		notifier,
		newTestLogger(t),
	)

	return &testEnv{repo: repo, occupancy: occupancy, notifier: notifier, svc: svc}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingService_Create_Success(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	from := date(2025, time.February, 17) // Monday
	to := date(2025, time.February, 18)

	env.occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "").Return(0, nil)
	env.repo.EXPECT().Create(mock.Anything, mock.Anything, maxCapacity).Return(nil)
	env.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := env.svc.Create(context.Background(), domain.CreateBookingInput{
		CarPlate:     "abc123z",
		CustomerName: "John Doe",
		ParkingFrom:  from,
		ParkingTo:    to,
	})

	require.NoError(t, err)
	assert.Equal(t, "ABC123Z", booking.CarPlate)
	assert.Equal(t, domain.BookingStatusActive, booking.Status)
	assert.Equal(t, int64(1500), booking.PricePence)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_CapacityExceeded(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	env.occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "").Return(maxCapacity, nil)

	_, err := env.svc.Create(context.Background(), domain.CreateBookingInput{
		CarPlate:     "ABC123",
		CustomerName: "Jane Doe",
		ParkingFrom:  date(2025, time.November, 1),
		ParkingTo:    date(2025, time.November, 5),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	env.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Create_RepoError(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	env.occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "").Return(0, nil)
	env.repo.EXPECT().Create(mock.Anything, mock.Anything, maxCapacity).Return(errors.New("db error"))

	_, err := env.svc.Create(context.Background(), domain.CreateBookingInput{
		CarPlate:     "ABC123",
		CustomerName: "Jane Doe",
		ParkingFrom:  date(2025, time.February, 17),
		ParkingTo:    date(2025, time.February, 18),
	})

	require.Error(t, err)
}

func TestBookingService_Create_RaceLostInStore(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	// снапшот свободен, но транзакция в сторе проиграла гонку
	env.occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "").Return(maxCapacity-1, nil)
	env.repo.EXPECT().Create(mock.Anything, mock.Anything, maxCapacity).Return(domain.ErrCapacityExceeded)

	_, err := env.svc.Create(context.Background(), domain.CreateBookingInput{
		CarPlate:     "ABC123",
		CustomerName: "Jane Doe",
		ParkingFrom:  date(2025, time.February, 17),
		ParkingTo:    date(2025, time.February, 18),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestBookingService_Amend_Success(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	existing := &domain.Booking{
		ID:           "b1",
		CarPlate:     "OLD111",
		CustomerName: "John Doe",
		ParkingFrom:  date(2025, time.February, 17),
		ParkingTo:    date(2025, time.February, 18),
		PricePence:   1500,
		Status:       domain.BookingStatusActive,
	}

	env.repo.EXPECT().FindByID(mock.Anything, "b1").Return(existing, nil)
	env.occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "b1").Return(0, nil)
	env.repo.EXPECT().Update(mock.Anything, mock.Anything, maxCapacity).Return(nil)
	env.notifier.EXPECT().NotifyBookingAmended(mock.Anything, mock.Anything, mock.Anything).Return()

	// Friday -> Monday in May: 5500
	result, err := env.svc.Amend(context.Background(), "b1", domain.AmendBookingInput{
		CarPlate:    "new222",
		ParkingFrom: date(2025, time.May, 16),
		ParkingTo:   date(2025, time.May, 19),
	})

	require.NoError(t, err)
	assert.Equal(t, "NEW222", result.Booking.CarPlate)
	assert.Equal(t, "John Doe", result.Booking.CustomerName) // omitted, kept
	assert.Equal(t, int64(5500), result.Booking.PricePence)
	assert.Equal(t, int64(4000), result.PriceChangePence)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Amend_NegativePriceChange(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	existing := &domain.Booking{
		ID:          "b1",
		ParkingFrom: date(2025, time.May, 16),
		ParkingTo:   date(2025, time.May, 19),
		PricePence:  5500,
		Status:      domain.BookingStatusActive,
	}

	env.repo.EXPECT().FindByID(mock.Anything, "b1").Return(existing, nil)
	env.occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "b1").Return(0, nil)
	env.repo.EXPECT().Update(mock.Anything, mock.Anything, maxCapacity).Return(nil)
	env.notifier.EXPECT().NotifyBookingAmended(mock.Anything, mock.Anything, mock.Anything).Return()

	result, err := env.svc.Amend(context.Background(), "b1", domain.AmendBookingInput{
		ParkingFrom: date(2025, time.February, 17),
		ParkingTo:   date(2025, time.February, 18),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1500-5500), result.PriceChangePence)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Amend_CancelledBooking(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	cancelled := &domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusCancelled,
	}

	env.repo.EXPECT().FindByID(mock.Anything, "b1").Return(cancelled, nil)

	_, err := env.svc.Amend(context.Background(), "b1", domain.AmendBookingInput{
		ParkingFrom: date(2025, time.May, 16),
		ParkingTo:   date(2025, time.May, 19),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmendmentNotAllowed)

	// ни занятость, ни запись не трогаются
	env.occupancy.AssertNotCalled(t, "CountOccupied", mock.Anything, mock.Anything, mock.Anything)
	env.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Amend_ExcludesOwnBooking(t *testing.T) {
	// вместимость 1: единственный занятый слот — сама бронь,
	// перенос в пределах того же диапазона не должен падать
	env := newTestEnv(t, 1)

	existing := &domain.Booking{
		ID:          "b1",
		ParkingFrom: date(2025, time.March, 1),
		ParkingTo:   date(2025, time.March, 5),
		PricePence:  6000,
		Status:      domain.BookingStatusActive,
	}

	env.repo.EXPECT().FindByID(mock.Anything, "b1").Return(existing, nil)
	env.occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "b1").Return(0, nil)
	env.repo.EXPECT().Update(mock.Anything, mock.Anything, 1).Return(nil)
	env.notifier.EXPECT().NotifyBookingAmended(mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := env.svc.Amend(context.Background(), "b1", domain.AmendBookingInput{
		ParkingFrom: date(2025, time.March, 2),
		ParkingTo:   date(2025, time.March, 4),
	})

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Amend_CapacityExceeded(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	existing := &domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusActive,
	}

	env.repo.EXPECT().FindByID(mock.Anything, "b1").Return(existing, nil)
	env.occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "b1").Return(maxCapacity, nil)

	_, err := env.svc.Amend(context.Background(), "b1", domain.AmendBookingInput{
		ParkingFrom: date(2025, time.May, 16),
		ParkingTo:   date(2025, time.May, 19),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	env.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Amend_SameDatesSamePrice(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	from := date(2025, time.May, 16)
	to := date(2025, time.May, 19)
	existing := &domain.Booking{
		ID:          "b1",
		ParkingFrom: from,
		ParkingTo:   to,
		PricePence:  5500,
		Status:      domain.BookingStatusActive,
	}

	env.repo.EXPECT().FindByID(mock.Anything, "b1").Return(existing, nil)
	env.occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "b1").Return(0, nil)
	env.repo.EXPECT().Update(mock.Anything, mock.Anything, maxCapacity).Return(nil)
	env.notifier.EXPECT().NotifyBookingAmended(mock.Anything, mock.Anything, mock.Anything).Return()

	result, err := env.svc.Amend(context.Background(), "b1", domain.AmendBookingInput{
		ParkingFrom: from,
		ParkingTo:   to,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5500), result.Booking.PricePence)
	assert.Equal(t, int64(0), result.PriceChangePence)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Amend_UpdateError(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	existing := &domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusActive,
	}

	env.repo.EXPECT().FindByID(mock.Anything, "b1").Return(existing, nil)
	env.occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "b1").Return(0, nil)
	env.repo.EXPECT().Update(mock.Anything, mock.Anything, maxCapacity).Return(errors.New("db error"))

	_, err := env.svc.Amend(context.Background(), "b1", domain.AmendBookingInput{
		ParkingFrom: date(2025, time.May, 16),
		ParkingTo:   date(2025, time.May, 19),
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestBookingService_Amend_NotFound(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	env.repo.EXPECT().FindByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := env.svc.Amend(context.Background(), "missing", domain.AmendBookingInput{
		ParkingFrom: date(2025, time.May, 16),
		ParkingTo:   date(2025, time.May, 19),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	active := &domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusActive,
	}

	env.repo.EXPECT().FindByID(mock.Anything, "b1").Return(active, nil)
	env.repo.EXPECT().SoftDelete(mock.Anything, active).Return(nil)
	env.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything).Return()

	err := env.svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	cancelled := &domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusCancelled,
	}

	env.repo.EXPECT().FindByID(mock.Anything, "b1").Return(cancelled, nil)

	err := env.svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	env.repo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	env.notifier.AssertNotCalled(t, "NotifyBookingCancelled", mock.Anything, mock.Anything)
}

func TestBookingService_Cancel_StoreError(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	active := &domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusActive,
	}

	env.repo.EXPECT().FindByID(mock.Anything, "b1").Return(active, nil)
	env.repo.EXPECT().SoftDelete(mock.Anything, active).Return(errors.New("db error"))

	err := env.svc.Cancel(context.Background(), "b1")

	require.Error(t, err)
}

func TestBookingService_CheckAvailability(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	env.occupancy.EXPECT().CountOccupied(mock.Anything, date(2025, time.October, 23), "").Return(3, nil).Once()
	env.occupancy.EXPECT().CountOccupied(mock.Anything, date(2025, time.October, 24), "").Return(10, nil).Once()

	report, err := env.svc.CheckAvailability(context.Background(), date(2025, time.October, 23), date(2025, time.October, 24))

	require.NoError(t, err)
	assert.False(t, report.IsAvailable)
	assert.Equal(t, maxCapacity, report.TotalCapacity)
	require.Len(t, report.Days, 2)
	assert.True(t, report.Days[0].IsAvailable)
	assert.False(t, report.Days[1].IsAvailable)
}

func TestBookingService_CalculatePrice_Delegates(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	price := env.svc.CalculatePrice(date(2025, time.July, 1), date(2025, time.July, 2))

	assert.Equal(t, int64(2000), price)
}

func TestBookingService_ListActive(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	from := date(2025, time.October, 23)
	to := date(2025, time.October, 25)
	stored := []*domain.Booking{
		{ID: "b1", CarPlate: "AB12 CDE", ParkingFrom: from, ParkingTo: to, Status: domain.BookingStatusActive},
	}

	env.repo.EXPECT().ActiveOverlapping(mock.Anything, from, to).Return(stored, nil).Once()

	bookings, err := env.svc.ListActive(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0].ID)
}

func TestBookingService_ListActive_StoreError(t *testing.T) {
	env := newTestEnv(t, maxCapacity)

	env.repo.EXPECT().ActiveOverlapping(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := env.svc.ListActive(context.Background(), date(2025, time.October, 23), date(2025, time.October, 25))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list bookings")
}
