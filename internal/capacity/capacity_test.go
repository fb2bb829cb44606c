package capacity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/ParkBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEngine_IsAvailable_AllDaysUnderCapacity(t *testing.T) {
	occupancy := mocks.NewMockOccupancyReader(t)
	e := NewEngine(occupancy, 10)

	occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "").Return(5, nil).Times(3)

	ok, err := e.IsAvailable(context.Background(), date(2025, time.October, 23), date(2025, time.October, 25), "")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEngine_IsAvailable_FullDayShortCircuits(t *testing.T) {
	occupancy := mocks.NewMockOccupancyReader(t)
	e := NewEngine(occupancy, 10)

	// первый же день заполнен — остальные дни не опрашиваются
	occupancy.EXPECT().CountOccupied(mock.Anything, date(2025, time.October, 23), "").Return(10, nil).Once()

	ok, err := e.IsAvailable(context.Background(), date(2025, time.October, 23), date(2025, time.October, 27), "")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_IsAvailable_FullDayInMiddle(t *testing.T) {
	occupancy := mocks.NewMockOccupancyReader(t)
	e := NewEngine(occupancy, 10)

	occupancy.EXPECT().CountOccupied(mock.Anything, date(2025, time.October, 23), "").Return(3, nil).Once()
	occupancy.EXPECT().CountOccupied(mock.Anything, date(2025, time.October, 24), "").Return(10, nil).Once()

	ok, err := e.IsAvailable(context.Background(), date(2025, time.October, 23), date(2025, time.October, 25), "")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_IsAvailable_SingleDayRange(t *testing.T) {
	occupancy := mocks.NewMockOccupancyReader(t)
	e := NewEngine(occupancy, 10)

	d := date(2025, time.October, 23)
	occupancy.EXPECT().CountOccupied(mock.Anything, d, "").Return(9, nil).Once()

	ok, err := e.IsAvailable(context.Background(), d, d, "")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEngine_IsAvailable_PassesExcludeID(t *testing.T) {
	occupancy := mocks.NewMockOccupancyReader(t)
	e := NewEngine(occupancy, 1)

	d := date(2025, time.October, 23)
	// единственный занятый слот — своя же бронь, при исключении день свободен
	occupancy.EXPECT().CountOccupied(mock.Anything, d, "b1").Return(0, nil).Once()

	ok, err := e.IsAvailable(context.Background(), d, d, "b1")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEngine_IsAvailable_ReaderError(t *testing.T) {
	occupancy := mocks.NewMockOccupancyReader(t)
	e := NewEngine(occupancy, 10)

	occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "").Return(0, errors.New("db error"))

	_, err := e.IsAvailable(context.Background(), date(2025, time.October, 23), date(2025, time.October, 24), "")

	require.Error(t, err)
}

func TestEngine_Availability_PerDayBreakdown(t *testing.T) {
	occupancy := mocks.NewMockOccupancyReader(t)
	e := NewEngine(occupancy, 10)

	occupancy.EXPECT().CountOccupied(mock.Anything, date(2025, time.October, 23), "").Return(3, nil).Once()
	occupancy.EXPECT().CountOccupied(mock.Anything, date(2025, time.October, 24), "").Return(10, nil).Once()
	occupancy.EXPECT().CountOccupied(mock.Anything, date(2025, time.October, 25), "").Return(5, nil).Once()

	days, err := e.Availability(context.Background(), date(2025, time.October, 23), date(2025, time.October, 25))

	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, date(2025, time.October, 23), days[0].Date)
	assert.Equal(t, "Thursday", days[0].DayOfWeek)
	assert.Equal(t, 10, days[0].TotalSpaces)
	assert.Equal(t, 7, days[0].AvailableSpaces)
	assert.True(t, days[0].IsAvailable)

	assert.Equal(t, 0, days[1].AvailableSpaces)
	assert.False(t, days[1].IsAvailable)

	assert.Equal(t, 5, days[2].AvailableSpaces)
	assert.True(t, days[2].IsAvailable)
}

func TestEngine_Availability_IgnoresTimeOfDay(t *testing.T) {
	occupancy := mocks.NewMockOccupancyReader(t)
	e := NewEngine(occupancy, 10)

	occupancy.EXPECT().CountOccupied(mock.Anything, date(2025, time.October, 23), "").Return(0, nil).Once()

	from := time.Date(2025, time.October, 23, 9, 30, 0, 0, time.UTC)
	to := time.Date(2025, time.October, 23, 18, 0, 0, 0, time.UTC)

	days, err := e.Availability(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, date(2025, time.October, 23), days[0].Date)
}

func TestEngine_Availability_ReaderError(t *testing.T) {
	occupancy := mocks.NewMockOccupancyReader(t)
	e := NewEngine(occupancy, 10)

	occupancy.EXPECT().CountOccupied(mock.Anything, mock.Anything, "").Return(0, errors.New("db error"))

	_, err := e.Availability(context.Background(), date(2025, time.October, 23), date(2025, time.October, 24))

	require.Error(t, err)
}

func TestEngine_CustomCapacity(t *testing.T) {
	occupancy := mocks.NewMockOccupancyReader(t)
	e := NewEngine(occupancy, 2)

	d := date(2025, time.October, 23)
	occupancy.EXPECT().CountOccupied(mock.Anything, d, "").Return(2, nil).Once()

	ok, err := e.IsAvailable(context.Background(), d, d, "")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, e.MaxCapacity())
}
