package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/ParkBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// capacityLockID — ключ pg_advisory_xact_lock, сериализующий все записи,
// которые зависят от подсчёта занятости. Пул мест один, ключ один.
const capacityLockID int64 = 0x7061726b // "park"

const bookingColumns = `id, car_plate, customer_name, parking_from, parking_to, price_pence, status, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// Create перепроверяет вместимость внутри транзакции под advisory-lock:
// проверка снапшота в сервисе могла устареть к моменту записи.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, maxCapacity int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = acquireCapacityLock(ctx, tx); err != nil {
		return err
	}

	peak, err := peakOccupancy(ctx, tx, b.ParkingFrom, b.ParkingTo, "")
	if err != nil {
		return err
	}
	if peak >= maxCapacity {
		return domain.ErrCapacityExceeded
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.CarPlate, b.CustomerName, b.ParkingFrom, b.ParkingTo,
		b.PricePence, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Constraint)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

// Update пишет все изменяемые поля одним стейтментом: либо всё, либо ничего.
// Собственная бронь исключается из подсчёта занятости.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking, maxCapacity int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = acquireCapacityLock(ctx, tx); err != nil {
		return err
	}

	peak, err := peakOccupancy(ctx, tx, b.ParkingFrom, b.ParkingTo, b.ID)
	if err != nil {
		return err
	}
	if peak >= maxCapacity {
		return domain.ErrCapacityExceeded
	}

	query := `UPDATE bookings
			  SET car_plate = $2, customer_name = $3, parking_from = $4,
			      parking_to = $5, price_pence = $6, updated_at = $7
			  WHERE id = $1 AND status = $8`
	res, err := tx.ExecContext(
		ctx, query,
		b.ID, b.CarPlate, b.CustomerName, b.ParkingFrom, b.ParkingTo,
		b.PricePence, b.UpdatedAt, domain.BookingStatusActive,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Constraint)
		}
		return fmt.Errorf("update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return tx.Commit()
}

// SoftDelete переводит бронь в cancelled, строка не удаляется.
func (r *BookingRepository) SoftDelete(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = $3
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, domain.BookingStatusCancelled, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("soft delete booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// CountOccupied считает активные брони, чей закрытый интервал
// [parking_from, parking_to] накрывает день day.
func (r *BookingRepository) CountOccupied(ctx context.Context, day time.Time, excludeBookingID string) (int, error) {
	query := `SELECT COUNT(*)
			  FROM bookings
			  WHERE status = $1
			    AND parking_from <= $2::date
			    AND parking_to >= $2::date
			    AND ($3 = '' OR id::text <> $3)`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusActive, day, excludeBookingID,
	)
	if err != nil {
		return 0, fmt.Errorf("count occupied: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan occupied count: %w", err)
	}

	return count, nil
}

func (r *BookingRepository) ActiveOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1
			    AND parking_from <= $3::date
			    AND parking_to >= $2::date
			  ORDER BY parking_from`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusActive, from, to)
	if err != nil {
		return nil, fmt.Errorf("list overlapping bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func acquireCapacityLock(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, capacityLockID); err != nil {
		return fmt.Errorf("acquire capacity lock: %w", err)
	}
	return nil
}

// peakOccupancy возвращает максимум занятых мест по дням диапазона.
// Выполняется внутри транзакции записи — это авторитетная проверка.
func peakOccupancy(ctx context.Context, tx *sql.Tx, from, to time.Time, excludeBookingID string) (int, error) {
	query := `SELECT COALESCE(MAX(cnt), 0)
			  FROM (
			      SELECT COUNT(b.id) AS cnt
			      FROM generate_series($1::date, $2::date, interval '1 day') AS day
			      LEFT JOIN bookings b
			          ON b.status = $3
			          AND b.parking_from <= day::date
			          AND b.parking_to >= day::date
			          AND ($4 = '' OR b.id::text <> $4)
			      GROUP BY day
			  ) AS daily`

	var peak int
	err := tx.QueryRowContext(
		ctx, query,
		from, to, domain.BookingStatusActive, excludeBookingID,
	).Scan(&peak)
	if err != nil {
		return 0, fmt.Errorf("peak occupancy: %w", err)
	}

	return peak, nil
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	err := scan(
		&b.ID, &b.CarPlate, &b.CustomerName, &b.ParkingFrom, &b.ParkingTo,
		&b.PricePence, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
