package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

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

// Create inserts a booking after re-checking occupancy under a row lock on
// the room, so two writers racing for the last slot cannot both commit.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capacityQuery := `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`
	var capacity int
	if err = tx.QueryRowContext(ctx, capacityQuery, b.RoomID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("get room capacity: %w", err)
	}

	var occupancy int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE room_id=$1`
	if err = tx.QueryRowContext(ctx, countQuery, b.RoomID).Scan(&occupancy); err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}
	if occupancy >= capacity {
		return domain.ErrRoomFull
	}

	query := `INSERT INTO bookings (id, user_id, room_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(
		ctx, query, b.ID, b.UserID, b.RoomID, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID string) (*domain.Booking, error) {
	query := `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
					 r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
			  FROM bookings b
			  JOIN rooms r ON r.id = b.room_id
			  WHERE b.user_id=$1
			  ORDER BY b.created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking by user: %w", err)
	}

	var b domain.Booking
	var room domain.Room
	if err = row.Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt,
		&room.ID, &room.Name, &room.Capacity, &room.HotelID, &room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	b.Room = &room

	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, user_id, room_id, created_at, updated_at
			  FROM bookings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

// CountByRoom counts every booking row referencing the room; there is no
// status on bookings, a row occupies a slot until it is moved elsewhere.
func (r *BookingRepository) CountByRoom(ctx context.Context, roomID string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return 0, fmt.Errorf("count bookings by room: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan booking count: %w", err)
	}

	return count, nil
}

// UpdateRoom reassigns a booking to another room with the same occupancy
// guard as Create.
func (r *BookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capacityQuery := `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`
	var capacity int
	if err = tx.QueryRowContext(ctx, capacityQuery, roomID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("get room capacity: %w", err)
	}

	var occupancy int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE room_id=$1`
	if err = tx.QueryRowContext(ctx, countQuery, roomID).Scan(&occupancy); err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}
	if occupancy >= capacity {
		return domain.ErrRoomFull
	}

	query := `UPDATE bookings
			  SET room_id = $2, updated_at = now()
			  WHERE id = $1`
	res, err := tx.ExecContext(ctx, query, bookingID, roomID)
	if err != nil {
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
