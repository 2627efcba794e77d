package ports

import (
	"context"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByUserID(ctx context.Context, userID string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	CountByRoom(ctx context.Context, roomID string) (int, error)
	UpdateRoom(ctx context.Context, bookingID, roomID string) error
}
