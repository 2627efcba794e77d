package ports

import (
	"context"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
)

type RoomRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}
