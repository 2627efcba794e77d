package ports

import (
	"context"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
)

type TicketRepo interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID string) (*domain.Ticket, error)
}
