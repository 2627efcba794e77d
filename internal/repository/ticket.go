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

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) GetByEnrollmentID(ctx context.Context, enrollmentID string) (*domain.Ticket, error) {
	query := `SELECT t.id, t.enrollment_id, t.status, t.created_at, t.updated_at,
					 tt.id, tt.name, tt.is_remote, tt.includes_hotel
			  FROM tickets t
			  JOIN ticket_types tt ON tt.id = t.ticket_type_id
			  WHERE t.enrollment_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(
		&t.ID, &t.EnrollmentID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		&t.TicketType.ID, &t.TicketType.Name, &t.TicketType.IsRemote, &t.TicketType.IncludesHotel,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}
