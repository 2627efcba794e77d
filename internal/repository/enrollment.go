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

type EnrollmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEnrollmentRepo(db *dbpg.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EnrollmentRepository) GetByUserID(ctx context.Context, userID string) (*domain.Enrollment, error) {
	query := `SELECT id, user_id, name, created_at
			  FROM enrollments
			  WHERE user_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	var e domain.Enrollment
	if err = row.Scan(&e.ID, &e.UserID, &e.Name, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("scan enrollment: %w", err)
	}

	return &e, nil
}
