package ports

import (
	"context"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
)

type EnrollmentRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Enrollment, error)
}
