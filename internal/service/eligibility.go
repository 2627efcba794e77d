package service

import (
	"context"
	"fmt"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
	"github.com/VSLC/calvs-drivent-task4/internal/service/ports"
)

// EligibilityService decides whether a user may hold or change a room
// booking. Checks run in a fixed order and stop at the first failure:
// enrollment exists, ticket exists, ticket is paid, ticket is not remote,
// ticket includes hotel accommodation.
type EligibilityService struct {
	enrollmentRepo ports.EnrollmentRepo
	ticketRepo     ports.TicketRepo
}

func NewEligibilityService(enrollmentRepo ports.EnrollmentRepo, ticketRepo ports.TicketRepo) *EligibilityService {
	return &EligibilityService{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
	}
}

func (s *EligibilityService) Check(ctx context.Context, userID string) error {
	enrollment, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("check enrollment: %w", err)
	}

	ticket, err := s.ticketRepo.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return fmt.Errorf("check ticket: %w", err)
	}

	if !ticket.IsPaid() {
		return domain.ErrTicketNotPaid
	}

	if ticket.TicketType.IsRemote {
		return domain.ErrRemoteTicket
	}

	if !ticket.TicketType.IncludesHotel {
		return domain.ErrHotelNotIncluded
	}

	return nil
}
