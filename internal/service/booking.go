package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
	"github.com/VSLC/calvs-drivent-task4/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	eligibility ports.EligibilityGate
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	eligibility ports.EligibilityGate,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		eligibility: eligibility,
		logger:      logger,
	}
}

// GetBooking returns the user's current booking with its room expanded.
func (s *BookingService) GetBooking(ctx context.Context, userID string) (*domain.Booking, error) {
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return booking, nil
}

// CreateBooking books a room for the user. It does not reject users who
// already hold a booking; each call claims one more slot.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID string) (*domain.Booking, error) {
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}

	occupancy, err := s.bookingRepo.CountByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("count room bookings: %w", err)
	}
	if !room.HasFreeSlot(occupancy) {
		return nil, domain.ErrRoomFull
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		RoomID:    roomID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", userID),
		logger.String("room_id", roomID),
	)

	return booking, nil
}

// MoveBooking reassigns an existing booking to another room and returns the
// booking id.
func (s *BookingService) MoveBooking(ctx context.Context, userID, roomID, bookingID string) (string, error) {
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return "", err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return "", fmt.Errorf("get booking: %w", err)
	}

	// Booking ids are global, not scoped per user. A foreign id must look
	// exactly like a missing one.
	if booking.UserID != userID {
		return "", domain.ErrBookingNotFound
	}

	if booking.RoomID == roomID {
		return "", domain.ErrSameRoom
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return "", fmt.Errorf("check room: %w", err)
	}

	occupancy, err := s.bookingRepo.CountByRoom(ctx, roomID)
	if err != nil {
		return "", fmt.Errorf("count room bookings: %w", err)
	}
	if !room.HasFreeSlot(occupancy) {
		return "", domain.ErrRoomFull
	}

	if err = s.bookingRepo.UpdateRoom(ctx, bookingID, roomID); err != nil {
		return "", fmt.Errorf("update booking room: %w", err)
	}

	s.logger.Info("booking moved",
		logger.String("booking_id", bookingID),
		logger.String("user_id", userID),
		logger.String("room_id", roomID),
	)

	return bookingID, nil
}
