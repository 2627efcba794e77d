package service

import (
	"context"
	"errors"
	"testing"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
	"github.com/VSLC/calvs-drivent-task4/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	roomRepo    *mocks.MockRoomRepo
	eligibility *mocks.MockEligibilityGate
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		roomRepo:    mocks.NewMockRoomRepo(t),
		eligibility: mocks.NewMockEligibilityGate(t),
	}
	svc := NewBookingService(m.bookingRepo, m.roomRepo, m.eligibility, newTestLogger(t))
	return svc, m
}

func TestBookingService_GetBooking_Success(t *testing.T) {
	svc, m := newBookingService(t)

	room := &domain.Room{ID: "r1", Name: "101", Capacity: 3, HotelID: "h1"}
	booking := &domain.Booking{ID: "b1", UserID: "u1", RoomID: "r1", Room: room}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.bookingRepo.EXPECT().GetByUserID(mock.Anything, "u1").Return(booking, nil)

	result, err := svc.GetBooking(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "b1", result.ID)
	require.NotNil(t, result.Room)
	assert.Equal(t, "r1", result.Room.ID)
}

func TestBookingService_GetBooking_NotEligible(t *testing.T) {
	svc, m := newBookingService(t)

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(domain.ErrTicketNotPaid)

	_, err := svc.GetBooking(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotPaid)
}

func TestBookingService_GetBooking_NoBooking(t *testing.T) {
	svc, m := newBookingService(t)

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.bookingRepo.EXPECT().GetByUserID(mock.Anything, "u1").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.GetBooking(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	svc, m := newBookingService(t)

	room := &domain.Room{ID: "r1", Capacity: 1}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.bookingRepo.EXPECT().CountByRoom(mock.Anything, "r1").Return(0, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.CreateBooking(context.Background(), "u1", "r1")

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, "r1", booking.RoomID)
}

func TestBookingService_CreateBooking_NotEligible(t *testing.T) {
	svc, m := newBookingService(t)

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(domain.ErrEnrollmentNotFound)

	_, err := svc.CreateBooking(context.Background(), "u1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
}

func TestBookingService_CreateBooking_RoomNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.CreateBooking(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingService_CreateBooking_RoomFull(t *testing.T) {
	svc, m := newBookingService(t)

	// Capacity N admits exactly N bookings; occupancy == capacity is full.
	room := &domain.Room{ID: "r1", Capacity: 2}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.bookingRepo.EXPECT().CountByRoom(mock.Anything, "r1").Return(2, nil)

	_, err := svc.CreateBooking(context.Background(), "u1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

func TestBookingService_CreateBooking_LastSlot(t *testing.T) {
	svc, m := newBookingService(t)

	room := &domain.Room{ID: "r1", Capacity: 2}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.bookingRepo.EXPECT().CountByRoom(mock.Anything, "r1").Return(1, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.CreateBooking(context.Background(), "u1", "r1")

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_CreateBooking_RaceLostInRepo(t *testing.T) {
	svc, m := newBookingService(t)

	room := &domain.Room{ID: "r1", Capacity: 1}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.bookingRepo.EXPECT().CountByRoom(mock.Anything, "r1").Return(0, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrRoomFull)

	_, err := svc.CreateBooking(context.Background(), "u1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

func TestBookingService_CreateBooking_CountError(t *testing.T) {
	svc, m := newBookingService(t)

	room := &domain.Room{ID: "r1", Capacity: 1}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.bookingRepo.EXPECT().CountByRoom(mock.Anything, "r1").Return(0, errors.New("db error"))

	_, err := svc.CreateBooking(context.Background(), "u1", "r1")

	require.Error(t, err)
}

func TestBookingService_MoveBooking_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", RoomID: "r1"}
	target := &domain.Room{ID: "r2", Capacity: 2}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r2").Return(target, nil)
	m.bookingRepo.EXPECT().CountByRoom(mock.Anything, "r2").Return(1, nil)
	m.bookingRepo.EXPECT().UpdateRoom(mock.Anything, "b1", "r2").Return(nil)

	id, err := svc.MoveBooking(context.Background(), "u1", "r2", "b1")

	require.NoError(t, err)
	assert.Equal(t, "b1", id)
}

func TestBookingService_MoveBooking_NotEligible(t *testing.T) {
	svc, m := newBookingService(t)

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(domain.ErrRemoteTicket)

	_, err := svc.MoveBooking(context.Background(), "u1", "r2", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteTicket)
}

func TestBookingService_MoveBooking_BookingNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.MoveBooking(context.Background(), "u1", "r2", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_MoveBooking_ForeignBooking(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "someone-else", RoomID: "r1"}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.MoveBooking(context.Background(), "u1", "r2", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_MoveBooking_SameRoom(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", RoomID: "r1"}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.MoveBooking(context.Background(), "u1", "r1", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSameRoom)
}

func TestBookingService_MoveBooking_TargetRoomNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", RoomID: "r1"}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.MoveBooking(context.Background(), "u1", "missing", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingService_MoveBooking_TargetRoomFull(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", RoomID: "r1"}
	target := &domain.Room{ID: "r2", Capacity: 2}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r2").Return(target, nil)
	m.bookingRepo.EXPECT().CountByRoom(mock.Anything, "r2").Return(2, nil)

	_, err := svc.MoveBooking(context.Background(), "u1", "r2", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

func TestBookingService_MoveBooking_UpdateError(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", RoomID: "r1"}
	target := &domain.Room{ID: "r2", Capacity: 2}

	m.eligibility.EXPECT().Check(mock.Anything, "u1").Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r2").Return(target, nil)
	m.bookingRepo.EXPECT().CountByRoom(mock.Anything, "r2").Return(0, nil)
	m.bookingRepo.EXPECT().UpdateRoom(mock.Anything, "b1", "r2").Return(errors.New("db error"))

	_, err := svc.MoveBooking(context.Background(), "u1", "r2", "b1")

	require.Error(t, err)
}
