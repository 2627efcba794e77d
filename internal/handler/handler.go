package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
	"github.com/VSLC/calvs-drivent-task4/internal/handler/dto"
	"github.com/VSLC/calvs-drivent-task4/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	GetBooking(ctx context.Context, userID string) (*domain.Booking, error)
	CreateBooking(ctx context.Context, userID, roomID string) (*domain.Booking, error)
	MoveBooking(ctx context.Context, userID, roomID, bookingID string) (string, error)
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
	}
}

func (h *Handler) GetBooking(c *ginext.Context) {
	userID := c.GetString(middleware.UserIDKey)

	booking, err := h.bookingService.GetBooking(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: booking.ID})
}

func (h *Handler) MoveBooking(c *ginext.Context) {
	userID := c.GetString(middleware.UserIDKey)

	bookingID := c.Param("bookingId")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.MoveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	movedID, err := h.bookingService.MoveBooking(c.Request.Context(), userID, req.RoomID, bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: movedID})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTicketNotPaid):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRemoteTicket),
		errors.Is(err, domain.ErrHotelNotIncluded),
		errors.Is(err, domain.ErrRoomFull),
		errors.Is(err, domain.ErrSameRoom):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
