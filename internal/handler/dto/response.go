package dto

import (
	"time"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
)

type RoomResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	HotelID   string `json:"hotel_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type BookingResponse struct {
	ID   string       `json:"id"`
	Room RoomResponse `json:"room"`
}

type BookingIDResponse struct {
	BookingID string `json:"booking_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		HotelID:   r.HotelID,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{ID: b.ID}
	if b.Room != nil {
		resp.Room = ToRoomResponse(b.Room)
	}
	return resp
}
