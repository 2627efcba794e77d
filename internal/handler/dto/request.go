package dto

type CreateBookingRequest struct {
	RoomID string `json:"room_id" binding:"required,uuid"`
}

type MoveBookingRequest struct {
	RoomID string `json:"room_id" binding:"required,uuid"`
}
