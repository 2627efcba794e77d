package domain

import "time"

type Hotel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   string    `json:"hotel_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasFreeSlot reports whether one more booking fits: a room with capacity N
// admits exactly N concurrent bookings.
func (r *Room) HasFreeSlot(occupancy int) bool {
	return occupancy < r.Capacity
}
