package domain

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IsRemote      bool   `json:"is_remote"`
	IncludesHotel bool   `json:"includes_hotel"`
}

type Ticket struct {
	ID           string       `json:"id"`
	EnrollmentID string       `json:"enrollment_id"`
	Status       TicketStatus `json:"status"`
	TicketType   TicketType   `json:"ticket_type"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (t *Ticket) IsPaid() bool {
	return t.Status == TicketStatusPaid
}
