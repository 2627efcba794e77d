package domain

import "errors"

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrBookingNotFound    = errors.New("booking not found")
)

var (
	ErrTicketNotPaid = errors.New("ticket wasn't paid")
)

var (
	ErrRemoteTicket     = errors.New("remote ticket grants no hotel accommodation")
	ErrHotelNotIncluded = errors.New("ticket does not include hotel accommodation")
	ErrRoomFull         = errors.New("room has no available slots")
	ErrSameRoom         = errors.New("booking already references this room")
)

var (
	ErrValidation = errors.New("validation error")
)
