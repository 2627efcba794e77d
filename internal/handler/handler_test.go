package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VSLC/calvs-drivent-task4/internal/domain"
	"github.com/VSLC/calvs-drivent-task4/internal/handler/dto"
	hmocks "github.com/VSLC/calvs-drivent-task4/internal/handler/mocks"
	"github.com/VSLC/calvs-drivent-task4/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api", middleware.UserIdentity())
	{
		api.GET("/booking", h.GetBooking)
		api.POST("/booking", h.CreateBooking)
		api.PUT("/booking/:bookingId", h.MoveBooking)
	}

	return bookingSvc, r
}

func doRequest(t *testing.T, r http.Handler, method, path, userID string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	r.ServeHTTP(w, req)

	return w
}

// --- Identity ---

func TestHandler_MissingIdentity(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/booking", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_InvalidIdentity(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/booking", "not-a-uuid", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- GetBooking ---

func TestHandler_GetBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	booking := &domain.Booking{
		ID:     uuid.New().String(),
		UserID: userID,
		RoomID: "r1",
		Room: &domain.Room{
			ID:        "r1",
			Name:      "101",
			Capacity:  3,
			HotelID:   "h1",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	bookingSvc.EXPECT().GetBooking(mock.Anything, userID).Return(booking, nil)

	w := doRequest(t, r, http.MethodGet, "/api/booking", userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "r1", resp.Room.ID)
	assert.Equal(t, 3, resp.Room.Capacity)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	bookingSvc.EXPECT().GetBooking(mock.Anything, userID).Return(nil, domain.ErrBookingNotFound)

	w := doRequest(t, r, http.MethodGet, "/api/booking", userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_PaymentRequired(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	bookingSvc.EXPECT().GetBooking(mock.Anything, userID).Return(nil, domain.ErrTicketNotPaid)

	w := doRequest(t, r, http.MethodGet, "/api/booking", userID, nil)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestHandler_GetBooking_Forbidden(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	bookingSvc.EXPECT().GetBooking(mock.Anything, userID).Return(nil, domain.ErrRemoteTicket)

	w := doRequest(t, r, http.MethodGet, "/api/booking", userID, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- CreateBooking ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	roomID := uuid.New().String()
	booking := &domain.Booking{ID: uuid.New().String(), UserID: userID, RoomID: roomID}

	bookingSvc.EXPECT().CreateBooking(mock.Anything, userID, roomID).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{RoomID: roomID})

	w := doRequest(t, r, http.MethodPost, "/api/booking", userID, body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.BookingID)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"room_id":"not-a-uuid"}`)

	w := doRequest(t, r, http.MethodPost, "/api/booking", uuid.New().String(), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_RoomNotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	roomID := uuid.New().String()

	bookingSvc.EXPECT().CreateBooking(mock.Anything, userID, roomID).Return(nil, domain.ErrRoomNotFound)

	body, _ := json.Marshal(dto.CreateBookingRequest{RoomID: roomID})

	w := doRequest(t, r, http.MethodPost, "/api/booking", userID, body)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_RoomFull(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	roomID := uuid.New().String()

	bookingSvc.EXPECT().CreateBooking(mock.Anything, userID, roomID).Return(nil, domain.ErrRoomFull)

	body, _ := json.Marshal(dto.CreateBookingRequest{RoomID: roomID})

	w := doRequest(t, r, http.MethodPost, "/api/booking", userID, body)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- MoveBooking ---

func TestHandler_MoveBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	roomID := uuid.New().String()
	bookingID := uuid.New().String()

	bookingSvc.EXPECT().MoveBooking(mock.Anything, userID, roomID, bookingID).Return(bookingID, nil)

	body, _ := json.Marshal(dto.MoveBookingRequest{RoomID: roomID})

	w := doRequest(t, r, http.MethodPut, "/api/booking/"+bookingID, userID, body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookingID, resp.BookingID)
}

func TestHandler_MoveBooking_InvalidBookingID(t *testing.T) {
	_, r := setupRouter(t)

	body, _ := json.Marshal(dto.MoveBookingRequest{RoomID: uuid.New().String()})

	w := doRequest(t, r, http.MethodPut, "/api/booking/bad-id", uuid.New().String(), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MoveBooking_SameRoom(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	roomID := uuid.New().String()
	bookingID := uuid.New().String()

	bookingSvc.EXPECT().MoveBooking(mock.Anything, userID, roomID, bookingID).Return("", domain.ErrSameRoom)

	body, _ := json.Marshal(dto.MoveBookingRequest{RoomID: roomID})

	w := doRequest(t, r, http.MethodPut, "/api/booking/"+bookingID, userID, body)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_MoveBooking_BookingNotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	roomID := uuid.New().String()
	bookingID := uuid.New().String()

	bookingSvc.EXPECT().MoveBooking(mock.Anything, userID, roomID, bookingID).Return("", domain.ErrBookingNotFound)

	body, _ := json.Marshal(dto.MoveBookingRequest{RoomID: roomID})

	w := doRequest(t, r, http.MethodPut, "/api/booking/"+bookingID, userID, body)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Errors ---

func TestHandler_HandleError_InternalError(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	userID := uuid.New().String()
	bookingSvc.EXPECT().GetBooking(mock.Anything, userID).Return(nil, assert.AnError)

	w := doRequest(t, r, http.MethodGet, "/api/booking", userID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
