package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stayloop/hotel-backoffice/internal/domain"
	"github.com/stayloop/hotel-backoffice/internal/http/response"
	"github.com/stayloop/hotel-backoffice/internal/repository"
)

type BookingHandler struct {
	bookings repository.BookingRepository
}

func NewBookingHandler(bookings repository.BookingRepository) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid user_id filter", nil)
			return
		}
		bookings, err := h.bookings.ListByUser(uint(userID))
		if err != nil {
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list bookings", nil)
			return
		}
		response.JSON(w, r, http.StatusOK, bookings)
		return
	}

	bookings, err := h.bookings.List()
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list bookings", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid booking id", nil)
		return
	}
	booking, err := h.bookings.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "booking not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load booking", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, booking)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID        uint    `json:"user_id"`
		RoomID        uint    `json:"room_id"`
		CheckInDate   string  `json:"check_in_date"`
		CheckOutDate  string  `json:"check_out_date"`
		TotalAmount   float64 `json:"total_amount"`
		BookingStatus string  `json:"booking_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if body.UserID == 0 || body.RoomID == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "user_id and room_id are required", nil)
		return
	}
	checkIn, err := parseDate(body.CheckInDate)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid check_in_date", nil)
		return
	}
	checkOut, err := parseDate(body.CheckOutDate)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid check_out_date", nil)
		return
	}
	if !checkOut.After(checkIn) {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "check_out_date must be after check_in_date", nil)
		return
	}

	booking := &domain.Booking{
		UserID:        body.UserID,
		RoomID:        body.RoomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		TotalAmount:   body.TotalAmount,
		BookingStatus: body.BookingStatus,
	}
	if err := h.bookings.Create(booking); err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create booking", nil)
		return
	}
	response.JSON(w, r, http.StatusCreated, booking)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid booking id", nil)
		return
	}
	var body struct {
		RoomID        *uint    `json:"room_id"`
		CheckInDate   *string  `json:"check_in_date"`
		CheckOutDate  *string  `json:"check_out_date"`
		TotalAmount   *float64 `json:"total_amount"`
		BookingStatus *string  `json:"booking_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	fields := map[string]any{}
	if body.RoomID != nil {
		fields["room_id"] = *body.RoomID
	}
	if body.CheckInDate != nil {
		d, err := parseDate(*body.CheckInDate)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid check_in_date", nil)
			return
		}
		fields["check_in_date"] = d
	}
	if body.CheckOutDate != nil {
		d, err := parseDate(*body.CheckOutDate)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid check_out_date", nil)
			return
		}
		fields["check_out_date"] = d
	}
	if body.TotalAmount != nil {
		fields["total_amount"] = *body.TotalAmount
	}
	if body.BookingStatus != nil {
		fields["booking_status"] = *body.BookingStatus
	}
	if len(fields) == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "no fields to update", nil)
		return
	}

	if err := h.bookings.Update(id, fields); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "booking not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update booking", nil)
		return
	}
	booking, err := h.bookings.FindByID(id)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load booking", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, booking)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid booking id", nil)
		return
	}
	if err := h.bookings.DeleteByID(id); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "booking not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete booking", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
