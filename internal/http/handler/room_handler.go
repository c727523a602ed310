package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stayloop/hotel-backoffice/internal/domain"
	"github.com/stayloop/hotel-backoffice/internal/http/response"
	"github.com/stayloop/hotel-backoffice/internal/repository"
)

type RoomHandler struct {
	rooms repository.RoomRepository
}

func NewRoomHandler(rooms repository.RoomRepository) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.List()
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list rooms", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, rooms)
}

func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid room id", nil)
		return
	}
	room, err := h.rooms.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "room not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load room", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, room)
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		HotelID       uint    `json:"hotel_id"`
		RoomType      string  `json:"room_type"`
		PricePerNight float64 `json:"price_per_night"`
		Capacity      int     `json:"capacity"`
		Amenities     string  `json:"amenities"`
		IsAvailable   *bool   `json:"is_available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if body.HotelID == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "hotel_id is required", nil)
		return
	}
	available := true
	if body.IsAvailable != nil {
		available = *body.IsAvailable
	}
	room := &domain.Room{
		HotelID:       body.HotelID,
		RoomType:      body.RoomType,
		PricePerNight: body.PricePerNight,
		Capacity:      body.Capacity,
		Amenities:     body.Amenities,
		IsAvailable:   available,
	}
	if err := h.rooms.Create(room); err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create room", nil)
		return
	}
	response.JSON(w, r, http.StatusCreated, room)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid room id", nil)
		return
	}
	var body struct {
		HotelID       *uint    `json:"hotel_id"`
		RoomType      *string  `json:"room_type"`
		PricePerNight *float64 `json:"price_per_night"`
		Capacity      *int     `json:"capacity"`
		Amenities     *string  `json:"amenities"`
		IsAvailable   *bool    `json:"is_available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	fields := map[string]any{}
	if body.HotelID != nil {
		fields["hotel_id"] = *body.HotelID
	}
	if body.RoomType != nil {
		fields["room_type"] = *body.RoomType
	}
	if body.PricePerNight != nil {
		fields["price_per_night"] = *body.PricePerNight
	}
	if body.Capacity != nil {
		fields["capacity"] = *body.Capacity
	}
	if body.Amenities != nil {
		fields["amenities"] = *body.Amenities
	}
	if body.IsAvailable != nil {
		fields["is_available"] = *body.IsAvailable
	}
	if len(fields) == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "no fields to update", nil)
		return
	}

	if err := h.rooms.Update(id, fields); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "room not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update room", nil)
		return
	}
	room, err := h.rooms.FindByID(id)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load room", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, room)
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid room id", nil)
		return
	}
	if err := h.rooms.DeleteByID(id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "room not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete room", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
