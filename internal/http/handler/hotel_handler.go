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

type HotelHandler struct {
	hotels repository.HotelRepository
}

func NewHotelHandler(hotels repository.HotelRepository) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.hotels.List()
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list hotels", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, hotels)
}

func (h *HotelHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid hotel id", nil)
		return
	}
	hotel, err := h.hotels.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "hotel not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load hotel", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, hotel)
}

func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name         string  `json:"name"`
		Location     string  `json:"location"`
		Address      string  `json:"address"`
		ContactPhone string  `json:"contact_phone"`
		Category     string  `json:"category"`
		Rating       float64 `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	hotel := &domain.Hotel{
		Name:         body.Name,
		Location:     body.Location,
		Address:      body.Address,
		ContactPhone: body.ContactPhone,
		Category:     body.Category,
		Rating:       body.Rating,
	}
	if err := h.hotels.Create(hotel); err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create hotel", nil)
		return
	}
	response.JSON(w, r, http.StatusCreated, hotel)
}

func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid hotel id", nil)
		return
	}
	var body struct {
		Name         *string  `json:"name"`
		Location     *string  `json:"location"`
		Address      *string  `json:"address"`
		ContactPhone *string  `json:"contact_phone"`
		Category     *string  `json:"category"`
		Rating       *float64 `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	fields := map[string]any{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.Location != nil {
		fields["location"] = *body.Location
	}
	if body.Address != nil {
		fields["address"] = *body.Address
	}
	if body.ContactPhone != nil {
		fields["contact_phone"] = *body.ContactPhone
	}
	if body.Category != nil {
		fields["category"] = *body.Category
	}
	if body.Rating != nil {
		fields["rating"] = *body.Rating
	}
	if len(fields) == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "no fields to update", nil)
		return
	}

	if err := h.hotels.Update(id, fields); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "hotel not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update hotel", nil)
		return
	}
	hotel, err := h.hotels.FindByID(id)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load hotel", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, hotel)
}

func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid hotel id", nil)
		return
	}
	if err := h.hotels.DeleteByID(id); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "hotel not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete hotel", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
