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

type SupportTicketHandler struct {
	tickets repository.SupportTicketRepository
}

func NewSupportTicketHandler(tickets repository.SupportTicketRepository) *SupportTicketHandler {
	return &SupportTicketHandler{tickets: tickets}
}

func (h *SupportTicketHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid user_id filter", nil)
			return
		}
		tickets, err := h.tickets.ListByUser(uint(userID))
		if err != nil {
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list tickets", nil)
			return
		}
		response.JSON(w, r, http.StatusOK, tickets)
		return
	}

	tickets, err := h.tickets.List()
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list tickets", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, tickets)
}

func (h *SupportTicketHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid ticket id", nil)
		return
	}
	ticket, err := h.tickets.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "ticket not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load ticket", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, ticket)
}

func (h *SupportTicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID      uint   `json:"user_id"`
		Subject     string `json:"subject"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if body.UserID == 0 || body.Subject == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "user_id and subject are required", nil)
		return
	}
	status := body.Status
	if status == "" {
		status = "Open"
	}
	ticket := &domain.SupportTicket{
		UserID:      body.UserID,
		Subject:     body.Subject,
		Description: body.Description,
		Status:      status,
	}
	if err := h.tickets.Create(ticket); err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create ticket", nil)
		return
	}
	response.JSON(w, r, http.StatusCreated, ticket)
}

func (h *SupportTicketHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid ticket id", nil)
		return
	}
	var body struct {
		Subject     *string `json:"subject"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	fields := map[string]any{}
	if body.Subject != nil {
		fields["subject"] = *body.Subject
	}
	if body.Description != nil {
		fields["description"] = *body.Description
	}
	if body.Status != nil {
		fields["status"] = *body.Status
	}
	if len(fields) == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "no fields to update", nil)
		return
	}

	if err := h.tickets.Update(id, fields); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "ticket not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update ticket", nil)
		return
	}
	ticket, err := h.tickets.FindByID(id)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load ticket", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, ticket)
}

func (h *SupportTicketHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid ticket id", nil)
		return
	}
	if err := h.tickets.DeleteByID(id); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "ticket not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete ticket", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
