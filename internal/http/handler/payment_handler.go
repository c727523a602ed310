package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stayloop/hotel-backoffice/internal/domain"
	"github.com/stayloop/hotel-backoffice/internal/http/response"
	"github.com/stayloop/hotel-backoffice/internal/repository"
)

type PaymentHandler struct {
	payments repository.PaymentRepository
}

func NewPaymentHandler(payments repository.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.List()
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list payments", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, payments)
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payment id", nil)
		return
	}
	payment, err := h.payments.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "payment not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load payment", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, payment)
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		BookingID     uint    `json:"booking_id"`
		Amount        float64 `json:"amount"`
		PaymentStatus string  `json:"payment_status"`
		PaymentDate   string  `json:"payment_date"`
		PaymentMethod string  `json:"payment_method"`
		TransactionID string  `json:"transaction_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if body.BookingID == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "booking_id is required", nil)
		return
	}
	now := time.Now().UTC()
	paymentDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if body.PaymentDate != "" {
		d, err := parseDate(body.PaymentDate)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payment_date", nil)
			return
		}
		paymentDate = d
	}
	// Gateways that call back without a reference still get a traceable row.
	txID := body.TransactionID
	if txID == "" {
		txID = uuid.NewString()
	}

	payment := &domain.Payment{
		BookingID:     body.BookingID,
		Amount:        body.Amount,
		PaymentStatus: body.PaymentStatus,
		PaymentDate:   paymentDate,
		PaymentMethod: body.PaymentMethod,
		TransactionID: txID,
	}
	if err := h.payments.Create(payment); err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create payment", nil)
		return
	}
	response.JSON(w, r, http.StatusCreated, payment)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payment id", nil)
		return
	}
	var body struct {
		Amount        *float64 `json:"amount"`
		PaymentStatus *string  `json:"payment_status"`
		PaymentDate   *string  `json:"payment_date"`
		PaymentMethod *string  `json:"payment_method"`
		TransactionID *string  `json:"transaction_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	fields := map[string]any{}
	if body.Amount != nil {
		fields["amount"] = *body.Amount
	}
	if body.PaymentStatus != nil {
		fields["payment_status"] = *body.PaymentStatus
	}
	if body.PaymentDate != nil {
		d, err := parseDate(*body.PaymentDate)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payment_date", nil)
			return
		}
		fields["payment_date"] = d
	}
	if body.PaymentMethod != nil {
		fields["payment_method"] = *body.PaymentMethod
	}
	if body.TransactionID != nil {
		fields["transaction_id"] = *body.TransactionID
	}
	if len(fields) == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "no fields to update", nil)
		return
	}

	if err := h.payments.Update(id, fields); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "payment not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update payment", nil)
		return
	}
	payment, err := h.payments.FindByID(id)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load payment", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, payment)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payment id", nil)
		return
	}
	if err := h.payments.DeleteByID(id); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "payment not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete payment", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
