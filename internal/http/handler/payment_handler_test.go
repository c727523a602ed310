package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stayloop/hotel-backoffice/internal/domain"
	"github.com/stayloop/hotel-backoffice/internal/repository"
)

type stubPaymentRepo struct {
	createFn func(*domain.Payment) error
}

func (s *stubPaymentRepo) Create(p *domain.Payment) error {
	if s.createFn != nil {
		return s.createFn(p)
	}
	p.ID = 1
	return nil
}

func (s *stubPaymentRepo) FindByID(uint) (*domain.Payment, error) {
	return nil, repository.ErrPaymentNotFound
}

func (s *stubPaymentRepo) FindByBookingID(uint) (*domain.Payment, error) {
	return nil, repository.ErrPaymentNotFound
}

func (s *stubPaymentRepo) List() ([]domain.Payment, error) { return nil, nil }

func (s *stubPaymentRepo) Update(uint, map[string]any) error {
	return repository.ErrPaymentNotFound
}

func (s *stubPaymentRepo) DeleteByID(uint) error { return repository.ErrPaymentNotFound }

func TestPaymentCreateDefaultsDateAndTransactionID(t *testing.T) {
	var created *domain.Payment
	h := NewPaymentHandler(&stubPaymentRepo{
		createFn: func(p *domain.Payment) error {
			p.ID = 7
			created = p
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/payments",
		strings.NewReader(`{"booking_id":3,"amount":360,"payment_status":"Completed","payment_method":"card"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if created == nil {
		t.Fatal("expected repository create to be called")
	}
	if created.TransactionID == "" {
		t.Fatal("expected a generated transaction id")
	}

	// The default date is today's UTC calendar day at midnight.
	now := time.Now().UTC()
	wantDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !created.PaymentDate.Equal(wantDate) {
		t.Fatalf("expected payment date %v, got %v", wantDate, created.PaymentDate)
	}
}

func TestPaymentCreateKeepsSuppliedDateAndTransactionID(t *testing.T) {
	var created *domain.Payment
	h := NewPaymentHandler(&stubPaymentRepo{
		createFn: func(p *domain.Payment) error {
			p.ID = 8
			created = p
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/payments",
		strings.NewReader(`{"booking_id":3,"amount":100,"payment_date":"2026-10-05","transaction_id":"gw-123"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if created.TransactionID != "gw-123" {
		t.Fatalf("expected supplied transaction id, got %q", created.TransactionID)
	}
	want := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	if !created.PaymentDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, created.PaymentDate)
	}
}

func TestPaymentCreateRequiresBookingID(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentRepo{})
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(`{"amount":100}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
