package repository

import (
	"errors"

	"github.com/stayloop/hotel-backoffice/internal/domain"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Create(payment *domain.Payment) error
	FindByID(id uint) (*domain.Payment, error)
	FindByBookingID(bookingID uint) (*domain.Payment, error)
	List() ([]domain.Payment, error)
	Update(id uint, fields map[string]any) error
	DeleteByID(id uint) error
}

type GormPaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) PaymentRepository { return &GormPaymentRepository{db: db} }

func (r *GormPaymentRepository) withRelations() *gorm.DB {
	return r.db.Preload("Booking.User").Preload("Booking.Room.Hotel")
}

func (r *GormPaymentRepository) Create(payment *domain.Payment) error {
	return r.db.Create(payment).Error
}

func (r *GormPaymentRepository) FindByID(id uint) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.withRelations().First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPaymentRepository) FindByBookingID(bookingID uint) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.withRelations().Where("booking_id = ?", bookingID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPaymentRepository) List() ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.withRelations().Order("payment_id").Find(&payments).Error
	return payments, err
}

func (r *GormPaymentRepository) Update(id uint, fields map[string]any) error {
	res := r.db.Model(&domain.Payment{}).Where("payment_id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *GormPaymentRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&domain.Payment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
