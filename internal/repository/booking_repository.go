package repository

import (
	"errors"

	"github.com/stayloop/hotel-backoffice/internal/domain"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	Create(booking *domain.Booking) error
	FindByID(id uint) (*domain.Booking, error)
	List() ([]domain.Booking, error)
	ListByUser(userID uint) ([]domain.Booking, error)
	Update(id uint, fields map[string]any) error
	DeleteByID(id uint) error
}

type GormBookingRepository struct{ db *gorm.DB }

func NewBookingRepository(db *gorm.DB) BookingRepository { return &GormBookingRepository{db: db} }

func (r *GormBookingRepository) withRelations() *gorm.DB {
	return r.db.Preload("User").Preload("Room.Hotel")
}

func (r *GormBookingRepository) Create(booking *domain.Booking) error {
	return r.db.Create(booking).Error
}

func (r *GormBookingRepository) FindByID(id uint) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.withRelations().First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) List() ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.withRelations().Order("booking_id").Find(&bookings).Error
	return bookings, err
}

func (r *GormBookingRepository) ListByUser(userID uint) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.withRelations().Where("user_id = ?", userID).Order("booking_id").Find(&bookings).Error
	return bookings, err
}

func (r *GormBookingRepository) Update(id uint, fields map[string]any) error {
	res := r.db.Model(&domain.Booking{}).Where("booking_id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *GormBookingRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&domain.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
