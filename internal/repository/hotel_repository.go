package repository

import (
	"errors"

	"github.com/stayloop/hotel-backoffice/internal/domain"

	"gorm.io/gorm"
)

var ErrHotelNotFound = errors.New("hotel not found")

type HotelRepository interface {
	Create(hotel *domain.Hotel) error
	FindByID(id uint) (*domain.Hotel, error)
	List() ([]domain.Hotel, error)
	Update(id uint, fields map[string]any) error
	DeleteByID(id uint) error
}

type GormHotelRepository struct{ db *gorm.DB }

func NewHotelRepository(db *gorm.DB) HotelRepository { return &GormHotelRepository{db: db} }

func (r *GormHotelRepository) Create(hotel *domain.Hotel) error {
	return r.db.Create(hotel).Error
}

func (r *GormHotelRepository) FindByID(id uint) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := r.db.Preload("Rooms").First(&h, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *GormHotelRepository) List() ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	err := r.db.Preload("Rooms").Order("hotel_id").Find(&hotels).Error
	return hotels, err
}

func (r *GormHotelRepository) Update(id uint, fields map[string]any) error {
	res := r.db.Model(&domain.Hotel{}).Where("hotel_id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrHotelNotFound
	}
	return nil
}

func (r *GormHotelRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&domain.Hotel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrHotelNotFound
	}
	return nil
}
