package repository

import (
	"errors"

	"github.com/stayloop/hotel-backoffice/internal/domain"

	"gorm.io/gorm"
)

var ErrRoomNotFound = errors.New("room not found")

type RoomRepository interface {
	Create(room *domain.Room) error
	FindByID(id uint) (*domain.Room, error)
	List() ([]domain.Room, error)
	Update(id uint, fields map[string]any) error
	DeleteByID(id uint) error
}

type GormRoomRepository struct{ db *gorm.DB }

func NewRoomRepository(db *gorm.DB) RoomRepository { return &GormRoomRepository{db: db} }

func (r *GormRoomRepository) Create(room *domain.Room) error {
	return r.db.Create(room).Error
}

func (r *GormRoomRepository) FindByID(id uint) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.Preload("Hotel").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *GormRoomRepository) List() ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.Preload("Hotel").Order("room_id").Find(&rooms).Error
	return rooms, err
}

func (r *GormRoomRepository) Update(id uint, fields map[string]any) error {
	res := r.db.Model(&domain.Room{}).Where("room_id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (r *GormRoomRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&domain.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
