package domain

import "time"

type Room struct {
	ID            uint      `gorm:"primaryKey;column:room_id" json:"room_id"`
	HotelID       uint      `gorm:"not null;index" json:"hotel_id"`
	RoomType      string    `gorm:"size:500;not null" json:"room_type"`
	PricePerNight float64   `gorm:"not null" json:"price_per_night"`
	Capacity      int       `gorm:"not null" json:"capacity"`
	Amenities     string    `gorm:"size:500;not null" json:"amenities"`
	IsAvailable   bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Hotel         *Hotel    `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}
