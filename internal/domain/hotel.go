package domain

import "time"

type Hotel struct {
	ID           uint      `gorm:"primaryKey;column:hotel_id" json:"hotel_id"`
	Name         string    `gorm:"size:500;not null" json:"name"`
	Location     string    `gorm:"size:500;not null" json:"location"`
	Address      string    `gorm:"size:500;not null" json:"address"`
	ContactPhone string    `gorm:"size:500;not null" json:"contact_phone"`
	Category     string    `gorm:"size:500;not null" json:"category"`
	Rating       float64   `gorm:"not null" json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Rooms        []Room    `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
