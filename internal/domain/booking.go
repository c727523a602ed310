package domain

import "time"

type Booking struct {
	ID            uint      `gorm:"primaryKey;column:booking_id" json:"booking_id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	RoomID        uint      `gorm:"not null;index" json:"room_id"`
	CheckInDate   time.Time `gorm:"not null" json:"check_in_date"`
	CheckOutDate  time.Time `gorm:"not null" json:"check_out_date"`
	TotalAmount   float64   `gorm:"not null" json:"total_amount"`
	BookingStatus string    `gorm:"size:32;not null" json:"booking_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	User          *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room          *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
