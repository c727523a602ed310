package domain

import "time"

type Payment struct {
	ID            uint      `gorm:"primaryKey;column:payment_id" json:"payment_id"`
	BookingID     uint      `gorm:"not null;index" json:"booking_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentStatus string    `gorm:"size:32;not null" json:"payment_status"`
	PaymentDate   time.Time `gorm:"not null" json:"payment_date"`
	PaymentMethod string    `gorm:"size:500;not null" json:"payment_method"`
	TransactionID string    `gorm:"size:500;not null" json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Booking       *Booking  `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}
