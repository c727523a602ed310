package domain

import "time"

type SupportTicket struct {
	ID          uint      `gorm:"primaryKey;column:ticket_id" json:"ticket_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Subject     string    `gorm:"size:500;not null" json:"subject"`
	Description string    `gorm:"size:500;not null" json:"description"`
	Status      string    `gorm:"size:32;not null" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
