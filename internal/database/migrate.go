package database

import (
	"github.com/stayloop/hotel-backoffice/internal/domain"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.SupportTicket{},
	)
}
