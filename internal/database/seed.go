package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/stayloop/hotel-backoffice/internal/domain"

	"gorm.io/gorm"
)

// Seed inserts a small demo catalog for local development. Every insert is
// FirstOrCreate so rerunning the seed is a no-op.
func Seed(db *gorm.DB) error {
	hotel := domain.Hotel{
		Name:         "Lakeside Grand",
		Location:     "Naivasha",
		Address:      "12 Moi South Lake Rd",
		ContactPhone: "254700000001",
		Category:     "Resort",
		Rating:       4.5,
	}
	if err := db.Where("name = ?", hotel.Name).FirstOrCreate(&hotel).Error; err != nil {
		return err
	}

	rooms := []domain.Room{
		{HotelID: hotel.ID, RoomType: "Standard", PricePerNight: 80, Capacity: 2, Amenities: "wifi,breakfast", IsAvailable: true},
		{HotelID: hotel.ID, RoomType: "Deluxe", PricePerNight: 140, Capacity: 3, Amenities: "wifi,breakfast,balcony", IsAvailable: true},
	}
	for i := range rooms {
		if err := db.Where("hotel_id = ? AND room_type = ?", rooms[i].HotelID, rooms[i].RoomType).
			FirstOrCreate(&rooms[i]).Error; err != nil {
			return err
		}
	}

	user := domain.User{
		FirstName:    "Demo",
		LastName:     "Guest",
		Email:        "demo.guest@example.com",
		PasswordHash: "seeded-account-cannot-log-in",
		ContactPhone: "254700000002",
		Address:      "Nairobi",
		Role:         domain.RoleUser,
		IsVerified:   true,
	}
	if err := db.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
		return err
	}

	booking := domain.Booking{
		UserID:        user.ID,
		RoomID:        rooms[0].ID,
		CheckInDate:   time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour),
		CheckOutDate:  time.Now().AddDate(0, 0, 9).Truncate(24 * time.Hour),
		TotalAmount:   160,
		BookingStatus: "Confirmed",
	}
	if err := db.Where("user_id = ? AND room_id = ?", booking.UserID, booking.RoomID).
		FirstOrCreate(&booking).Error; err != nil {
		return err
	}

	payment := domain.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalAmount,
		PaymentStatus: "Completed",
		PaymentDate:   time.Now().Truncate(24 * time.Hour),
		PaymentMethod: "card",
		TransactionID: uuid.NewString(),
	}
	return db.Where("booking_id = ?", payment.BookingID).FirstOrCreate(&payment).Error
}
