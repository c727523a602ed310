package domain

import "time"

// User is the account record for both guests and back-office admins.
// VerificationCode is set while the account is unverified and cleared
// in the same update that flips IsVerified.
type User struct {
	ID               uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	FirstName        string    `gorm:"size:500;not null" json:"first_name"`
	LastName         string    `gorm:"size:500;not null" json:"last_name"`
	Email            string    `gorm:"uniqueIndex;size:500;not null" json:"email"`
	PasswordHash     string    `gorm:"size:500;not null" json:"-"`
	ContactPhone     string    `gorm:"size:500;not null" json:"contact_phone"`
	Address          string    `gorm:"size:500;not null" json:"address"`
	Role             string    `gorm:"size:32;not null;default:user" json:"role"`
	IsVerified       bool      `gorm:"not null;default:false" json:"is_verified"`
	VerificationCode *string   `gorm:"size:16" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
