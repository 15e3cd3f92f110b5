package models

import (
	"time"
)

type User struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name"`
	Email          string         `json:"email" gorm:"unique"`
	Password       string         `json:"password,omitempty"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	ProfilePicture string         `json:"profile_picture"`
	RoleID         uint           `json:"role_id"`
	Role           Role           `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Bookings       []Booking      `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
	Wishlist       []WishlistItem `json:"wishlist,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
