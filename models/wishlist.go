package models

import (
	"gorm.io/gorm"
)

// WishlistItem is the one cross-screen shared record: a provider saved by a
// user. Persisted through the database rather than ambient global state;
// last write wins.
type WishlistItem struct {
	gorm.Model
	UserID     uint     `json:"user_id" gorm:"uniqueIndex:idx_user_provider"`
	ProviderID uint     `json:"provider_id" gorm:"uniqueIndex:idx_user_provider"`
	Provider   Provider `json:"provider" gorm:"foreignKey:ProviderID"`
}
