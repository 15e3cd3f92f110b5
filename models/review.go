package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Review rates a completed service on four criteria, each 0-5 where 0 means
// unrated. Overall is the criteria average rounded to the nearest half star.
type Review struct {
	gorm.Model
	ProviderID  uint     `json:"provider_id"`
	Provider    Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	CustomerID  uint     `json:"customer_id"`
	Customer    User     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	BookingID   *uint    `json:"booking_id,omitempty"`
	Quality     int      `json:"quality"`
	Punctuality int      `json:"punctuality"`
	Behavior    int      `json:"behavior"`
	Cleanliness int      `json:"cleanliness"`
	Overall     float64  `json:"overall" gorm:"type:decimal(2,1)"`
	Comment     string   `json:"comment"`
	IsAnonymous bool     `json:"is_anonymous" gorm:"default:false"`
	IsVerified  bool     `json:"is_verified" gorm:"default:false"` // Linked to a real booking
}

// CriteriaValid reports whether every criterion is in the 0-5 range.
func (r *Review) CriteriaValid() bool {
	for _, v := range []int{r.Quality, r.Punctuality, r.Behavior, r.Cleanliness} {
		if v < 0 || v > 5 {
			return false
		}
	}
	return true
}

// BeforeCreate derives the overall rating and rejects unrated submissions.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if !r.CriteriaValid() {
		return fmt.Errorf("criteria ratings must be between 0 and 5")
	}

	r.Overall = OverallRating(r.Quality, r.Punctuality, r.Behavior, r.Cleanliness)
	if r.Overall == 0 {
		return fmt.Errorf("please rate at least one criteria before submitting")
	}

	return nil
}

// OverallRating averages the four criteria and rounds to the nearest 0.5.
// A sum of zero means nothing was rated and yields 0.
func OverallRating(quality, punctuality, behavior, cleanliness int) float64 {
	sum := quality + punctuality + behavior + cleanliness
	if sum == 0 {
		return 0
	}

	average := float64(sum) / 4
	return float64(int(average*2+0.5)) / 2
}

// HasExistingReview checks whether the customer already reviewed the provider
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("customer_id = ? AND provider_id = ? AND deleted_at IS NULL",
			r.CustomerID, r.ProviderID).
		Count(&count).Error

	return count > 0, err
}
