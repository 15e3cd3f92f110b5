package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ServiceCustomization captures the household attributes collected during the
// booking flow. It travels with the draft and is never persisted on its own.
type ServiceCustomization struct {
	Adults                 string `json:"adults"`
	Kids                   string `json:"kids"`
	Pets                   string `json:"pets"`
	Floors                 string `json:"floors"`
	Bathrooms              string `json:"bathrooms"`
	LivingBedroomsCleaning string `json:"living_bedrooms_cleaning"`
	Dishwashing            string `json:"dishwashing"`
	CountertopCleaning     string `json:"countertop_cleaning"`
	Meals                  string `json:"meals"`
	FoodType               string `json:"food_type"`
	WashingMethod          string `json:"washing_method"`
	Drying                 string `json:"drying"`
	IroningFolding         string `json:"ironing_folding"`
}

const (
	OptionRequired    = "Required"
	OptionNotRequired = "Not Required"
)

var (
	petsOptions      = []string{"No Pets", "Dogs", "Cats", "Birds", "Multiple Types"}
	floorsOptions    = []string{"1 Floor", "2 Floors", "3 Floors", "4+ Floors"}
	bathroomsOptions = []string{"1", "2", "3", "4", "5", "6+"}
	mealsOptions     = []string{"1 Meal", "2 Meals", "All 3 Meals", OptionNotRequired}
	foodTypeOptions  = []string{"Vegetarian", "Non-Vegetarian", "Both", OptionNotRequired}
	washingOptions   = []string{"Machine Wash", "Hand Wash", "Both", OptionNotRequired}
	requiredOptions  = []string{OptionRequired, OptionNotRequired}
)

func oneOf(value string, options []string) bool {
	for _, option := range options {
		if value == option {
			return true
		}
	}
	return false
}

// Validate checks every field against its option list so a missing or renamed
// field fails at the boundary instead of silently falling back to a default.
func (s *ServiceCustomization) Validate() error {
	checks := []struct {
		field   string
		value   string
		options []string
	}{
		{"pets", s.Pets, petsOptions},
		{"floors", s.Floors, floorsOptions},
		{"bathrooms", s.Bathrooms, bathroomsOptions},
		{"meals", s.Meals, mealsOptions},
		{"food_type", s.FoodType, foodTypeOptions},
		{"washing_method", s.WashingMethod, washingOptions},
		{"living_bedrooms_cleaning", s.LivingBedroomsCleaning, requiredOptions},
		{"dishwashing", s.Dishwashing, requiredOptions},
		{"countertop_cleaning", s.CountertopCleaning, requiredOptions},
		{"drying", s.Drying, requiredOptions},
		{"ironing_folding", s.IroningFolding, requiredOptions},
	}

	for _, check := range checks {
		if check.value == "" {
			return fmt.Errorf("%s is required", check.field)
		}
		if !oneOf(check.value, check.options) {
			return fmt.Errorf("invalid value %q for %s", check.value, check.field)
		}
	}

	if err := countInRange(s.Adults, 1, 10); err != nil {
		return fmt.Errorf("adults %s", err)
	}
	if err := countInRange(s.Kids, 0, 5); err != nil {
		return fmt.Errorf("kids %s", err)
	}

	return nil
}

func countInRange(value string, min, max int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < min || n > max {
		return fmt.Errorf("must be between %d and %d", min, max)
	}
	return nil
}

// ServiceTypes derives the human-readable service label shown on the
// checkout summary from the selected options.
func (s *ServiceCustomization) ServiceTypes() string {
	var services []string

	if s.LivingBedroomsCleaning == OptionRequired || s.Bathrooms != OptionNotRequired {
		services = append(services, "Cleaning")
	}

	if s.Dishwashing == OptionRequired || s.CountertopCleaning == OptionRequired {
		services = append(services, "Kitchen Work")
	}

	if s.Meals != OptionNotRequired {
		services = append(services, "Cooking")
	}

	if s.WashingMethod != OptionNotRequired || s.Drying == OptionRequired || s.IroningFolding == OptionRequired {
		services = append(services, "Laundry")
	}

	return strings.Join(services, ", ")
}
