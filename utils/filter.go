package utils

import (
	"github.com/kunalsaini/home-service-app/models"
)

// FilterCriteria mirrors the filter sheet: each field is either a selected
// value, a set of allowed values (job, language), or empty meaning no
// constraint.
type FilterCriteria struct {
	Job                 []string `json:"job"`
	Experience          string   `json:"experience"`            // "1-2 Years", "3-5 Years", "6+ Years"
	Rating              string   `json:"rating"`                // "4+ Stars", "3+ Stars", "2+ Stars"
	ServicePlanDuration string   `json:"service_plan_duration"` // "Long-term", "Short-term"
	Gender              string   `json:"gender"`
	Age                 string   `json:"age"` // "18-25", "26-35", "36-45", "46+"
	Religion            string   `json:"religion"`
	PetFriendly         string   `json:"pet_friendly"` // "Yes", "No"
	Language            []string `json:"language"`
	MaritalStatus       string   `json:"marital_status"`
	Verified            string   `json:"verified"` // "Verified", "Not Verified"
}

// FilterProviders returns the providers satisfying all active criteria.
// Categories combine with AND; within the job and language sets a provider
// matches if its attributes intersect the selection. No criteria selected
// returns every provider.
func FilterProviders(providers []models.Provider, criteria FilterCriteria) []models.Provider {
	filtered := make([]models.Provider, 0, len(providers))
	for _, provider := range providers {
		if matchesCriteria(provider, criteria) {
			filtered = append(filtered, provider)
		}
	}
	return filtered
}

func matchesCriteria(p models.Provider, c FilterCriteria) bool {
	if len(c.Job) > 0 && !p.JobRoles.ContainsAny(c.Job) {
		return false
	}

	if c.Experience != "" && !matchesExperience(p.ExperienceYears, c.Experience) {
		return false
	}

	if c.Rating != "" && !matchesRating(p.Rating, c.Rating) {
		return false
	}

	if c.Gender != "" && p.Gender != c.Gender {
		return false
	}

	if c.Age != "" && !matchesAge(p.Age, c.Age) {
		return false
	}

	if c.Religion != "" && p.Religion != c.Religion {
		return false
	}

	// "Yes"/"No" maps to the boolean flag; anything else is no constraint
	if c.PetFriendly == "Yes" && !p.PetFriendly {
		return false
	}
	if c.PetFriendly == "No" && p.PetFriendly {
		return false
	}

	if len(c.Language) > 0 && !p.Languages.ContainsAny(c.Language) {
		return false
	}

	if c.MaritalStatus != "" && p.MaritalStatus != c.MaritalStatus {
		return false
	}

	if c.ServicePlanDuration != "" && string(p.Availability) != c.ServicePlanDuration {
		return false
	}

	if c.Verified == "Verified" && !p.Verified {
		return false
	}
	if c.Verified == "Not Verified" && p.Verified {
		return false
	}

	return true
}

func matchesExperience(years int, bucket string) bool {
	switch bucket {
	case "1-2 Years":
		return years <= 2
	case "3-5 Years":
		return years >= 3 && years <= 5
	case "6+ Years":
		return years > 5
	}
	return true
}

func matchesRating(rating float64, bucket string) bool {
	switch bucket {
	case "4+ Stars":
		return rating >= 4
	case "3+ Stars":
		return rating >= 3
	case "2+ Stars":
		return rating >= 2
	}
	return true
}

func matchesAge(age int, bucket string) bool {
	switch bucket {
	case "18-25":
		return age >= 18 && age <= 25
	case "26-35":
		return age >= 26 && age <= 35
	case "36-45":
		return age >= 36 && age <= 45
	case "46+":
		return age >= 46
	}
	return true
}
