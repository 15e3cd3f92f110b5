package utils

import (
	"testing"

	"github.com/kunalsaini/home-service-app/models"
)

func testProviders() []models.Provider {
	return []models.Provider{
		{
			Name:            "Asha",
			JobRoles:        models.StringList{"Cook"},
			ExperienceYears: 1,
			Rating:          4.5,
			Languages:       models.StringList{"Hindi"},
			Verified:        true,
			Gender:          "Female",
			Age:             22,
			Religion:        "Hindu",
			MaritalStatus:   "Single",
			PetFriendly:     true,
			Availability:    models.AvailabilityLongTerm,
		},
		{
			Name:            "Beena",
			JobRoles:        models.StringList{"Cleaner", "Baby Sitter"},
			ExperienceYears: 3,
			Rating:          3.5,
			Languages:       models.StringList{"Tamil", "English"},
			Verified:        false,
			Gender:          "Female",
			Age:             30,
			Religion:        "Christian",
			MaritalStatus:   "Married",
			PetFriendly:     false,
			Availability:    models.AvailabilityShortTerm,
		},
		{
			Name:            "Chandra",
			JobRoles:        models.StringList{"Cook", "Kitchen Helper"},
			ExperienceYears: 6,
			Rating:          4.9,
			Languages:       models.StringList{"Hindi", "English"},
			Verified:        true,
			Gender:          "Female",
			Age:             47,
			Religion:        "Hindu",
			MaritalStatus:   "Widowed",
			PetFriendly:     false,
			Availability:    models.AvailabilityLongTerm,
		},
	}
}

func names(providers []models.Provider) []string {
	out := make([]string, len(providers))
	for i, p := range providers {
		out[i] = p.Name
	}
	return out
}

func TestFilterProviders(t *testing.T) {
	providers := testProviders()

	tests := []struct {
		name     string
		criteria FilterCriteria
		want     []string
	}{
		{
			name:     "no criteria returns all providers",
			criteria: FilterCriteria{},
			want:     []string{"Asha", "Beena", "Chandra"},
		},
		{
			name:     "experience 6+ Years keeps only >5",
			criteria: FilterCriteria{Experience: "6+ Years"},
			want:     []string{"Chandra"},
		},
		{
			name:     "experience 1-2 Years",
			criteria: FilterCriteria{Experience: "1-2 Years"},
			want:     []string{"Asha"},
		},
		{
			name:     "experience 3-5 Years is a closed interval",
			criteria: FilterCriteria{Experience: "3-5 Years"},
			want:     []string{"Beena"},
		},
		{
			name:     "rating 4+ Stars",
			criteria: FilterCriteria{Rating: "4+ Stars"},
			want:     []string{"Asha", "Chandra"},
		},
		{
			name:     "age 46+ is open ended",
			criteria: FilterCriteria{Age: "46+"},
			want:     []string{"Chandra"},
		},
		{
			name:     "age 26-35 closed interval",
			criteria: FilterCriteria{Age: "26-35"},
			want:     []string{"Beena"},
		},
		{
			name:     "job set uses OR semantics",
			criteria: FilterCriteria{Job: []string{"Baby Sitter", "Kitchen Helper"}},
			want:     []string{"Beena", "Chandra"},
		},
		{
			name:     "language set intersects provider languages",
			criteria: FilterCriteria{Language: []string{"English"}},
			want:     []string{"Beena", "Chandra"},
		},
		{
			name:     "verified flag maps to boolean",
			criteria: FilterCriteria{Verified: "Verified"},
			want:     []string{"Asha", "Chandra"},
		},
		{
			name:     "not verified flag maps to boolean",
			criteria: FilterCriteria{Verified: "Not Verified"},
			want:     []string{"Beena"},
		},
		{
			name:     "pet friendly Yes",
			criteria: FilterCriteria{PetFriendly: "Yes"},
			want:     []string{"Asha"},
		},
		{
			name:     "pet friendly No",
			criteria: FilterCriteria{PetFriendly: "No"},
			want:     []string{"Beena", "Chandra"},
		},
		{
			name:     "service plan duration matches availability",
			criteria: FilterCriteria{ServicePlanDuration: "Short-term"},
			want:     []string{"Beena"},
		},
		{
			name: "categories combine with AND",
			criteria: FilterCriteria{
				Job:      []string{"Cook"},
				Verified: "Verified",
				Rating:   "4+ Stars",
				Age:      "46+",
			},
			want: []string{"Chandra"},
		},
		{
			name: "conflicting criteria match nothing",
			criteria: FilterCriteria{
				Experience: "6+ Years",
				Age:        "18-25",
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(FilterProviders(providers, tt.criteria))
			if len(got) != len(tt.want) {
				t.Fatalf("FilterProviders() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FilterProviders() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestFilterProvidersIsPure(t *testing.T) {
	providers := testProviders()
	criteria := FilterCriteria{Experience: "6+ Years"}

	first := names(FilterProviders(providers, criteria))
	second := names(FilterProviders(providers, criteria))

	if len(first) != len(second) {
		t.Fatalf("filter result changed between calls: %v then %v", first, second)
	}
	if len(providers) != 3 {
		t.Errorf("input slice was mutated, len = %d", len(providers))
	}
}
