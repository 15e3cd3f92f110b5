package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringList stores a list of strings as JSONB (job roles, languages)
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil // Return as string for JSONB type
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

// Contains reports whether the list has the given entry
func (l StringList) Contains(s string) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the list intersects the given set
func (l StringList) ContainsAny(set []string) bool {
	for _, s := range set {
		if l.Contains(s) {
			return true
		}
	}
	return false
}

type Availability string

const (
	AvailabilityLongTerm  Availability = "Long-term"
	AvailabilityShortTerm Availability = "Short-term"
)

// Provider is a bookable service professional (maid, cook, etc.)
type Provider struct {
	gorm.Model
	Name            string       `json:"name"`
	JobRoles        StringList   `json:"job" gorm:"type:jsonb"`
	ExperienceYears int          `json:"experience"`
	Rating          float64      `json:"rating" gorm:"type:decimal(2,1)"`
	ReviewCount     int          `json:"review_count"`
	Languages       StringList   `json:"language" gorm:"type:jsonb"`
	Verified        bool         `json:"verified"`
	Gender          string       `json:"gender"`
	Age             int          `json:"age"`
	Religion        string       `json:"religion"`
	MaritalStatus   string       `json:"marital_status"`
	PetFriendly     bool         `json:"pet_friendly"`
	Availability    Availability `json:"availability"`
	Location        string       `json:"location"`
	ImageURL        string       `json:"image_url"`
}
