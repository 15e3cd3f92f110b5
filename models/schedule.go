package models

import (
	"fmt"
	"time"
)

type ServiceFrequency string

const (
	FrequencyOneTime    ServiceFrequency = "One-Time"
	FrequencyTwiceAWeek ServiceFrequency = "Twice a week"
	FrequencyDaily      ServiceFrequency = "Daily"
	FrequencyWeekly     ServiceFrequency = "Weekly"
	FrequencyBiWeekly   ServiceFrequency = "Bi-Weekly"
	FrequencyCustom     ServiceFrequency = "Custom"
)

type TimeSlot string

const (
	SlotMorning   TimeSlot = "Morning"
	SlotAfternoon TimeSlot = "Afternoon"
	SlotEvening   TimeSlot = "Evening"
	SlotCustom    TimeSlot = "Custom"
)

// ScheduleDetails carries the frequency and time-slot choices of a booking
// draft. EstimatedPrice is derived from the selections and recomputed on
// every read, never stored authoritatively.
type ScheduleDetails struct {
	ServiceFrequency ServiceFrequency `json:"service_frequency"`
	TimeSlot         TimeSlot         `json:"time_slot"`
	StartDate        time.Time        `json:"start_date"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
	EstimatedPrice   int              `json:"estimated_price"`
}

// IsRecurring reports whether the schedule repeats. Only recurring schedules
// carry an end date.
func (s *ScheduleDetails) IsRecurring() bool {
	return s.ServiceFrequency != "" && s.ServiceFrequency != FrequencyOneTime
}

// Validate checks the schedule selections before the draft moves to checkout.
func (s *ScheduleDetails) Validate() error {
	switch s.ServiceFrequency {
	case FrequencyOneTime, FrequencyTwiceAWeek, FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly, FrequencyCustom:
	case "":
		return fmt.Errorf("please select a service frequency")
	default:
		return fmt.Errorf("invalid service frequency %q", s.ServiceFrequency)
	}

	switch s.TimeSlot {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotCustom:
	case "":
		return fmt.Errorf("please select a time slot")
	default:
		return fmt.Errorf("invalid time slot %q", s.TimeSlot)
	}

	if s.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}

	if !s.IsRecurring() && s.EndDate != nil {
		return fmt.Errorf("end date is only allowed for recurring schedules")
	}

	return nil
}

// TimeSlotText returns the display window for a time slot.
func (s *ScheduleDetails) TimeSlotText() string {
	switch s.TimeSlot {
	case SlotMorning:
		return "7:00 - 10:00 am"
	case SlotAfternoon:
		return "11:00 am - 3:00 pm"
	case SlotEvening:
		return "4:00 - 8:00 pm"
	case SlotCustom:
		return "Custom Time"
	default:
		return "4:00 - 8:00 pm"
	}
}
