package models

import (
	"testing"
	"time"
)

func TestScheduleValidate(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	tests := []struct {
		name     string
		schedule ScheduleDetails
		wantErr  bool
	}{
		{
			name: "recurring schedule with end date",
			schedule: ScheduleDetails{
				ServiceFrequency: FrequencyWeekly,
				TimeSlot:         SlotMorning,
				StartDate:        start,
				EndDate:          &end,
			},
		},
		{
			name: "one time schedule without end date",
			schedule: ScheduleDetails{
				ServiceFrequency: FrequencyOneTime,
				TimeSlot:         SlotEvening,
				StartDate:        start,
			},
		},
		{
			name: "missing frequency",
			schedule: ScheduleDetails{
				TimeSlot:  SlotMorning,
				StartDate: start,
			},
			wantErr: true,
		},
		{
			name: "unknown frequency",
			schedule: ScheduleDetails{
				ServiceFrequency: "Fortnightly",
				TimeSlot:         SlotMorning,
				StartDate:        start,
			},
			wantErr: true,
		},
		{
			name: "missing time slot",
			schedule: ScheduleDetails{
				ServiceFrequency: FrequencyDaily,
				StartDate:        start,
			},
			wantErr: true,
		},
		{
			name: "unknown time slot",
			schedule: ScheduleDetails{
				ServiceFrequency: FrequencyDaily,
				TimeSlot:         "Midnight",
				StartDate:        start,
			},
			wantErr: true,
		},
		{
			name: "missing start date",
			schedule: ScheduleDetails{
				ServiceFrequency: FrequencyDaily,
				TimeSlot:         SlotMorning,
			},
			wantErr: true,
		},
		{
			name: "end date on a one time schedule",
			schedule: ScheduleDetails{
				ServiceFrequency: FrequencyOneTime,
				TimeSlot:         SlotMorning,
				StartDate:        start,
				EndDate:          &end,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsRecurring(t *testing.T) {
	tests := []struct {
		frequency ServiceFrequency
		want      bool
	}{
		{FrequencyOneTime, false},
		{FrequencyDaily, true},
		{FrequencyTwiceAWeek, true},
		{FrequencyWeekly, true},
		{FrequencyBiWeekly, true},
		{FrequencyCustom, true},
		{"", false},
	}

	for _, tt := range tests {
		s := ScheduleDetails{ServiceFrequency: tt.frequency}
		if got := s.IsRecurring(); got != tt.want {
			t.Errorf("IsRecurring() with frequency %q = %v, want %v", tt.frequency, got, tt.want)
		}
	}
}

func TestTimeSlotText(t *testing.T) {
	tests := []struct {
		slot TimeSlot
		want string
	}{
		{SlotMorning, "7:00 - 10:00 am"},
		{SlotAfternoon, "11:00 am - 3:00 pm"},
		{SlotEvening, "4:00 - 8:00 pm"},
		{SlotCustom, "Custom Time"},
		{"", "4:00 - 8:00 pm"},
	}

	for _, tt := range tests {
		s := ScheduleDetails{TimeSlot: tt.slot}
		if got := s.TimeSlotText(); got != tt.want {
			t.Errorf("TimeSlotText() for %q = %q, want %q", tt.slot, got, tt.want)
		}
	}
}
