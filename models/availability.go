package models

import "fmt"

// AvailabilityRule is a professional's recurring weekly open-hours declaration
// for one day of the week (Sunday=0 .. Saturday=6). A rule with
// IsAvailable=false blocks the day instead of opening it.
type AvailabilityRule struct {
	ID             string `bson:"id" json:"id"`
	ProfessionalID string `bson:"professional_id" json:"professionalId"`
	DayOfWeek      int    `bson:"day_of_week" json:"dayOfWeek"`
	StartTime      string `bson:"start_time" json:"startTime"`
	EndTime        string `bson:"end_time" json:"endTime"`
	IsAvailable    bool   `bson:"is_available" json:"isAvailable"`
}

// Validate checks the day and the time window. Start must be strictly before end.
func (r *AvailabilityRule) Validate() error {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek must be between 0 (Sunday) and 6 (Saturday), got %d", r.DayOfWeek)
	}
	start, err := ParseClock(r.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(r.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("startTime %s must be before endTime %s", r.StartTime, r.EndTime)
	}
	return nil
}

// UpsertAvailabilityRequest is the payload for creating or replacing the rule
// for one day of the week.
type UpsertAvailabilityRequest struct {
	DayOfWeek   int    `json:"dayOfWeek" binding:"min=0,max=6"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	IsAvailable *bool  `json:"isAvailable"`
}
