package models

// Slot is a derived bookable interval. It is computed from availability rules
// and existing appointments and never persisted. Start and End are minutes
// from midnight; the intervals are half-open [Start, End).
type Slot struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// NewSlot builds a Slot with formatted labels from minute offsets.
func NewSlot(start, end int) Slot {
	return Slot{
		Start:     start,
		End:       end,
		StartTime: FormatClock(start),
		EndTime:   FormatClock(end),
	}
}

// Overlaps reports whether the slot shares any instant with [start, end),
// under half-open semantics: touching endpoints do not overlap.
func (s Slot) Overlaps(start, end int) bool {
	return s.Start < end && start < s.End
}
