package booking

import (
	"fmt"
	"sort"

	"savayas/models"
)

// SlotDurationMinutes is the fixed slot grid the UI offers. Bookings are
// validated against raw appointment overlap, not the grid.
const SlotDurationMinutes = 60

// ListAvailableSlots computes the bookable slots for one professional on one
// calendar date: the day's open availability windows walked in 60-minute
// increments, minus anything covered by a blocking rule or a non-cancelled
// appointment. The result reflects the stores at read time only; the booking
// write path holds the authoritative check.
func (s *DefaultBookingService) ListAvailableSlots(professionalID, date string) ([]models.Slot, error) {
	exists, err := s.Professionals.Exists(professionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up professional %s: %w", professionalID, err)
	}
	if !exists {
		return nil, NewNotFoundError(fmt.Sprintf("professional %s not found", professionalID))
	}

	dayOfWeek, err := models.DayOfWeek(date)
	if err != nil {
		return nil, NewInvalidIntervalError(err.Error())
	}

	rules, err := s.Availability.ListRules(professionalID, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}

	var open, blocked []models.AvailabilityRule
	for _, r := range rules {
		if r.IsAvailable {
			open = append(open, r)
		} else {
			blocked = append(blocked, r)
		}
	}
	if len(open) == 0 {
		return []models.Slot{}, nil
	}

	slots, err := generateSlots(open)
	if err != nil {
		return nil, err
	}
	slots, err = dropBlocked(slots, blocked)
	if err != nil {
		return nil, err
	}

	appts, err := s.Appointments.ListByProfessionalAndDate(professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	slots, err = dropBooked(slots, appts)
	if err != nil {
		return nil, err
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
	return slots, nil
}

// generateSlots walks each open rule's [start, end) window in fixed
// increments. A trailing partial increment is discarded, not truncated.
func generateSlots(open []models.AvailabilityRule) ([]models.Slot, error) {
	slots := []models.Slot{}
	for _, r := range open {
		start, err := models.ParseClock(r.StartTime)
		if err != nil {
			return nil, NewInvalidIntervalError(err.Error())
		}
		end, err := models.ParseClock(r.EndTime)
		if err != nil {
			return nil, NewInvalidIntervalError(err.Error())
		}
		for t := start; t+SlotDurationMinutes <= end; t += SlotDurationMinutes {
			slots = append(slots, models.NewSlot(t, t+SlotDurationMinutes))
		}
	}
	return slots, nil
}

// dropBlocked removes slots covered by a holiday/override rule.
func dropBlocked(slots []models.Slot, blocked []models.AvailabilityRule) ([]models.Slot, error) {
	if len(blocked) == 0 {
		return slots, nil
	}
	kept := slots[:0]
	for _, slot := range slots {
		overlapsBlock := false
		for _, b := range blocked {
			bStart, err := models.ParseClock(b.StartTime)
			if err != nil {
				return nil, NewInvalidIntervalError(err.Error())
			}
			bEnd, err := models.ParseClock(b.EndTime)
			if err != nil {
				return nil, NewInvalidIntervalError(err.Error())
			}
			if slot.Overlaps(bStart, bEnd) {
				overlapsBlock = true
				break
			}
		}
		if !overlapsBlock {
			kept = append(kept, slot)
		}
	}
	return kept, nil
}

// dropBooked removes slots overlapping any non-cancelled appointment, under
// half-open semantics: a slot ending exactly when an appointment starts stays.
func dropBooked(slots []models.Slot, appts []models.Appointment) ([]models.Slot, error) {
	if len(appts) == 0 {
		return slots, nil
	}
	kept := slots[:0]
	for _, slot := range slots {
		taken := false
		for _, a := range appts {
			if a.Status == models.AppointmentCancelled {
				continue
			}
			aStart, err := models.ParseClock(a.StartTime)
			if err != nil {
				return nil, NewInvalidIntervalError(err.Error())
			}
			aEnd, err := models.ParseClock(a.EndTime)
			if err != nil {
				return nil, NewInvalidIntervalError(err.Error())
			}
			if slot.Overlaps(aStart, aEnd) {
				taken = true
				break
			}
		}
		if !taken {
			kept = append(kept, slot)
		}
	}
	return kept, nil
}

// ValidateBooking checks a proposed interval against the professional's
// current appointments. The policy is a raw overlap check independent of the
// slot grid, so off-grid intervals that fit between appointments pass. The
// check is advisory: CreateAppointment repeats it atomically at write time.
func (s *DefaultBookingService) ValidateBooking(professionalID, date, startTime, endTime string) error {
	start, err := models.ParseClock(startTime)
	if err != nil {
		return NewInvalidIntervalError(err.Error())
	}
	end, err := models.ParseClock(endTime)
	if err != nil {
		return NewInvalidIntervalError(err.Error())
	}
	if start >= end {
		return NewInvalidIntervalError(fmt.Sprintf("startTime %s must be before endTime %s", startTime, endTime))
	}
	if _, err := models.ParseDate(date); err != nil {
		return NewInvalidIntervalError(err.Error())
	}

	exists, err := s.Professionals.Exists(professionalID)
	if err != nil {
		return fmt.Errorf("failed to look up professional %s: %w", professionalID, err)
	}
	if !exists {
		return NewNotFoundError(fmt.Sprintf("professional %s not found", professionalID))
	}

	appts, err := s.Appointments.ListByProfessionalAndDate(professionalID, date)
	if err != nil {
		return fmt.Errorf("failed to fetch appointments: %w", err)
	}
	for _, a := range appts {
		if a.Status == models.AppointmentCancelled {
			continue
		}
		aStart, err := models.ParseClock(a.StartTime)
		if err != nil {
			return NewInvalidIntervalError(err.Error())
		}
		aEnd, err := models.ParseClock(a.EndTime)
		if err != nil {
			return NewInvalidIntervalError(err.Error())
		}
		if start < aEnd && aStart < end {
			return NewConflictError("slot no longer available")
		}
	}
	return nil
}
