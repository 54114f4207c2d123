package booking

import (
	"testing"

	"savayas/models"
)

// 2026-01-05 is a Monday.
const monday = "2026-01-05"

func newTestService(rules []models.AvailabilityRule, appts *mockAppointmentRepo) *DefaultBookingService {
	if appts == nil {
		appts = &mockAppointmentRepo{}
	}
	return &DefaultBookingService{
		Professionals: newMockProfessionalRepo("prof-1"),
		Availability:  &mockAvailabilityRepo{rules: rules},
		Appointments:  appts,
	}
}

func slotTimes(slots []models.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime
	}
	return out
}

func TestListAvailableSlotsFullDay(t *testing.T) {
	svc := newTestService([]models.AvailabilityRule{
		{ID: "r1", ProfessionalID: "prof-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
	}, nil)

	slots, err := svc.ListAvailableSlots("prof-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d: %v", len(slots), slotTimes(slots))
	}
	if slots[0].StartTime != "09:00" || slots[0].EndTime != "10:00" {
		t.Errorf("first slot = %s-%s, want 09:00-10:00", slots[0].StartTime, slots[0].EndTime)
	}
	if slots[7].StartTime != "16:00" || slots[7].EndTime != "17:00" {
		t.Errorf("last slot = %s-%s, want 16:00-17:00", slots[7].StartTime, slots[7].EndTime)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Start != slots[i-1].End {
			t.Errorf("slots not contiguous at %d: %v", i, slotTimes(slots))
		}
	}
}

func TestListAvailableSlotsDropsBookedSlot(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentConfirmed},
	}}
	svc := newTestService([]models.AvailabilityRule{
		{ID: "r1", ProfessionalID: "prof-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
	}, appts)

	slots, err := svc.ListAvailableSlots("prof-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := slotTimes(slots)
	want := []string{"09:00", "11:00"}
	if len(got) != len(want) {
		t.Fatalf("expected slots %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected slots %v, got %v", want, got)
		}
	}
}

func TestListAvailableSlotsOffGridAppointmentBlocksBoth(t *testing.T) {
	// A 09:30-10:30 appointment overlaps both the 09:00 and the 10:00 slot.
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "09:30", EndTime: "10:30", Status: models.AppointmentPending},
	}}
	svc := newTestService([]models.AvailabilityRule{
		{ID: "r1", ProfessionalID: "prof-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
	}, appts)

	slots, err := svc.ListAvailableSlots("prof-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := slotTimes(slots)
	if len(got) != 1 || got[0] != "11:00" {
		t.Fatalf("expected only 11:00 slot, got %v", got)
	}
}

func TestListAvailableSlotsCancelledAppointmentReleasesSlot(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentCancelled},
	}}
	svc := newTestService([]models.AvailabilityRule{
		{ID: "r1", ProfessionalID: "prof-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
	}, appts)

	slots, err := svc.ListAvailableSlots("prof-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots after cancellation, got %v", slotTimes(slots))
	}
}

func TestListAvailableSlotsAdjacentAppointmentKeepsSlot(t *testing.T) {
	// Half-open intervals: an appointment ending at 09:00 does not touch the
	// 09:00-10:00 slot.
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "08:00", EndTime: "09:00", Status: models.AppointmentConfirmed},
	}}
	svc := newTestService([]models.AvailabilityRule{
		{ID: "r1", ProfessionalID: "prof-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", IsAvailable: true},
	}, appts)

	slots, err := svc.ListAvailableSlots("prof-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %v", slotTimes(slots))
	}
}

func TestListAvailableSlotsDiscardsTrailingPartialWindow(t *testing.T) {
	svc := newTestService([]models.AvailabilityRule{
		{ID: "r1", ProfessionalID: "prof-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30", IsAvailable: true},
	}, nil)

	slots, err := svc.ListAvailableSlots("prof-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 || slots[0].StartTime != "09:00" {
		t.Fatalf("expected single 09:00 slot, got %v", slotTimes(slots))
	}
}

func TestListAvailableSlotsBlockedRuleSubtracts(t *testing.T) {
	svc := newTestService([]models.AvailabilityRule{
		{ID: "r1", ProfessionalID: "prof-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "13:00", IsAvailable: true},
		{ID: "r2", ProfessionalID: "prof-1", DayOfWeek: 1, StartTime: "11:00", EndTime: "12:00", IsAvailable: false},
	}, nil)

	slots, err := svc.ListAvailableSlots("prof-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range slots {
		if s.StartTime == "11:00" {
			t.Fatalf("blocked 11:00 slot still offered: %v", slotTimes(slots))
		}
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %v", slotTimes(slots))
	}
}

func TestListAvailableSlotsNoRulesReturnsEmpty(t *testing.T) {
	svc := newTestService(nil, nil)

	slots, err := svc.ListAvailableSlots("prof-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slotTimes(slots))
	}
}

func TestListAvailableSlotsUnknownProfessional(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.ListAvailableSlots("nope", monday)
	if !IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestListAvailableSlotsBadDate(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.ListAvailableSlots("prof-1", "05-01-2026")
	if !IsInvalidInterval(err) {
		t.Fatalf("expected InvalidInterval, got %v", err)
	}
}

func TestValidateBookingAcceptsFreeInterval(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "11:00", EndTime: "12:00", Status: models.AppointmentConfirmed},
	}}
	svc := newTestService(nil, appts)

	// Off-grid interval that fits between appointments passes.
	if err := svc.ValidateBooking("prof-1", monday, "09:30", "10:30"); err != nil {
		t.Fatalf("expected interval to validate, got %v", err)
	}
}

func TestValidateBookingConflict(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentConfirmed},
	}}
	svc := newTestService(nil, appts)

	if err := svc.ValidateBooking("prof-1", monday, "10:30", "11:30"); !IsConflict(err) {
		t.Fatalf("expected Conflict, got %v", err)
	}
}

func TestValidateBookingAdjacentIntervalsPass(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentConfirmed},
	}}
	svc := newTestService(nil, appts)

	if err := svc.ValidateBooking("prof-1", monday, "09:00", "10:00"); err != nil {
		t.Fatalf("interval ending at appointment start should pass, got %v", err)
	}
	if err := svc.ValidateBooking("prof-1", monday, "11:00", "12:00"); err != nil {
		t.Fatalf("interval starting at appointment end should pass, got %v", err)
	}
}

func TestValidateBookingInvalidInterval(t *testing.T) {
	svc := newTestService(nil, nil)

	cases := []struct {
		name             string
		start, end, date string
	}{
		{"reversed", "11:00", "10:00", monday},
		{"equal", "10:00", "10:00", monday},
		{"badClock", "25:00", "26:00", monday},
		{"badFormat", "9:00", "10:00", monday},
		{"badDate", "09:00", "10:00", "next tuesday"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.ValidateBooking("prof-1", tc.date, tc.start, tc.end); !IsInvalidInterval(err) {
				t.Fatalf("expected InvalidInterval, got %v", err)
			}
		})
	}
}

func TestValidateBookingUnknownProfessional(t *testing.T) {
	svc := newTestService(nil, nil)

	if err := svc.ValidateBooking("nope", monday, "09:00", "10:00"); !IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestValidateBookingIgnoresCancelled(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentCancelled},
	}}
	svc := newTestService(nil, appts)

	if err := svc.ValidateBooking("prof-1", monday, "10:00", "11:00"); err != nil {
		t.Fatalf("cancelled appointment should not conflict, got %v", err)
	}
}
