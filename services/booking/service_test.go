package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"savayas/models"
)

type mockNotifier struct {
	mu            sync.Mutex
	confirmations []string
	cancellations []string
	reminders     []string
}

func (m *mockNotifier) SendAppointmentConfirmation(appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmations = append(m.confirmations, appt.ID)
	return nil
}

func (m *mockNotifier) SendAppointmentCancellation(appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancellations = append(m.cancellations, appt.ID)
	return nil
}

func (m *mockNotifier) SendAppointmentReminder(appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders = append(m.reminders, appt.ID)
	return nil
}

func (m *mockNotifier) SendVerificationOTP(email, otp string) error { return nil }

type mockScheduler struct {
	mu       sync.Mutex
	payloads []models.ReminderPayload
	times    []time.Time
}

func (m *mockScheduler) ScheduleReminder(payload models.ReminderPayload, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads = append(m.payloads, payload)
	m.times = append(m.times, at)
	return nil
}

func TestCreateAppointment(t *testing.T) {
	appts := &mockAppointmentRepo{}
	svc := newTestService(nil, appts)

	appt, err := svc.CreateAppointment(context.Background(), "user-1", models.BookingRequest{
		ProfessionalID: "prof-1",
		Date:           monday,
		StartTime:      "10:00",
		EndTime:        "11:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.AppointmentPending {
		t.Errorf("status = %s, want pending", appt.Status)
	}
	if appt.ID == "" {
		t.Error("appointment ID not assigned")
	}

	stored, _ := appts.GetByID(appt.ID)
	if stored == nil {
		t.Fatal("appointment not persisted")
	}
}

func TestCreateAppointmentConflict(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentConfirmed},
	}}
	svc := newTestService(nil, appts)

	_, err := svc.CreateAppointment(context.Background(), "user-1", models.BookingRequest{
		ProfessionalID: "prof-1",
		Date:           monday,
		StartTime:      "10:30",
		EndTime:        "11:30",
	})
	if !IsConflict(err) {
		t.Fatalf("expected Conflict, got %v", err)
	}
}

func TestCreateAppointmentConcurrentOneWinner(t *testing.T) {
	appts := &mockAppointmentRepo{}
	svc := newTestService(nil, appts)

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateAppointment(context.Background(), "user-1", models.BookingRequest{
				ProfessionalID: "prof-1",
				Date:           monday,
				StartTime:      "10:00",
				EndTime:        "11:00",
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case IsConflict(err):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly 1 winner, got %d", winners)
	}

	all, _ := appts.GetAll()
	if len(all) != 1 {
		t.Fatalf("expected 1 stored appointment, got %d", len(all))
	}
}

func TestConfirmAppointmentSchedulesReminder(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", UserID: "user-1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentPending},
	}}
	notifier := &mockNotifier{}
	scheduler := &mockScheduler{}
	svc := newTestService(nil, appts)
	svc.Notifier = notifier
	svc.Reminders = scheduler
	svc.Now = func() time.Time {
		return time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)
	}

	appt, err := svc.ConfirmAppointment("a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.AppointmentConfirmed {
		t.Errorf("status = %s, want confirmed", appt.Status)
	}
	if len(notifier.confirmations) != 1 {
		t.Errorf("expected 1 confirmation email, got %d", len(notifier.confirmations))
	}
	if len(scheduler.times) != 1 {
		t.Fatalf("expected 1 scheduled reminder, got %d", len(scheduler.times))
	}
	want := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	if !scheduler.times[0].Equal(want) {
		t.Errorf("reminder at %v, want %v", scheduler.times[0], want)
	}
}

func TestConfirmAppointmentSkipsPastReminder(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentPending},
	}}
	scheduler := &mockScheduler{}
	svc := newTestService(nil, appts)
	svc.Reminders = scheduler
	svc.Now = func() time.Time {
		return time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)
	}

	if _, err := svc.ConfirmAppointment("a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduler.times) != 0 {
		t.Errorf("expected no reminder for imminent appointment, got %d", len(scheduler.times))
	}
}

func TestUpdateStatusCancelBeforeEnd(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentConfirmed},
	}}
	notifier := &mockNotifier{}
	svc := newTestService(nil, appts)
	svc.Notifier = notifier
	svc.Now = func() time.Time {
		return time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	}

	appt, err := svc.UpdateStatus("a1", models.AppointmentCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.AppointmentCancelled {
		t.Errorf("status = %s, want cancelled", appt.Status)
	}
	if len(notifier.cancellations) != 1 {
		t.Errorf("expected 1 cancellation email, got %d", len(notifier.cancellations))
	}
}

func TestUpdateStatusCancelAfterEndRejected(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentConfirmed},
	}}
	svc := newTestService(nil, appts)
	svc.Now = func() time.Time {
		return time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC)
	}

	if _, err := svc.UpdateStatus("a1", models.AppointmentCancelled); !IsConflict(err) {
		t.Fatalf("expected Conflict for cancel-after-end, got %v", err)
	}
}

func TestUpdateStatusCompleteBeforeEndRejected(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentConfirmed},
	}}
	svc := newTestService(nil, appts)
	svc.Now = func() time.Time {
		return time.Date(2026, 1, 5, 10, 59, 0, 0, time.UTC)
	}

	if _, err := svc.UpdateStatus("a1", models.AppointmentCompleted); !IsConflict(err) {
		t.Fatalf("expected Conflict for complete-before-end, got %v", err)
	}
}

func TestUpdateStatusCompleteAfterEnd(t *testing.T) {
	appts := &mockAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentConfirmed},
	}}
	svc := newTestService(nil, appts)
	svc.Now = func() time.Time {
		return time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC)
	}

	appt, err := svc.UpdateStatus("a1", models.AppointmentCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.AppointmentCompleted {
		t.Errorf("status = %s, want completed", appt.Status)
	}
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc := newTestService(nil, nil)

	if _, err := svc.UpdateStatus("a1", "rescheduled"); !IsInvalidInterval(err) {
		t.Fatalf("expected InvalidInterval for unknown status, got %v", err)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	svc := newTestService(nil, nil)

	if _, err := svc.UpdateStatus("missing", models.AppointmentConfirmed); !IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestGetAppointmentNotFound(t *testing.T) {
	svc := newTestService(nil, nil)

	if _, err := svc.GetAppointment("missing"); !IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestCancelledSlotRebookable(t *testing.T) {
	appts := &mockAppointmentRepo{}
	svc := newTestService(nil, appts)
	svc.Now = func() time.Time {
		return time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)
	}

	first, err := svc.CreateAppointment(context.Background(), "user-1", models.BookingRequest{
		ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.UpdateStatus(first.ID, models.AppointmentCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, err := svc.CreateAppointment(context.Background(), "user-2", models.BookingRequest{
		ProfessionalID: "prof-1", Date: monday, StartTime: "10:00", EndTime: "11:00",
	}); err != nil {
		t.Fatalf("cancelled slot should be rebookable, got %v", err)
	}
}
