package booking

import (
	"context"
	"sync"
	"time"

	appointmentRepo "savayas/database/repository/appointment"
	"savayas/models"
)

type mockProfessionalRepo struct {
	profs map[string]*models.Professional
}

func newMockProfessionalRepo(ids ...string) *mockProfessionalRepo {
	m := &mockProfessionalRepo{profs: make(map[string]*models.Professional)}
	for _, id := range ids {
		m.profs[id] = &models.Professional{ID: id, IsApproved: true}
	}
	return m
}

func (m *mockProfessionalRepo) Create(p *models.Professional) error {
	m.profs[p.ID] = p
	return nil
}

func (m *mockProfessionalRepo) Update(p *models.Professional) error {
	m.profs[p.ID] = p
	return nil
}

func (m *mockProfessionalRepo) Delete(id string) error {
	delete(m.profs, id)
	return nil
}

func (m *mockProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	return m.profs[id], nil
}

func (m *mockProfessionalRepo) GetByUserID(userID string) (*models.Professional, error) {
	for _, p := range m.profs {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProfessionalRepo) Exists(id string) (bool, error) {
	_, ok := m.profs[id]
	return ok, nil
}

func (m *mockProfessionalRepo) ListApproved() ([]models.Professional, error) {
	var out []models.Professional
	for _, p := range m.profs {
		if p.IsApproved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProfessionalRepo) GetAll() ([]models.Professional, error) {
	var out []models.Professional
	for _, p := range m.profs {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProfessionalRepo) SetApproved(id string, approved bool) error {
	if p, ok := m.profs[id]; ok {
		p.IsApproved = approved
	}
	return nil
}

type mockAvailabilityRepo struct {
	rules []models.AvailabilityRule
}

func (m *mockAvailabilityRepo) ListRules(professionalID string, dayOfWeek int) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, r := range m.rules {
		if r.ProfessionalID == professionalID && r.DayOfWeek == dayOfWeek {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAvailabilityRepo) ListAll(professionalID string) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, r := range m.rules {
		if r.ProfessionalID == professionalID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAvailabilityRepo) GetByID(id string) (*models.AvailabilityRule, error) {
	for i := range m.rules {
		if m.rules[i].ID == id {
			return &m.rules[i], nil
		}
	}
	return nil, nil
}

func (m *mockAvailabilityRepo) Upsert(rule *models.AvailabilityRule) error {
	for i := range m.rules {
		if m.rules[i].ProfessionalID == rule.ProfessionalID && m.rules[i].DayOfWeek == rule.DayOfWeek {
			m.rules[i] = *rule
			return nil
		}
	}
	m.rules = append(m.rules, *rule)
	return nil
}

func (m *mockAvailabilityRepo) Delete(id string) error {
	for i := range m.rules {
		if m.rules[i].ID == id {
			m.rules = append(m.rules[:i], m.rules[i+1:]...)
			return nil
		}
	}
	return nil
}

// mockAppointmentRepo guards its state with a mutex and enforces the same
// overlap rule as the transactional insert, so concurrent booking tests
// exercise the one-winner guarantee.
type mockAppointmentRepo struct {
	mu    sync.Mutex
	appts []models.Appointment
}

func (m *mockAppointmentRepo) InsertBooked(ctx context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	start, err := models.ParseClock(appt.StartTime)
	if err != nil {
		return err
	}
	end, err := models.ParseClock(appt.EndTime)
	if err != nil {
		return err
	}
	for _, a := range m.appts {
		if a.ProfessionalID != appt.ProfessionalID || a.Date != appt.Date {
			continue
		}
		if a.Status == models.AppointmentCancelled {
			continue
		}
		aStart, _ := models.ParseClock(a.StartTime)
		aEnd, _ := models.ParseClock(a.EndTime)
		if start < aEnd && aStart < end {
			return appointmentRepo.ErrSlotTaken
		}
	}
	m.appts = append(m.appts, *appt)
	return nil
}

func (m *mockAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.appts {
		if m.appts[i].ID == id {
			cp := m.appts[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockAppointmentRepo) ListByProfessionalAndDate(professionalID, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.ProfessionalID == professionalID && a.Date == date && a.Status != models.AppointmentCancelled {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) ListByUser(userID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) ListByProfessional(professionalID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.ProfessionalID == professionalID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) GetAll() ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Appointment, len(m.appts))
	copy(out, m.appts)
	return out, nil
}

func (m *mockAppointmentRepo) UpdateStatus(id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.appts {
		if m.appts[i].ID == id {
			m.appts[i].Status = status
			return nil
		}
	}
	return nil
}

func (m *mockAppointmentRepo) SetPayment(id, paymentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.appts {
		if m.appts[i].ID == id {
			m.appts[i].PaymentID = paymentID
			return nil
		}
	}
	return nil
}

func (m *mockAppointmentRepo) CompletePastConfirmed(now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	today := now.Format("2006-01-02")
	var n int64
	for i := range m.appts {
		if m.appts[i].Status == models.AppointmentConfirmed && m.appts[i].Date < today {
			m.appts[i].Status = models.AppointmentCompleted
			n++
		}
	}
	return n, nil
}
