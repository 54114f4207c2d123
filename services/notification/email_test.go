package notification

import (
	"strings"
	"testing"

	"savayas/models"

	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	messages []*gomail.Message
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	c.messages = append(c.messages, m...)
	return nil
}

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) Create(u *models.User) error                            { return nil }
func (s *stubUserRepo) Update(u *models.User) error                            { return nil }
func (s *stubUserRepo) UpdateWithDocument(id string, update bson.M) error      { return nil }
func (s *stubUserRepo) Delete(id string) error                                 { return nil }
func (s *stubUserRepo) GetByID(id string) (*models.User, error)                { return s.users[id], nil }
func (s *stubUserRepo) GetByEmail(email string) (*models.User, error)          { return nil, nil }
func (s *stubUserRepo) GetAll() ([]models.User, error)                         { return nil, nil }
func (s *stubUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return s.users[id], nil
}

type stubProfessionalRepo struct {
	profs map[string]*models.Professional
}

func (s *stubProfessionalRepo) Create(p *models.Professional) error { return nil }
func (s *stubProfessionalRepo) Update(p *models.Professional) error { return nil }
func (s *stubProfessionalRepo) Delete(id string) error              { return nil }
func (s *stubProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	return s.profs[id], nil
}
func (s *stubProfessionalRepo) GetByUserID(userID string) (*models.Professional, error) {
	return nil, nil
}
func (s *stubProfessionalRepo) Exists(id string) (bool, error) {
	_, ok := s.profs[id]
	return ok, nil
}
func (s *stubProfessionalRepo) ListApproved() ([]models.Professional, error)    { return nil, nil }
func (s *stubProfessionalRepo) GetAll() ([]models.Professional, error)          { return nil, nil }
func (s *stubProfessionalRepo) SetApproved(id string, approved bool) error      { return nil }

func newTestNotifier() (*EmailNotificationService, *captureSender) {
	sender := &captureSender{}
	users := &stubUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", Email: "client@example.com", FirstName: "Asha"},
	}}
	profs := &stubProfessionalRepo{profs: map[string]*models.Professional{
		"prof-1": {ID: "prof-1", Name: "Dr. Mehta"},
	}}
	return NewEmailNotificationService(sender, "no-reply@savayasheals.com", users, profs), sender
}

func testAppointment() *models.Appointment {
	return &models.Appointment{
		ID:             "appt-1",
		UserID:         "user-1",
		ProfessionalID: "prof-1",
		Date:           "2026-01-05",
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         models.AppointmentConfirmed,
	}
}

func TestSendAppointmentConfirmation(t *testing.T) {
	svc, sender := newTestNotifier()

	if err := svc.SendAppointmentConfirmation(testAppointment()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sender.messages))
	}

	msg := sender.messages[0]
	if got := msg.GetHeader("To"); len(got) != 1 || got[0] != "client@example.com" {
		t.Errorf("To = %v", got)
	}
	if got := msg.GetHeader("Subject"); len(got) != 1 || !strings.Contains(got[0], "Confirmation") {
		t.Errorf("Subject = %v", got)
	}
}

func TestSendAppointmentConfirmationUnknownUser(t *testing.T) {
	svc, sender := newTestNotifier()

	appt := testAppointment()
	appt.UserID = "ghost"
	if err := svc.SendAppointmentConfirmation(appt); err == nil {
		t.Fatal("expected error for unknown user")
	}
	if len(sender.messages) != 0 {
		t.Errorf("expected no messages, got %d", len(sender.messages))
	}
}

func TestSendVerificationOTP(t *testing.T) {
	svc, sender := newTestNotifier()

	if err := svc.SendVerificationOTP("client@example.com", "ABC123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sender.messages))
	}
}

func TestSendCancellationFallbackProfessionalName(t *testing.T) {
	svc, sender := newTestNotifier()

	appt := testAppointment()
	appt.ProfessionalID = "ghost"
	if err := svc.SendAppointmentCancellation(appt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sender.messages))
	}
}
