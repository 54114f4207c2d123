package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"savayas/models"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test-secret"
	sig := sign("order_1", "pay_1", secret)

	if !VerifySignature("order_1", "pay_1", sig, secret) {
		t.Error("valid signature rejected")
	}
	if VerifySignature("order_1", "pay_2", sig, secret) {
		t.Error("signature accepted for wrong payment ID")
	}
	if VerifySignature("order_1", "pay_1", sig, "other-secret") {
		t.Error("signature accepted with wrong secret")
	}
	if VerifySignature("order_1", "pay_1", "deadbeef", secret) {
		t.Error("garbage signature accepted")
	}
}

type mockPaymentRepo struct {
	payments []models.Payment
}

func (m *mockPaymentRepo) Create(p *models.Payment) error {
	m.payments = append(m.payments, *p)
	return nil
}

func (m *mockPaymentRepo) GetByAppointment(appointmentID string) (*models.Payment, error) {
	for i := range m.payments {
		if m.payments[i].AppointmentID == appointmentID {
			return &m.payments[i], nil
		}
	}
	return nil, nil
}

func (m *mockPaymentRepo) ListByUser(userID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepo) GetAll() ([]models.Payment, error) {
	return m.payments, nil
}

func (m *mockPaymentRepo) UpdateStatus(id, status string) error {
	for i := range m.payments {
		if m.payments[i].ID == id {
			m.payments[i].Status = status
			return nil
		}
	}
	return nil
}

type mockBookingService struct {
	appt      *models.Appointment
	confirmed []string
}

func (m *mockBookingService) ListAvailableSlots(professionalID, date string) ([]models.Slot, error) {
	return nil, nil
}

func (m *mockBookingService) ValidateBooking(professionalID, date, startTime, endTime string) error {
	return nil
}

func (m *mockBookingService) CreateAppointment(ctx context.Context, userID string, req models.BookingRequest) (*models.Appointment, error) {
	return nil, nil
}

func (m *mockBookingService) ConfirmAppointment(id string) (*models.Appointment, error) {
	m.confirmed = append(m.confirmed, id)
	return m.appt, nil
}

func (m *mockBookingService) UpdateStatus(id, status string) (*models.Appointment, error) {
	return m.appt, nil
}

func (m *mockBookingService) GetAppointment(id string) (*models.Appointment, error) {
	if m.appt == nil || m.appt.ID != id {
		return nil, errors.New("appointment not found")
	}
	return m.appt, nil
}

func (m *mockBookingService) ListForUser(userID string) ([]models.Appointment, error) {
	return nil, nil
}

func (m *mockBookingService) ListForProfessional(professionalID string) ([]models.Appointment, error) {
	return nil, nil
}

func (m *mockBookingService) ListAll() ([]models.Appointment, error) { return nil, nil }

type mockGateway struct {
	lastOrder map[string]interface{}
}

func (m *mockGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	m.lastOrder = data
	return map[string]interface{}{"id": "order_1", "amount": data["amount"]}, nil
}

func newTestPaymentService(appt *models.Appointment) (*DefaultPaymentService, *mockPaymentRepo, *mockBookingService) {
	repo := &mockPaymentRepo{}
	bookings := &mockBookingService{appt: appt}
	svc := &DefaultPaymentService{
		Repo:      repo,
		Bookings:  bookings,
		Gateway:   &mockGateway{},
		KeySecret: "test-secret",
	}
	return svc, repo, bookings
}

func TestCreateOrderConvertsToSubunits(t *testing.T) {
	gateway := &mockGateway{}
	svc := &DefaultPaymentService{Gateway: gateway, KeySecret: "test-secret"}

	order, err := svc.CreateOrder("user-1", models.CreateOrderRequest{
		Amount:  1499.50,
		Receipt: "rcpt-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order["id"] != "order_1" {
		t.Errorf("order id = %v", order["id"])
	}
	if gateway.lastOrder["amount"] != int64(149950) {
		t.Errorf("amount = %v, want 149950 paise", gateway.lastOrder["amount"])
	}
	if gateway.lastOrder["currency"] != "INR" {
		t.Errorf("currency = %v, want default INR", gateway.lastOrder["currency"])
	}
}

func TestVerifyPaymentConfirmsAppointment(t *testing.T) {
	appt := &models.Appointment{ID: "appt-1", UserID: "user-1", Status: models.AppointmentPending}
	svc, repo, bookings := newTestPaymentService(appt)

	record, err := svc.VerifyPayment("user-1", models.VerifyPaymentRequest{
		OrderID:       "order_1",
		PaymentID:     "pay_1",
		Signature:     sign("order_1", "pay_1", "test-secret"),
		AppointmentID: "appt-1",
		Amount:        1499.50,
		Currency:      "INR",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Status != models.PaymentCompleted {
		t.Errorf("status = %s, want completed", record.Status)
	}
	if len(bookings.confirmed) != 1 || bookings.confirmed[0] != "appt-1" {
		t.Errorf("appointment not confirmed: %v", bookings.confirmed)
	}
	if len(repo.payments) != 1 {
		t.Errorf("expected 1 payment record, got %d", len(repo.payments))
	}
}

func TestVerifyPaymentBadSignature(t *testing.T) {
	appt := &models.Appointment{ID: "appt-1", UserID: "user-1", Status: models.AppointmentPending}
	svc, repo, bookings := newTestPaymentService(appt)

	_, err := svc.VerifyPayment("user-1", models.VerifyPaymentRequest{
		OrderID:       "order_1",
		PaymentID:     "pay_1",
		Signature:     "forged",
		AppointmentID: "appt-1",
	})
	if err == nil {
		t.Fatal("expected signature verification to fail")
	}
	if len(bookings.confirmed) != 0 {
		t.Error("appointment confirmed despite bad signature")
	}
	// The failed attempt still leaves an auditable record.
	if len(repo.payments) != 1 || repo.payments[0].Status != models.PaymentFailed {
		t.Errorf("expected a failed payment record, got %+v", repo.payments)
	}
}

func TestVerifyPaymentWrongUser(t *testing.T) {
	appt := &models.Appointment{ID: "appt-1", UserID: "user-1", Status: models.AppointmentPending}
	svc, _, bookings := newTestPaymentService(appt)

	_, err := svc.VerifyPayment("user-2", models.VerifyPaymentRequest{
		OrderID:       "order_1",
		PaymentID:     "pay_1",
		Signature:     sign("order_1", "pay_1", "test-secret"),
		AppointmentID: "appt-1",
	})
	if err == nil {
		t.Fatal("expected ownership check to fail")
	}
	if len(bookings.confirmed) != 0 {
		t.Error("appointment confirmed for wrong user")
	}
}
