package payment

import (
	"fmt"
	"math"

	"savayas/models"
	"savayas/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateOrder registers a payment order with the gateway. The gateway takes
// amounts in currency subunits.
func (s *DefaultPaymentService) CreateOrder(userID string, req models.CreateOrderRequest) (map[string]interface{}, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":   int64(math.Round(req.Amount * 100)),
		"currency": currency,
		"receipt":  req.Receipt,
	}
	order, err := s.Gateway.CreateOrder(data)
	if err != nil {
		utils.GetLogger().Error("failed to create gateway order",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment order")
	}
	return order, nil
}

// VerifyPayment checks the callback signature, records the payment and
// confirms the appointment it pays for. A bad signature fails the payment
// record so the attempt stays auditable.
func (s *DefaultPaymentService) VerifyPayment(userID string, req models.VerifyPaymentRequest) (*models.Payment, error) {
	appt, err := s.Bookings.GetAppointment(req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appt.UserID != userID {
		return nil, fmt.Errorf("appointment %s does not belong to this user", req.AppointmentID)
	}

	record := &models.Payment{
		ID:            uuid.New().String(),
		AppointmentID: req.AppointmentID,
		UserID:        userID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Method:        req.Method,
		OrderID:       req.OrderID,
		TransactionID: req.PaymentID,
	}

	if !VerifySignature(req.OrderID, req.PaymentID, req.Signature, s.KeySecret) {
		record.Status = models.PaymentFailed
		if createErr := s.Repo.Create(record); createErr != nil {
			utils.GetLogger().Error("failed to record failed payment", zap.Error(createErr))
		}
		return nil, fmt.Errorf("payment signature verification failed")
	}

	record.Status = models.PaymentCompleted
	if err := s.Repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if _, err := s.Bookings.ConfirmAppointment(req.AppointmentID); err != nil {
		utils.GetLogger().Error("payment recorded but appointment confirmation failed",
			zap.String("appointmentID", req.AppointmentID), zap.Error(err))
		return nil, fmt.Errorf("payment recorded but appointment confirmation failed: %w", err)
	}

	return record, nil
}

// GetByAppointment returns the payment attached to an appointment.
func (s *DefaultPaymentService) GetByAppointment(appointmentID string) (*models.Payment, error) {
	p, err := s.Repo.GetByAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("no payment found for appointment %s", appointmentID)
	}
	return p, nil
}

// ListForUser returns the caller's payments, newest first.
func (s *DefaultPaymentService) ListForUser(userID string) ([]models.Payment, error) {
	return s.Repo.ListByUser(userID)
}

// ListAll returns every payment record. Admin only.
func (s *DefaultPaymentService) ListAll() ([]models.Payment, error) {
	return s.Repo.GetAll()
}
