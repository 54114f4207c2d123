package paymentRepo

import "savayas/models"

// PaymentRepository defines the persistence operations for payment records.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByAppointment(appointmentID string) (*models.Payment, error)
	ListByUser(userID string) ([]models.Payment, error)
	GetAll() ([]models.Payment, error)
	UpdateStatus(id, status string) error
}
