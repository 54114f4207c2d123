package payment

import (
	paymentRepo "savayas/database/repository/payment"
	"savayas/models"
	"savayas/services/booking"
)

// PaymentService creates gateway orders and verifies completed charges. A
// verified charge confirms the appointment it pays for.
type PaymentService interface {
	CreateOrder(userID string, req models.CreateOrderRequest) (map[string]interface{}, error)
	VerifyPayment(userID string, req models.VerifyPaymentRequest) (*models.Payment, error)
	GetByAppointment(appointmentID string) (*models.Payment, error)
	ListForUser(userID string) ([]models.Payment, error)
	ListAll() ([]models.Payment, error)
}

// OrderCreator abstracts the gateway order endpoint.
type OrderCreator interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
}

// DefaultPaymentService implements PaymentService against Razorpay.
type DefaultPaymentService struct {
	Repo      paymentRepo.PaymentRepository
	Bookings  booking.BookingService
	Gateway   OrderCreator
	KeySecret string
}
