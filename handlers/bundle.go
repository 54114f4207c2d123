package handlers

import (
	userRepoPkg "savayas/database/repository/user"
	"savayas/services/booking"
	"savayas/services/payment"
	"savayas/services/professional"
	"savayas/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	UserHandler         *UserHandler
	ProfessionalHandler *ProfessionalHandler
	AppointmentHandler  *AppointmentHandler
	PaymentHandler      *PaymentHandler
}

// UserHandler serves account and auth endpoints.
type UserHandler struct {
	UserService user.UserService
}

// ProfessionalHandler serves practitioner profile and availability endpoints.
type ProfessionalHandler struct {
	ProfessionalService professional.ProfessionalService
}

// AppointmentHandler serves slot listing and the appointment lifecycle. The
// professional service resolves the caller's profile for ownership checks.
type AppointmentHandler struct {
	BookingService      booking.BookingService
	ProfessionalService professional.ProfessionalService
}

// PaymentHandler serves payment order creation and verification.
type PaymentHandler struct {
	PaymentService payment.PaymentService
}
