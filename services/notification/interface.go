package notification

import "savayas/models"

// NotificationService dispatches transactional email. Sends are
// fire-and-forget from the caller's perspective: failures are reported for
// logging but must never fail the state change that triggered them.
type NotificationService interface {
	SendAppointmentConfirmation(appt *models.Appointment) error
	SendAppointmentCancellation(appt *models.Appointment) error
	SendAppointmentReminder(appt *models.Appointment) error
	SendVerificationOTP(email, otp string) error
}
