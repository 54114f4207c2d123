package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"savayas/models"
)

// ErrSlotTaken is returned when a booking insert loses the race for an
// interval: another non-cancelled appointment already claims it.
var ErrSlotTaken = errors.New("appointment slot already taken")

// AppointmentRepository defines the persistence operations for appointments.
// InsertBooked is the atomic check-and-insert guarding the booking path.
type AppointmentRepository interface {
	InsertBooked(ctx context.Context, appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	ListByProfessionalAndDate(professionalID, date string) ([]models.Appointment, error)
	ListByUser(userID string) ([]models.Appointment, error)
	ListByProfessional(professionalID string) ([]models.Appointment, error)
	GetAll() ([]models.Appointment, error)
	UpdateStatus(id, status string) error
	SetPayment(id, paymentID string) error
	CompletePastConfirmed(now time.Time) (int64, error)
}
