package booking

import (
	"context"
	"time"

	appointmentRepo "savayas/database/repository/appointment"
	availabilityRepo "savayas/database/repository/availability"
	professionalRepo "savayas/database/repository/professional"
	"savayas/models"
	"savayas/services/notification"
)

// BookingService owns slot computation and the appointment lifecycle.
type BookingService interface {
	ListAvailableSlots(professionalID, date string) ([]models.Slot, error)
	ValidateBooking(professionalID, date, startTime, endTime string) error
	CreateAppointment(ctx context.Context, userID string, req models.BookingRequest) (*models.Appointment, error)
	ConfirmAppointment(id string) (*models.Appointment, error)
	UpdateStatus(id, status string) (*models.Appointment, error)
	GetAppointment(id string) (*models.Appointment, error)
	ListForUser(userID string) ([]models.Appointment, error)
	ListForProfessional(professionalID string) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)
}

// ReminderScheduler queues an appointment reminder for future delivery.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload, at time.Time) error
}

// DefaultBookingService implements BookingService on the Mongo repositories.
type DefaultBookingService struct {
	Professionals professionalRepo.ProfessionalRepository
	Availability  availabilityRepo.AvailabilityRepository
	Appointments  appointmentRepo.AppointmentRepository
	Notifier      notification.NotificationService
	Reminders     ReminderScheduler
	Now           func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
