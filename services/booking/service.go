package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "savayas/database/repository/appointment"
	"savayas/models"
	"savayas/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateAppointment validates the proposed interval and inserts the
// appointment atomically. A race with another booking surfaces as Conflict;
// the caller should have the client re-fetch slots and pick again.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, userID string, req models.BookingRequest) (*models.Appointment, error) {
	if err := s.ValidateBooking(req.ProfessionalID, req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:             uuid.New().String(),
		UserID:         userID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         models.AppointmentPending,
		Notes:          req.Notes,
	}

	if err := s.Appointments.InsertBooked(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, NewConflictError("slot no longer available")
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appt, nil
}

// ConfirmAppointment marks a pending appointment confirmed after successful
// payment, sends the confirmation email and queues a reminder one hour
// before the start time. Notification failures are logged, never propagated.
func (s *DefaultBookingService) ConfirmAppointment(id string) (*models.Appointment, error) {
	appt, err := s.transition(id, models.AppointmentConfirmed)
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendAppointmentConfirmation(appt); err != nil {
			utils.GetLogger().Error("failed to send confirmation email",
				zap.String("appointment", appt.ID), zap.Error(err))
		}
	}
	s.scheduleReminder(appt)
	return appt, nil
}

func (s *DefaultBookingService) scheduleReminder(appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	day, err := models.ParseDate(appt.Date)
	if err != nil {
		return
	}
	startMin, err := models.ParseClock(appt.StartTime)
	if err != nil {
		return
	}
	fireAt := day.Add(time.Duration(startMin)*time.Minute - time.Hour)
	if fireAt.Before(s.now()) {
		return
	}
	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
		EndTime:       appt.EndTime,
	}
	if err := s.Reminders.ScheduleReminder(payload, fireAt); err != nil {
		utils.GetLogger().Error("failed to schedule reminder",
			zap.String("appointment", appt.ID), zap.Error(err))
	}
}

// UpdateStatus applies a lifecycle transition requested by a client,
// professional or admin. Authorization happens at the handler; this enforces
// only lifecycle legality: cancel strictly before the appointment's end,
// complete only after it.
func (s *DefaultBookingService) UpdateStatus(id, status string) (*models.Appointment, error) {
	if !models.ValidAppointmentStatus(status) {
		return nil, NewInvalidIntervalError(fmt.Sprintf("invalid status %q", status))
	}

	appt, err := s.Appointments.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	if appt == nil {
		return nil, NewNotFoundError(fmt.Sprintf("appointment %s not found", id))
	}

	endAt, err := appointmentEnd(appt)
	if err != nil {
		return nil, err
	}
	switch status {
	case models.AppointmentCancelled:
		if !s.now().Before(endAt) {
			return nil, NewConflictError("appointment has already ended and cannot be cancelled")
		}
	case models.AppointmentCompleted:
		if s.now().Before(endAt) {
			return nil, NewConflictError("appointment has not ended yet")
		}
	}

	updated, err := s.transition(id, status)
	if err != nil {
		return nil, err
	}
	if status == models.AppointmentCancelled && s.Notifier != nil {
		if err := s.Notifier.SendAppointmentCancellation(updated); err != nil {
			utils.GetLogger().Error("failed to send cancellation email",
				zap.String("appointment", updated.ID), zap.Error(err))
		}
	}
	return updated, nil
}

func (s *DefaultBookingService) transition(id, status string) (*models.Appointment, error) {
	if err := s.Appointments.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	appt, err := s.Appointments.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload appointment %s: %w", id, err)
	}
	if appt == nil {
		return nil, NewNotFoundError(fmt.Sprintf("appointment %s not found", id))
	}
	return appt, nil
}

func appointmentEnd(appt *models.Appointment) (time.Time, error) {
	day, err := models.ParseDate(appt.Date)
	if err != nil {
		return time.Time{}, NewInvalidIntervalError(err.Error())
	}
	endMin, err := models.ParseClock(appt.EndTime)
	if err != nil {
		return time.Time{}, NewInvalidIntervalError(err.Error())
	}
	return day.Add(time.Duration(endMin) * time.Minute), nil
}

// GetAppointment fetches one appointment or NotFound.
func (s *DefaultBookingService) GetAppointment(id string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	if appt == nil {
		return nil, NewNotFoundError(fmt.Sprintf("appointment %s not found", id))
	}
	return appt, nil
}

// ListForUser returns a client's appointments.
func (s *DefaultBookingService) ListForUser(userID string) ([]models.Appointment, error) {
	return s.Appointments.ListByUser(userID)
}

// ListForProfessional returns a professional's calendar.
func (s *DefaultBookingService) ListForProfessional(professionalID string) ([]models.Appointment, error) {
	return s.Appointments.ListByProfessional(professionalID)
}

// ListAll returns every appointment (admin surface).
func (s *DefaultBookingService) ListAll() ([]models.Appointment, error) {
	return s.Appointments.GetAll()
}
