package notification

import (
	"fmt"

	professionalRepo "savayas/database/repository/professional"
	userRepo "savayas/database/repository/user"
	"savayas/models"

	"gopkg.in/gomail.v2"
)

// MailSender abstracts the SMTP dialer so tests can capture outgoing mail.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailNotificationService sends transactional mail over an injected SMTP
// dialer. The dialer is constructed once at startup and passed in; there is
// no package-level transporter.
type EmailNotificationService struct {
	Sender        MailSender
	From          string
	Users         userRepo.UserRepository
	Professionals professionalRepo.ProfessionalRepository
}

// NewEmailNotificationService wires the mailer with its lookups.
func NewEmailNotificationService(sender MailSender, from string, users userRepo.UserRepository, profs professionalRepo.ProfessionalRepository) *EmailNotificationService {
	return &EmailNotificationService{
		Sender:        sender,
		From:          from,
		Users:         users,
		Professionals: profs,
	}
}

func (s *EmailNotificationService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	if err := s.Sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// resolve returns the client's email and the professional's display name for
// an appointment.
func (s *EmailNotificationService) resolve(appt *models.Appointment) (email, profName string, err error) {
	user, err := s.Users.GetByID(appt.UserID)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", fmt.Errorf("user %s not found", appt.UserID)
	}
	prof, err := s.Professionals.GetByID(appt.ProfessionalID)
	if err != nil {
		return "", "", err
	}
	name := "your professional"
	if prof != nil {
		name = prof.Name
	}
	return user.Email, name, nil
}

// SendAppointmentConfirmation emails the client after payment succeeds.
func (s *EmailNotificationService) SendAppointmentConfirmation(appt *models.Appointment) error {
	to, profName, err := s.resolve(appt)
	if err != nil {
		return err
	}
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #4a9d8e;">SAVAYAS HEALS</h2>
			<p>Your appointment has been confirmed!</p>
			<div style="background-color: #f3f4f6; padding: 20px; margin: 20px 0;">
				<h3 style="margin-top: 0;">Appointment Details</h3>
				<p><strong>Date:</strong> %s</p>
				<p><strong>Time:</strong> %s - %s</p>
				<p><strong>Professional:</strong> %s</p>
				<p><strong>Status:</strong> Confirmed</p>
			</div>
			<p>Please arrive 5 minutes before your scheduled time. If you need to reschedule or cancel, please do so at least 24 hours in advance.</p>
			<p>Best regards,<br>The SAVAYAS HEALS Team</p>
		</div>`,
		appt.Date, appt.StartTime, appt.EndTime, profName)
	return s.send(to, "Your Appointment Confirmation - SAVAYAS HEALS", body)
}

// SendAppointmentCancellation emails the client when a booking is cancelled.
func (s *EmailNotificationService) SendAppointmentCancellation(appt *models.Appointment) error {
	to, profName, err := s.resolve(appt)
	if err != nil {
		return err
	}
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #4a9d8e;">SAVAYAS HEALS</h2>
			<p>Your appointment on %s at %s with %s has been cancelled.</p>
			<p>You can book a new time slot from your dashboard at any time.</p>
			<p>Best regards,<br>The SAVAYAS HEALS Team</p>
		</div>`,
		appt.Date, appt.StartTime, profName)
	return s.send(to, "Appointment Cancelled - SAVAYAS HEALS", body)
}

// SendAppointmentReminder emails the client shortly before the appointment.
func (s *EmailNotificationService) SendAppointmentReminder(appt *models.Appointment) error {
	to, profName, err := s.resolve(appt)
	if err != nil {
		return err
	}
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #4a9d8e;">SAVAYAS HEALS</h2>
			<p>This is a reminder for your upcoming appointment.</p>
			<p><strong>Date:</strong> %s</p>
			<p><strong>Time:</strong> %s - %s</p>
			<p><strong>Professional:</strong> %s</p>
			<p>Best regards,<br>The SAVAYAS HEALS Team</p>
		</div>`,
		appt.Date, appt.StartTime, appt.EndTime, profName)
	return s.send(to, "Appointment Reminder - SAVAYAS HEALS", body)
}

// SendVerificationOTP delivers the email-verification code.
func (s *EmailNotificationService) SendVerificationOTP(email, otp string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #4a9d8e;">SAVAYAS HEALS</h2>
			<p>Your verification code is:</p>
			<h1 style="letter-spacing: 4px;">%s</h1>
			<p>It expires in 5 minutes.</p>
		</div>`, otp)
	return s.send(email, "Verify your email - SAVAYAS HEALS", body)
}
