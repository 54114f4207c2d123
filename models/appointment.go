package models

import "time"

// Appointment statuses. Cancelled appointments release their slot; every other
// status blocks it.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}

// Appointment is a booked interval between a client and a professional on a
// specific calendar date. Date is "YYYY-MM-DD", times are "HH:MM" wall clock.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"user_id" json:"userId"`
	ProfessionalID string    `bson:"professional_id" json:"professionalId"`
	Date           string    `bson:"date" json:"date"`
	StartTime      string    `bson:"start_time" json:"startTime"`
	EndTime        string    `bson:"end_time" json:"endTime"`
	Status         string    `bson:"status" json:"status"`
	PaymentID      string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingRequest is the payload for creating an appointment.
type BookingRequest struct {
	ProfessionalID string `json:"professionalId" binding:"required"`
	Date           string `json:"date" binding:"required"`
	StartTime      string `json:"startTime" binding:"required"`
	EndTime        string `json:"endTime" binding:"required"`
	Notes          string `json:"notes"`
}

// UpdateStatusRequest changes an appointment's lifecycle status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
