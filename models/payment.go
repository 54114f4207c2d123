package models

import "time"

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment records a gateway charge against an appointment.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	AppointmentID string    `bson:"appointment_id" json:"appointmentId"`
	UserID        string    `bson:"user_id" json:"userId"`
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	Status        string    `bson:"status" json:"status"`
	Method        string    `bson:"method" json:"method"`
	OrderID       string    `bson:"order_id" json:"orderId"`
	TransactionID string    `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// CreateOrderRequest asks the gateway for a new payment order.
// Amount is in major currency units; the gateway receives subunits.
type CreateOrderRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt" binding:"required"`
}

// VerifyPaymentRequest carries the gateway callback fields for signature
// verification. The signature is a keyed HMAC over "orderId|paymentId".
type VerifyPaymentRequest struct {
	OrderID       string  `json:"razorpayOrderId" binding:"required"`
	PaymentID     string  `json:"razorpayPaymentId" binding:"required"`
	Signature     string  `json:"razorpaySignature" binding:"required"`
	AppointmentID string  `json:"appointmentId" binding:"required"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Method        string  `json:"paymentMethod"`
}
