package models

import "time"

// PaymentRequest is handed to the payment processor on submission.
type PaymentRequest struct {
	SessionID   string
	Amount      float64
	Currency    string
	Method      string // "mobile_money" or "pay_on_site"
	Phone       string
	Description string
}

// PaymentResult reports the outcome of a processed payment.
type PaymentResult struct {
	PaymentID   string    `json:"paymentId,omitempty"`
	Status      string    `json:"status"` // "paid" or "pending"
	ProcessedAt time.Time `json:"processedAt"`
}
