package model

import "time"

// PaymentStatus tracks manual review of a payment claim. Claims are created
// as "pending"; transitioning them is an open extension point (manual admin
// action or a gateway webhook), not something this service does on its own.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// Payment records a user's claim that a subscription payment was made,
// identified by the UTR / transaction reference they entered.
type Payment struct {
	ID            int64         `json:"id"`
	AccountID     int64         `json:"account_id"`
	PlanName      string        `json:"plan_name"`
	Amount        float64       `json:"amount"`
	TransactionID string        `json:"transaction_id"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// VerifyPaymentRequest is used for recording a payment claim
type VerifyPaymentRequest struct {
	TransactionID string  `json:"transaction_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PlanName      string  `json:"plan_name" binding:"required"`
}
