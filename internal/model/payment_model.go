package model

import "time"

const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentCancelled = "CANCELLED"
)

type Payment struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	CustomerID string    `json:"customer_id"`
	InvoiceID  *string   `json:"invoice_id,omitempty"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Date       time.Time `json:"date"`
	Notes      *string   `json:"notes,omitempty"`
	Status     string    `json:"status"`
	IsActive   bool      `json:"is_active"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentCancelled:
		return true
	}
	return false
}
