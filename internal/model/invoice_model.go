package model

import "time"

const (
	InvoiceDraft     = "DRAFT"
	InvoiceSent      = "SENT"
	InvoicePaid      = "PAID"
	InvoiceOverdue   = "OVERDUE"
	InvoiceCancelled = "CANCELLED"
)

type Invoice struct {
	ID             string        `json:"id"`
	Number         string        `json:"number"`
	CustomerID     string        `json:"customer_id"`
	Status         string        `json:"status"`
	IssueDate      time.Time     `json:"issue_date"`
	DueDate        time.Time     `json:"due_date"`
	Subtotal       float64       `json:"subtotal"`
	TaxAmount      float64       `json:"tax_amount"`
	DiscountAmount float64       `json:"discount_amount"`
	Total          float64       `json:"total"`
	Notes          *string       `json:"notes,omitempty"`
	IsActive       bool          `json:"is_active"`
	CreatedBy      string        `json:"created_by"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Items          []InvoiceItem `json:"items,omitempty"`
}

type InvoiceItem struct {
	ID          string  `json:"id"`
	InvoiceID   string  `json:"invoice_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	TaxRate     float64 `json:"tax_rate"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
	SortOrder   int     `json:"sort_order"`
}

func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}
