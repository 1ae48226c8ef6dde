package model

import "time"

const (
	CustomerActive   = "ACTIVE"
	CustomerInactive = "INACTIVE"
	CustomerArchived = "ARCHIVED"
)

type Customer struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	ContactName *string   `json:"contact_name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Address     *string   `json:"address,omitempty"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	Country     string    `json:"country"`
	ZipCode     *string   `json:"zip_code,omitempty"`
	Status      string    `json:"status"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidCustomerStatus(s string) bool {
	switch s {
	case CustomerActive, CustomerInactive, CustomerArchived:
		return true
	}
	return false
}
