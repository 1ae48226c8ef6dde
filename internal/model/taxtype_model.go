package model

import "time"

type TaxType struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Rate       float64   `json:"rate"`
	IsCompound bool      `json:"is_compound"`
	IsActive   bool      `json:"is_active"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
