package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=200"`
	Email     string     `json:"email" validate:"omitempty,email"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birth_date"`
}

// UpdateCustomerRequest entrada para actualizar un cliente.
type UpdateCustomerRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Email     *string    `json:"email" validate:"omitempty,email"`
	Phone     *string    `json:"phone"`
	BirthDate *time.Time `json:"birth_date"`
	Active    *bool      `json:"active"`
}

// CustomerResponse salida de un cliente con sus estadísticas de compra.
type CustomerResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	BirthDate          *time.Time      `json:"birth_date,omitempty"`
	Active             bool            `json:"active"`
	TotalPurchases     int64           `json:"total_purchases"`
	TotalLifetimeValue decimal.Decimal `json:"total_lifetime_value"`
	LastPurchaseDate   *time.Time      `json:"last_purchase_date,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
}
