package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta en una petición de crear/actualizar venta.
type SaleItemRequest struct {
	ProductID    string           `json:"product_id" validate:"required"`
	Quantity     int64            `json:"quantity" validate:"required,gt=0"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	SpecialPrice *decimal.Decimal `json:"special_price"`
}

// CreateSaleRequest entrada para crear una venta.
// ExpectedTotal, si viene distinto de cero, se contrasta con el total calculado
// en el servidor (doble verificación contra deriva cliente/servidor).
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1"`
	CustomerID    string            `json:"customer_id"`
	PaymentMethod string            `json:"payment_method"`
	IsDebt        bool              `json:"is_debt"`
	ExpectedTotal decimal.Decimal   `json:"expected_total"`
}

// UpdateSaleRequest entrada para actualizar una venta (reemplazo total de líneas).
type UpdateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1"`
	CustomerID    string            `json:"customer_id"`
	PaymentMethod string            `json:"payment_method"`
	IsDebt        bool              `json:"is_debt"`
	ExpectedTotal decimal.Decimal   `json:"expected_total"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"product_id"`
	Quantity     int64            `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	SpecialPrice *decimal.Decimal `json:"special_price,omitempty"`
	LineTotal    decimal.Decimal  `json:"line_total"`
}

// SaleResponse salida de una venta con sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	CustomerID    string             `json:"customer_id,omitempty"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	IsDebt        bool               `json:"is_debt"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleListResponse lista de ventas (más recientes primero).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}
