package dto

import "time"

// AdjustStockRequest entrada para un ajuste directo de stock.
// Delta es un entero con signo: positivo suma, negativo resta.
type AdjustStockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Delta     int64  `json:"delta"`
}

// MovementResponse salida de un movimiento de inventario.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Direction string    `json:"direction"`
	Reason    string    `json:"reason"`
	Quantity  int64     `json:"quantity"`
	Date      time.Time `json:"date"`
}

// MovementListResponse lista paginada de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
