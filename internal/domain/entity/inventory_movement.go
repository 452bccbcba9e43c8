package entity

import (
	"time"

	"github.com/joacochifte/business-dashboard/internal/domain"
)

// Direcciones de un movimiento de inventario.
const (
	MovementIn  = "IN"  // entrada (suma stock)
	MovementOut = "OUT" // salida (resta stock)
)

// Razones de un movimiento de inventario.
const (
	ReasonSale       = "SALE"       // generado por una venta (o su reverso)
	ReasonPurchase   = "PURCHASE"   // compra a proveedor
	ReasonAdjustment = "ADJUSTMENT" // ajuste manual o compensación de producto
)

// InventoryMovement es el registro inmutable de un cambio de stock.
// Nunca se edita ni se borra: las reversas se registran como movimientos compensatorios.
// Dirección + cantidad codifican el delta con signo (IN = +qty, OUT = -qty).
type InventoryMovement struct {
	ID        string
	ProductID string
	Direction string
	Reason    string
	Quantity  int64 // siempre > 0
	Date      time.Time
	CreatedAt time.Time
}

// NewInventoryMovement construye un movimiento validando producto, dirección, razón y cantidad (> 0).
func NewInventoryMovement(id, productID, direction, reason string, quantity int64, now time.Time) (*InventoryMovement, error) {
	if id == "" || productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if direction != MovementIn && direction != MovementOut {
		return nil, domain.ErrInvalidInput
	}
	if reason != ReasonSale && reason != ReasonPurchase && reason != ReasonAdjustment {
		return nil, domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return &InventoryMovement{
		ID:        id,
		ProductID: productID,
		Direction: direction,
		Reason:    reason,
		Quantity:  quantity,
		Date:      now,
		CreatedAt: now,
	}, nil
}

// SignedDelta devuelve el delta con signo que el movimiento aplicó al stock.
func (m *InventoryMovement) SignedDelta() int64 {
	if m.Direction == MovementOut {
		return -m.Quantity
	}
	return m.Quantity
}
