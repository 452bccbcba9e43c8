package entity

import (
	"github.com/shopspring/decimal"

	"github.com/joacochifte/business-dashboard/internal/domain"
)

// SaleItem es una línea de venta. El precio especial, si existe, reemplaza
// al precio unitario para el total de la línea.
type SaleItem struct {
	ID           string
	SaleID       string
	ProductID    string
	Quantity     int64
	UnitPrice    decimal.Decimal
	SpecialPrice *decimal.Decimal
}

// NewSaleItem construye una línea validando producto, cantidad (> 0),
// precio unitario (> 0) y precio especial (> 0 si viene).
func NewSaleItem(id, productID string, quantity int64, unitPrice decimal.Decimal, specialPrice *decimal.Decimal) (SaleItem, error) {
	if id == "" || productID == "" {
		return SaleItem{}, domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return SaleItem{}, domain.ErrInvalidInput
	}
	if !unitPrice.GreaterThan(decimal.Zero) {
		return SaleItem{}, domain.ErrInvalidInput
	}
	if specialPrice != nil && !specialPrice.GreaterThan(decimal.Zero) {
		return SaleItem{}, domain.ErrInvalidInput
	}
	return SaleItem{
		ID:           id,
		ProductID:    productID,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		SpecialPrice: specialPrice,
	}, nil
}

// EffectivePrice devuelve el precio vigente de la línea (especial si existe).
func (i SaleItem) EffectivePrice() decimal.Decimal {
	if i.SpecialPrice != nil {
		return *i.SpecialPrice
	}
	return i.UnitPrice
}

// LineTotal devuelve cantidad × precio vigente.
func (i SaleItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.EffectivePrice())
}
