package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joacochifte/business-dashboard/internal/domain"
)

// Product representa un producto del negocio.
// El stock es una variante Tracked/Untracked; los productos sin control de stock
// (servicios) no generan movimientos ni validaciones de inventario.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       Stock
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct construye un producto validando nombre y precio (> 0).
func NewProduct(id, name, description string, price decimal.Decimal, stock Stock, active bool, now time.Time) (*Product, error) {
	if id == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ChangePrice actualiza el precio validando que sea positivo.
func (p *Product) ChangePrice(price decimal.Decimal, now time.Time) error {
	if !price.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	p.Price = price
	p.UpdatedAt = now
	return nil
}

// AdjustStock aplica un delta al stock manteniendo el invariante de no-negatividad.
// El invariante vive en la entidad, no en los servicios.
func (p *Product) AdjustStock(delta int64, now time.Time) error {
	next, err := p.Stock.Adjust(delta)
	if err != nil {
		return err
	}
	p.Stock = next
	p.UpdatedAt = now
	return nil
}
