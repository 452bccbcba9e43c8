package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joacochifte/business-dashboard/internal/domain"
)

// Customer representa un cliente del negocio con sus estadísticas de compra.
// Las estadísticas se mantienen de forma incremental por cada venta creada,
// actualizada o eliminada (no se recalculan desde el conjunto de ventas).
type Customer struct {
	ID                 string
	Name               string
	Email              string
	Phone              string
	BirthDate          *time.Time
	Active             bool
	TotalPurchases     int64
	TotalLifetimeValue decimal.Decimal
	LastPurchaseDate   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewCustomer construye un cliente activo sin historial de compras.
func NewCustomer(id, name, email, phone string, birthDate *time.Time, now time.Time) (*Customer, error) {
	if id == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	return &Customer{
		ID:                 id,
		Name:               name,
		Email:              email,
		Phone:              phone,
		BirthDate:          birthDate,
		Active:             true,
		TotalLifetimeValue: decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// RegisterPurchase suma una venta a las estadísticas del cliente.
func (c *Customer) RegisterPurchase(total decimal.Decimal, when time.Time) {
	c.TotalPurchases++
	c.TotalLifetimeValue = c.TotalLifetimeValue.Add(total)
	w := when
	c.LastPurchaseDate = &w
	c.UpdatedAt = when
}

// RemovePurchase resta una venta de las estadísticas. Tolera deriva: ambos
// acumulados quedan en cero como piso en lugar de fallar.
func (c *Customer) RemovePurchase(total decimal.Decimal, when time.Time) {
	if c.TotalPurchases > 0 {
		c.TotalPurchases--
	}
	c.TotalLifetimeValue = c.TotalLifetimeValue.Sub(total)
	if c.TotalLifetimeValue.LessThan(decimal.Zero) {
		c.TotalLifetimeValue = decimal.Zero
	}
	c.UpdatedAt = when
}
