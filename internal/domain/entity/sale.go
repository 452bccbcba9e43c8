package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joacochifte/business-dashboard/internal/domain"
)

// Sale es el agregado de venta: posee sus líneas (borrado en cascada) y mantiene
// el invariante de que Total siempre es la suma de los totales de línea vigentes.
// CustomerID vacío significa venta sin cliente asociado.
type Sale struct {
	ID            string
	Items         []SaleItem
	CustomerID    string
	PaymentMethod string
	IsDebt        bool
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// NewSale construye una venta con al menos una línea y calcula el total.
func NewSale(id string, items []SaleItem, customerID, paymentMethod string, isDebt bool, now time.Time) (*Sale, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	s := &Sale{
		ID:            id,
		CustomerID:    customerID,
		PaymentMethod: paymentMethod,
		IsDebt:        isDebt,
		CreatedAt:     now,
	}
	s.setItems(items)
	return s, nil
}

// ReplaceItems reemplaza las líneas por completo y recalcula el total.
// Falla si la lista nueva queda vacía (una venta siempre tiene al menos una línea).
func (s *Sale) ReplaceItems(items []SaleItem) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	s.setItems(items)
	return nil
}

func (s *Sale) setItems(items []SaleItem) {
	for i := range items {
		items[i].SaleID = s.ID
	}
	s.Items = items
	s.Total = s.computeTotal()
}

func (s *Sale) computeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// AttachCustomer asocia (o desasocia con "") el cliente de la venta.
func (s *Sale) AttachCustomer(customerID string) {
	s.CustomerID = customerID
}

// QuantitiesByProduct agrupa las cantidades de las líneas por producto
// (entrada para la conciliación de inventario).
func (s *Sale) QuantitiesByProduct() map[string]int64 {
	out := make(map[string]int64, len(s.Items))
	for _, it := range s.Items {
		if it.Quantity <= 0 {
			continue
		}
		out[it.ProductID] += it.Quantity
	}
	return out
}
