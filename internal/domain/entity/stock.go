package entity

import "github.com/joacochifte/business-dashboard/internal/domain"

// Stock representa el inventario de un producto como variante etiquetada:
// gestionado (cantidad >= 0) o no gestionado (servicios, productos sin control de stock).
// En la base de datos se mapea a una columna BIGINT nullable (NULL = no gestionado).
type Stock struct {
	tracked bool
	qty     int64
}

// TrackedStock construye un stock gestionado con la cantidad dada.
func TrackedStock(qty int64) Stock {
	return Stock{tracked: true, qty: qty}
}

// Untracked construye un stock no gestionado (el producto es inerte para el motor de inventario).
func Untracked() Stock {
	return Stock{}
}

// IsTracked indica si el producto gestiona stock.
func (s Stock) IsTracked() bool { return s.tracked }

// Qty devuelve la cantidad actual. Solo tiene sentido si IsTracked().
func (s Stock) Qty() int64 { return s.qty }

// Adjust aplica un delta con firma y devuelve el stock resultante.
// Falla con ErrStockNoGestionado si el producto no gestiona stock y con
// ErrStockNegativo si el resultado quedaría por debajo de cero.
func (s Stock) Adjust(delta int64) (Stock, error) {
	if !s.tracked {
		return s, domain.ErrStockNoGestionado
	}
	next := s.qty + delta
	if next < 0 {
		return s, domain.ErrStockNegativo
	}
	return Stock{tracked: true, qty: next}, nil
}

// ToNullable devuelve la representación para persistencia (*int64, NULL = no gestionado).
func (s Stock) ToNullable() *int64 {
	if !s.tracked {
		return nil
	}
	qty := s.qty
	return &qty
}

// StockFromNullable reconstruye el stock desde la columna nullable.
func StockFromNullable(qty *int64) Stock {
	if qty == nil {
		return Untracked()
	}
	return TrackedStock(*qty)
}
