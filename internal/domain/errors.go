package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La violación del invariante de stock usa un único par de sentinelas
// (ErrStockNoGestionado / ErrStockNegativo) tanto en la entidad como en los servicios.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrProductoInactivo   = errors.New("el producto está inactivo")
	ErrTotalMismatch      = errors.New("el total no coincide con los ítems")
	ErrStockNoGestionado  = errors.New("el producto no gestiona stock")
	ErrStockNegativo      = errors.New("el stock no puede quedar negativo")
)

// IsBusinessRule indica si el error es una regla de negocio violada con entrada válida
// (se mapea a 422 en la capa HTTP).
func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrProductoInactivo) ||
		errors.Is(err, ErrTotalMismatch) ||
		errors.Is(err, ErrStockNoGestionado) ||
		errors.Is(err, ErrStockNegativo)
}
