package repository

import "github.com/joacochifte/business-dashboard/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (con sus líneas).
// Create/Update/Delete manejan cabecera y líneas como una unidad; List devuelve
// las ventas más recientes primero, con filtro opcional por deuda.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(isDebt *bool, limit, offset int) ([]*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
}
