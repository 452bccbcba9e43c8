package repository

import (
	"time"

	"github.com/joacochifte/business-dashboard/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para movimientos.
// Los movimientos solo se insertan (append-only); el camino de lectura es paginado
// y filtrable por producto y rango de fechas.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
}
