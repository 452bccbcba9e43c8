package inventory

import (
	"context"

	"github.com/joacochifte/business-dashboard/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios de producto y movimiento atados a esa tx. Garantiza que el
// cambio de stock y su movimiento se confirmen juntos o no se confirme nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}
