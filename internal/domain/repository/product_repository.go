package repository

import "github.com/joacochifte/business-dashboard/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// GetForUpdate solo tiene sentido dentro de una transacción (SELECT ... FOR UPDATE).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
