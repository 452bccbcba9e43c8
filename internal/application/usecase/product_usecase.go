package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joacochifte/business-dashboard/internal/application/dto"
	appinventory "github.com/joacochifte/business-dashboard/internal/application/inventory"
	"github.com/joacochifte/business-dashboard/internal/domain"
	"github.com/joacochifte/business-dashboard/internal/domain/entity"
	"github.com/joacochifte/business-dashboard/internal/domain/repository"
)

// ProductUseCase orquesta el CRUD de productos junto con los movimientos de
// inventario compensatorios que cada operación implica (razón ADJUSTMENT).
type ProductUseCase struct {
	txRunner    appinventory.TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso. productRepo se usa para lecturas
// fuera de transacción.
func NewProductUseCase(txRunner appinventory.TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create crea un producto. Si trae stock inicial gestionado y positivo, registra
// el movimiento IN/ADJUSTMENT de apertura en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	stock := entity.Untracked()
	if in.InitialStock != nil {
		if *in.InitialStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		stock = entity.TrackedStock(*in.InitialStock)
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	product, err := entity.NewProduct(uuid.New().String(), in.Name, in.Description, in.Price, stock, active, now)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if product.Stock.IsTracked() && product.Stock.Qty() > 0 {
			mov, err := entity.NewInventoryMovement(uuid.New().String(), product.ID, entity.MovementIn, entity.ReasonAdjustment, product.Stock.Qty(), now)
			if err != nil {
				return err
			}
			return movRepo.Create(mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Si la petición fija un stock nuevo sobre un
// producto gestionado, el delta contra el stock viejo se registra como
// movimiento IN u OUT con razón ADJUSTMENT. Los productos sin gestión de stock
// son inertes: el campo stock de la petición se ignora.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var updated *entity.Product

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if in.Name != nil {
			if *in.Name == "" {
				return domain.ErrInvalidInput
			}
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.Price != nil {
			if err := product.ChangePrice(*in.Price, now); err != nil {
				return err
			}
		}
		if in.Active != nil {
			product.Active = *in.Active
		}

		if in.Stock != nil && product.Stock.IsTracked() {
			if *in.Stock < 0 {
				return domain.ErrInvalidInput
			}
			delta := *in.Stock - product.Stock.Qty()
			if delta != 0 {
				if err := product.AdjustStock(delta, now); err != nil {
					return err
				}
				direction := entity.MovementIn
				qty := delta
				if delta < 0 {
					direction = entity.MovementOut
					qty = -delta
				}
				mov, err := entity.NewInventoryMovement(uuid.New().String(), product.ID, direction, entity.ReasonAdjustment, qty, now)
				if err != nil {
					return err
				}
				if err := movRepo.Create(mov); err != nil {
					return err
				}
			}
		}

		product.UpdatedAt = now
		if err := productRepo.Update(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete elimina un producto. Si tenía stock gestionado positivo, registra el
// movimiento OUT/ADJUSTMENT compensatorio por el stock completo.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock.IsTracked() && product.Stock.Qty() > 0 {
			mov, err := entity.NewInventoryMovement(uuid.New().String(), product.ID, entity.MovementOut, entity.ReasonAdjustment, product.Stock.Qty(), now)
			if err != nil {
				return err
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return productRepo.Delete(id)
	})
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos paginados.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(list))}
	for _, p := range list {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock.ToNullable(),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
