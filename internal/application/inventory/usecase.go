package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joacochifte/business-dashboard/internal/application/dto"
	"github.com/joacochifte/business-dashboard/internal/domain"
	"github.com/joacochifte/business-dashboard/internal/domain/entity"
	"github.com/joacochifte/business-dashboard/internal/domain/repository"
)

// AdjustStockUseCase registra ajustes directos de stock fuera de ventas,
// de forma transaccional (bloqueo de fila y Commit/Rollback).
type AdjustStockUseCase struct {
	txRunner TxRunner
	movRepo  repository.InventoryMovementRepository
}

// NewAdjustStockUseCase construye el caso de uso. movRepo se usa solo para
// el camino de lectura (historial de movimientos).
func NewAdjustStockUseCase(txRunner TxRunner, movRepo repository.InventoryMovementRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, movRepo: movRepo}
}

// AdjustStock aplica un delta con signo al stock de un producto y registra
// exactamente un movimiento ADJUSTMENT (IN si delta > 0, OUT si delta < 0).
// Delta cero es un no-op: no carga, no muta, no registra.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, productID string, delta int64) error {
	if productID == "" {
		return domain.ErrInvalidInput
	}
	if delta == 0 {
		return nil
	}
	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		// La entidad rechaza stock no gestionado y resultado negativo.
		if err := product.AdjustStock(delta, now); err != nil {
			return err
		}
		if err := productRepo.Update(product); err != nil {
			return err
		}

		direction := entity.MovementIn
		qty := delta
		if delta < 0 {
			direction = entity.MovementOut
			qty = -delta
		}
		mov, err := entity.NewInventoryMovement(uuid.New().String(), productID, direction, entity.ReasonAdjustment, qty, now)
		if err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
}

// ListMovements lista movimientos (más recientes primero) con filtro opcional por rango de fechas.
func (uc *AdjustStockUseCase) ListMovements(ctx context.Context, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list), nil
}

// ListMovementsByProduct lista los movimientos de un producto.
func (uc *AdjustStockUseCase) ListMovementsByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list), nil
}

func toMovementList(list []*entity.InventoryMovement) *dto.MovementListResponse {
	out := &dto.MovementListResponse{Items: make([]dto.MovementResponse, 0, len(list))}
	for _, m := range list {
		out.Items = append(out.Items, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Direction: m.Direction,
			Reason:    m.Reason,
			Quantity:  m.Quantity,
			Date:      m.Date,
		})
	}
	return out
}
