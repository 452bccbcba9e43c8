package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joacochifte/business-dashboard/internal/application/dto"
	"github.com/joacochifte/business-dashboard/internal/domain"
	"github.com/joacochifte/business-dashboard/internal/domain/entity"
	"github.com/joacochifte/business-dashboard/internal/domain/inventory"
	"github.com/joacochifte/business-dashboard/internal/domain/repository"
)

// SaleUseCase orquesta crear/actualizar/eliminar ventas manteniendo consistentes
// la venta, el stock de los productos, los movimientos de inventario y las
// estadísticas del cliente, todo dentro de una transacción (TxRunner).
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso. saleRepo se usa solo para lecturas
// fuera de transacción (listados y consultas).
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// buildItems construye las líneas de venta validando cada una.
func buildItems(items []dto.SaleItemRequest) ([]entity.SaleItem, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	out := make([]entity.SaleItem, 0, len(items))
	for _, in := range items {
		item, err := entity.NewSaleItem(uuid.New().String(), in.ProductID, in.Quantity, in.UnitPrice, in.SpecialPrice)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// checkExpectedTotal contrasta el total calculado con el total esperado del cliente.
// Un esperado en cero se interpreta como "no verificar".
func checkExpectedTotal(computed, expected decimal.Decimal) error {
	if expected.IsZero() {
		return nil
	}
	if !computed.Equal(expected) {
		return domain.ErrTotalMismatch
	}
	return nil
}

// CreateSale crea una venta: valida líneas y total, actualiza estadísticas del
// cliente, descuenta stock con sus movimientos OUT/SALE y persiste todo en una
// sola transacción. Devuelve el ID de la venta nueva.
func (uc *SaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.IDResponse, error) {
	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sale, err := entity.NewSale(uuid.New().String(), items, in.CustomerID, in.PaymentMethod, in.IsDebt, now)
	if err != nil {
		return nil, err
	}
	if err := checkExpectedTotal(sale.Total, in.ExpectedTotal); err != nil {
		return nil, err
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		if sale.CustomerID != "" {
			customer, err := customerRepo.GetByID(sale.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return domain.ErrNotFound
			}
			customer.RegisterPurchase(sale.Total, now)
			if err := customerRepo.Update(customer); err != nil {
				return err
			}
		}

		// Consumo de stock por producto: la venta nueva es el estado "nuevo"
		// contra un estado viejo vacío, así que todos los deltas son consumo.
		changes := inventory.Reconcile(nil, sale.QuantitiesByProduct())
		for _, ch := range changes {
			if err := consumeStock(productRepo, movRepo, ch.ProductID, ch.Delta, now); err != nil {
				return err
			}
		}

		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: sale.ID}, nil
}

// UpdateSale reemplaza las líneas de una venta, concilia el stock por deltas
// producto a producto y mueve las estadísticas entre cliente viejo y nuevo.
func (uc *SaleUseCase) UpdateSale(ctx context.Context, id string, in dto.UpdateSaleRequest) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	newItems, err := buildItems(in.Items)
	if err != nil {
		return err
	}
	now := time.Now()

	return uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		oldQty := sale.QuantitiesByProduct()
		oldTotal := sale.Total
		oldCustomerID := sale.CustomerID

		if err := sale.ReplaceItems(newItems); err != nil {
			return err
		}
		if err := checkExpectedTotal(sale.Total, in.ExpectedTotal); err != nil {
			return err
		}

		// Delta positivo = venta adicional (valida producto activo y stock);
		// delta negativo = devolución de stock (sin validaciones, devolver no falla).
		changes := inventory.Reconcile(oldQty, sale.QuantitiesByProduct())
		for _, ch := range changes {
			if ch.Delta > 0 {
				if err := consumeStock(productRepo, movRepo, ch.ProductID, ch.Delta, now); err != nil {
					return err
				}
				continue
			}
			if err := returnStock(productRepo, movRepo, ch.ProductID, -ch.Delta, now); err != nil {
				return err
			}
		}

		// Dos ajustes independientes, no una transferencia: el cliente viejo
		// pierde el total viejo y el nuevo gana el total nuevo, aun si son el mismo.
		if oldCustomerID != in.CustomerID || !oldTotal.Equal(sale.Total) {
			if oldCustomerID != "" {
				oldCustomer, err := customerRepo.GetByID(oldCustomerID)
				if err != nil {
					return err
				}
				if oldCustomer != nil {
					oldCustomer.RemovePurchase(oldTotal, now)
					if err := customerRepo.Update(oldCustomer); err != nil {
						return err
					}
				}
			}
			if in.CustomerID != "" {
				newCustomer, err := customerRepo.GetByID(in.CustomerID)
				if err != nil {
					return err
				}
				if newCustomer == nil {
					return domain.ErrNotFound
				}
				newCustomer.RegisterPurchase(sale.Total, now)
				if err := customerRepo.Update(newCustomer); err != nil {
					return err
				}
			}
		}

		sale.AttachCustomer(in.CustomerID)
		sale.PaymentMethod = in.PaymentMethod
		sale.IsDebt = in.IsDebt
		return saleRepo.Update(sale)
	})
}

// DeleteSale elimina una venta: revierte las estadísticas del cliente y devuelve
// el stock de cada producto con movimientos IN/SALE compensatorios.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()

	return uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		if sale.CustomerID != "" {
			customer, err := customerRepo.GetByID(sale.CustomerID)
			if err != nil {
				return err
			}
			if customer != nil {
				customer.RemovePurchase(sale.Total, now)
				if err := customerRepo.Update(customer); err != nil {
					return err
				}
			}
		}

		// Estado nuevo vacío: todos los deltas son devoluciones.
		for _, ch := range inventory.Reconcile(sale.QuantitiesByProduct(), nil) {
			if err := returnStock(productRepo, movRepo, ch.ProductID, -ch.Delta, now); err != nil {
				return err
			}
		}

		return saleRepo.Delete(id)
	})
}

// consumeStock descuenta qty del producto para una venta: exige producto existente
// y activo, valida stock suficiente (solo si es gestionado) y registra OUT/SALE.
func consumeStock(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	productID string, qty int64, now time.Time,
) error {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !product.Active {
		return domain.ErrProductoInactivo
	}
	if !product.Stock.IsTracked() {
		return nil // inerte para el motor de inventario
	}
	if product.Stock.Qty() < qty {
		return domain.ErrInsufficientStock
	}
	if err := product.AdjustStock(-qty, now); err != nil {
		return err
	}
	if err := productRepo.Update(product); err != nil {
		return err
	}
	mov, err := entity.NewInventoryMovement(uuid.New().String(), productID, entity.MovementOut, entity.ReasonSale, qty, now)
	if err != nil {
		return err
	}
	return movRepo.Create(mov)
}

// returnStock devuelve qty al producto al reducir o eliminar una venta y registra
// IN/SALE. No valida producto activo ni stock: devolver stock no puede fallar.
// Producto inexistente o sin gestión de stock se omite.
func returnStock(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	productID string, qty int64, now time.Time,
) error {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.Stock.IsTracked() {
		return nil
	}
	if err := product.AdjustStock(qty, now); err != nil {
		return err
	}
	if err := productRepo.Update(product); err != nil {
		return err
	}
	mov, err := entity.NewInventoryMovement(uuid.New().String(), productID, entity.MovementIn, entity.ReasonSale, qty, now)
	if err != nil {
		return err
	}
	return movRepo.Create(mov)
}

// GetByID obtiene una venta con sus líneas.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista ventas más recientes primero, con filtro opcional por deuda.
func (uc *SaleUseCase) List(ctx context.Context, isDebt *bool, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(isDebt, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{Items: make([]dto.SaleResponse, 0, len(list))}
	for _, s := range list {
		out.Items = append(out.Items, *toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		PaymentMethod: s.PaymentMethod,
		IsDebt:        s.IsDebt,
		Total:         s.Total,
		CreatedAt:     s.CreatedAt,
		Items:         make([]dto.SaleItemResponse, 0, len(s.Items)),
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			SpecialPrice: it.SpecialPrice,
			LineTotal:    it.LineTotal(),
		})
	}
	return resp
}
