package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/joacochifte/business-dashboard/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios de venta atados a esa tx. Garantiza que venta, stock, movimientos
// y estadísticas del cliente se confirmen como una sola unidad atómica.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}

// ReceiptLine línea del comprobante de venta.
type ReceiptLine struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// ReceiptData datos para generar el comprobante PDF de una venta.
type ReceiptData struct {
	SaleID        string
	Date          string
	CustomerName  string
	PaymentMethod string
	IsDebt        bool
	Lines         []ReceiptLine
	Total         decimal.Decimal
}

// ReceiptGenerator genera la representación PDF del comprobante de venta.
type ReceiptGenerator interface {
	Generate(data ReceiptData) ([]byte, error)
}
