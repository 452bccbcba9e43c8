package sales

import (
	"context"
	"fmt"

	"github.com/joacochifte/business-dashboard/internal/domain"
	"github.com/joacochifte/business-dashboard/internal/domain/repository"
)

// PDFUseCase genera el comprobante (PDF) de una venta.
type PDFUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    ReceiptGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator ReceiptGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadReceiptPDF arma los datos del comprobante (venta, cliente, nombres de
// producto) y genera el PDF. Devuelve los bytes y el nombre de archivo sugerido.
func (uc *PDFUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	customerName := ""
	if sale.CustomerID != "" {
		if customer, cErr := uc.customerRepo.GetByID(sale.CustomerID); cErr == nil && customer != nil {
			customerName = customer.Name
		}
	}

	data := ReceiptData{
		SaleID:        sale.ID,
		Date:          sale.CreatedAt.Format("02/01/2006 15:04"),
		CustomerName:  customerName,
		PaymentMethod: sale.PaymentMethod,
		IsDebt:        sale.IsDebt,
		Total:         sale.Total,
		Lines:         make([]ReceiptLine, 0, len(sale.Items)),
	}
	for _, it := range sale.Items {
		name := "Producto " + it.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(it.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		data.Lines = append(data.Lines, ReceiptLine{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.EffectivePrice(),
			LineTotal:   it.LineTotal(),
		})
	}

	pdfBytes, err = uc.generator.Generate(data)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("venta_%s.pdf", sale.ID), nil
}
