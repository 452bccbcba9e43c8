package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joacochifte/business-dashboard/internal/domain"
	"github.com/joacochifte/business-dashboard/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func mustItem(t *testing.T, id, productID string, qty int64, unitPrice float64, specialPrice *decimal.Decimal) entity.SaleItem {
	t.Helper()
	it, err := entity.NewSaleItem(id, productID, qty, decimal.NewFromFloat(unitPrice), specialPrice)
	require.NoError(t, err)
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SaleItem
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleItem_Validaciones(t *testing.T) {
	precio := decimal.NewFromInt(10)

	_, err := entity.NewSaleItem("i1", "p1", 0, precio, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe rechazarse")

	_, err = entity.NewSaleItem("i1", "p1", -2, precio, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa debe rechazarse")

	_, err = entity.NewSaleItem("i1", "p1", 1, decimal.Zero, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio unitario cero debe rechazarse")

	malo := decimal.Zero
	_, err = entity.NewSaleItem("i1", "p1", 1, precio, &malo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio especial cero debe rechazarse")

	_, err = entity.NewSaleItem("i1", "", 1, precio, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto vacío debe rechazarse")
}

func TestSaleItem_PrecioEspecialReemplazaAlUnitario(t *testing.T) {
	especial := decimal.NewFromFloat(8)
	it := mustItem(t, "i1", "p1", 3, 10, &especial)

	assert.True(t, it.EffectivePrice().Equal(especial))
	assert.True(t, it.LineTotal().Equal(decimal.NewFromInt(24)), "3 × 8 = 24")

	sinEspecial := mustItem(t, "i2", "p1", 3, 10, nil)
	assert.True(t, sinEspecial.LineTotal().Equal(decimal.NewFromInt(30)), "3 × 10 = 30")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Sale — agregado y total
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_RequiereAlMenosUnaLinea(t *testing.T) {
	_, err := entity.NewSale("s1", nil, "", "cash", false, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSale_TotalEsSumaDeLineas(t *testing.T) {
	especial := decimal.NewFromFloat(5)
	items := []entity.SaleItem{
		mustItem(t, "i1", "p1", 2, 10, nil),       // 20
		mustItem(t, "i2", "p2", 4, 7, &especial), // 20 (precio especial 5)
	}
	sale, err := entity.NewSale("s1", items, "c1", "cash", false, time.Now())
	require.NoError(t, err)

	assert.True(t, sale.Total.Equal(decimal.NewFromInt(40)))
	for _, it := range sale.Items {
		assert.Equal(t, "s1", it.SaleID, "las líneas quedan atadas a la venta")
	}
}

func TestSale_ReplaceItemsRecalculaTotal(t *testing.T) {
	sale, err := entity.NewSale("s1", []entity.SaleItem{mustItem(t, "i1", "p1", 1, 10, nil)}, "", "", false, time.Now())
	require.NoError(t, err)
	require.True(t, sale.Total.Equal(decimal.NewFromInt(10)))

	err = sale.ReplaceItems([]entity.SaleItem{
		mustItem(t, "i2", "p2", 3, 4, nil),
		mustItem(t, "i3", "p3", 1, 8, nil),
	})
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(20)), "12 + 8 = 20")

	err = sale.ReplaceItems(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no se puede dejar la venta sin líneas")
	assert.Len(t, sale.Items, 2, "las líneas anteriores quedan intactas ante el fallo")
}

func TestSale_QuantitiesByProductAgrupaDuplicados(t *testing.T) {
	items := []entity.SaleItem{
		mustItem(t, "i1", "p1", 2, 10, nil),
		mustItem(t, "i2", "p1", 3, 10, nil), // mismo producto en dos líneas
		mustItem(t, "i3", "p2", 1, 5, nil),
	}
	sale, err := entity.NewSale("s1", items, "", "", false, time.Now())
	require.NoError(t, err)

	got := sale.QuantitiesByProduct()
	assert.Equal(t, map[string]int64{"p1": 5, "p2": 1}, got)
}
