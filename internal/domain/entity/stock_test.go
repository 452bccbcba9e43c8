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
// Tests Stock — variante gestionado / no gestionado
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_AjustePositivoYNegativo(t *testing.T) {
	s := entity.TrackedStock(10)

	s, err := s.Adjust(5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), s.Qty())

	s, err = s.Adjust(-15)
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.Qty(), "el stock puede llegar exactamente a cero")
}

func TestStock_NoPuedeQuedarNegativo(t *testing.T) {
	s := entity.TrackedStock(3)

	_, err := s.Adjust(-4)
	assert.ErrorIs(t, err, domain.ErrStockNegativo)

	// El valor original no se muta ante el fallo.
	assert.Equal(t, int64(3), s.Qty())
}

func TestStock_NoGestionadoRechazaAjustes(t *testing.T) {
	s := entity.Untracked()

	_, err := s.Adjust(1)
	assert.ErrorIs(t, err, domain.ErrStockNoGestionado)

	_, err = s.Adjust(-1)
	assert.ErrorIs(t, err, domain.ErrStockNoGestionado)
}

func TestStock_MapeoNullable(t *testing.T) {
	// Gestionado ↔ *int64 con valor
	tracked := entity.TrackedStock(7)
	ptr := tracked.ToNullable()
	require.NotNil(t, ptr)
	assert.Equal(t, int64(7), *ptr)
	assert.True(t, entity.StockFromNullable(ptr).IsTracked())

	// No gestionado ↔ NULL
	assert.Nil(t, entity.Untracked().ToNullable())
	assert.False(t, entity.StockFromNullable(nil).IsTracked())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Product — invariantes de precio y stock
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_PrecioDebeSerPositivo(t *testing.T) {
	now := time.Now()

	_, err := entity.NewProduct("p1", "Gaseosa", "", decimal.Zero, entity.TrackedStock(0), true, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio cero debe rechazarse")

	_, err = entity.NewProduct("p1", "Gaseosa", "", decimal.NewFromInt(-5), entity.TrackedStock(0), true, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo debe rechazarse")

	p, err := entity.NewProduct("p1", "Gaseosa", "", decimal.NewFromFloat(2.50), entity.TrackedStock(0), true, now)
	require.NoError(t, err)
	assert.Equal(t, "Gaseosa", p.Name)
}

func TestProduct_AdjustStockMantieneInvariante(t *testing.T) {
	now := time.Now()
	p, err := entity.NewProduct("p1", "Gaseosa", "", decimal.NewFromInt(100), entity.TrackedStock(5), true, now)
	require.NoError(t, err)

	require.NoError(t, p.AdjustStock(-5, now))
	assert.Equal(t, int64(0), p.Stock.Qty())

	err = p.AdjustStock(-1, now)
	assert.ErrorIs(t, err, domain.ErrStockNegativo)
	assert.Equal(t, int64(0), p.Stock.Qty(), "el stock no cambia cuando el ajuste falla")
}

func TestProduct_SinControlDeStockEsInerte(t *testing.T) {
	now := time.Now()
	p, err := entity.NewProduct("svc", "Servicio técnico", "", decimal.NewFromInt(50), entity.Untracked(), true, now)
	require.NoError(t, err)

	err = p.AdjustStock(10, now)
	assert.ErrorIs(t, err, domain.ErrStockNoGestionado)
	assert.False(t, p.Stock.IsTracked())
}
