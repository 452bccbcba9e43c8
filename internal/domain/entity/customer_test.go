package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joacochifte/business-dashboard/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Customer — estadísticas incrementales de compra
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomer_RegisterPurchaseAcumula(t *testing.T) {
	now := time.Now()
	c, err := entity.NewCustomer("c1", "María", "maria@mail.com", "", nil, now)
	require.NoError(t, err)
	require.Equal(t, int64(0), c.TotalPurchases)
	require.Nil(t, c.LastPurchaseDate)

	c.RegisterPurchase(decimal.NewFromInt(100), now)
	luego := now.Add(time.Hour)
	c.RegisterPurchase(decimal.NewFromInt(50), luego)

	assert.Equal(t, int64(2), c.TotalPurchases)
	assert.True(t, c.TotalLifetimeValue.Equal(decimal.NewFromInt(150)))
	require.NotNil(t, c.LastPurchaseDate)
	assert.Equal(t, luego, *c.LastPurchaseDate)
}

func TestCustomer_RemovePurchaseResta(t *testing.T) {
	now := time.Now()
	c, err := entity.NewCustomer("c1", "María", "", "", nil, now)
	require.NoError(t, err)

	c.RegisterPurchase(decimal.NewFromInt(100), now)
	c.RegisterPurchase(decimal.NewFromInt(60), now)
	c.RemovePurchase(decimal.NewFromInt(60), now)

	assert.Equal(t, int64(1), c.TotalPurchases)
	assert.True(t, c.TotalLifetimeValue.Equal(decimal.NewFromInt(100)))
}

// Las estadísticas toleran deriva: restar más de lo acumulado deja ambos
// contadores en cero en lugar de fallar o quedar negativos.
func TestCustomer_RemovePurchaseConPisoEnCero(t *testing.T) {
	now := time.Now()
	c, err := entity.NewCustomer("c1", "María", "", "", nil, now)
	require.NoError(t, err)

	c.RemovePurchase(decimal.NewFromInt(40), now)
	assert.Equal(t, int64(0), c.TotalPurchases)
	assert.True(t, c.TotalLifetimeValue.Equal(decimal.Zero))

	c.RegisterPurchase(decimal.NewFromInt(10), now)
	c.RemovePurchase(decimal.NewFromInt(25), now)
	assert.Equal(t, int64(0), c.TotalPurchases)
	assert.True(t, c.TotalLifetimeValue.Equal(decimal.Zero), "el acumulado nunca queda negativo")
}
