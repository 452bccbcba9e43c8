package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joacochifte/business-dashboard/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Reconcile — deltas entre estado viejo y nuevo de cantidades
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_CreacionDesdeVacio(t *testing.T) {
	// Una venta nueva: todo el estado nuevo es delta positivo.
	got := inventory.Reconcile(nil, map[string]int64{"p2": 3, "p1": 2})

	assert.Equal(t, []inventory.StockChange{
		{ProductID: "p1", Delta: 2},
		{ProductID: "p2", Delta: 3},
	}, got, "los deltas vienen ordenados por producto")
}

func TestReconcile_EliminacionHaciaVacio(t *testing.T) {
	got := inventory.Reconcile(map[string]int64{"p1": 2}, nil)
	assert.Equal(t, []inventory.StockChange{{ProductID: "p1", Delta: -2}}, got)
}

func TestReconcile_MezclaDeCaminos(t *testing.T) {
	old := map[string]int64{"p1": 2, "p2": 3, "p3": 4}
	niu := map[string]int64{"p1": 5, "p2": 3, "p4": 1}

	got := inventory.Reconcile(old, niu)

	assert.Equal(t, []inventory.StockChange{
		{ProductID: "p1", Delta: 3},  // subió
		{ProductID: "p3", Delta: -4}, // salió de la venta
		{ProductID: "p4", Delta: 1},  // entró a la venta
	}, got, "los productos sin cambio (p2) no aparecen")
}

func TestReconcile_SinCambios(t *testing.T) {
	same := map[string]int64{"p1": 2, "p2": 3}
	assert.Empty(t, inventory.Reconcile(same, same))
	assert.Empty(t, inventory.Reconcile(nil, nil))
}
