// Package inventory contiene la conciliación de stock como servicio de dominio puro:
// dado un estado viejo y uno nuevo de cantidades por producto, deriva los deltas
// que los movimientos de inventario deben registrar.
package inventory

import "sort"

// StockChange es el delta neto de un producto entre el estado viejo y el nuevo.
// Delta > 0: la cantidad nueva es mayor; Delta < 0: la cantidad nueva es menor.
// La interpretación (entrada o salida) depende del camino: en ventas un delta
// positivo consume stock, en ajustes lo incrementa.
type StockChange struct {
	ProductID string
	Delta     int64
}

// Reconcile compara dos mapas de cantidades por producto y devuelve los deltas
// distintos de cero, en orden determinista por producto. Los productos presentes
// solo en uno de los mapas cuentan como cantidad cero en el otro.
func Reconcile(oldQty, newQty map[string]int64) []StockChange {
	ids := make(map[string]struct{}, len(oldQty)+len(newQty))
	for id := range oldQty {
		ids[id] = struct{}{}
	}
	for id := range newQty {
		ids[id] = struct{}{}
	}

	changes := make([]StockChange, 0, len(ids))
	for id := range ids {
		delta := newQty[id] - oldQty[id]
		if delta == 0 {
			continue
		}
		changes = append(changes, StockChange{ProductID: id, Delta: delta})
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].ProductID < changes[j].ProductID })
	return changes
}
