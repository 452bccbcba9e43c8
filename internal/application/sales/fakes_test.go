package sales_test

import (
	"context"
	"time"

	"github.com/joacochifte/business-dashboard/internal/application/sales"
	"github.com/joacochifte/business-dashboard/internal/domain/entity"
	"github.com/joacochifte/business-dashboard/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore guarda el estado compartido; fakeTxRunner lo snapshotea antes de
// cada callback y lo restaura si el callback falla, imitando el Commit/Rollback
// de la transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[string]*entity.Product
	sales     map[string]*entity.Sale
	customers map[string]*entity.Customer
	movements []*entity.InventoryMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  make(map[string]*entity.Product),
		sales:     make(map[string]*entity.Sale),
		customers: make(map[string]*entity.Customer),
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	out := newFakeStore()
	for id, p := range s.products {
		cp := *p
		out.products[id] = &cp
	}
	for id, sl := range s.sales {
		cp := *sl
		cp.Items = append([]entity.SaleItem(nil), sl.Items...)
		out.sales[id] = &cp
	}
	for id, c := range s.customers {
		cp := *c
		out.customers[id] = &cp
	}
	out.movements = append([]*entity.InventoryMovement(nil), s.movements...)
	return out
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.products = snap.products
	s.sales = snap.sales
	s.customers = snap.customers
	s.movements = snap.movements
}

// movementsFor filtra los movimientos registrados de un producto.
func (s *fakeStore) movementsFor(productID string) []*entity.InventoryMovement {
	var out []*entity.InventoryMovement
	for _, m := range s.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

// ── Repos sobre el store ──────────────────────────────────────────────────────

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(id string) error         { delete(r.store.products, id); return nil }

type fakeSaleRepo struct{ store *fakeStore }

func (r *fakeSaleRepo) Create(s *entity.Sale) error { r.store.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	cp.Items = append([]entity.SaleItem(nil), s.Items...)
	return &cp, nil
}
func (r *fakeSaleRepo) List(isDebt *bool, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.store.sales {
		if isDebt != nil && s.IsDebt != *isDebt {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeSaleRepo) Update(s *entity.Sale) error { r.store.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) Delete(id string) error      { delete(r.store.sales, id); return nil }

type fakeCustomerRepo struct{ store *fakeStore }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.store.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.store.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.store.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.store.customers[c.ID] = c
	return nil
}
func (r *fakeCustomerRepo) Delete(id string) error { delete(r.store.customers, id); return nil }

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	r.store.movements = append(r.store.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	return r.store.movementsFor(productID), nil
}
func (r *fakeMovementRepo) List(from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	return r.store.movements, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ store *fakeStore }

var _ sales.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&fakeSaleRepo{store: r.store},
		&fakeProductRepo{store: r.store},
		&fakeCustomerRepo{store: r.store},
		&fakeMovementRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(snap)
	}
	return err
}
