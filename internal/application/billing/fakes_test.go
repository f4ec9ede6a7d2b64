package billing

import (
	"context"
	"sync"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// fakeInvoiceRepo registra cada sentencia y puede fallar a demanda.
type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]*entity.Invoice
	created  []entity.Invoice
	updated  []entity.Invoice
	deleted  []string
	err      error
	getErr   error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
}

func (f *fakeInvoiceRepo) calls() int {
	return len(f.created) + len(f.updated) + len(f.deleted)
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, *inv)
	if f.err != nil {
		return f.err
	}
	if inv.ID == "" {
		inv.ID = "inv-generated"
	}
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, *inv)
	if f.err != nil {
		return f.err
	}
	if cur, ok := f.invoices[inv.ID]; ok {
		cur.CustomerID, cur.Amount, cur.Status = inv.CustomerID, inv.Amount, inv.Status
	}
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.err != nil {
		return f.err
	}
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, _ string, limit, offset int) ([]*entity.InvoiceListItem, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []*entity.InvoiceListItem
	i := 0
	for _, inv := range f.invoices {
		if i >= offset && len(out) < limit {
			out = append(out, &entity.InvoiceListItem{Invoice: *inv, CustomerName: "Lee Robinson"})
		}
		i++
	}
	return out, nil
}

func (f *fakeInvoiceRepo) CountFiltered(context.Context, string) (int, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	return len(f.invoices), nil
}

func (f *fakeInvoiceRepo) Summary(context.Context) (*entity.InvoiceSummary, error) {
	return &entity.InvoiceSummary{}, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	err       error
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) List(context.Context) ([]*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Count(context.Context) (int64, error) {
	return int64(len(f.customers)), f.err
}

// fakeRevalidator cuenta invalidaciones por ruta.
type fakeRevalidator struct {
	paths []string
	err   error
}

func (f *fakeRevalidator) Revalidate(_ context.Context, path string) error {
	f.paths = append(f.paths, path)
	return f.err
}
