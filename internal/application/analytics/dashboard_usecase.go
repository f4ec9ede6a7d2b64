// Package analytics contiene el caso de uso de las tarjetas de resumen del
// dashboard (totales cobrados/pendientes y conteos).
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
)

// DashboardUseCase genera el resumen de facturas y clientes.
//
// Solo lectura: no pasa por la caché del listado ni por las acciones.
type DashboardUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *DashboardUseCase {
	return &DashboardUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos llamadas en paralelo:
//  1. Summary()  → cantidad de facturas + SUM(amount) por estado
//  2. Count()    → cantidad de clientes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type summaryResult struct {
		summary *entity.InvoiceSummary
		err     error
	}
	type countResult struct {
		count int64
		err   error
	}

	summaryCh := make(chan summaryResult, 1)
	customersCh := make(chan countResult, 1)

	go func() {
		s, err := uc.invoiceRepo.Summary(ctx)
		summaryCh <- summaryResult{s, err}
	}()
	go func() {
		n, err := uc.customerRepo.Count(ctx)
		customersCh <- countResult{n, err}
	}()

	inv := <-summaryCh
	customers := <-customersCh

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de facturas: %w", inv.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", customers.err)
	}

	return &dto.DashboardSummaryDTO{
		NumberOfInvoices:  inv.summary.InvoiceCount,
		NumberOfCustomers: customers.count,
		TotalPaid:         inv.summary.PaidCents.Shift(-2),
		TotalPending:      inv.summary.PendingCents.Shift(-2),
	}, nil
}
