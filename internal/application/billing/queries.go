package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ItemsPerPage tamaño de página del listado de facturas.
const ItemsPerPage = 6

// InvoiceQueryUseCase lecturas del dashboard: listado, detalle para edición y clientes.
type InvoiceQueryUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceQueryUseCase construye el caso de uso.
func NewInvoiceQueryUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceQueryUseCase {
	return &InvoiceQueryUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// ListInvoices devuelve la página page (base 1) de facturas que coinciden con query.
// query busca en nombre/email del cliente, monto, fecha y estado.
func (uc *InvoiceQueryUseCase) ListInvoices(ctx context.Context, in dto.PageRequest) (*dto.InvoiceListResponse, error) {
	in.DefaultPage()
	query := strings.TrimSpace(in.Query)
	offset := (in.Page - 1) * ItemsPerPage

	total, err := uc.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listado: contar facturas: %w", err)
	}
	items, err := uc.invoiceRepo.ListFiltered(ctx, query, ItemsPerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("listado: obtener facturas: %w", err)
	}

	out := make([]dto.InvoiceListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InvoiceListItemResponse{
			ID:         it.ID,
			CustomerID: it.CustomerID,
			Name:       it.CustomerName,
			Email:      it.CustomerEmail,
			ImageURL:   it.ImageURL,
			Amount:     centsToDollars(it.Amount),
			Status:     string(it.Status),
			Date:       it.DateString(),
		})
	}
	return &dto.InvoiceListResponse{
		Invoices: out,
		PageResponse: dto.PageResponse{
			Page:       in.Page,
			TotalPages: totalPages(total),
		},
	}, nil
}

// GetInvoice devuelve la factura id para precargar el formulario de edición.
func (uc *InvoiceQueryUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceFormResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceFormResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     centsToDollars(inv.Amount),
		Status:     string(inv.Status),
		Date:       inv.DateString(),
	}, nil
}

// ListCustomers lista los clientes para el select del formulario.
func (uc *InvoiceQueryUseCase) ListCustomers(ctx context.Context) ([]*dto.CustomerResponse, error) {
	list, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		ImageURL: c.ImageURL,
	}
}

func centsToDollars(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func totalPages(total int) int {
	return (total + ItemsPerPage - 1) / ItemsPerPage
}
