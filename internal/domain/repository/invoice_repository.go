package repository

import (
	"context"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
//
// Create, Update y Delete ejecutan exactamente una sentencia parametrizada y
// afectan como máximo una fila. No hay transacciones entre sentencias.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update reemplaza customer_id, amount y status. La fecha no se modifica.
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete elimina por ID. Un ID inexistente no es error (0 filas).
	Delete(ctx context.Context, id string) error

	// GetByID devuelve nil, nil si la factura no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceListItem, error)
	CountFiltered(ctx context.Context, query string) (int, error)
	Summary(ctx context.Context) (*entity.InvoiceSummary, error)
}
