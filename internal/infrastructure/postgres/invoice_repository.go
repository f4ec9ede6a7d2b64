package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura. Si no trae ID se genera uno.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date,
	)
	if err != nil {
		return translate("insert invoice", err)
	}
	return nil
}

// Update reemplaza cliente, monto y estado. No toca la fecha.
// Un ID que no es UUID no identifica ninguna fila: 0 filas, sin error.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	if !isUUID(invoice.ID) {
		return nil
	}
	query := `
		UPDATE invoices
		SET customer_id = $2, amount = $3, status = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status),
	)
	if err != nil {
		return translate("update invoice", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return translate("delete invoice", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	var status string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &status, &inv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get invoice", err)
	}
	inv.Status = entity.InvoiceStatus(status)
	return &inv, nil
}

const filteredWhere = `
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE customers.name ILIKE $1
		   OR customers.email ILIKE $1
		   OR invoices.amount::text ILIKE $1
		   OR invoices.date::text ILIKE $1
		   OR invoices.status ILIKE $1`

// ListFiltered lista facturas con datos del cliente, más recientes primero.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceListItem, error) {
	sql := `
		SELECT invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date,
		       customers.name, customers.email, customers.image_url` + filteredWhere + `
		ORDER BY invoices.date DESC, invoices.id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, likePattern(query), limit, offset)
	if err != nil {
		return nil, translate("list invoices", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceListItem
	for rows.Next() {
		var it entity.InvoiceListItem
		var status string
		if err := rows.Scan(
			&it.ID, &it.CustomerID, &it.Amount, &status, &it.Date,
			&it.CustomerName, &it.CustomerEmail, &it.ImageURL,
		); err != nil {
			return nil, translate("scan invoice", err)
		}
		it.Status = entity.InvoiceStatus(status)
		list = append(list, &it)
	}
	return list, rows.Err()
}

// CountFiltered cuenta las facturas que coinciden con query.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+filteredWhere, likePattern(query)).Scan(&n); err != nil {
		return 0, translate("count invoices", err)
	}
	return n, nil
}

// Summary cantidad de facturas y SUM(amount) por estado.
// SUM sobre BIGINT es NUMERIC: se escanea con el codec de shopspring/decimal.
func (r *InvoiceRepo) Summary(ctx context.Context) (*entity.InvoiceSummary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0)
		FROM invoices`
	var s entity.InvoiceSummary
	if err := r.q.QueryRow(ctx, query).Scan(&s.InvoiceCount, &s.PaidCents, &s.PendingCents); err != nil {
		return nil, translate("invoice summary", err)
	}
	return &s, nil
}

func likePattern(query string) string {
	return "%" + query + "%"
}
