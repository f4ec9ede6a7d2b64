package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo facturas sobre SQLite. Fechas como TEXT YYYY-MM-DD.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el repositorio. Pasar db o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura. Si no trae ID se genera uno.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO invoices (id, customer_id, amount, status, date) VALUES (?, ?, ?, ?, ?)`,
		invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.DateString(),
	)
	if err != nil {
		return translate("insert invoice", err)
	}
	return nil
}

// Update reemplaza cliente, monto y estado. No toca la fecha.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE invoices SET customer_id = ?, amount = ?, status = ? WHERE id = ?`,
		invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.ID,
	)
	if err != nil {
		return translate("update invoice", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id); err != nil {
		return translate("delete invoice", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	var status, date string
	err := r.q.QueryRowContext(ctx,
		`SELECT id, customer_id, amount, status, date FROM invoices WHERE id = ?`, id,
	).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &status, &date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get invoice", err)
	}
	inv.Status = entity.InvoiceStatus(status)
	if inv.Date, err = parseDate(date); err != nil {
		return nil, err
	}
	return &inv, nil
}

const filteredWhere = `
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE customers.name LIKE ?1
		   OR customers.email LIKE ?1
		   OR CAST(invoices.amount AS TEXT) LIKE ?1
		   OR invoices.date LIKE ?1
		   OR invoices.status LIKE ?1`

// ListFiltered lista facturas con datos del cliente, más recientes primero.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceListItem, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date,
		       customers.name, customers.email, customers.image_url`+filteredWhere+`
		ORDER BY invoices.date DESC, invoices.id
		LIMIT ?2 OFFSET ?3`,
		"%"+query+"%", limit, offset,
	)
	if err != nil {
		return nil, translate("list invoices", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceListItem
	for rows.Next() {
		var it entity.InvoiceListItem
		var status, date string
		if err := rows.Scan(
			&it.ID, &it.CustomerID, &it.Amount, &status, &date,
			&it.CustomerName, &it.CustomerEmail, &it.ImageURL,
		); err != nil {
			return nil, translate("scan invoice", err)
		}
		it.Status = entity.InvoiceStatus(status)
		if it.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// CountFiltered cuenta las facturas que coinciden con query.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*)`+filteredWhere, "%"+query+"%").Scan(&n); err != nil {
		return 0, translate("count invoices", err)
	}
	return n, nil
}

// Summary cantidad de facturas y SUM(amount) por estado.
func (r *InvoiceRepo) Summary(ctx context.Context) (*entity.InvoiceSummary, error) {
	var count, paid, pending int64
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'paid' THEN amount END), 0),
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN amount END), 0)
		FROM invoices`,
	).Scan(&count, &paid, &pending)
	if err != nil {
		return nil, translate("invoice summary", err)
	}
	return &entity.InvoiceSummary{
		InvoiceCount: count,
		PaidCents:    decimal.NewFromInt(paid),
		PendingCents: decimal.NewFromInt(pending),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t, nil
}
