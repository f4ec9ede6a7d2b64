package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de cobro de una factura.
type InvoiceStatus string

// Estados válidos de una factura.
const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Valid indica si el estado pertenece al enum {pending, paid}.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// DateLayout formato de la fecha de emisión (día, sin hora).
const DateLayout = "2006-01-02"

// Invoice representa una factura del dashboard.
// Amount se guarda en centavos (unidades menores).
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     InvoiceStatus
	Date       time.Time
}

// DateString devuelve la fecha de emisión en formato YYYY-MM-DD.
func (i *Invoice) DateString() string {
	return i.Date.Format(DateLayout)
}

// IssueDate trunca un instante al día calendario en UTC.
func IssueDate(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// InvoiceListItem fila del listado: factura más datos del cliente.
type InvoiceListItem struct {
	Invoice
	CustomerName  string
	CustomerEmail string
	ImageURL      string
}

// InvoiceSummary totales para las tarjetas del dashboard.
// PaidCents y PendingCents vienen de SUM(amount), NUMERIC en PostgreSQL.
type InvoiceSummary struct {
	InvoiceCount int64
	PaidCents    decimal.Decimal
	PendingCents decimal.Decimal
}
