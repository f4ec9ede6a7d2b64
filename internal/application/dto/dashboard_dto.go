package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /dashboard: tarjetas de resumen.
// Los totales van en dólares.
type DashboardSummaryDTO struct {
	NumberOfInvoices  int64           `json:"number_of_invoices"`
	NumberOfCustomers int64           `json:"number_of_customers"`
	TotalPaid         decimal.Decimal `json:"total_paid_invoices"`
	TotalPending      decimal.Decimal `json:"total_pending_invoices"`
}
