package dto

import "github.com/shopspring/decimal"

// CustomerResponse cliente en respuestas (select del formulario de factura).
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// InvoiceListItemResponse fila del listado GET /dashboard/invoices.
// Amount en dólares (centavos / 100).
type InvoiceListItemResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	ImageURL   string          `json:"image_url,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Date       string          `json:"date"`
}

// InvoiceListResponse página del listado de facturas.
type InvoiceListResponse struct {
	Invoices []InvoiceListItemResponse `json:"invoices"`
	PageResponse
}

// InvoiceFormResponse factura para precargar el formulario de edición.
type InvoiceFormResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Date       string          `json:"date"`
}
