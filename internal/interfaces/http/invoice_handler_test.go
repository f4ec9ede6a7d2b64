package http_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

type actionBody struct {
	Outcome string              `json:"outcome"`
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

type listBody struct {
	Invoices []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Amount string `json:"amount"`
		Status string `json:"status"`
		Date   string `json:"date"`
	} `json:"invoices"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

func TestCreateInvoice_RedirigeAlListado(t *testing.T) {
	env := newTestEnv(t)

	resp := env.submit(t, http.MethodPost, "/dashboard/invoices", url.Values{
		"customerId": {env.customer.ID},
		"amount":     {"10.50"},
		"status":     {"pending"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, billing.InvoicesPath, resp.Header.Get(fiber.HeaderLocation))
	assert.Equal(t, uint64(1), env.registry.Invalidations(billing.InvoicesPath), "una sola invalidación")

	var list listBody
	decode(t, env.get(t, "/dashboard/invoices"), &list)
	require.Len(t, list.Invoices, 1)
	assert.Equal(t, "10.5", list.Invoices[0].Amount)
	assert.Equal(t, "pending", list.Invoices[0].Status)
	assert.Equal(t, "2026-10-19", list.Invoices[0].Date)
	assert.Equal(t, "Lee Robinson", list.Invoices[0].Name)
}

func TestCreateInvoice_FormularioVacio_422(t *testing.T) {
	env := newTestEnv(t)

	resp := env.submit(t, http.MethodPost, "/dashboard/invoices", url.Values{})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body actionBody
	decode(t, resp, &body)
	assert.Equal(t, "validation_failed", body.Outcome)
	assert.Equal(t, billing.MsgCreateInvalid, body.Message)
	assert.Equal(t, []string{billing.MsgSelectCustomer}, body.Errors["customerId"])
	assert.Equal(t, []string{billing.MsgAmountPositive}, body.Errors["amount"])
	assert.Equal(t, []string{billing.MsgSelectStatus}, body.Errors["status"])
	assert.Zero(t, env.registry.Invalidations(billing.InvoicesPath))

	sum, err := env.store.Invoices().Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum.InvoiceCount, "nada se persiste")
}

func TestCreateInvoice_ClienteInexistente_500(t *testing.T) {
	env := newTestEnv(t)

	resp := env.submit(t, http.MethodPost, "/dashboard/invoices", url.Values{
		"customerId": {"no-existe"},
		"amount":     {"5"},
		"status":     {"paid"},
	})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body actionBody
	decode(t, resp, &body)
	assert.Equal(t, "storage_failed", body.Outcome)
	assert.Equal(t, billing.MsgCreateDBError, body.Message)
	assert.Empty(t, body.Errors)
	assert.Empty(t, resp.Header.Get(fiber.HeaderLocation))
	assert.Zero(t, env.registry.Invalidations(billing.InvoicesPath))
}

func TestUpdateInvoice_ConservaFecha(t *testing.T) {
	env := newTestEnv(t)
	issued := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	inv := env.seedInvoice(t, 1000, entity.InvoiceStatusPending, issued)

	for _, method := range []string{http.MethodPost, http.MethodPut} {
		resp := env.submit(t, method, "/dashboard/invoices/"+inv.ID, url.Values{
			"customerId": {env.customer.ID},
			"amount":     {"200"},
			"status":     {"paid"},
		})
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, method)
	}

	got, err := env.store.Invoices().GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), got.Amount)
	assert.Equal(t, entity.InvoiceStatusPaid, got.Status)
	assert.Equal(t, "2026-01-02", got.DateString())
	assert.Equal(t, uint64(2), env.registry.Invalidations(billing.InvoicesPath))
}

func TestUpdateInvoice_MontoInvalido(t *testing.T) {
	env := newTestEnv(t)
	inv := env.seedInvoice(t, 1000, entity.InvoiceStatusPending, fixedNow)

	resp := env.submit(t, http.MethodPut, "/dashboard/invoices/"+inv.ID, url.Values{
		"customerId": {env.customer.ID},
		"amount":     {"-3"},
		"status":     {"paid"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body actionBody
	decode(t, resp, &body)
	assert.Equal(t, billing.MsgUpdateInvalid, body.Message)
	assert.Equal(t, []string{billing.MsgAmountPositive}, body.Errors["amount"])
}

func TestDeleteInvoice(t *testing.T) {
	env := newTestEnv(t)
	a := env.seedInvoice(t, 1000, entity.InvoiceStatusPending, fixedNow)
	b := env.seedInvoice(t, 2000, entity.InvoiceStatusPaid, fixedNow)

	resp := env.submit(t, http.MethodDelete, "/dashboard/invoices/"+a.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body actionBody
	decode(t, resp, &body)
	assert.Equal(t, "ok", body.Outcome)
	assert.Empty(t, resp.Header.Get(fiber.HeaderLocation), "delete no navega")

	resp = env.submit(t, http.MethodPost, "/dashboard/invoices/"+b.ID+"/delete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Inexistente: sin error y también invalida.
	resp = env.submit(t, http.MethodDelete, "/dashboard/invoices/ya-borrada", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sum, err := env.store.Invoices().Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum.InvoiceCount)
	assert.Equal(t, uint64(3), env.registry.Invalidations(billing.InvoicesPath))
}

func TestListInvoices_CacheSeInvalidaTrasMutacion(t *testing.T) {
	env := newTestEnv(t)
	env.seedInvoice(t, 1000, entity.InvoiceStatusPending, fixedNow)

	first := env.get(t, "/dashboard/invoices?query=lee")
	assert.Equal(t, "miss", first.Header.Get("X-Cache"))
	second := env.get(t, "/dashboard/invoices?query=lee")
	assert.Equal(t, "hit", second.Header.Get("X-Cache"))

	resp := env.submit(t, http.MethodPost, "/dashboard/invoices", url.Values{
		"customerId": {env.customer.ID},
		"amount":     {"1"},
		"status":     {"paid"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	third := env.get(t, "/dashboard/invoices?query=lee")
	assert.Equal(t, "miss", third.Header.Get("X-Cache"), "la mutación vuelve obsoleta la vista")
	var list listBody
	decode(t, third, &list)
	assert.Len(t, list.Invoices, 2)
}

func TestListInvoices_Paginacion(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < billing.ItemsPerPage+1; i++ {
		env.seedInvoice(t, int64(100+i), entity.InvoiceStatusPaid, fixedNow.AddDate(0, 0, -i))
	}

	var list listBody
	decode(t, env.get(t, "/dashboard/invoices?page=2"), &list)
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 2, list.TotalPages)
	require.Len(t, list.Invoices, 1)
	assert.Equal(t, "1.06", list.Invoices[0].Amount, "la más antigua queda en la última página")
}

func TestGetInvoice(t *testing.T) {
	env := newTestEnv(t)
	inv := env.seedInvoice(t, 15795, entity.InvoiceStatusPaid, fixedNow)

	var body map[string]any
	decode(t, env.get(t, "/dashboard/invoices/"+inv.ID), &body)
	assert.Equal(t, inv.ID, body["id"])
	assert.Equal(t, "157.95", body["amount"])

	resp := env.get(t, "/dashboard/invoices/no-existe")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReceipt(t *testing.T) {
	env := newTestEnv(t)
	inv := env.seedInvoice(t, 15795, entity.InvoiceStatusPaid, fixedNow)

	resp := env.get(t, "/dashboard/invoices/"+inv.ID+"/receipt.pdf")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "invoice_2026-10-19_")

	missing := env.get(t, "/dashboard/invoices/no-existe/receipt.pdf")
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestCustomersYDashboard(t *testing.T) {
	env := newTestEnv(t)
	env.seedInvoice(t, 1000, entity.InvoiceStatusPaid, fixedNow)
	env.seedInvoice(t, 250, entity.InvoiceStatusPending, fixedNow)

	var customers []map[string]any
	decode(t, env.get(t, "/dashboard/customers"), &customers)
	require.Len(t, customers, 1)
	assert.Equal(t, "Lee Robinson", customers[0]["name"])

	var summary map[string]any
	decode(t, env.get(t, "/dashboard"), &summary)
	assert.Equal(t, float64(2), summary["number_of_invoices"])
	assert.Equal(t, float64(1), summary["number_of_customers"])
	assert.Equal(t, "10", summary["total_paid_invoices"])
	assert.Equal(t, "2.5", summary["total_pending_invoices"])
}
