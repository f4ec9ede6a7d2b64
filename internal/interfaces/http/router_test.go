package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/invoices-dashboard/internal/application/analytics"
	"github.com/jhoicas/invoices-dashboard/internal/application/auth"
	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/invoices-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/invoices-dashboard/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/invoices-dashboard/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "user@nextmail.com"
	testPassword  = "123456"
	testIssuer    = "invoices-dashboard-test"
	testExpMin    = 60
)

var fixedNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

// testEnv aplicación completa sobre un SQLite temporal, con un usuario y un cliente.
type testEnv struct {
	app      *fiber.App
	store    *sqlite.Store
	registry *cache.Registry
	customer *entity.Customer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "http.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(ctx, &entity.User{ID: testUserID, Name: "User", Email: testEmail, PasswordHash: hash}))

	customer := &entity.Customer{Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"}
	require.NoError(t, store.Customers().Create(ctx, customer))

	registry := cache.NewRegistry()
	invoiceRepo := store.Invoices()
	customerRepo := store.Customers()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		Actions:         billing.NewInvoiceActions(invoiceRepo, registry, zerolog.Nop(), func() time.Time { return fixedNow }),
		Queries:         billing.NewInvoiceQueryUseCase(invoiceRepo, customerRepo),
		InvoicePDF:      billing.NewPDFUseCase(invoiceRepo, customerRepo, infrapdf.NewMarotoPDFGenerator("Acme")),
		DashboardUC:     appanalytics.NewDashboardUseCase(invoiceRepo, customerRepo),
		Cache:           registry,
		CacheExpiration: time.Minute,
		JWTSecret:       testJWTSecret,
		SessionTTL:      time.Hour,
	})

	return &testEnv{app: app, store: store, registry: registry, customer: customer}
}

// seedInvoice inserta una factura directamente en el store.
func (e *testEnv) seedInvoice(t *testing.T, amount int64, status entity.InvoiceStatus, date time.Time) *entity.Invoice {
	t.Helper()
	inv := &entity.Invoice{CustomerID: e.customer.ID, Amount: amount, Status: status, Date: date}
	require.NoError(t, e.store.Invoices().Create(context.Background(), inv))
	return inv
}

func bearer(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))
	return e.do(t, req)
}

func (e *testEnv) submit(t *testing.T, method, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))
	return e.do(t, req)
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
}
