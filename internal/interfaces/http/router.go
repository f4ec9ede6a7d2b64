package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fibercache "github.com/gofiber/fiber/v2/middleware/cache"
	appanalytics "github.com/jhoicas/invoices-dashboard/internal/application/analytics"
	"github.com/jhoicas/invoices-dashboard/internal/application/auth"
	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/cache"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Actions     *billing.InvoiceActions
	Queries     *billing.InvoiceQueryUseCase
	InvoicePDF  *billing.PDFUseCase
	DashboardUC *appanalytics.DashboardUseCase

	// Cache invalidada por las acciones; sus generaciones arman las claves del listado.
	Cache           *cache.Registry
	CacheExpiration time.Duration

	JWTSecret    string
	SessionTTL   time.Duration
	SecureCookie bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/api/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionTTL, deps.SecureCookie)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Dashboard (requiere Bearer Token o cookie de sesión)
	dashboard := app.Group("/dashboard", AuthMiddleware(deps.JWTSecret))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.GetSummary)

	customerHandler := NewCustomerHandler(deps.Queries)
	dashboard.Get("/customers", customerHandler.List)

	listCache := fibercache.New(fibercache.Config{
		Expiration:   deps.CacheExpiration,
		CacheHeader:  "X-Cache",
		KeyGenerator: deps.Cache.KeyGenerator(),
	})

	invoices := dashboard.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Actions, deps.Queries, deps.InvoicePDF)
	invoices.Get("/", listCache, invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id/receipt.pdf", invoiceHandler.Receipt)
	invoices.Post("/:id/delete", invoiceHandler.Delete)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id", invoiceHandler.Update)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
}
