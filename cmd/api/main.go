package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/invoices-dashboard/internal/application/analytics"
	"github.com/jhoicas/invoices-dashboard/internal/application/auth"
	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/invoices-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/invoices-dashboard/internal/interfaces/http"
	"github.com/jhoicas/invoices-dashboard/pkg/config"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a la base de datos")
	}
	defer store.Close()

	registry := cache.NewRegistry()
	actions := billing.NewInvoiceActions(store.Invoices, registry, log.Component("billing"), time.Now)
	queries := billing.NewInvoiceQueryUseCase(store.Invoices, store.Customers)
	invoicePDFUC := billing.NewPDFUseCase(store.Invoices, store.Customers, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))
	dashboardUC := appanalytics.NewDashboardUseCase(store.Invoices, store.Customers)
	authUC := auth.NewAuthUseCase(store.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en http://localhost:<port>/docs, solo si el archivo existe.
	if _, err := os.Stat(cfg.App.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsPath,
			Path:     "docs",
			Title:    "Invoices Dashboard API",
		}))
	} else {
		log.Debug().Str("path", cfg.App.DocsPath).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := store.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		Actions:         actions,
		Queries:         queries,
		InvoicePDF:      invoicePDFUC,
		DashboardUC:     dashboardUC,
		Cache:           registry,
		CacheExpiration: cfg.Cache.Expiration,
		JWTSecret:       cfg.JWT.Secret,
		SessionTTL:      time.Duration(cfg.JWT.Expiration) * time.Minute,
		SecureCookie:    cfg.App.Env != config.EnvDevelopment,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
