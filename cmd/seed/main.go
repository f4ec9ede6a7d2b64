// seed carga un usuario de prueba, clientes y facturas de ejemplo.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DB_DRIVER, POSTGRES_URL, SQLITE_PATH...).
// Si el usuario ya existe no hace nada.
package main

import (
	"context"
	"time"

	"github.com/jhoicas/invoices-dashboard/internal/application/auth"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/storage"
	"github.com/jhoicas/invoices-dashboard/pkg/config"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
)

const (
	seedUserEmail    = "user@nextmail.com"
	seedUserPassword = "123456"
)

var seedCustomers = []entity.Customer{
	{Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

// seedInvoice índice de cliente, centavos, estado y antigüedad en días.
type seedInvoice struct {
	customer int
	amount   int64
	status   entity.InvoiceStatus
	daysAgo  int
}

var seedInvoices = []seedInvoice{
	{0, 15795, entity.InvoiceStatusPending, 3},
	{1, 20348, entity.InvoiceStatusPending, 10},
	{4, 3040, entity.InvoiceStatusPaid, 25},
	{3, 44800, entity.InvoiceStatusPaid, 40},
	{5, 34577, entity.InvoiceStatusPending, 52},
	{2, 54246, entity.InvoiceStatusPending, 70},
	{0, 666, entity.InvoiceStatusPending, 88},
	{3, 32545, entity.InvoiceStatusPaid, 101},
	{4, 1250, entity.InvoiceStatusPaid, 130},
	{5, 8546, entity.InvoiceStatusPaid, 145},
	{1, 500, entity.InvoiceStatusPaid, 160},
	{2, 8945, entity.InvoiceStatusPaid, 200},
	{2, 1000, entity.InvoiceStatusPaid, 290},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// La siembra siempre necesita el esquema.
	cfg.DB.AutoMigrate = true
	store, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer store.Close()

	existing, err := store.Users.FindByEmail(ctx, seedUserEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar usuario semilla")
	}
	if existing != nil {
		log.Info().Str("email", seedUserEmail).Msg("datos ya sembrados, nada que hacer")
		return
	}

	hash, err := auth.HashPassword(seedUserPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}

	today := entity.IssueDate(time.Now())
	err = store.RunInTx(ctx, func(r storage.Repositories) error {
		if err := r.Users.Create(ctx, &entity.User{Name: "User", Email: seedUserEmail, PasswordHash: hash}); err != nil {
			return err
		}
		customers := make([]entity.Customer, len(seedCustomers))
		copy(customers, seedCustomers)
		for i := range customers {
			if err := r.Customers.Create(ctx, &customers[i]); err != nil {
				return err
			}
		}
		for _, s := range seedInvoices {
			inv := &entity.Invoice{
				CustomerID: customers[s.customer].ID,
				Amount:     s.amount,
				Status:     s.status,
				Date:       today.AddDate(0, 0, -s.daysAgo),
			}
			if err := r.Invoices.Create(ctx, inv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("siembra fallida")
	}

	log.Info().
		Str("driver", store.Driver).
		Int("customers", len(seedCustomers)).
		Int("invoices", len(seedInvoices)).
		Msg("datos sembrados")
}
