// Package storage elige el backend de persistencia según DB_DRIVER y expone
// los repositorios del dominio sin que los comandos conozcan el driver.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/sqlite"
	"github.com/jhoicas/invoices-dashboard/pkg/config"
)

// Repositories puertos de persistencia del dashboard.
type Repositories struct {
	Invoices  repository.InvoiceRepository
	Customers repository.CustomerRepository
	Users     repository.UserRepository
}

// Storage repositorios más ciclo de vida de la conexión.
type Storage struct {
	Repositories
	Driver string

	ping  func(ctx context.Context) error
	close func()
	inTx  func(ctx context.Context, fn func(Repositories) error) error
}

// Open conecta al backend configurado. Con AutoMigrate aplica el esquema embebido
// (SQLite lo aplica siempre al abrir).
func Open(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	txRunner := postgres.NewTxRunner(pool)
	return &Storage{
		Repositories: postgresRepos(pool),
		Driver:       config.DriverPostgres,
		ping:         pool.Ping,
		close:        pool.Close,
		inTx: func(ctx context.Context, fn func(Repositories) error) error {
			return txRunner.Run(ctx, func(q postgres.Querier) error {
				return fn(postgresRepos(q))
			})
		},
	}, nil
}

func postgresRepos(q postgres.Querier) Repositories {
	return Repositories{
		Invoices:  postgres.NewInvoiceRepository(q),
		Customers: postgres.NewCustomerRepository(q),
		Users:     postgres.NewUserRepository(q),
	}
}

func openSQLite(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	store, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	return &Storage{
		Repositories: sqliteRepos(store.Invoices(), store.Customers(), store.Users()),
		Driver:       config.DriverSQLite,
		ping:         store.Ping,
		close:        func() { _ = store.Close() },
		inTx: func(ctx context.Context, fn func(Repositories) error) error {
			return store.RunInTx(ctx, func(q sqlite.Querier) error {
				return fn(sqliteRepos(
					sqlite.NewInvoiceRepository(q),
					sqlite.NewCustomerRepository(q),
					sqlite.NewUserRepository(q),
				))
			})
		},
	}, nil
}

func sqliteRepos(inv *sqlite.InvoiceRepo, cust *sqlite.CustomerRepo, users *sqlite.UserRepo) Repositories {
	return Repositories{Invoices: inv, Customers: cust, Users: users}
}

// Ping verifica la conexión (health check).
func (s *Storage) Ping(ctx context.Context) error { return s.ping(ctx) }

// Close libera la conexión.
func (s *Storage) Close() { s.close() }

// RunInTx ejecuta fn con repositorios ligados a una transacción.
func (s *Storage) RunInTx(ctx context.Context, fn func(Repositories) error) error {
	return s.inTx(ctx, fn)
}
