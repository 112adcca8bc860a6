package app

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/config"
	"github.com/dnieto/retailcore/internal/service/accounting"
	"github.com/dnieto/retailcore/internal/service/employee"
	"github.com/dnieto/retailcore/internal/service/inventory"
	"github.com/dnieto/retailcore/internal/service/sales"
)

// App wires the backend client and the four domain services over a shared
// clock and logger.
type App struct {
	Log *slog.Logger

	Inventory  *inventory.Service
	Sales      *sales.Service
	Accounting *accounting.Service
	Employees  *employee.Service
}

// New builds the full service graph from configuration.
func New(cfg *config.Config, logger *slog.Logger) *App {
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	clock := clockwork.NewRealClock()
	pageSize := cfg.View.PageSize

	a := &App{
		Log:        logger,
		Inventory:  inventory.NewService(logger, client, clock, pageSize),
		Sales:      sales.NewService(logger, client, clock, pageSize),
		Accounting: accounting.NewService(logger, client, clock, pageSize),
		Employees:  employee.NewService(logger, client, clock, pageSize),
	}
	a.Inventory.LimitPageSize(cfg.View.MaxPageSize)
	a.Sales.LimitPageSize(cfg.View.MaxPageSize)
	a.Accounting.LimitPageSize(cfg.View.MaxPageSize)
	a.Employees.LimitPageSize(cfg.View.MaxPageSize)
	return a
}

// LoadAll fetches every domain collection from the backend. The first
// failure aborts the remaining loads.
func (a *App) LoadAll(ctx context.Context) error {
	if err := a.Inventory.Load(ctx); err != nil {
		return err
	}
	if err := a.Sales.Load(ctx); err != nil {
		return err
	}
	if err := a.Accounting.Load(ctx); err != nil {
		return err
	}
	if err := a.Employees.Load(ctx); err != nil {
		return err
	}
	return nil
}
