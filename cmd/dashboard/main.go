// Command dashboard loads every domain collection from the data backend and
// prints the derived summaries. It doubles as a smoke check for backend
// connectivity.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dnieto/retailcore/internal/app"
	"github.com/dnieto/retailcore/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	logger.Info("starting dashboard",
		slog.String("version", app.BuildVersion()),
		slog.String("backend", cfg.Backend.BaseURL),
	)

	a := app.New(cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := a.LoadAll(ctx); err != nil {
		logger.Error("load collections", slog.String("error", err.Error()))
		os.Exit(1)
	}

	inv := a.Inventory.Stats()
	fmt.Printf("Inventory: %d products, value %s, %d low stock, %d out of stock\n",
		inv.TotalProducts, inv.TotalValue, inv.LowStockProducts, inv.OutOfStockProducts)

	sls := a.Sales.Stats()
	fmt.Printf("Sales: today %d (%s), week %d (%s), month %d (%s)\n",
		sls.Today.Count, sls.Today.Total,
		sls.Week.Count, sls.Week.Total,
		sls.Month.Count, sls.Month.Total)
	for i, rank := range sls.TopProducts {
		fmt.Printf("  top %d: %s x%d\n", i+1, rank.ProductName, rank.Quantity)
	}

	acc := a.Accounting.Stats()
	fmt.Printf("Receivables: %d pending (%s), %d partial (%s), %d paid (%s), %d overdue\n",
		acc.Pending.Count, acc.Pending.Amount,
		acc.Partial.Count, acc.Partial.Amount,
		acc.Paid.Count, acc.Paid.Amount,
		acc.OverdueInvoices)

	emp := a.Employees.Stats()
	fmt.Printf("Workforce: %d employees (%d active), payroll %s\n",
		emp.TotalEmployees, emp.ActiveEmployees, emp.TotalPayroll)
}
