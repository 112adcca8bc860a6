package employee

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/domain"
)

func TestAggregateStatusCountsAndPayroll(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, Status: domain.EmployeeActive, Salary: decimal.NewFromInt(1000)},
		{ID: 2, Status: domain.EmployeeActive, Salary: decimal.NewFromInt(1500)},
		{ID: 3, Status: domain.EmployeeInactive, Salary: decimal.NewFromInt(900)},
		{ID: 4, Status: domain.EmployeeVacation, Salary: decimal.NewFromInt(1100)},
		{ID: 5, Status: domain.EmployeeSuspended, Salary: decimal.NewFromInt(800)},
	}

	stats := Aggregate(employees)

	if stats.TotalEmployees != 5 {
		t.Errorf("total: got %d, want 5", stats.TotalEmployees)
	}
	if stats.ActiveEmployees != 2 || stats.InactiveEmployees != 1 ||
		stats.OnVacationEmployees != 1 || stats.SuspendedEmployees != 1 {
		t.Errorf("status counts: %+v", stats)
	}
	// Only active salaries count toward payroll.
	if want := decimal.NewFromInt(2500); !stats.TotalPayroll.Equal(want) {
		t.Errorf("payroll: got %s, want %s", stats.TotalPayroll, want)
	}
}

func TestAggregateHistogramsSkipEmptyValues(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, Department: "ventas", Role: "vendedor", ContractType: "indefinido", Status: domain.EmployeeActive},
		{ID: 2, Department: "ventas", Role: "cajero", Status: domain.EmployeeActive},
		{ID: 3, Role: "vendedor", ContractType: "temporal", Status: domain.EmployeeActive},
	}

	stats := Aggregate(employees)

	if got := stats.Departments["ventas"]; got != 2 {
		t.Errorf("departments: %+v", stats.Departments)
	}
	if _, ok := stats.Departments[""]; ok {
		t.Error("empty department must not appear in the histogram")
	}
	if got := stats.Roles["vendedor"]; got != 2 {
		t.Errorf("roles: %+v", stats.Roles)
	}
	if len(stats.ContractTypes) != 2 {
		t.Errorf("contract types: %+v", stats.ContractTypes)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)

	if stats.TotalEmployees != 0 || !stats.TotalPayroll.Equal(decimal.Zero) {
		t.Errorf("stats: %+v", stats)
	}
	if len(stats.Departments) != 0 || len(stats.Roles) != 0 || len(stats.ContractTypes) != 0 {
		t.Errorf("histograms: %+v", stats)
	}
}

func TestStatsIgnoreActiveFilters(t *testing.T) {
	mock := &mockEmployeeBackend{}
	svc := newTestService(t, mock)
	seed(t, svc, mock, []domain.Employee{
		{ID: 1, Name: "Ana", Status: domain.EmployeeActive, Salary: decimal.NewFromInt(1000)},
		{ID: 2, Name: "Luis", Status: domain.EmployeeInactive, Salary: decimal.NewFromInt(900)},
	})

	svc.SetFilter("status", string(domain.EmployeeActive))
	if got := len(svc.Filtered()); got != 1 {
		t.Fatalf("filtered: got %d records, want 1", got)
	}

	stats := svc.Stats()
	if stats.TotalEmployees != 2 {
		t.Errorf("stats must cover the full collection: got %d, want 2", stats.TotalEmployees)
	}
}
