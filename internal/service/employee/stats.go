package employee

import (
	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/domain"
)

// Stats is the workforce summary. Payroll covers active employees only; the
// histograms skip records with an empty value for the grouped field.
type Stats struct {
	TotalEmployees      int
	ActiveEmployees     int
	InactiveEmployees   int
	OnVacationEmployees int
	SuspendedEmployees  int

	TotalPayroll decimal.Decimal

	Departments   map[string]int
	Roles         map[string]int
	ContractTypes map[string]int
}

// Aggregate computes the workforce summary over a record snapshot.
func Aggregate(employees []domain.Employee) Stats {
	stats := Stats{
		TotalPayroll:  decimal.Zero,
		Departments:   map[string]int{},
		Roles:         map[string]int{},
		ContractTypes: map[string]int{},
	}

	for _, e := range employees {
		stats.TotalEmployees++

		switch e.Status {
		case domain.EmployeeActive:
			stats.ActiveEmployees++
			stats.TotalPayroll = stats.TotalPayroll.Add(e.Salary)
		case domain.EmployeeInactive:
			stats.InactiveEmployees++
		case domain.EmployeeVacation:
			stats.OnVacationEmployees++
		case domain.EmployeeSuspended:
			stats.SuspendedEmployees++
		}

		if e.Department != "" {
			stats.Departments[e.Department]++
		}
		if e.Role != "" {
			stats.Roles[e.Role]++
		}
		if e.ContractType != "" {
			stats.ContractTypes[e.ContractType]++
		}
	}

	return stats
}

// Stats aggregates the full collection.
func (s *Service) Stats() Stats {
	return Aggregate(s.employees.All())
}
