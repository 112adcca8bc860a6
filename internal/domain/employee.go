package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is one staff record. Deactivation flips Status to INACTIVE rather
// than removing the record.
type Employee struct {
	ID           int64
	Name         string
	Document     string
	Email        string
	Phone        string
	Role         string
	Department   string
	ContractType string
	Salary       decimal.Decimal
	Status       EmployeeStatus
	HireDate     time.Time
}

// RecordID returns the backend-assigned identity.
func (e Employee) RecordID() int64 { return e.ID }

// TenureYears is the number of whole years of service as of the given instant.
// Negative values are clamped to zero for hire dates in the future.
func (e Employee) TenureYears(asOf time.Time) int {
	years := asOf.Year() - e.HireDate.Year()
	anniversary := e.HireDate.AddDate(years, 0, 0)
	if anniversary.After(asOf) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// SearchText implements Filterable.
func (e Employee) SearchText() []string {
	return []string{e.Name, e.Document, e.Email, e.Phone, e.Role}
}

// FilterValue implements Filterable.
func (e Employee) FilterValue(key string) (string, bool) {
	switch key {
	case "status":
		return string(e.Status), true
	case "department":
		return e.Department, true
	case "role":
		return e.Role, true
	case "contractType":
		return e.ContractType, true
	default:
		return "", false
	}
}

// FilterDate implements Filterable.
func (e Employee) FilterDate() time.Time { return e.HireDate }
