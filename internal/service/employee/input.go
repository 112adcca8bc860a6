package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/domain"
)

// EmployeeInput carries the fields of an employee create or update.
type EmployeeInput struct {
	Name         string
	Document     string
	Email        string
	Phone        string
	Role         string
	Department   string
	ContractType string
	Salary       decimal.Decimal
	HireDate     time.Time
}

func (in EmployeeInput) validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(in.Document) == "" {
		errs = append(errs, domain.FieldError{Field: "document", Message: "required"})
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(in.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be an email address"})
	}
	if strings.TrimSpace(in.Role) == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	}
	if in.Salary.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "salary", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (in EmployeeInput) payload() backend.EmployeePayload {
	return backend.EmployeePayload{
		Name:         strings.TrimSpace(in.Name),
		Document:     strings.TrimSpace(in.Document),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         strings.TrimSpace(in.Role),
		Department:   strings.TrimSpace(in.Department),
		ContractType: strings.TrimSpace(in.ContractType),
		Salary:       in.Salary,
		HireDate:     in.HireDate,
	}
}
