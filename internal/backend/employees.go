package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/domain"
)

type rawEmployee struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Document     string          `json:"document"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Role         string          `json:"role"`
	Department   string          `json:"department"`
	ContractType string          `json:"contractType"`
	Salary       decimal.Decimal `json:"salary"`
	Status       string          `json:"status"`
	HireDate     time.Time       `json:"hireDate"`
}

// EmployeePayload is the body of an employee create/update call.
type EmployeePayload struct {
	Name         string          `json:"name"`
	Document     string          `json:"document"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	Role         string          `json:"role"`
	Department   string          `json:"department,omitempty"`
	ContractType string          `json:"contractType,omitempty"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     time.Time       `json:"hireDate"`
}

// ListEmployees fetches the full employee collection.
func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var raw []rawEmployee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &raw); err != nil {
		return nil, err
	}
	employees := make([]domain.Employee, len(raw))
	for i, r := range raw {
		employees[i] = mapEmployee(r)
	}
	return employees, nil
}

// CreateEmployee creates an employee and returns it with its assigned ID.
func (c *Client) CreateEmployee(ctx context.Context, payload EmployeePayload) (domain.Employee, error) {
	var raw rawEmployee
	if err := c.do(ctx, http.MethodPost, "/employees", payload, &raw); err != nil {
		return domain.Employee{}, err
	}
	return mapEmployee(raw), nil
}

// UpdateEmployee replaces an employee wholesale.
func (c *Client) UpdateEmployee(ctx context.Context, id int64, payload EmployeePayload) (domain.Employee, error) {
	var raw rawEmployee
	path := fmt.Sprintf("/employees/%d", id)
	if err := c.do(ctx, http.MethodPut, path, payload, &raw); err != nil {
		return domain.Employee{}, err
	}
	return mapEmployee(raw), nil
}

// PatchEmployee flips individual fields (deactivation flips status) and
// returns the updated record.
func (c *Client) PatchEmployee(ctx context.Context, id int64, fields map[string]any) (domain.Employee, error) {
	var raw rawEmployee
	path := fmt.Sprintf("/employees/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, fields, &raw); err != nil {
		return domain.Employee{}, err
	}
	return mapEmployee(raw), nil
}

func mapEmployee(r rawEmployee) domain.Employee {
	status := domain.EmployeeStatus(r.Status)
	if status == "" {
		status = domain.EmployeeActive
	}
	return domain.Employee{
		ID:           r.ID,
		Name:         r.Name,
		Document:     r.Document,
		Email:        r.Email,
		Phone:        r.Phone,
		Role:         r.Role,
		Department:   r.Department,
		ContractType: r.ContractType,
		Salary:       r.Salary,
		Status:       status,
		HireDate:     r.HireDate,
	}
}
