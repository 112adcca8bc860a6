package domain

// Enumerations shared by the retail domains. Values match what the data
// backend sends on the wire.
const (
	StockOut  StockStatus = "out"
	StockLow  StockStatus = "low"
	StockGood StockStatus = "good"

	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePartial   InvoiceStatus = "PARTIAL"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"

	EmployeeActive    EmployeeStatus = "ACTIVE"
	EmployeeInactive  EmployeeStatus = "INACTIVE"
	EmployeeVacation  EmployeeStatus = "VACATION"
	EmployeeSuspended EmployeeStatus = "SUSPENDED"
)

type StockStatus string
type InvoiceStatus string
type EmployeeStatus string
