package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/domain"
)

type rawSale struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Items         []rawSaleItem   `json:"items"`
	Total         decimal.Decimal `json:"total"`
	TotalItems    int             `json:"totalItems"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type rawSaleItem struct {
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SalePayload is the body of a sale registration call.
type SalePayload struct {
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone,omitempty"`
	Items         []SaleItemPayload `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	TotalItems    int               `json:"totalItems"`
	PaymentMethod string            `json:"paymentMethod"`
}

type SaleItemPayload struct {
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Size        string          `json:"size,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ListSales fetches the full sales collection.
func (c *Client) ListSales(ctx context.Context) ([]domain.Sale, error) {
	var raw []rawSale
	if err := c.do(ctx, http.MethodGet, "/sales", nil, &raw); err != nil {
		return nil, err
	}
	sales := make([]domain.Sale, len(raw))
	for i, r := range raw {
		sales[i] = mapSale(r)
	}
	return sales, nil
}

// CreateSale registers a sale and returns it with its assigned ID.
func (c *Client) CreateSale(ctx context.Context, payload SalePayload) (domain.Sale, error) {
	var raw rawSale
	if err := c.do(ctx, http.MethodPost, "/sales", payload, &raw); err != nil {
		return domain.Sale{}, err
	}
	return mapSale(raw), nil
}

// DeleteSale hard-removes a cancelled sale.
func (c *Client) DeleteSale(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/sales/%d", id), nil, nil)
}

func mapSale(r rawSale) domain.Sale {
	items := make([]domain.SaleItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.SaleItem{
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Size:        it.Size,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		}
	}
	return domain.Sale{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Items:         items,
		Total:         r.Total,
		TotalItems:    r.TotalItems,
		PaymentMethod: r.PaymentMethod,
		CreatedAt:     r.CreatedAt,
	}
}
