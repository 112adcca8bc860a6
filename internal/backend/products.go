package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/domain"
)

// rawProduct is the wire shape of a product. Optional fields the backend
// omits decode to their zero values, which is exactly the defaulting rule the
// domain expects.
type rawProduct struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	Sizes         []rawSizeStock  `json:"sizes"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	MinStock      int             `json:"minStock"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type rawSizeStock struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// ProductPayload is the body of a product create/update call. The backend
// assigns the ID and the creation timestamp.
type ProductPayload struct {
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	Brand         string             `json:"brand,omitempty"`
	Category      string             `json:"category"`
	Sizes         []SizeStockPayload `json:"sizes"`
	PurchasePrice decimal.Decimal    `json:"purchasePrice"`
	SalePrice     decimal.Decimal    `json:"salePrice"`
	MinStock      int                `json:"minStock"`
}

type SizeStockPayload struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// ListProducts fetches the full product collection.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var raw []rawProduct
	if err := c.do(ctx, http.MethodGet, "/products", nil, &raw); err != nil {
		return nil, err
	}
	products := make([]domain.Product, len(raw))
	for i, r := range raw {
		products[i] = mapProduct(r)
	}
	return products, nil
}

// CreateProduct creates a product and returns it with its assigned ID.
func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (domain.Product, error) {
	var raw rawProduct
	if err := c.do(ctx, http.MethodPost, "/products", payload, &raw); err != nil {
		return domain.Product{}, err
	}
	return mapProduct(raw), nil
}

// UpdateProduct replaces a product wholesale.
func (c *Client) UpdateProduct(ctx context.Context, id int64, payload ProductPayload) (domain.Product, error) {
	var raw rawProduct
	path := fmt.Sprintf("/products/%d", id)
	if err := c.do(ctx, http.MethodPut, path, payload, &raw); err != nil {
		return domain.Product{}, err
	}
	return mapProduct(raw), nil
}

// PatchProduct flips individual fields (soft delete flips isActive) and
// returns the updated record.
func (c *Client) PatchProduct(ctx context.Context, id int64, fields map[string]any) (domain.Product, error) {
	var raw rawProduct
	path := fmt.Sprintf("/products/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, fields, &raw); err != nil {
		return domain.Product{}, err
	}
	return mapProduct(raw), nil
}

func mapProduct(r rawProduct) domain.Product {
	sizes := make([]domain.SizeStock, len(r.Sizes))
	for i, s := range r.Sizes {
		sizes[i] = domain.SizeStock{Size: s.Size, Quantity: s.Quantity}
	}
	return domain.Product{
		ID:            r.ID,
		Code:          r.Code,
		Name:          r.Name,
		Brand:         r.Brand,
		Category:      r.Category,
		Sizes:         sizes,
		PurchasePrice: r.PurchasePrice,
		SalePrice:     r.SalePrice,
		MinStock:      r.MinStock,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
	}
}
