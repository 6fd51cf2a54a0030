package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sioms-api/internal/domain/entity"
)

// ProductRequest body para crear o editar un producto.
type ProductRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	SKU               string          `json:"sku"`
	CategoryID        string          `json:"category_id"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	BuyingPrice       decimal.Decimal `json:"buying_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	StockQuantity     int             `json:"stock_quantity"`
	MinimumStockLevel int             `json:"minimum_stock_level"`
	IsActive          bool            `json:"is_active"`
}

// ProductResponse producto persistido.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	SKU               string          `json:"sku"`
	CategoryID        string          `json:"category_id"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	BuyingPrice       decimal.Decimal `json:"buying_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	StockQuantity     int             `json:"stock_quantity"`
	MinimumStockLevel int             `json:"minimum_stock_level"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ToProductResponse convierte la entidad al DTO de respuesta.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		SKU:               p.SKU,
		CategoryID:        p.CategoryID,
		SupplierID:        p.SupplierID,
		BuyingPrice:       p.BuyingPrice,
		SellingPrice:      p.SellingPrice,
		StockQuantity:     p.StockQuantity,
		MinimumStockLevel: p.MinimumStockLevel,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
	}
}

// ToProductResponses convierte una lista de entidades.
func ToProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
