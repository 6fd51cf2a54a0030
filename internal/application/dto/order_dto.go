package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sioms-api/internal/domain/entity"
)

// PurchaseOrderRequest body para crear o editar una orden de compra.
type PurchaseOrderRequest struct {
	ProductID            string          `json:"product_id"`
	SupplierID           string          `json:"supplier_id"`
	Quantity             int             `json:"quantity"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	OrderDate            *time.Time      `json:"order_date,omitempty"`
	ExpectedDeliveryDate *time.Time      `json:"expected_delivery_date,omitempty"`
	Notes                string          `json:"notes,omitempty"`
}

// PurchaseOrderResponse orden de compra persistida.
type PurchaseOrderResponse struct {
	ID                   string          `json:"id"`
	ProductID            string          `json:"product_id"`
	SupplierID           string          `json:"supplier_id"`
	Quantity             int             `json:"quantity"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	Status               string          `json:"status"`
	OrderDate            time.Time       `json:"order_date"`
	ExpectedDeliveryDate *time.Time      `json:"expected_delivery_date,omitempty"`
	ActualDeliveryDate   *time.Time      `json:"actual_delivery_date,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	CreatedBy            string          `json:"created_by,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

// ToPurchaseOrderResponse convierte la entidad al DTO de respuesta.
func ToPurchaseOrderResponse(po *entity.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:                   po.ID,
		ProductID:            po.ProductID,
		SupplierID:           po.SupplierID,
		Quantity:             po.Quantity,
		UnitPrice:            po.UnitPrice,
		TotalAmount:          po.TotalAmount,
		Status:               po.Status,
		OrderDate:            po.OrderDate,
		ExpectedDeliveryDate: po.ExpectedDeliveryDate,
		ActualDeliveryDate:   po.ActualDeliveryDate,
		Notes:                po.Notes,
		CreatedBy:            po.CreatedBy,
		CreatedAt:            po.CreatedAt,
	}
}

// SalesOrderRequest body para crear o editar una orden de venta.
type SalesOrderRequest struct {
	ProductID     string          `json:"product_id"`
	CustomerID    string          `json:"customer_id,omitempty"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	OrderDate     *time.Time      `json:"order_date,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// SalesOrderResponse orden de venta persistida.
type SalesOrderResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	CustomerID    string          `json:"customer_id,omitempty"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	OrderDate     time.Time       `json:"order_date"`
	DeliveryDate  *time.Time      `json:"delivery_date,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToSalesOrderResponse convierte la entidad al DTO de respuesta.
func ToSalesOrderResponse(so *entity.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		ID:            so.ID,
		ProductID:     so.ProductID,
		CustomerID:    so.CustomerID,
		CustomerName:  so.CustomerName,
		CustomerPhone: so.CustomerPhone,
		CustomerEmail: so.CustomerEmail,
		Quantity:      so.Quantity,
		UnitPrice:     so.UnitPrice,
		TotalAmount:   so.TotalAmount,
		Status:        so.Status,
		OrderDate:     so.OrderDate,
		DeliveryDate:  so.DeliveryDate,
		Notes:         so.Notes,
		CreatedBy:     so.CreatedBy,
		CreatedAt:     so.CreatedAt,
	}
}
