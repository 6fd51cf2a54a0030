package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// StockQuantity es la cantidad actual y solo se modifica a través del motor de
// reconciliación (movimientos y órdenes) o por edición administrativa directa.
type Product struct {
	ID                string
	Name              string
	Description       string
	SKU               string // código único
	CategoryID        string
	SupplierID        string // opcional (vacío = sin proveedor)
	BuyingPrice       decimal.Decimal
	SellingPrice      decimal.Decimal
	StockQuantity     int // cantidad actual en unidades enteras
	MinimumStockLevel int // umbral de alerta; 0 = sin alerta
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
