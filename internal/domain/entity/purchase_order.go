package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. Received es terminal.
const (
	PurchaseOrderStatusPending  = "Pending"
	PurchaseOrderStatusReceived = "Received"
)

// PurchaseOrder orden de compra de un producto a un proveedor.
// Al recibirla (Pending → Received) el motor de reconciliación suma Quantity al
// stock del producto y registra un movimiento IN con referencia a la orden.
type PurchaseOrder struct {
	ID                   string
	ProductID            string
	SupplierID           string
	Quantity             int
	UnitPrice            decimal.Decimal
	TotalAmount          decimal.Decimal // Quantity * UnitPrice
	Status               string
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	Notes                string
	CreatedBy            string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// IsTerminal indica si la orden ya produjo su efecto de stock.
func (po *PurchaseOrder) IsTerminal() bool {
	return po.Status == PurchaseOrderStatusReceived
}
