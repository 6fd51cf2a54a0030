package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta. Completed es terminal; Cancelled no afecta stock.
const (
	SalesOrderStatusPending   = "Pending"
	SalesOrderStatusCompleted = "Completed"
	SalesOrderStatusCancelled = "Cancelled"
)

// SalesOrder orden de venta de un producto a un cliente.
// Al completarla (Pending → Completed) el motor de reconciliación verifica stock
// disponible, resta Quantity y registra un movimiento OUT con referencia a la orden.
type SalesOrder struct {
	ID            string
	ProductID     string
	CustomerID    string // opcional; los datos de contacto se guardan como snapshot
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Quantity      int
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal // Quantity * UnitPrice
	Status        string
	OrderDate     time.Time
	DeliveryDate  *time.Time
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// IsTerminal indica si la orden ya produjo su efecto de stock.
func (so *SalesOrder) IsTerminal() bool {
	return so.Status == SalesOrderStatusCompleted
}
