package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos canónicos de movimiento de stock. Los alias heredados del sistema
// anterior (Purchase, Sale, Adjustment-In, etc.) se normalizan a estos cuatro
// en internal/domain/inventory antes de persistir.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre ubicaciones
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual (suma)
)

// StockMovement representa una entrada del libro de movimientos de stock.
// Quantity siempre se almacena positiva; el signo del efecto sobre el producto
// se deriva del tipo y, para TRANSFER, de las ubicaciones origen/destino.
type StockMovement struct {
	ID                  string
	ProductID           string
	MovementType        string // canónico: IN, OUT, TRANSFER, ADJUSTMENT
	Quantity            int    // siempre positiva
	UnitPrice           *decimal.Decimal
	ReferenceNumber     string // N° de PO, SO, nota de ajuste, etc.
	Notes               string
	MovementDate        time.Time
	SourceLocation      string // solo TRANSFER
	DestinationLocation string // solo TRANSFER
	CreatedBy           string // UserID, opcional
	CreatedAt           time.Time
}

// MovementSummary totales de movimientos para un rango de fechas.
type MovementSummary struct {
	TotalMovements   int
	TotalInQuantity  int
	TotalOutQuantity int
	TotalInValue     decimal.Decimal
	TotalOutValue    decimal.Decimal
	MovementsByType  map[string]int // cantidad total por tipo canónico
}
