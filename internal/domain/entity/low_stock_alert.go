package entity

import "time"

// LowStockAlert alerta de stock bajo para un producto.
// Se crea cuando el stock observado queda en o por debajo del mínimo; debe existir
// como máximo una alerta sin resolver por producto. La resolución es siempre una
// acción explícita, nunca automática al subir el stock.
type LowStockAlert struct {
	ID                string
	ProductID         string
	ProductName       string // snapshot al momento de la alerta
	CurrentStock      int
	MinimumStockLevel int // snapshot del umbral
	AlertDate         time.Time
	IsResolved        bool
	ResolvedDate      *time.Time
	Notes             string
}
