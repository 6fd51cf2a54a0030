package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sioms-api/internal/domain/entity"
)

// MovementRequest body para POST/PUT de movimientos de stock.
// Type acepta los tipos canónicos (IN, OUT, TRANSFER, ADJUSTMENT) y los alias
// heredados (Purchase, Sale, Adjustment-In, Adjustment-Out, Return, Damaged,
// Expired); se persiste siempre el tipo canónico.
type MovementRequest struct {
	ProductID           string           `json:"product_id"`
	Type                string           `json:"type"`
	Quantity            int              `json:"quantity"`
	UnitPrice           *decimal.Decimal `json:"unit_price,omitempty"`
	ReferenceNumber     string           `json:"reference_number,omitempty"`
	Notes               string           `json:"notes,omitempty"`
	MovementDate        *time.Time       `json:"movement_date,omitempty"`
	SourceLocation      string           `json:"source_location,omitempty"`
	DestinationLocation string           `json:"destination_location,omitempty"`
}

// MovementResponse movimiento persistido.
type MovementResponse struct {
	ID                  string           `json:"id"`
	ProductID           string           `json:"product_id"`
	Type                string           `json:"type"`
	Quantity            int              `json:"quantity"`
	UnitPrice           *decimal.Decimal `json:"unit_price,omitempty"`
	ReferenceNumber     string           `json:"reference_number,omitempty"`
	Notes               string           `json:"notes,omitempty"`
	MovementDate        time.Time        `json:"movement_date"`
	SourceLocation      string           `json:"source_location,omitempty"`
	DestinationLocation string           `json:"destination_location,omitempty"`
	CreatedBy           string           `json:"created_by,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
}

// ToMovementResponse convierte la entidad al DTO de respuesta.
func ToMovementResponse(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:                  m.ID,
		ProductID:           m.ProductID,
		Type:                m.MovementType,
		Quantity:            m.Quantity,
		UnitPrice:           m.UnitPrice,
		ReferenceNumber:     m.ReferenceNumber,
		Notes:               m.Notes,
		MovementDate:        m.MovementDate,
		SourceLocation:      m.SourceLocation,
		DestinationLocation: m.DestinationLocation,
		CreatedBy:           m.CreatedBy,
		CreatedAt:           m.CreatedAt,
	}
}

// ToMovementResponses convierte una lista de entidades.
func ToMovementResponses(movements []*entity.StockMovement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToMovementResponse(m))
	}
	return out
}

// MovementSummaryResponse totales para un rango de fechas.
type MovementSummaryResponse struct {
	TotalMovements   int             `json:"total_movements"`
	TotalInQuantity  int             `json:"total_in_quantity"`
	TotalOutQuantity int             `json:"total_out_quantity"`
	TotalInValue     decimal.Decimal `json:"total_in_value"`
	TotalOutValue    decimal.Decimal `json:"total_out_value"`
	MovementsByType  map[string]int  `json:"movements_by_type"`
}
