// Package inventory contiene las reglas puras del motor de reconciliación:
// normalización de tipos de movimiento y derivación del efecto con signo que un
// movimiento aplica sobre el stock de un producto.
package inventory

import (
	"strings"

	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
)

// aliasTable mapea los vocabularios heredados del sistema anterior al tipo
// canónico que preserva su efecto. Adjustment-Out no puede mapear a ADJUSTMENT
// (que siempre suma), así que se normaliza a OUT.
var aliasTable = map[string]string{
	"IN":             entity.MovementTypeIN,
	"OUT":            entity.MovementTypeOUT,
	"TRANSFER":       entity.MovementTypeTRANSFER,
	"ADJUSTMENT":     entity.MovementTypeADJUSTMENT,
	"PURCHASE":       entity.MovementTypeIN,
	"RETURN":         entity.MovementTypeIN,
	"ADJUSTMENT-IN":  entity.MovementTypeADJUSTMENT,
	"SALE":           entity.MovementTypeOUT,
	"DAMAGED":        entity.MovementTypeOUT,
	"EXPIRED":        entity.MovementTypeOUT,
	"ADJUSTMENT-OUT": entity.MovementTypeOUT,
}

// Normalize convierte un tipo de movimiento (canónico o alias heredado, sin
// distinguir mayúsculas) al tipo canónico. Un tipo no reconocido retorna
// domain.ErrInvalidInput en lugar de ignorarse silenciosamente.
func Normalize(movementType string) (string, error) {
	canonical, ok := aliasTable[strings.ToUpper(strings.TrimSpace(movementType))]
	if !ok {
		return "", domain.ErrInvalidInput
	}
	return canonical, nil
}

// Effect deriva el efecto con signo que un movimiento aplica al stock:
//
//	IN, ADJUSTMENT                → +quantity
//	OUT                           → -quantity
//	TRANSFER con destino definido → +quantity (el destino gana si hay ambos)
//	TRANSFER con origen definido  → -quantity
//
// quantity debe ser positiva. Acepta alias heredados vía Normalize.
func Effect(movementType string, quantity int, sourceLocation, destinationLocation string) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	canonical, err := Normalize(movementType)
	if err != nil {
		return 0, err
	}
	switch canonical {
	case entity.MovementTypeIN, entity.MovementTypeADJUSTMENT:
		return quantity, nil
	case entity.MovementTypeOUT:
		return -quantity, nil
	case entity.MovementTypeTRANSFER:
		if destinationLocation != "" {
			return quantity, nil
		}
		if sourceLocation != "" {
			return -quantity, nil
		}
		// TRANSFER sin ubicaciones no tiene efecto derivable
		return 0, domain.ErrInvalidInput
	}
	return 0, domain.ErrInvalidInput
}

// EffectOf deriva el efecto de un movimiento ya persistido (tipo canónico).
// Se usa para revertir el efecto anterior en ediciones y borrados.
func EffectOf(m *entity.StockMovement) (int, error) {
	return Effect(m.MovementType, m.Quantity, m.SourceLocation, m.DestinationLocation)
}
