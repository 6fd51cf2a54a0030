package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	dominv "github.com/jhoicas/sioms-api/internal/domain/inventory"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// ReconcileUseCase es el motor de reconciliación de stock: el único punto del
// sistema que aplica, revierte o reaplica el efecto de un movimiento sobre
// Product.StockQuantity. Todos los llamadores (CRUD de movimientos, ciclo de
// vida de órdenes) pasan por aquí; cada operación corre en una transacción con
// bloqueo de fila (SELECT FOR UPDATE) sobre el producto.
type ReconcileUseCase struct {
	txRunner TxRunner
}

// NewReconcileUseCase construye el motor.
func NewReconcileUseCase(txRunner TxRunner) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner}
}

// MovementInput entrada para crear o editar un movimiento de stock.
// MovementType acepta los tipos canónicos y los alias heredados; se persiste
// siempre el tipo canónico. Quantity debe ser positiva: el signo del efecto lo
// deriva la tabla de internal/domain/inventory.
type MovementInput struct {
	ProductID           string
	MovementType        string
	Quantity            int
	UnitPrice           *decimal.Decimal
	ReferenceNumber     string
	Notes               string
	MovementDate        *time.Time // nil = ahora
	SourceLocation      string
	DestinationLocation string
	CreatedBy           string
}

func (in MovementInput) validate() (canonical string, effect int, err error) {
	effect, err = dominv.Effect(in.MovementType, in.Quantity, in.SourceLocation, in.DestinationLocation)
	if err != nil {
		return "", 0, err
	}
	canonical, err = dominv.Normalize(in.MovementType)
	if err != nil {
		return "", 0, err
	}
	if in.ProductID == "" {
		return "", 0, domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return "", 0, domain.ErrInvalidInput
	}
	return canonical, effect, nil
}

// CreateMovement aplica el efecto del movimiento al producto, persiste ambos y
// evalúa stock bajo, todo en una sola transacción. Retorna domain.ErrNotFound
// si el producto no existe y domain.ErrInvalidInput ante tipo o cantidad inválidos.
func (uc *ReconcileUseCase) CreateMovement(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.LowStockAlertRepository,
	) error {
		var err error
		created, err = uc.ApplyMovementInTx(movRepo, productRepo, alertRepo, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ApplyMovementInTx aplica un movimiento usando repositorios ya atados a la
// transacción del llamador (mismo patrón que el ciclo de vida de órdenes, que
// registra su movimiento implícito dentro de su propia transacción). Bloquea la
// fila del producto, escribe la nueva cantidad, persiste el movimiento y evalúa
// stock bajo.
func (uc *ReconcileUseCase) ApplyMovementInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.LowStockAlertRepository,
	in MovementInput,
) (*entity.StockMovement, error) {
	canonical, effect, err := in.validate()
	if err != nil {
		return nil, err
	}
	product, err := productRepo.GetForUpdate(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	newQty := product.StockQuantity + effect
	if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
		return nil, err
	}

	now := time.Now()
	movementDate := now
	if in.MovementDate != nil {
		movementDate = *in.MovementDate
	}
	created := &entity.StockMovement{
		ProductID:           in.ProductID,
		MovementType:        canonical,
		Quantity:            in.Quantity,
		UnitPrice:           in.UnitPrice,
		ReferenceNumber:     in.ReferenceNumber,
		Notes:               in.Notes,
		MovementDate:        movementDate,
		SourceLocation:      in.SourceLocation,
		DestinationLocation: in.DestinationLocation,
		CreatedBy:           in.CreatedBy,
		CreatedAt:           now,
	}
	if err := movRepo.Create(created); err != nil {
		return nil, err
	}
	if err := evaluateLowStock(alertRepo, product, newQty); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateMovement revierte el efecto del movimiento existente y aplica el nuevo,
// de forma que editar un movimiento equivale a borrarlo y crearlo de nuevo con
// los campos nuevos. Soporta cambio de producto (revierte en el anterior y
// aplica en el nuevo). Retorna domain.ErrNotFound si el movimiento no existe.
func (uc *ReconcileUseCase) UpdateMovement(ctx context.Context, id string, in MovementInput) (*entity.StockMovement, error) {
	canonical, newEffect, err := in.validate()
	if err != nil {
		return nil, err
	}

	var updated *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.LowStockAlertRepository,
	) error {
		existing, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		oldEffect, err := dominv.EffectOf(existing)
		if err != nil {
			return err
		}

		if existing.ProductID == in.ProductID {
			product, err := productRepo.GetForUpdate(existing.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			newQty := product.StockQuantity - oldEffect + newEffect
			if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
				return err
			}
			if err := evaluateLowStock(alertRepo, product, newQty); err != nil {
				return err
			}
		} else {
			// El movimiento cambió de producto: revertir en el anterior y
			// aplicar en el nuevo, ambos bloqueados en la misma transacción.
			oldProduct, err := productRepo.GetForUpdate(existing.ProductID)
			if err != nil {
				return err
			}
			if oldProduct == nil {
				return domain.ErrNotFound
			}
			revertedQty := oldProduct.StockQuantity - oldEffect
			if err := productRepo.UpdateStock(oldProduct.ID, revertedQty); err != nil {
				return err
			}

			newProduct, err := productRepo.GetForUpdate(in.ProductID)
			if err != nil {
				return err
			}
			if newProduct == nil {
				return domain.ErrNotFound
			}
			appliedQty := newProduct.StockQuantity + newEffect
			if err := productRepo.UpdateStock(newProduct.ID, appliedQty); err != nil {
				return err
			}
			if err := evaluateLowStock(alertRepo, oldProduct, revertedQty); err != nil {
				return err
			}
			if err := evaluateLowStock(alertRepo, newProduct, appliedQty); err != nil {
				return err
			}
		}

		existing.ProductID = in.ProductID
		existing.MovementType = canonical
		existing.Quantity = in.Quantity
		existing.UnitPrice = in.UnitPrice
		existing.ReferenceNumber = in.ReferenceNumber
		existing.Notes = in.Notes
		if in.MovementDate != nil {
			existing.MovementDate = *in.MovementDate
		}
		existing.SourceLocation = in.SourceLocation
		existing.DestinationLocation = in.DestinationLocation
		if err := movRepo.Update(existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMovement revierte el efecto del movimiento sobre el producto y elimina
// la fila del libro. Retorna domain.ErrNotFound si el movimiento no existe.
func (uc *ReconcileUseCase) DeleteMovement(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.LowStockAlertRepository,
	) error {
		existing, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		effect, err := dominv.EffectOf(existing)
		if err != nil {
			return err
		}
		product, err := productRepo.GetForUpdate(existing.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newQty := product.StockQuantity - effect
		if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
			return err
		}
		if err := movRepo.Delete(existing.ID); err != nil {
			return err
		}
		// Revertir una entrada puede dejar el producto bajo el mínimo
		return evaluateLowStock(alertRepo, product, newQty)
	})
}

// evaluateLowStock crea una alerta si la cantidad observada queda en o por
// debajo del mínimo (con mínimo > 0) y no existe ya una alerta sin resolver
// para el producto. No resuelve alertas automáticamente cuando el stock sube:
// la resolución es una acción explícita del usuario.
func evaluateLowStock(alertRepo repository.LowStockAlertRepository, product *entity.Product, quantity int) error {
	if product.MinimumStockLevel <= 0 || quantity > product.MinimumStockLevel {
		return nil
	}
	exists, err := alertRepo.HasUnresolved(product.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return alertRepo.Create(&entity.LowStockAlert{
		ProductID:         product.ID,
		ProductName:       product.Name,
		CurrentStock:      quantity,
		MinimumStockLevel: product.MinimumStockLevel,
		AlertDate:         time.Now(),
		IsResolved:        false,
	})
}
