package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sioms-api/internal/application/inventory"
	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// SalesOrderUseCase ciclo de vida de órdenes de venta. La completación
// (Pending → Completed) verifica stock disponible, resta la cantidad y registra
// el movimiento OUT a través del motor de reconciliación, atómicamente.
type SalesOrderUseCase struct {
	txRunner    TxRunner
	engine      *inventory.ReconcileUseCase
	soRepo      repository.SalesOrderRepository
	productRepo repository.ProductRepository
}

// NewSalesOrderUseCase construye el caso de uso.
func NewSalesOrderUseCase(
	txRunner TxRunner,
	engine *inventory.ReconcileUseCase,
	soRepo repository.SalesOrderRepository,
	productRepo repository.ProductRepository,
) *SalesOrderUseCase {
	return &SalesOrderUseCase{
		txRunner:    txRunner,
		engine:      engine,
		soRepo:      soRepo,
		productRepo: productRepo,
	}
}

// SalesOrderInput entrada para crear o editar una orden de venta.
type SalesOrderInput struct {
	ProductID     string
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Quantity      int
	UnitPrice     decimal.Decimal
	OrderDate     *time.Time // nil = ahora
	Notes         string
	CreatedBy     string
}

func (in SalesOrderInput) validate() error {
	if in.ProductID == "" || in.CustomerName == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || !in.UnitPrice.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea una orden de venta en estado Pending. No afecta stock: la
// reserva efectiva ocurre al completar la orden.
func (uc *SalesOrderUseCase) Create(_ context.Context, in SalesOrderInput) (*entity.SalesOrder, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	orderDate := now
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}
	order := &entity.SalesOrder{
		ProductID:     in.ProductID,
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		TotalAmount:   in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:        entity.SalesOrderStatusPending,
		OrderDate:     orderDate,
		Notes:         in.Notes,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     now,
	}
	if err := uc.soRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID obtiene una orden de venta.
func (uc *SalesOrderUseCase) GetByID(_ context.Context, id string) (*entity.SalesOrder, error) {
	order, err := uc.soRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List lista órdenes de venta, más recientes primero.
func (uc *SalesOrderUseCase) List(_ context.Context, limit, offset int) ([]*entity.SalesOrder, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	return uc.soRepo.List(limit, offset)
}

// Update edita una orden de venta. Solo mientras está Pending.
func (uc *SalesOrderUseCase) Update(_ context.Context, id string, in SalesOrderInput) (*entity.SalesOrder, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	order, err := uc.soRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.SalesOrderStatusPending {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	order.ProductID = in.ProductID
	order.CustomerID = in.CustomerID
	order.CustomerName = in.CustomerName
	order.CustomerPhone = in.CustomerPhone
	order.CustomerEmail = in.CustomerEmail
	order.Quantity = in.Quantity
	order.UnitPrice = in.UnitPrice
	order.TotalAmount = in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
	if in.OrderDate != nil {
		order.OrderDate = *in.OrderDate
	}
	order.Notes = in.Notes
	order.UpdatedAt = &now
	if err := uc.soRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete elimina una orden de venta. Las completadas no se pueden borrar: su
// efecto ya está aplicado al stock.
func (uc *SalesOrderUseCase) Delete(_ context.Context, id string) error {
	order, err := uc.soRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.IsTerminal() {
		return domain.ErrConflict
	}
	return uc.soRepo.Delete(id)
}

// Cancel marca una orden Pending como Cancelled. No afecta stock.
func (uc *SalesOrderUseCase) Cancel(_ context.Context, id string) (*entity.SalesOrder, error) {
	order, err := uc.soRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.SalesOrderStatusPending {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	order.Status = entity.SalesOrderStatusCancelled
	order.UpdatedAt = &now
	if err := uc.soRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Complete completa la orden: verifica stock disponible con la fila del
// producto bloqueada, resta Quantity, marca Completed con fecha de entrega y
// registra el movimiento OUT con referencia a la orden. Si el stock no alcanza
// falla con domain.ErrInsufficientStock sin aplicar ningún efecto parcial.
func (uc *SalesOrderUseCase) Complete(ctx context.Context, id string, actor string) (*entity.SalesOrder, error) {
	var completed *entity.SalesOrder
	err := uc.txRunner.RunOrders(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.LowStockAlertRepository,
		_ repository.PurchaseOrderRepository,
		soRepo repository.SalesOrderRepository,
	) error {
		order, err := soRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.SalesOrderStatusPending {
			return domain.ErrConflict
		}

		product, err := productRepo.GetForUpdate(order.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.StockQuantity < order.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		order.Status = entity.SalesOrderStatusCompleted
		order.DeliveryDate = &now
		order.UpdatedAt = &now
		if err := soRepo.Update(order); err != nil {
			return err
		}

		unitPrice := order.UnitPrice
		_, err = uc.engine.ApplyMovementInTx(movRepo, productRepo, alertRepo, inventory.MovementInput{
			ProductID:       order.ProductID,
			MovementType:    entity.MovementTypeOUT,
			Quantity:        order.Quantity,
			UnitPrice:       &unitPrice,
			ReferenceNumber: "SO-" + order.ID,
			Notes:           "Completación de orden de venta",
			CreatedBy:       actor,
		})
		if err != nil {
			return err
		}
		completed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}
