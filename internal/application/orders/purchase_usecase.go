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

// PurchaseOrderUseCase ciclo de vida de órdenes de compra. La recepción
// (Pending → Received) registra siempre su movimiento IN a través del motor de
// reconciliación, en la misma transacción que el cambio de estado.
type PurchaseOrderUseCase struct {
	txRunner     TxRunner
	engine       *inventory.ReconcileUseCase
	poRepo       repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner TxRunner,
	engine *inventory.ReconcileUseCase,
	poRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:     txRunner,
		engine:       engine,
		poRepo:       poRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// PurchaseOrderInput entrada para crear o editar una orden de compra.
type PurchaseOrderInput struct {
	ProductID            string
	SupplierID           string
	Quantity             int
	UnitPrice            decimal.Decimal
	OrderDate            *time.Time // nil = ahora
	ExpectedDeliveryDate *time.Time
	Notes                string
	CreatedBy            string
}

func (in PurchaseOrderInput) validate() error {
	if in.ProductID == "" || in.SupplierID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || !in.UnitPrice.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea una orden de compra en estado Pending. No afecta stock.
func (uc *PurchaseOrderUseCase) Create(_ context.Context, in PurchaseOrderInput) (*entity.PurchaseOrder, error) {
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
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	orderDate := now
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}
	order := &entity.PurchaseOrder{
		ProductID:            in.ProductID,
		SupplierID:           in.SupplierID,
		Quantity:             in.Quantity,
		UnitPrice:            in.UnitPrice,
		TotalAmount:          in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:               entity.PurchaseOrderStatusPending,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		Notes:                in.Notes,
		CreatedBy:            in.CreatedBy,
		CreatedAt:            now,
	}
	if err := uc.poRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID obtiene una orden de compra.
func (uc *PurchaseOrderUseCase) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	order, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List lista órdenes de compra, más recientes primero.
func (uc *PurchaseOrderUseCase) List(_ context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	return uc.poRepo.List(limit, offset)
}

// Update edita una orden de compra. Solo se permite mientras está Pending:
// editar una orden ya recibida desincronizaría el efecto aplicado al stock.
func (uc *PurchaseOrderUseCase) Update(_ context.Context, id string, in PurchaseOrderInput) (*entity.PurchaseOrder, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	order, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.IsTerminal() {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	order.ProductID = in.ProductID
	order.SupplierID = in.SupplierID
	order.Quantity = in.Quantity
	order.UnitPrice = in.UnitPrice
	order.TotalAmount = in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
	if in.OrderDate != nil {
		order.OrderDate = *in.OrderDate
	}
	order.ExpectedDeliveryDate = in.ExpectedDeliveryDate
	order.Notes = in.Notes
	order.UpdatedAt = &now
	if err := uc.poRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete elimina una orden de compra. Las órdenes recibidas no se pueden
// borrar: su efecto ya está aplicado al stock y quedaría huérfano.
func (uc *PurchaseOrderUseCase) Delete(_ context.Context, id string) error {
	order, err := uc.poRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.IsTerminal() {
		return domain.ErrConflict
	}
	return uc.poRepo.Delete(id)
}

// Receive recibe la orden: Pending → Received, sella la fecha real de entrega,
// suma Quantity al stock del producto y registra el movimiento IN con
// referencia a la orden. Todo en una sola transacción con la fila de la orden
// y la del producto bloqueadas.
func (uc *PurchaseOrderUseCase) Receive(ctx context.Context, id string, actor string) (*entity.PurchaseOrder, error) {
	var received *entity.PurchaseOrder
	err := uc.txRunner.RunOrders(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.LowStockAlertRepository,
		poRepo repository.PurchaseOrderRepository,
		_ repository.SalesOrderRepository,
	) error {
		order, err := poRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.PurchaseOrderStatusPending {
			return domain.ErrConflict
		}

		now := time.Now()
		order.Status = entity.PurchaseOrderStatusReceived
		order.ActualDeliveryDate = &now
		order.UpdatedAt = &now
		if err := poRepo.Update(order); err != nil {
			return err
		}

		unitPrice := order.UnitPrice
		_, err = uc.engine.ApplyMovementInTx(movRepo, productRepo, alertRepo, inventory.MovementInput{
			ProductID:       order.ProductID,
			MovementType:    entity.MovementTypeIN,
			Quantity:        order.Quantity,
			UnitPrice:       &unitPrice,
			ReferenceNumber: "PO-" + order.ID,
			Notes:           "Recepción de orden de compra",
			CreatedBy:       actor,
		})
		if err != nil {
			return err
		}
		received = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return received, nil
}
