// Package memrepo ofrece implementaciones en memoria de los puertos de
// persistencia para los tests de casos de uso. No simula rollback: los tests
// que ejercitan caminos de error deben validar contra operaciones que fallan
// antes de cualquier escritura (como hace el código de producción con los
// guards de estado y stock).
package memrepo

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// Store agrupa los repositorios en memoria y actúa como TxRunner tanto para el
// motor de inventario como para el ciclo de vida de órdenes.
type Store struct {
	Products  *ProductRepository
	Movements *StockMovementRepository
	Alerts    *LowStockAlertRepository
	Purchases *PurchaseOrderRepository
	Sales     *SalesOrderRepository
	Suppliers *SupplierRepository
	Users     *UserRepository
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		Products:  &ProductRepository{items: map[string]*entity.Product{}},
		Movements: &StockMovementRepository{},
		Alerts:    &LowStockAlertRepository{},
		Purchases: &PurchaseOrderRepository{items: map[string]*entity.PurchaseOrder{}},
		Sales:     &SalesOrderRepository{items: map[string]*entity.SalesOrder{}},
		Suppliers: &SupplierRepository{items: map[string]*entity.Supplier{}},
		Users:     &UserRepository{items: map[string]*entity.User{}},
	}
}

// Run implementa inventory.TxRunner.
func (s *Store) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.LowStockAlertRepository,
) error) error {
	return fn(s.Movements, s.Products, s.Alerts)
}

// RunOrders implementa orders.TxRunner.
func (s *Store) RunOrders(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.LowStockAlertRepository,
	poRepo repository.PurchaseOrderRepository,
	soRepo repository.SalesOrderRepository,
) error) error {
	return fn(s.Movements, s.Products, s.Alerts, s.Purchases, s.Sales)
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

// ProductRepository repositorio de productos en memoria.
type ProductRepository struct {
	items map[string]*entity.Product
	order []string
}

func (r *ProductRepository) Create(p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	cp := *p
	r.items[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepository) GetBySKU(sku string) (*entity.Product, error) {
	for _, id := range r.order {
		if p, ok := r.items[id]; ok && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *ProductRepository) UpdateStock(id string, quantity int) error {
	if p, ok := r.items[id]; ok {
		p.StockQuantity = quantity
	}
	return nil
}

func (r *ProductRepository) Update(p *entity.Product) error {
	if existing, ok := r.items[p.ID]; ok {
		stock := existing.StockQuantity
		cp := *p
		cp.StockQuantity = stock // el stock solo se toca vía UpdateStock
		r.items[p.ID] = &cp
	}
	return nil
}

func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.order {
		if p, ok := r.items[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *ProductRepository) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.order {
		p, ok := r.items[id]
		if !ok {
			continue
		}
		if p.IsActive && p.MinimumStockLevel > 0 && p.StockQuantity <= p.MinimumStockLevel {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *ProductRepository) CountActive() (int, error) {
	n := 0
	for _, p := range r.items {
		if p.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *ProductRepository) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock movements
// ──────────────────────────────────────────────────────────────────────────────

// StockMovementRepository libro de movimientos en memoria.
type StockMovementRepository struct {
	items []*entity.StockMovement
}

func (r *StockMovementRepository) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	cp := *m
	r.items = append(r.items, &cp)
	return nil
}

func (r *StockMovementRepository) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.items {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *StockMovementRepository) Update(m *entity.StockMovement) error {
	for i, existing := range r.items {
		if existing.ID == m.ID {
			cp := *m
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *StockMovementRepository) Delete(id string) error {
	for i, m := range r.items {
		if m.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *StockMovementRepository) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return r.filter(func(m *entity.StockMovement) bool {
		return m.ProductID == productID
	}, from, to, limit, offset), nil
}

func (r *StockMovementRepository) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return r.filter(func(*entity.StockMovement) bool { return true }, from, to, limit, offset), nil
}

func (r *StockMovementRepository) ListByType(movementType string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return r.filter(func(m *entity.StockMovement) bool {
		return m.MovementType == movementType
	}, from, to, limit, offset), nil
}

func (r *StockMovementRepository) Search(term string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	lower := strings.ToLower(term)
	return r.filter(func(m *entity.StockMovement) bool {
		return strings.Contains(strings.ToLower(m.ReferenceNumber), lower) ||
			strings.Contains(strings.ToLower(m.Notes), lower) ||
			strings.Contains(strings.ToLower(m.MovementType), lower)
	}, from, to, limit, offset), nil
}

// All devuelve todas las filas del libro, para aserciones directas.
func (r *StockMovementRepository) All() []*entity.StockMovement {
	out := make([]*entity.StockMovement, 0, len(r.items))
	for _, m := range r.items {
		cp := *m
		out = append(out, &cp)
	}
	return out
}

func (r *StockMovementRepository) filter(match func(*entity.StockMovement) bool, from, to *time.Time, limit, offset int) []*entity.StockMovement {
	var out []*entity.StockMovement
	for _, m := range r.items {
		if !match(m) {
			continue
		}
		if from != nil && m.MovementDate.Before(*from) {
			continue
		}
		if to != nil && m.MovementDate.After(*to) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	// Más recientes primero, como los adaptadores de Postgres
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MovementDate.After(out[j].MovementDate)
	})
	return paginate(out, limit, offset)
}

// ──────────────────────────────────────────────────────────────────────────────
// Low stock alerts
// ──────────────────────────────────────────────────────────────────────────────

// LowStockAlertRepository alertas de stock bajo en memoria.
type LowStockAlertRepository struct {
	items []*entity.LowStockAlert
}

func (r *LowStockAlertRepository) Create(a *entity.LowStockAlert) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	cp := *a
	r.items = append(r.items, &cp)
	return nil
}

func (r *LowStockAlertRepository) GetByID(id string) (*entity.LowStockAlert, error) {
	for _, a := range r.items {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *LowStockAlertRepository) HasUnresolved(productID string) (bool, error) {
	for _, a := range r.items {
		if a.ProductID == productID && !a.IsResolved {
			return true, nil
		}
	}
	return false, nil
}

func (r *LowStockAlertRepository) Update(a *entity.LowStockAlert) error {
	for i, existing := range r.items {
		if existing.ID == a.ID {
			cp := *a
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *LowStockAlertRepository) ListUnresolved() ([]*entity.LowStockAlert, error) {
	var out []*entity.LowStockAlert
	for _, a := range r.items {
		if !a.IsResolved {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *LowStockAlertRepository) List(limit, offset int) ([]*entity.LowStockAlert, error) {
	out := make([]*entity.LowStockAlert, 0, len(r.items))
	for _, a := range r.items {
		cp := *a
		out = append(out, &cp)
	}
	return paginate(out, limit, offset), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Orders
// ──────────────────────────────────────────────────────────────────────────────

// PurchaseOrderRepository órdenes de compra en memoria.
type PurchaseOrderRepository struct {
	items map[string]*entity.PurchaseOrder
	order []string
}

func (r *PurchaseOrderRepository) Create(o *entity.PurchaseOrder) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	cp := *o
	r.items[o.ID] = &cp
	r.order = append(r.order, o.ID)
	return nil
}

func (r *PurchaseOrderRepository) GetByID(id string) (*entity.PurchaseOrder, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *PurchaseOrderRepository) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(id)
}

func (r *PurchaseOrderRepository) Update(o *entity.PurchaseOrder) error {
	if _, ok := r.items[o.ID]; ok {
		cp := *o
		r.items[o.ID] = &cp
	}
	return nil
}

func (r *PurchaseOrderRepository) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *PurchaseOrderRepository) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, id := range r.order {
		if o, ok := r.items[id]; ok {
			cp := *o
			out = append(out, &cp)
		}
	}
	return paginate(out, limit, offset), nil
}

// SalesOrderRepository órdenes de venta en memoria.
type SalesOrderRepository struct {
	items map[string]*entity.SalesOrder
	order []string
}

func (r *SalesOrderRepository) Create(o *entity.SalesOrder) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	cp := *o
	r.items[o.ID] = &cp
	r.order = append(r.order, o.ID)
	return nil
}

func (r *SalesOrderRepository) GetByID(id string) (*entity.SalesOrder, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *SalesOrderRepository) GetForUpdate(id string) (*entity.SalesOrder, error) {
	return r.GetByID(id)
}

func (r *SalesOrderRepository) Update(o *entity.SalesOrder) error {
	if _, ok := r.items[o.ID]; ok {
		cp := *o
		r.items[o.ID] = &cp
	}
	return nil
}

func (r *SalesOrderRepository) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *SalesOrderRepository) List(limit, offset int) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, id := range r.order {
		if o, ok := r.items[id]; ok {
			cp := *o
			out = append(out, &cp)
		}
	}
	return paginate(out, limit, offset), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Suppliers
// ──────────────────────────────────────────────────────────────────────────────

// SupplierRepository proveedores en memoria.
type SupplierRepository struct {
	items map[string]*entity.Supplier
	order []string
}

func (r *SupplierRepository) Create(s *entity.Supplier) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	cp := *s
	r.items[s.ID] = &cp
	r.order = append(r.order, s.ID)
	return nil
}

func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *SupplierRepository) Update(s *entity.Supplier) error {
	if _, ok := r.items[s.ID]; ok {
		cp := *s
		r.items[s.ID] = &cp
	}
	return nil
}

func (r *SupplierRepository) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, id := range r.order {
		if s, ok := r.items[id]; ok {
			cp := *s
			out = append(out, &cp)
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *SupplierRepository) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

// UserRepository usuarios en memoria.
type UserRepository struct {
	items map[string]*entity.User
}

func (r *UserRepository) Create(u *entity.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
