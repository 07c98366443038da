package purchasing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktrack-api/internal/application/ledger"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PurchaseOrderUseCase maneja el ciclo de vida de las órdenes de compra.
// Es el único componente autorizado a disparar escrituras en el ledger como
// efecto de recibir mercancía.
type PurchaseOrderUseCase struct {
	txRunner     TxRunner
	locks        OrderLocker
	orderRepo    repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	ledger       *ledger.LedgerUseCase
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner TxRunner,
	locks OrderLocker,
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	ledgerUC *ledger.LedgerUseCase,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:     txRunner,
		locks:        locks,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		ledger:       ledgerUC,
	}
}

// OrderLineInput línea para crear una orden.
type OrderLineInput struct {
	ProductID       string
	OrderedQuantity int64
	UnitCost        decimal.Decimal
}

// CreateOrderInput entrada de Create.
type CreateOrderInput struct {
	SupplierID string
	Notes      string
	Lines      []OrderLineInput
}

// ReceiveLineInput delta de recepción sobre una línea existente.
type ReceiveLineInput struct {
	LineID   string
	Quantity int64 // unidades recibidas en esta entrega, > 0
}

// newPONumber genera un número legible único: PO-20250830-3F2A9C1D.
func newPONumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("PO-%s-%s", now.Format("20060102"), suffix)
}

// Create valida proveedor y líneas, calcula el total y persiste la orden en
// draft. Cabecera y líneas se insertan en una sola transacción.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, userID string, in CreateOrderInput) (*entity.PurchaseOrder, error) {
	if userID == "" || in.SupplierID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.Status != entity.SupplierStatusActive {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		PONumber:   newPONumber(now),
		SupplierID: in.SupplierID,
		Status:     entity.OrderStatusDraft,
		Notes:      in.Notes,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, l := range in.Lines {
		if l.OrderedQuantity <= 0 || l.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		order.Lines = append(order.Lines, entity.PurchaseOrderLine{
			ID:              uuid.New().String(),
			OrderID:         order.ID,
			ProductID:       l.ProductID,
			OrderedQuantity: l.OrderedQuantity,
			UnitCost:        l.UnitCost,
		})
	}
	order.TotalAmount = order.ComputeTotal()

	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.StockMovementRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Send transición draft -> sent.
func (uc *PurchaseOrderUseCase) Send(ctx context.Context, orderID string) (*entity.PurchaseOrder, error) {
	return uc.transition(ctx, orderID, entity.OrderStatusDraft, entity.OrderStatusSent)
}

// Confirm transición sent -> confirmed.
func (uc *PurchaseOrderUseCase) Confirm(ctx context.Context, orderID string) (*entity.PurchaseOrder, error) {
	return uc.transition(ctx, orderID, entity.OrderStatusSent, entity.OrderStatusConfirmed)
}

// transition aplica un paso de la tabla de estados con CAS sobre la fila:
// si otra llamada ganó la carrera, UpdateStatusFrom devuelve ErrConflict.
func (uc *PurchaseOrderUseCase) transition(ctx context.Context, orderID string, from, to entity.OrderStatus) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != from || !from.CanTransitionTo(to) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.orderRepo.UpdateStatusFrom(orderID, from, to); err != nil {
		return nil, err
	}
	order.Status = to
	return order, nil
}

// Receive registra entregas sobre una orden confirmed o partially_received.
//
// Toda la llamada se serializa por orden (OrderLocker). Primero se validan
// TODAS las líneas (delta > 0, acumulado <= ordenado) sin escribir nada; luego
// cada línea se aplica en su propia transacción: movimiento del ledger tipo in
// con reason etiquetado con el po_number + actualización de received_quantity.
// Un fallo en una línea corta el bucle pero NO revierte las ya aplicadas:
// revertir stock físicamente recibido destruiría la pista de auditoría. La
// orden queda en partially_received reflejando exactamente lo registrado y el
// error se devuelve para reintentar las líneas restantes.
func (uc *PurchaseOrderUseCase) Receive(ctx context.Context, userID, orderID string, lines []ReceiveLineInput) (*entity.PurchaseOrder, error) {
	if userID == "" || orderID == "" || len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	release, err := uc.locks.Acquire(ctx, orderID)
	if err != nil {
		return nil, err
	}
	defer release()

	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusConfirmed && order.Status != entity.OrderStatusPartiallyReceived {
		return nil, domain.ErrInvalidTransition
	}

	// Validación completa antes de la primera escritura.
	pending := make(map[string]int64, len(lines))
	for _, in := range lines {
		line := order.LineByID(in.LineID)
		if line == nil {
			return nil, domain.ErrInvalidInput
		}
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if line.ReceivedQuantity+pending[in.LineID]+in.Quantity > line.OrderedQuantity {
			return nil, domain.ErrInvalidInput
		}
		pending[in.LineID] += in.Quantity
	}

	// Aplicación por línea; cada línea es una transacción independiente.
	now := time.Now()
	applied := 0
	var lineErr error
	for _, in := range lines {
		line := order.LineByID(in.LineID)
		newReceived := line.ReceivedQuantity + in.Quantity
		err := uc.txRunner.Run(ctx, func(
			productRepo repository.ProductRepository,
			movementRepo repository.StockMovementRepository,
			orderRepo repository.PurchaseOrderRepository,
		) error {
			_, err := uc.ledger.RecordInTx(productRepo, movementRepo, ledger.MovementInput{
				ProductID:      line.ProductID,
				UserID:         userID,
				Type:           entity.MovementTypeIn,
				QuantityChange: in.Quantity,
				Reason:         "PO " + order.PONumber,
			}, now)
			if err != nil {
				return err
			}
			return orderRepo.UpdateLineReceived(line.ID, newReceived)
		})
		if err != nil {
			lineErr = err
			break
		}
		line.ReceivedQuantity = newReceived
		applied++
	}

	if applied > 0 || order.FullyReceived() {
		next := entity.OrderStatusPartiallyReceived
		if order.FullyReceived() {
			next = entity.OrderStatusReceived
		}
		if order.Status != next {
			if err := uc.orderRepo.UpdateStatusFrom(orderID, order.Status, next); err != nil {
				// No perder la causa original si además falló una línea.
				return order, errors.Join(lineErr, err)
			}
			order.Status = next
		}
	}
	return order, lineErr
}

// Cancel anula una orden desde cualquier estado no terminal. No toca el
// ledger: mercancía nunca recibida físicamente no se refleja en stock.
func (uc *PurchaseOrderUseCase) Cancel(ctx context.Context, orderID string) (*entity.PurchaseOrder, error) {
	release, err := uc.locks.Acquire(ctx, orderID)
	if err != nil {
		return nil, err
	}
	defer release()

	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !order.Status.CanTransitionTo(entity.OrderStatusCancelled) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.orderRepo.UpdateStatusFrom(orderID, order.Status, entity.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusCancelled
	return order, nil
}

// Delete borra definitivamente una orden. Solo legal en draft y con cero
// recepciones en todas las líneas; cualquier otro estado exige cancelación
// para preservar la continuidad de auditoría. El borrado corre en una
// transacción y el DELETE de la cabecera está condicionado a draft, así que
// un Send que gane la carrera tras la verificación deja la orden intacta.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, orderID string) error {
	release, err := uc.locks.Acquire(ctx, orderID)
	if err != nil {
		return err
	}
	defer release()

	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusDraft || order.HasReceipts() {
		return domain.ErrInvalidState
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.StockMovementRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		return orderRepo.Delete(orderID)
	})
}

// Get obtiene una orden con sus líneas.
func (uc *PurchaseOrderUseCase) Get(ctx context.Context, orderID string) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// ListByStatus lista órdenes por estado; status vacío lista todas.
func (uc *PurchaseOrderUseCase) ListByStatus(ctx context.Context, status entity.OrderStatus, limit, offset int) ([]*entity.PurchaseOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	if status == "" {
		return uc.orderRepo.List(limit, offset)
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.orderRepo.ListByStatus(status, limit, offset)
}
