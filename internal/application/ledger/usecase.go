package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// Reintentos ante ErrConflict (pérdida transitoria por contención, no error de lógica).
const (
	maxConflictRetries = 3
	retryBaseDelay     = 25 * time.Millisecond
)

// LedgerUseCase es el único camino por el que cambia Quantity de un producto.
// Cada movimiento se aplica en una transacción con bloqueo de fila sobre el
// producto (SELECT FOR UPDATE), de modo que dos llamadas concurrentes sobre el
// mismo producto nunca calculan la nueva cantidad desde el mismo valor viejo.
type LedgerUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, productRepo: productRepo, movementRepo: movementRepo}
}

// MovementInput entrada para registrar un movimiento.
// QuantityChange lleva signo y debe ser consistente con Type: in positivo,
// out negativo, adjustment cualquiera distinto de cero.
type MovementInput struct {
	ProductID      string
	UserID         string
	Type           string
	QuantityChange int64
	Reason         string
	Notes          string
}

func validateInput(in MovementInput) error {
	if in.ProductID == "" || in.UserID == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(in.Type) {
		return domain.ErrInvalidInput
	}
	if in.QuantityChange == 0 {
		return domain.ErrInvalidInput
	}
	if in.Type == entity.MovementTypeIn && in.QuantityChange < 0 {
		return domain.ErrInvalidInput
	}
	if in.Type == entity.MovementTypeOut && in.QuantityChange > 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// RecordMovement valida la entrada, abre una transacción, bloquea la fila del
// producto, rechaza con ErrInsufficientStock si la cantidad quedaría negativa
// y escribe el movimiento con su snapshot antes/después junto con la nueva
// cantidad. Ante ErrConflict (deadlock o fallo de serialización) reintenta
// hasta maxConflictRetries con backoff lineal; cualquier otro error se
// propaga de inmediato.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var created *entity.StockMovement
	for attempt := 0; ; attempt++ {
		err := uc.txRunner.Run(ctx, func(
			productRepo repository.ProductRepository,
			movementRepo repository.StockMovementRepository,
		) error {
			mov, err := uc.RecordInTx(productRepo, movementRepo, in, time.Now())
			if err != nil {
				return err
			}
			created = mov
			return nil
		})
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrConflict) || attempt >= maxConflictRetries-1 {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryBaseDelay * time.Duration(attempt+1)):
		}
	}
}

// RecordInTx aplica un movimiento usando los repositorios proporcionados
// (misma transacción del caller). Lo usa RecordMovement y también el flujo de
// recepción de órdenes de compra, que necesita el movimiento y la
// actualización de la línea en una sola transacción.
func (uc *LedgerUseCase) RecordInTx(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	in MovementInput,
	now time.Time,
) (*entity.StockMovement, error) {
	// Bloquea la fila del producto: sección crítica por producto.
	product, err := productRepo.GetForUpdate(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	newQty := product.Quantity + in.QuantityChange
	if newQty < 0 {
		return nil, domain.ErrInsufficientStock
	}

	mov := &entity.StockMovement{
		ID:               uuid.New().String(),
		ProductID:        in.ProductID,
		UserID:           in.UserID,
		Type:             in.Type,
		QuantityChange:   in.QuantityChange,
		PreviousQuantity: product.Quantity,
		NewQuantity:      newQty,
		Reason:           in.Reason,
		Notes:            in.Notes,
		CreatedAt:        now,
	}
	if err := movementRepo.Create(mov); err != nil {
		return nil, err
	}
	if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
		return nil, err
	}
	return mov, nil
}

// History devuelve los movimientos de un producto en orden cronológico
// inverso. Sin estado entre llamadas; limit <= 0 usa 50.
func (uc *LedgerUseCase) History(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 50
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movementRepo.ListByProduct(productID, limit)
}

// CurrentQuantity cantidad actual del producto.
func (uc *LedgerUseCase) CurrentQuantity(ctx context.Context, productID string) (int64, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	return product.Quantity, nil
}

// ListLowStock productos en o por debajo del umbral. Con threshold nil manda
// el min_stock_level de cada producto; con threshold se usa el valor fijo
// (compatibilidad con las vistas antiguas de umbral 5).
func (uc *LedgerUseCase) ListLowStock(ctx context.Context, threshold *int64) ([]*entity.Product, error) {
	if threshold != nil && *threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.productRepo.ListLowStock(threshold)
}

// Reconcile verifica el invariante producto/ledger: quantity debe ser igual a
// la suma de quantity_change de todos los movimientos. Devuelve la cantidad
// cacheada, la suma del ledger y si coinciden.
func (uc *LedgerUseCase) Reconcile(ctx context.Context, productID string) (cached, ledgerSum int64, ok bool, err error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return 0, 0, false, err
	}
	if product == nil {
		return 0, 0, false, domain.ErrNotFound
	}
	sum, err := uc.movementRepo.SumByProduct(productID)
	if err != nil {
		return 0, 0, false, err
	}
	return product.Quantity, sum, product.Quantity == sum, nil
}
