package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stocktrack-api/internal/application/ledger"
	"github.com/jhoicas/stocktrack-api/internal/application/purchasing"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// Ensure TxRunner implementa el puerto del ledger.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los fallos
// transitorios de concurrencia (deadlock, serialization failure) se mapean a
// domain.ErrConflict para que el caso de uso decida el reintento.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del ledger atados a la
// tx y hace Commit o Rollback. El movimiento y la cantidad del producto se
// confirman juntos o no se aplica ninguno.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewStockMovementRepository(tx)); err != nil {
		return mapConflict(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapConflict(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// PurchasingRunner adapta el pool al puerto purchasing.TxRunner, que además de
// los repos del ledger necesita el de órdenes (recepción atómica por línea).
type PurchasingRunner struct {
	pool *pgxpool.Pool
}

// NewPurchasingRunner construye el runner de purchasing.
func NewPurchasingRunner(pool *pgxpool.Pool) *PurchasingRunner {
	return &PurchasingRunner{pool: pool}
}

var _ purchasing.TxRunner = (*PurchasingRunner)(nil)

// Run inicia una transacción con repos de producto, movimientos y órdenes.
func (r *PurchasingRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	orderRepo repository.PurchaseOrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewStockMovementRepository(tx), NewPurchaseOrderRepository(tx)); err != nil {
		return mapConflict(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapConflict(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

func mapConflict(err error) error {
	if isTxConflict(err) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}
