package purchasing

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita la recepción: el movimiento del ledger y la
// actualización de la línea recibida deben confirmarse juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error) error
}

// OrderLocker serializa Receive/Cancel sobre la misma orden. Operaciones sobre
// órdenes distintas corren en paralelo. Release siempre debe llamarse.
type OrderLocker interface {
	Acquire(ctx context.Context, orderID string) (release func(), err error)
}
