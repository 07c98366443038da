package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el ledger de
// movimientos (append-only: sin Update ni Delete).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListByProduct movimientos de un producto en orden cronológico inverso.
	ListByProduct(productID string, limit int) ([]*entity.StockMovement, error)
	// SumByProduct suma de quantity_change de todos los movimientos del
	// producto; debe coincidir con products.quantity en todo momento.
	SumByProduct(productID string) (int64, error)
}
