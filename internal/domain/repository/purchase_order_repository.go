package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra y sus líneas.
type PurchaseOrderRepository interface {
	// Create persiste la cabecera y todas sus líneas. Llamar dentro de una
	// transacción para que sean atómicas.
	Create(order *entity.PurchaseOrder) error
	// GetByID obtiene la orden con sus líneas; nil si no existe.
	GetByID(id string) (*entity.PurchaseOrder, error)
	// UpdateStatusFrom cambia el estado solo si el actual es from (CAS).
	// Devuelve domain.ErrConflict si la fila ya no está en from.
	UpdateStatusFrom(orderID string, from, to entity.OrderStatus) error
	UpdateLineReceived(lineID string, receivedQuantity int64) error
	ListByStatus(status entity.OrderStatus, limit, offset int) ([]*entity.PurchaseOrder, error)
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	// Delete borra cabecera y líneas, solo si la orden sigue en draft.
	// Devuelve domain.ErrInvalidState si el estado cambió bajo sus pies.
	// Llamar dentro de una transacción para que el borrado sea atómico.
	Delete(orderID string) error
}
