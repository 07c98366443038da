package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const orderColumns = `id, po_number, supplier_id, status, total_amount, notes, created_by, created_at, updated_at`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre
// PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste cabecera y líneas. Llamar dentro de una tx para atomicidad.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, po_number, supplier_id, status, total_amount, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.PONumber, order.SupplierID, string(order.Status),
		order.TotalAmount, order.Notes, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	lineQuery := `
		INSERT INTO purchase_order_lines (id, order_id, product_id, ordered_quantity, received_quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range order.Lines {
		l := &order.Lines[i]
		_, err := r.q.Exec(context.Background(), lineQuery,
			l.ID, l.OrderID, l.ProductID, l.OrderedQuantity, l.ReceivedQuantity, l.UnitCost,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la orden con sus líneas; nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.PONumber, &o.SupplierID, &status, &o.TotalAmount,
		&o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	o.Status = entity.OrderStatus(status)
	if err := r.loadLines(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PurchaseOrderRepo) loadLines(o *entity.PurchaseOrder) error {
	query := `
		SELECT id, order_id, product_id, ordered_quantity, received_quantity, unit_cost
		FROM purchase_order_lines WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, o.ID)
	if err != nil {
		return fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.OrderedQuantity, &l.ReceivedQuantity, &l.UnitCost); err != nil {
			return fmt.Errorf("scan order line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	return rows.Err()
}

// UpdateStatusFrom cambia el estado con CAS: solo si la fila sigue en from.
// Cero filas afectadas significa que otra llamada ganó la carrera.
func (r *PurchaseOrderRepo) UpdateStatusFrom(orderID string, from, to entity.OrderStatus) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		orderID, string(from), string(to),
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// UpdateLineReceived fija la cantidad recibida acumulada de una línea.
func (r *PurchaseOrderRepo) UpdateLineReceived(lineID string, receivedQuantity int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchase_order_lines SET received_quantity = $2 WHERE id = $1`,
		lineID, receivedQuantity,
	)
	if err != nil {
		return fmt.Errorf("update line received: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByStatus lista órdenes por estado con paginación (con líneas).
func (r *PurchaseOrderRepo) ListByStatus(status entity.OrderStatus, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders
		WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	return r.collect(rows)
}

// List lista todas las órdenes con paginación (con líneas).
func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return r.collect(rows)
}

func (r *PurchaseOrderRepo) collect(rows pgx.Rows) ([]*entity.PurchaseOrder, error) {
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		var status string
		if err := rows.Scan(&o.ID, &o.PONumber, &o.SupplierID, &status, &o.TotalAmount,
			&o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = entity.OrderStatus(status)
		list = append(list, &o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		if err := r.loadLines(o); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Delete borra líneas y cabecera, la cabecera solo si la fila sigue en draft.
// Cero filas afectadas significa que el estado cambió desde que el caso de uso
// lo verificó. Llamar dentro de una tx para que líneas y cabecera sean atómicas.
func (r *PurchaseOrderRepo) Delete(orderID string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM purchase_order_lines WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM purchase_orders WHERE id = $1 AND status = $2`,
		orderID, string(entity.OrderStatusDraft),
	)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidState
	}
	return nil
}
