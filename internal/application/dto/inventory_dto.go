package dto

import "time"

// RecordMovementRequest body para POST /api/inventory/movements.
// Quantity lleva signo: positivo para in, negativo para out.
type RecordMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity  int64  `json:"quantity" validate:"required"`
	Reason    string `json:"reason" validate:"max=200"`
	Notes     string `json:"notes" validate:"max=500"`
}

// MovementResponse un movimiento del ledger con su snapshot antes/después.
type MovementResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	UserID           string    `json:"user_id"`
	Type             string    `json:"type"`
	QuantityChange   int64     `json:"quantity_change"`
	PreviousQuantity int64     `json:"previous_quantity"`
	NewQuantity      int64     `json:"new_quantity"`
	Reason           string    `json:"reason,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// MovementListResponse historial de movimientos de un producto.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}

// ReconcileResponse resultado de la verificación producto/ledger.
type ReconcileResponse struct {
	ProductID  string `json:"product_id"`
	Cached     int64  `json:"cached_quantity"`
	LedgerSum  int64  `json:"ledger_sum"`
	Consistent bool   `json:"consistent"`
}
