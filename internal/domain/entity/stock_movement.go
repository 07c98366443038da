package entity

import "time"

// Tipos de movimiento de stock. El signo de QuantityChange debe ser consistente
// con el tipo: in positivo, out negativo, adjustment cualquiera (nunca cero).
const (
	MovementTypeIn         = "in"
	MovementTypeOut        = "out"
	MovementTypeAdjustment = "adjustment"
)

// ValidMovementType reporta si s es uno de los tres tipos enumerados.
func ValidMovementType(s string) bool {
	return s == MovementTypeIn || s == MovementTypeOut || s == MovementTypeAdjustment
}

// StockMovement un registro inmutable de cambio de cantidad sobre un producto.
// Nunca se actualiza ni se borra: los movimientos son la pista de auditoría y
// el único medio de reconstruir Quantity del producto.
type StockMovement struct {
	ID               string
	ProductID        string
	UserID           string // actor que originó el movimiento
	Type             string // in, out, adjustment
	QuantityChange   int64  // con signo
	PreviousQuantity int64  // snapshot al momento de escribir
	NewQuantity      int64  // PreviousQuantity + QuantityChange
	Reason           string
	Notes            string
	CreatedAt        time.Time
}
