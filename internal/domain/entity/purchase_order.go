package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de una orden de compra. Tipo cerrado con
// tabla de transiciones explícita: el avance es solo hacia adelante, salvo la
// cancelación desde cualquier estado no terminal.
type OrderStatus string

const (
	OrderStatusDraft             OrderStatus = "draft"
	OrderStatusSent              OrderStatus = "sent"
	OrderStatusConfirmed         OrderStatus = "confirmed"
	OrderStatusPartiallyReceived OrderStatus = "partially_received"
	OrderStatusReceived          OrderStatus = "received"
	OrderStatusCancelled         OrderStatus = "cancelled"
)

// orderTransitions tabla de transiciones permitidas.
// draft -> sent -> confirmed -> partially_received -> received
// cancelled alcanzable desde cualquier estado no terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:             {OrderStatusSent, OrderStatusCancelled},
	OrderStatusSent:              {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:         {OrderStatusPartiallyReceived, OrderStatusReceived, OrderStatusCancelled},
	OrderStatusPartiallyReceived: {OrderStatusPartiallyReceived, OrderStatusReceived, OrderStatusCancelled},
	OrderStatusReceived:          nil,
	OrderStatusCancelled:         nil,
}

// Valid reporta si s es uno de los seis estados enumerados.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal reporta si el estado no admite más transiciones (received, cancelled).
func (s OrderStatus) Terminal() bool {
	ts, ok := orderTransitions[s]
	return ok && len(ts) == 0
}

// CanTransitionTo reporta si la transición s -> next está en la tabla.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// PurchaseOrder orden de compra a un proveedor. Inmutable una vez received o
// cancelled. TotalAmount siempre igual a la suma de OrderedQuantity × UnitCost
// de sus líneas.
type PurchaseOrder struct {
	ID          string
	PONumber    string // número legible, único
	SupplierID  string
	Status      OrderStatus
	TotalAmount decimal.Decimal
	Notes       string
	CreatedBy   string // UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Lines       []PurchaseOrderLine
}

// PurchaseOrderLine línea producto/cantidad/costo dentro de una orden.
// ReceivedQuantity nunca supera OrderedQuantity.
type PurchaseOrderLine struct {
	ID               string
	OrderID          string
	ProductID        string
	OrderedQuantity  int64
	ReceivedQuantity int64
	UnitCost         decimal.Decimal
}

// Remaining cantidad pendiente de recibir en la línea.
func (l *PurchaseOrderLine) Remaining() int64 {
	return l.OrderedQuantity - l.ReceivedQuantity
}

// FullyReceived reporta si todas las líneas completaron su cantidad ordenada.
func (o *PurchaseOrder) FullyReceived() bool {
	for i := range o.Lines {
		if o.Lines[i].ReceivedQuantity < o.Lines[i].OrderedQuantity {
			return false
		}
	}
	return len(o.Lines) > 0
}

// HasReceipts reporta si alguna línea ya registró recepciones. Una orden con
// recepciones no puede borrarse, solo cancelarse.
func (o *PurchaseOrder) HasReceipts() bool {
	for i := range o.Lines {
		if o.Lines[i].ReceivedQuantity > 0 {
			return true
		}
	}
	return false
}

// ComputeTotal suma OrderedQuantity × UnitCost de todas las líneas.
func (o *PurchaseOrder) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Lines {
		qty := decimal.NewFromInt(o.Lines[i].OrderedQuantity)
		total = total.Add(qty.Mul(o.Lines[i].UnitCost))
	}
	return total
}

// LineByID busca una línea por su ID; nil si no existe.
func (o *PurchaseOrder) LineByID(lineID string) *PurchaseOrderLine {
	for i := range o.Lines {
		if o.Lines[i].ID == lineID {
			return &o.Lines[i]
		}
	}
	return nil
}
