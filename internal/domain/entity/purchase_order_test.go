package entity_test

import (
	"testing"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de transiciones del ciclo de vida de una orden de compra.
//
// draft → sent → confirmed → partially_received → received
// cancelled alcanzable desde cualquier estado no terminal; received y
// cancelled son terminales.
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderStatus_TransicionesPermitidas(t *testing.T) {
	allowed := []struct{ from, to entity.OrderStatus }{
		{entity.OrderStatusDraft, entity.OrderStatusSent},
		{entity.OrderStatusDraft, entity.OrderStatusCancelled},
		{entity.OrderStatusSent, entity.OrderStatusConfirmed},
		{entity.OrderStatusSent, entity.OrderStatusCancelled},
		{entity.OrderStatusConfirmed, entity.OrderStatusPartiallyReceived},
		{entity.OrderStatusConfirmed, entity.OrderStatusReceived},
		{entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
		{entity.OrderStatusPartiallyReceived, entity.OrderStatusPartiallyReceived},
		{entity.OrderStatusPartiallyReceived, entity.OrderStatusReceived},
		{entity.OrderStatusPartiallyReceived, entity.OrderStatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to),
			"la transición %s -> %s debe estar permitida", tc.from, tc.to)
	}
}

func TestOrderStatus_TransicionesProhibidas(t *testing.T) {
	forbidden := []struct{ from, to entity.OrderStatus }{
		{entity.OrderStatusDraft, entity.OrderStatusConfirmed}, // no se salta sent
		{entity.OrderStatusDraft, entity.OrderStatusReceived},
		{entity.OrderStatusSent, entity.OrderStatusDraft}, // nunca hacia atrás
		{entity.OrderStatusConfirmed, entity.OrderStatusSent},
		{entity.OrderStatusReceived, entity.OrderStatusCancelled},
		{entity.OrderStatusReceived, entity.OrderStatusConfirmed},
		{entity.OrderStatusCancelled, entity.OrderStatusDraft},
		{entity.OrderStatusCancelled, entity.OrderStatusSent},
	}
	for _, tc := range forbidden {
		assert.False(t, tc.from.CanTransitionTo(tc.to),
			"la transición %s -> %s debe estar prohibida", tc.from, tc.to)
	}
}

func TestOrderStatus_Terminales(t *testing.T) {
	assert.True(t, entity.OrderStatusReceived.Terminal())
	assert.True(t, entity.OrderStatusCancelled.Terminal())

	assert.False(t, entity.OrderStatusDraft.Terminal())
	assert.False(t, entity.OrderStatusSent.Terminal())
	assert.False(t, entity.OrderStatusConfirmed.Terminal())
	assert.False(t, entity.OrderStatusPartiallyReceived.Terminal())
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []entity.OrderStatus{
		entity.OrderStatusDraft, entity.OrderStatusSent, entity.OrderStatusConfirmed,
		entity.OrderStatusPartiallyReceived, entity.OrderStatusReceived, entity.OrderStatusCancelled,
	} {
		assert.True(t, s.Valid(), "%s debe ser un estado válido", s)
	}
	assert.False(t, entity.OrderStatus("shipped").Valid())
	assert.False(t, entity.OrderStatus("").Valid())
}

// ── PurchaseOrder ─────────────────────────────────────────────────────────────

func TestPurchaseOrder_FullyReceived(t *testing.T) {
	order := &entity.PurchaseOrder{Lines: []entity.PurchaseOrderLine{
		{OrderedQuantity: 10, ReceivedQuantity: 10},
		{OrderedQuantity: 5, ReceivedQuantity: 3},
	}}
	assert.False(t, order.FullyReceived(), "con una línea incompleta no está recibida")

	order.Lines[1].ReceivedQuantity = 5
	assert.True(t, order.FullyReceived())

	// Una orden sin líneas nunca cuenta como totalmente recibida.
	empty := &entity.PurchaseOrder{}
	assert.False(t, empty.FullyReceived())
}

func TestPurchaseOrder_HasReceipts(t *testing.T) {
	order := &entity.PurchaseOrder{Lines: []entity.PurchaseOrderLine{
		{OrderedQuantity: 10, ReceivedQuantity: 0},
	}}
	assert.False(t, order.HasReceipts())

	order.Lines[0].ReceivedQuantity = 1
	assert.True(t, order.HasReceipts())
}

func TestPurchaseOrder_ComputeTotal(t *testing.T) {
	order := &entity.PurchaseOrder{Lines: []entity.PurchaseOrderLine{
		{OrderedQuantity: 3, UnitCost: decimal.NewFromFloat(10.50)},
		{OrderedQuantity: 2, UnitCost: decimal.NewFromFloat(0.99)},
	}}
	// 3×10.50 + 2×0.99 = 31.50 + 1.98 = 33.48
	assert.True(t, order.ComputeTotal().Equal(decimal.NewFromFloat(33.48)),
		"el total debe ser la suma exacta de cantidad × costo por línea")
}

func TestPurchaseOrderLine_Remaining(t *testing.T) {
	line := &entity.PurchaseOrderLine{OrderedQuantity: 10, ReceivedQuantity: 4}
	assert.Equal(t, int64(6), line.Remaining())
}

func TestPurchaseOrder_LineByID(t *testing.T) {
	order := &entity.PurchaseOrder{Lines: []entity.PurchaseOrderLine{
		{ID: "l1"}, {ID: "l2"},
	}}
	assert.NotNil(t, order.LineByID("l2"))
	assert.Nil(t, order.LineByID("l3"))
}
