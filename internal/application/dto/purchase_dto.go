package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea para crear una orden de compra.
type OrderLineRequest struct {
	ProductID       string          `json:"product_id" validate:"required"`
	OrderedQuantity int64           `json:"ordered_quantity" validate:"required,gt=0"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	SupplierID string             `json:"supplier_id" validate:"required"`
	Notes      string             `json:"notes" validate:"max=500"`
	Lines      []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// ReceiveLineRequest delta de recepción sobre una línea.
type ReceiveLineRequest struct {
	LineID   string `json:"line_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

// ReceiveOrderRequest body para POST /api/purchase-orders/:id/receive.
type ReceiveOrderRequest struct {
	Lines []ReceiveLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// OrderLineResponse línea de una orden en respuestas.
type OrderLineResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	OrderedQuantity  int64           `json:"ordered_quantity"`
	ReceivedQuantity int64           `json:"received_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// PurchaseOrderResponse salida de una orden con sus líneas.
type PurchaseOrderResponse struct {
	ID          string              `json:"id"`
	PONumber    string              `json:"po_number"`
	SupplierID  string              `json:"supplier_id"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Notes       string              `json:"notes,omitempty"`
	CreatedBy   string              `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Lines       []OrderLineResponse `json:"lines"`
}

// PurchaseOrderListResponse lista paginada de órdenes.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
