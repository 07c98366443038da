package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. La cantidad siempre
// inicia en 0: el stock solo entra por movimientos del ledger.
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	MinStockLevel int64           `json:"min_stock_level" validate:"min=0"`
	CategoryID    string          `json:"category_id"`
}

// UpdateProductRequest entrada para actualizar campos descriptivos
// (nunca Quantity: se maneja vía movimientos).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	MinStockLevel *int64           `json:"min_stock_level" validate:"omitempty,min=0"`
	CategoryID    *string          `json:"category_id"`
}

// ProductResponse salida de un producto, con la clasificación derivada de stock.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Quantity      int64           `json:"quantity"`
	MinStockLevel int64           `json:"min_stock_level"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    string          `json:"category_id,omitempty"`
	Status        string          `json:"status"`
	LowStock      bool            `json:"low_stock"`
	OutOfStock    bool            `json:"out_of_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
