package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un producto. No se borra físicamente mientras existan movimientos;
// se desactiva (soft delete).
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// DefaultLowStockThreshold umbral fijo heredado de las vistas antiguas.
// El nivel por producto (MinStockLevel) es el autoritativo.
const DefaultLowStockThreshold int64 = 5

// Product representa un producto del inventario.
// Quantity es autoritativa solo a través del ledger de movimientos: siempre
// igual a la suma de QuantityChange de todos sus movimientos desde la creación.
type Product struct {
	ID            string
	SKU           string // código único, opcional
	Name          string
	Description   string
	Quantity      int64 // unidades actuales, nunca negativa
	MinStockLevel int64 // umbral de stock bajo por producto
	Price         decimal.Decimal
	CategoryID    string // vacío si no tiene categoría
	Status        string // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock clasificación derivada, nunca almacenada: cantidad en o por debajo
// del umbral. Si threshold es nil se usa MinStockLevel del producto.
func (p *Product) IsLowStock(threshold *int64) bool {
	t := p.MinStockLevel
	if threshold != nil {
		t = *threshold
	}
	return p.Quantity <= t
}

// IsOutOfStock cantidad exactamente cero.
func (p *Product) IsOutOfStock() bool {
	return p.Quantity == 0
}
