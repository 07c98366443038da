package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Quantity solo se escribe vía UpdateQuantity, y solo desde el ledger dentro
// de la misma transacción que crea el movimiento.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListLowStock productos con quantity <= umbral. Con threshold nil se usa
	// min_stock_level de cada producto; con threshold se usa el valor fijo.
	ListLowStock(threshold *int64) ([]*entity.Product, error)
	Deactivate(id string) error
}
