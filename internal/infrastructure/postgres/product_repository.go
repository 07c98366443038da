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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, quantity, min_stock_level, price, category_id, status, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Quantity inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, quantity, min_stock_level, price, category_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, nullIfEmpty(product.SKU), product.Name, product.Description,
		product.Quantity, product.MinStockLevel, product.Price,
		nullIfEmpty(product.CategoryID), product.Status, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get product by sku")
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Es la sección crítica por producto del ledger; usar dentro de una tx.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// Update actualiza campos descriptivos. No toca quantity: se maneja vía
// UpdateQuantity desde el ledger.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, description = $4, min_stock_level = $5, price = $6, category_id = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, nullIfEmpty(product.SKU), product.Name, product.Description,
		product.MinStockLevel, product.Price, nullIfEmpty(product.CategoryID),
		product.Status, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad (usado por el ledger dentro de la
// misma tx que crea el movimiento).
func (r *ProductRepo) UpdateQuantity(productID string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListLowStock productos activos con quantity <= umbral. Con threshold nil se
// compara contra min_stock_level de cada producto.
func (r *ProductRepo) ListLowStock(threshold *int64) ([]*entity.Product, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if threshold == nil {
		query := `SELECT ` + productColumns + ` FROM products
			WHERE status = 'active' AND quantity <= min_stock_level
			ORDER BY quantity ASC`
		rows, err = r.q.Query(context.Background(), query)
	} else {
		query := `SELECT ` + productColumns + ` FROM products
			WHERE status = 'active' AND quantity <= $1
			ORDER BY quantity ASC`
		rows, err = r.q.Query(context.Background(), query, *threshold)
	}
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// Deactivate marca el producto como inactivo (soft delete).
func (r *ProductRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET status = 'inactive', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	var sku, categoryID *string
	err := row.Scan(&p.ID, &sku, &p.Name, &p.Description, &p.Quantity, &p.MinStockLevel,
		&p.Price, &categoryID, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if sku != nil {
		p.SKU = *sku
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

func (r *ProductRepo) scanRows(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var sku, categoryID *string
		if err := rows.Scan(&p.ID, &sku, &p.Name, &p.Description, &p.Quantity, &p.MinStockLevel,
			&p.Price, &categoryID, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if sku != nil {
			p.SKU = *sku
		}
		if categoryID != nil {
			p.CategoryID = *categoryID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// nullIfEmpty mapea "" a NULL para columnas opcionales con constraint único.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
