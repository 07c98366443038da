package entity

import "time"

// Estados de un proveedor.
const (
	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"
)

// Supplier proveedor al que se emiten órdenes de compra.
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
