package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User representa un usuario del sistema. La identidad del actor se pasa
// explícitamente a los casos de uso del ledger y de órdenes; el dominio no
// consulta sesión ni estado ambiental.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Name         string
	Role         string // admin, manager, staff
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
