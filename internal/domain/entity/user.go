package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleCajero    = "cajero"
	RoleBodeguero = "bodeguero"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, cajero, bodeguero
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
