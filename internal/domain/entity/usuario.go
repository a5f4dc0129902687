package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAlmacen  = "almacen"
	RolVendedor = "vendedor"
)

// Usuario representa un usuario del sistema: personal de almacén o vendedor.
type Usuario struct {
	ID           int64
	Usuario      string // nombre de usuario, único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // almacen, vendedor
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
