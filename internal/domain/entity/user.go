package entity

import "time"

// User representa un usuario del personal de la tienda.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
