package entity

import "time"

// Supplier representa un proveedor. Nombre único; datos de contacto opcionales.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
