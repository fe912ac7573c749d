package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario (SKU único).
// Stock es un contador cacheado: su valor siempre equivale al stock de apertura
// más la suma de transacciones IN menos la de OUT. Solo el motor de transacciones
// lo modifica; la edición de catálogo nunca lo toca.
type Product struct {
	ID           string
	SKU          string // código único del producto
	Name         string
	Unit         string // etiqueta de unidad: pcs, kg, lt...
	CategoryID   *string
	SupplierID   *string
	Price        decimal.Decimal // precio unitario de venta (>= 0)
	ReorderLevel int             // nivel de reorden (0 = sin alerta)
	Stock        int             // contador cacheado, nunca negativo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el producto cayó a o por debajo de su nivel de reorden.
// Un nivel de reorden en 0 desactiva la alerta.
func (p *Product) IsLowStock() bool {
	return p.ReorderLevel > 0 && p.Stock <= p.ReorderLevel
}
