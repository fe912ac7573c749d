package entity

import "time"

// Tipos de transacción de stock.
const (
	TxTypeIn  = "IN"  // entrada de mercancía
	TxTypeOut = "OUT" // salida de mercancía
)

// StockTransaction es una entrada inmutable del libro de movimientos (append-only).
// El conjunto de transacciones de un producto, reproducido en orden de creación
// desde su stock de apertura, reconstruye exactamente su stock actual.
type StockTransaction struct {
	ID        string
	ProductID string
	Type      string // IN | OUT
	Quantity  int    // siempre >= 1
	Reference string // documento de referencia, opcional
	Note      string // nota libre, opcional
	TxDate    time.Time
	CreatedAt time.Time
}
