package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRowDTO fila del reporte de inventario (producto con nombres de
// categoría y proveedor ya resueltos; vacíos si no tiene).
type InventoryRowDTO struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Supplier     string          `json:"supplier"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel int             `json:"reorder_level"`
	Stock        int             `json:"stock"`
}

// TransactionRowDTO fila del historial de transacciones unida con el producto.
type TransactionRowDTO struct {
	ID          string    `json:"id"`
	TxDate      time.Time `json:"tx_date"`
	Type        string    `json:"type"`
	SKU         string    `json:"sku"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Reference   string    `json:"reference,omitempty"`
	Note        string    `json:"note,omitempty"`
}

// TransactionReportFilter filtros del listado de transacciones.
type TransactionReportFilter struct {
	Query string // substring sobre nombre/SKU del producto o referencia
	Type  string // IN, OUT o vacío
	Limit int    // 0 = sin límite
}

// LowStockItemDTO producto en o por debajo de su nivel de reorden.
type LowStockItemDTO struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	Stock        int    `json:"stock"`
	ReorderLevel int    `json:"reorder_level"`
}
