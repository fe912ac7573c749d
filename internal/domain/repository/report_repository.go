package repository

import (
	"context"

	"github.com/grocerflow/grocerflow-api/internal/application/dto"
)

// ReportRepository define el puerto de consultas read-only para dashboard y exportaciones.
// Devuelve proyecciones (DTOs) ya unidas con los datos del producto; nunca muta estado.
type ReportRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountCategories(ctx context.Context) (int, error)
	CountSuppliers(ctx context.Context) (int, error)
	// ListLowStock: reorder_level > 0 AND stock <= reorder_level, stock ascendente.
	ListLowStock(ctx context.Context, limit int) ([]dto.LowStockItemDTO, error)
	// ListTransactionRows: fecha descendente. Limit 0 = sin límite (exportación completa).
	ListTransactionRows(ctx context.Context, filter dto.TransactionReportFilter) ([]dto.TransactionRowDTO, error)
	// ListInventoryRows: nombre de producto ascendente.
	ListInventoryRows(ctx context.Context) ([]dto.InventoryRowDTO, error)
}
