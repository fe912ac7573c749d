package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Totales del catálogo, productos bajos de stock (stock ascendente, máx. 10)
// y transacciones recientes (fecha descendente, máx. 10).
type DashboardSummaryDTO struct {
	TotalProducts      int                 `json:"total_products"`
	TotalCategories    int                 `json:"total_categories"`
	TotalSuppliers     int                 `json:"total_suppliers"`
	LowStock           []LowStockItemDTO   `json:"low_stock"`
	RecentTransactions []TransactionRowDTO `json:"recent_transactions"`
}
