package postgres

import (
	"context"
	"fmt"

	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"github.com/grocerflow/grocerflow-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only para dashboard y exportaciones.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// CountProducts cuenta el total de productos.
func (r *ReportRepo) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`, "count products")
}

// CountCategories cuenta el total de categorías.
func (r *ReportRepo) CountCategories(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM categories`, "count categories")
}

// CountSuppliers cuenta el total de proveedores.
func (r *ReportRepo) CountSuppliers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM suppliers`, "count suppliers")
}

// ListLowStock lista productos en o por debajo de su nivel de reorden,
// stock ascendente (los más críticos primero).
func (r *ReportRepo) ListLowStock(ctx context.Context, limit int) ([]dto.LowStockItemDTO, error) {
	query := `
		SELECT id, sku, name, unit, stock, reorder_level
		FROM products
		WHERE reorder_level > 0 AND stock <= reorder_level
		ORDER BY stock ASC, name ASC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var items []dto.LowStockItemDTO
	for rows.Next() {
		var item dto.LowStockItemDTO
		if err := rows.Scan(&item.ProductID, &item.SKU, &item.Name, &item.Unit,
			&item.Stock, &item.ReorderLevel); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListTransactionRows lista transacciones unidas con el producto, fecha
// descendente. Limit 0 = sin límite (exportación completa).
func (r *ReportRepo) ListTransactionRows(ctx context.Context, filter dto.TransactionReportFilter) ([]dto.TransactionRowDTO, error) {
	query := `
		SELECT t.id, t.tx_date, t.tx_type, p.sku, p.name, t.quantity, t.reference, t.note
		FROM stock_transactions t
		JOIN products p ON p.id = t.product_id
		WHERE ($1 = '' OR p.name ILIKE '%' || $1 || '%' OR p.sku ILIKE '%' || $1 || '%' OR t.reference ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR t.tx_type = $2)
		ORDER BY t.tx_date DESC`
	args := []any{filter.Query, filter.Type}
	if filter.Limit > 0 {
		query += ` LIMIT $3`
		args = append(args, filter.Limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transaction rows: %w", err)
	}
	defer rows.Close()
	var list []dto.TransactionRowDTO
	for rows.Next() {
		var row dto.TransactionRowDTO
		if err := rows.Scan(&row.ID, &row.TxDate, &row.Type, &row.SKU, &row.ProductName,
			&row.Quantity, &row.Reference, &row.Note); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListInventoryRows lista el inventario completo con nombres de categoría y
// proveedor resueltos (vacíos si no tiene), nombre de producto ascendente.
func (r *ReportRepo) ListInventoryRows(ctx context.Context) ([]dto.InventoryRowDTO, error) {
	query := `
		SELECT p.sku, p.name, COALESCE(c.name, ''), COALESCE(s.name, ''),
		       p.unit, p.price, p.reorder_level, p.stock
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY p.name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory rows: %w", err)
	}
	defer rows.Close()
	var list []dto.InventoryRowDTO
	for rows.Next() {
		var row dto.InventoryRowDTO
		if err := rows.Scan(&row.SKU, &row.Name, &row.Category, &row.Supplier,
			&row.Unit, &row.Price, &row.ReorderLevel, &row.Stock); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *ReportRepo) count(ctx context.Context, query, op string) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
