package postgres

import (
	"context"
	"fmt"

	"github.com/grocerflow/grocerflow-api/internal/domain/entity"
	"github.com/grocerflow/grocerflow-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). El libro es append-only: solo INSERT y lecturas.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create persiste una transacción de stock.
func (r *StockTransactionRepo) Create(tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, product_id, tx_type, quantity, reference, note, tx_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.Type, tx.Quantity, tx.Reference, tx.Note, tx.TxDate, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock transaction: %w", err)
	}
	return nil
}

// ListByProduct lista las transacciones de un producto, fecha descendente.
func (r *StockTransactionRepo) ListByProduct(productID string, limit int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, product_id, tx_type, quantity, reference, note, tx_date, created_at
		FROM stock_transactions WHERE product_id = $1
		ORDER BY tx_date DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var tx entity.StockTransaction
		if err := rows.Scan(&tx.ID, &tx.ProductID, &tx.Type, &tx.Quantity,
			&tx.Reference, &tx.Note, &tx.TxDate, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}

// CountByProduct cuenta las transacciones de un producto.
func (r *StockTransactionRepo) CountByProduct(productID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stock_transactions WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions by product: %w", err)
	}
	return count, nil
}
