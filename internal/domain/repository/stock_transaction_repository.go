package repository

import "github.com/grocerflow/grocerflow-api/internal/domain/entity"

// StockTransactionRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no existen Update ni Delete.
type StockTransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	// ListByProduct ordena por fecha descendente.
	ListByProduct(productID string, limit int) ([]*entity.StockTransaction, error)
	CountByProduct(productID string) (int, error)
}
