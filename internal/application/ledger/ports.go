package ledger

import (
	"context"

	"github.com/grocerflow/grocerflow-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos: los repos
// recibidos están atados a esa transacción y el Commit/Rollback es de quien
// implementa. Si fn devuelve error no debe persistir nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.StockTransactionRepository,
	) error) error
}
