// Package ledger implementa el motor de transacciones de stock: valida y
// aplica un movimiento IN/OUT sobre exactamente un producto, manteniendo
// consistentes el libro append-only y el contador de stock cacheado.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"github.com/grocerflow/grocerflow-api/internal/domain"
	"github.com/grocerflow/grocerflow-api/internal/domain/entity"
	"github.com/grocerflow/grocerflow-api/internal/domain/repository"
)

// ApplyTransactionUseCase aplica movimientos de stock de forma transaccional:
// bloqueo de fila del producto (SELECT FOR UPDATE), verificación de
// suficiencia en OUT y escritura atómica de stock + transacción.
type ApplyTransactionUseCase struct {
	txRunner TxRunner
	txRepo   repository.StockTransactionRepository // lecturas fuera de transacción
}

// NewApplyTransactionUseCase construye el caso de uso.
func NewApplyTransactionUseCase(txRunner TxRunner, txRepo repository.StockTransactionRepository) *ApplyTransactionUseCase {
	return &ApplyTransactionUseCase{txRunner: txRunner, txRepo: txRepo}
}

// Apply valida y aplica un movimiento sobre el producto indicado.
//
// Precondiciones: Type ∈ {IN, OUT}, Quantity >= 1. Si Type == OUT y
// Quantity > stock actual, devuelve ErrInsufficientStock sin persistir nada.
// En éxito, el ajuste del stock y el alta de la transacción se confirman
// juntos o no se confirma ninguno. La lectura del stock, la verificación y
// las dos escrituras ocurren con la fila del producto bloqueada, de modo que
// dos OUT concurrentes sobre el mismo producto se serializan y el stock
// nunca queda negativo.
func (uc *ApplyTransactionUseCase) Apply(ctx context.Context, productID string, in dto.ApplyTransactionRequest) (*dto.ApplyTransactionResponse, error) {
	if in.Type != entity.TxTypeIn && in.Type != entity.TxTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ApplyTransactionResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		// Bloquea la fila del producto; el check y las escrituras quedan serializados.
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock := product.Stock
		if in.Type == entity.TxTypeIn {
			newStock += in.Quantity
		} else {
			if in.Quantity > product.Stock {
				return domain.ErrInsufficientStock
			}
			newStock -= in.Quantity
		}

		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}

		now := time.Now().UTC()
		tx := &entity.StockTransaction{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			Reference: in.Reference,
			Note:      in.Note,
			TxDate:    now,
			CreatedAt: now,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}

		out = &dto.ApplyTransactionResponse{
			Transaction: toTransactionResponse(tx),
			Stock:       newStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// History devuelve las últimas transacciones de un producto (fecha descendente).
func (uc *ApplyTransactionUseCase) History(productID string, limit int) (*dto.TransactionListResponse, error) {
	list, err := uc.txRepo.ListByProduct(productID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{Items: items}, nil
}

func toTransactionResponse(tx *entity.StockTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        tx.ID,
		ProductID: tx.ProductID,
		Type:      tx.Type,
		Quantity:  tx.Quantity,
		Reference: tx.Reference,
		Note:      tx.Note,
		TxDate:    tx.TxDate,
	}
}
