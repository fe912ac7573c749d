package dto

import "time"

// ApplyTransactionRequest entrada para registrar un movimiento de stock sobre un producto.
type ApplyTransactionRequest struct {
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Reference string `json:"reference" validate:"max=120"`
	Note      string `json:"note" validate:"max=255"`
}

// TransactionResponse salida de una transacción del libro.
type TransactionResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reference string    `json:"reference,omitempty"`
	Note      string    `json:"note,omitempty"`
	TxDate    time.Time `json:"tx_date"`
}

// ApplyTransactionResponse transacción creada más el stock resultante.
type ApplyTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Stock       int                 `json:"stock"` // stock del producto después de aplicar
}

// TransactionListResponse historial de transacciones de un producto.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
}
