package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"github.com/grocerflow/grocerflow-api/internal/domain"
	"github.com/grocerflow/grocerflow-api/internal/domain/entity"
	"github.com/grocerflow/grocerflow-api/internal/domain/repository"
)

// Formato de fecha del CSV de transacciones (UTC).
const csvDateLayout = "2006-01-02 15:04:05"

// Tope del listado de transacciones en pantalla (las exportaciones no lo usan).
const transactionListCap = 500

// ExportUseCase genera las exportaciones CSV y el listado de transacciones.
// El formato CSV es contrato estable: encabezados, orden y formato de fecha
// no deben cambiar sin coordinarlo con los consumidores.
type ExportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(reportRepo repository.ReportRepository) *ExportUseCase {
	return &ExportUseCase{reportRepo: reportRepo}
}

// ListTransactions devuelve el historial filtrado por texto libre (nombre/SKU
// del producto o referencia) y tipo, fecha descendente, con tope de 500.
func (uc *ExportUseCase) ListTransactions(ctx context.Context, q, txType string) ([]dto.TransactionRowDTO, error) {
	if txType != "" && txType != entity.TxTypeIn && txType != entity.TxTypeOut {
		return nil, domain.ErrInvalidInput
	}
	return uc.reportRepo.ListTransactionRows(ctx, dto.TransactionReportFilter{
		Query: q,
		Type:  txType,
		Limit: transactionListCap,
	})
}

// ExportInventoryCSV genera el CSV de inventario: un producto por fila,
// ordenado por nombre ascendente, con cadena vacía si no hay categoría o
// proveedor.
func (uc *ExportUseCase) ExportInventoryCSV(ctx context.Context) ([]byte, error) {
	rows, err := uc.reportRepo.ListInventoryRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("export inventario: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"SKU", "Product", "Category", "Supplier", "Unit", "Price", "Reorder Level", "Stock"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.SKU,
			r.Name,
			r.Category,
			r.Supplier,
			r.Unit,
			r.Price.String(),
			strconv.Itoa(r.ReorderLevel),
			strconv.Itoa(r.Stock),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportTransactionsCSV genera el CSV del historial completo de
// transacciones, fecha descendente, timestamps en UTC.
func (uc *ExportUseCase) ExportTransactionsCSV(ctx context.Context) ([]byte, error) {
	rows, err := uc.reportRepo.ListTransactionRows(ctx, dto.TransactionReportFilter{})
	if err != nil {
		return nil, fmt.Errorf("export transacciones: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Date (UTC)", "Type", "SKU", "Product", "Qty", "Reference", "Note"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.TxDate.UTC().Format(csvDateLayout),
			r.Type,
			r.SKU,
			r.ProductName,
			strconv.Itoa(r.Quantity),
			r.Reference,
			r.Note,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
