package reporting

import (
	"context"
	"fmt"

	"github.com/grocerflow/grocerflow-api/internal/domain/repository"
)

// Tope de filas del reporte PDF de bajos de stock.
const lowStockPDFCap = 200

// LowStockPDFUseCase genera el reporte PDF de productos en o por debajo de
// su nivel de reorden.
type LowStockPDFUseCase struct {
	reportRepo repository.ReportRepository
	generator  LowStockPDFGenerator
}

// NewLowStockPDFUseCase construye el caso de uso.
func NewLowStockPDFUseCase(reportRepo repository.ReportRepository, generator LowStockPDFGenerator) *LowStockPDFUseCase {
	return &LowStockPDFUseCase{reportRepo: reportRepo, generator: generator}
}

// Generate consulta los productos bajos de stock y devuelve los bytes del PDF.
func (uc *LowStockPDFUseCase) Generate(ctx context.Context) ([]byte, error) {
	items, err := uc.reportRepo.ListLowStock(ctx, lowStockPDFCap)
	if err != nil {
		return nil, fmt.Errorf("reporte bajos de stock: %w", err)
	}
	return uc.generator.GenerateLowStockPDF(ctx, items)
}
