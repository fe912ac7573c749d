package reporting

import (
	"context"

	"github.com/grocerflow/grocerflow-api/internal/application/dto"
)

// LowStockPDFGenerator puerto para la generación del reporte PDF de
// productos bajos de stock (implementado en infrastructure/pdf).
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, items []dto.LowStockItemDTO) ([]byte, error)
}
