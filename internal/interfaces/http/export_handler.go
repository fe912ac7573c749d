package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"github.com/grocerflow/grocerflow-api/internal/application/reporting"
)

// ExportHandler maneja las descargas de reportes (protegido).
type ExportHandler struct {
	exportUC *reporting.ExportUseCase
	pdfUC    *reporting.LowStockPDFUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(exportUC *reporting.ExportUseCase, pdfUC *reporting.LowStockPDFUseCase) *ExportHandler {
	return &ExportHandler{exportUC: exportUC, pdfUC: pdfUC}
}

// InventoryCSV godoc
// @Summary      Exportar inventario completo en CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/inventory.csv [get]
func (h *ExportHandler) InventoryCSV(c *fiber.Ctx) error {
	data, err := h.exportUC.ExportInventoryCSV(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory.csv"`)
	return c.Send(data)
}

// TransactionsCSV godoc
// @Summary      Exportar historial de transacciones en CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/transactions.csv [get]
func (h *ExportHandler) TransactionsCSV(c *fiber.Ctx) error {
	data, err := h.exportUC.ExportTransactionsCSV(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
	return c.Send(data)
}

// LowStockPDF godoc
// @Summary      Reporte PDF de productos bajos de stock
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string
// @Router       /api/export/low-stock.pdf [get]
func (h *ExportHandler) LowStockPDF(c *fiber.Ctx) error {
	data, err := h.pdfUC.Generate(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="low-stock.pdf"`)
	return c.Send(data)
}
