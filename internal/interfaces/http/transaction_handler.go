package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"github.com/grocerflow/grocerflow-api/internal/application/ledger"
	"github.com/grocerflow/grocerflow-api/internal/application/reporting"
	"github.com/grocerflow/grocerflow-api/internal/domain"
	"github.com/grocerflow/grocerflow-api/internal/domain/entity"
	"github.com/grocerflow/grocerflow-api/pkg/validator"
)

// Tope de filas del historial por producto.
const historyCap = 50

// TransactionHandler maneja el libro de movimientos de stock (protegido).
type TransactionHandler struct {
	applyUC  *ledger.ApplyTransactionUseCase
	exportUC *reporting.ExportUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(applyUC *ledger.ApplyTransactionUseCase, exportUC *reporting.ExportUseCase) *TransactionHandler {
	return &TransactionHandler{applyUC: applyUC, exportUC: exportUC}
}

// Apply godoc
// @Summary      Registrar movimiento de stock (IN/OUT)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ApplyTransactionRequest  true  "type, quantity, reference, note"
// @Success      201   {object}  dto.ApplyTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/transactions [post]
func (h *TransactionHandler) Apply(c *fiber.Ctx) error {
	productID := c.Params("id")
	var in dto.ApplyTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validator.ValidateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
	}
	out, err := h.applyUC.Apply(c.UserContext(), productID, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo o cantidad inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de movimientos de un producto
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        limit  query  int     false  "Límite"  default(50)
// @Success      200    {object}  dto.TransactionListResponse
// @Router       /api/products/{id}/transactions [get]
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", historyCap)
	if limit <= 0 || limit > historyCap {
		limit = historyCap
	}
	out, err := h.applyUC.History(c.Params("id"), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listado global de transacciones
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Filtro por producto, SKU o referencia"
// @Param        type  query  string  false  "IN u OUT"
// @Success      200   {array}  dto.TransactionRowDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) ListAll(c *fiber.Ctx) error {
	txType := c.Query("type")
	if txType != "" && txType != entity.TxTypeIn && txType != entity.TxTypeOut {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser IN u OUT"})
	}
	out, err := h.exportUC.ListTransactions(c.UserContext(), c.Query("q"), txType)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser IN u OUT"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		out = []dto.TransactionRowDTO{}
	}
	return c.JSON(out)
}
