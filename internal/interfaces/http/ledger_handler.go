package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/smartbin/internal/application/bin"
	"github.com/jhoicas/smartbin/internal/application/dto"
)

// LedgerHandler expone la lectura y verificación del ledger.
type LedgerHandler struct {
	uc *bin.BinUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *bin.BinUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Listar registros del ledger
// @Tags         ledger
// @Produce      json
// @Param        limit   query     int  false  "máximo 100"  default(20)
// @Param        offset  query     int  false  "desplazamiento"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()

	all := h.uc.Ledger()
	start := page.Offset
	if start > all.Total {
		start = all.Total
	}
	end := start + page.Limit
	if end > all.Total {
		end = all.Total
	}

	return c.JSON(fiber.Map{
		"page":    dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: all.Total},
		"records": all.Records[start:end],
	})
}

// Verify godoc
// @Summary      Verificar la cadena del ledger
// @Description  Recalcula hashes y enlaces de toda la cadena.
// @Tags         ledger
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/ledger/verify [get]
func (h *LedgerHandler) Verify(c *fiber.Ctx) error {
	length, err := h.uc.VerifyLedger(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"valid":  false,
			"length": length,
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"valid": true, "length": length})
}
