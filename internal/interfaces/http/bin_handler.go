package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/smartbin/internal/application/bin"
	"github.com/jhoicas/smartbin/internal/application/dto"
	"github.com/jhoicas/smartbin/internal/domain"
)

// BinHandler maneja las peticiones HTTP de stock y billeteras del contenedor.
type BinHandler struct {
	uc *bin.BinUseCase
}

// NewBinHandler construye el handler.
func NewBinHandler(uc *bin.BinUseCase) *BinHandler {
	return &BinHandler{uc: uc}
}

// GetState godoc
// @Summary      Estado del contenedor
// @Description  Stock, umbral, saldos de cliente y proveedor, advertencia de stock bajo y porcentaje de llenado.
// @Tags         bin
// @Produce      json
// @Success      200  {object}  dto.BinStateDTO
// @Router       /api/bin [get]
func (h *BinHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.uc.State())
}

// AddStock godoc
// @Summary      Agregar tornillos
// @Tags         bin
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StockChangeRequest  true  "quantity (entero positivo)"
// @Success      200   {object}  dto.BinStateDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bin/stock/add [post]
func (h *BinHandler) AddStock(c *fiber.Ctx) error {
	qty, errResp := parseQuantity(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	h.uc.AddStock(qty)
	return c.JSON(h.uc.State())
}

// RemoveStock godoc
// @Summary      Retirar tornillos
// @Description  Sin stock suficiente la operación no tiene efecto. Si el stock queda bajo el umbral se anexa el registro de reorden.
// @Tags         bin
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StockChangeRequest  true  "quantity (entero positivo)"
// @Success      200   {object}  dto.BinStateDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bin/stock/remove [post]
func (h *BinHandler) RemoveStock(c *fiber.Ctx) error {
	qty, errResp := parseQuantity(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	h.uc.RemoveStock(qty)
	return c.JSON(h.uc.State())
}

// CheckLowInventory godoc
// @Summary      Revisar inventario bajo
// @Description  Fuerza la revisión sin esperar al scheduler; con stock bajo ejecuta la liquidación de 100 unidades.
// @Tags         bin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/bin/check [post]
func (h *BinHandler) CheckLowInventory(c *fiber.Ctx) error {
	res, err := h.uc.CheckLowInventory(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if res == nil {
		return c.JSON(fiber.Map{"settled": false, "state": h.uc.State()})
	}
	return c.JSON(fiber.Map{
		"settled":       true,
		"settlement_id": res.ID,
		"records":       res.Records,
		"state":         res.State,
	})
}

// BuyCoins godoc
// @Summary      Comprar Bossard Coins
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CoinsRequest  true  "amount (entero positivo)"
// @Success      200   {object}  dto.BinStateDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wallet/buy [post]
func (h *BinHandler) BuyCoins(c *fiber.Ctx) error {
	var in dto.CoinsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ingrese un monto entero válido"})
	}
	if err := h.uc.BuyCoins(in.Amount); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.State())
}

// SellCoins godoc
// @Summary      Vender Bossard Coins del proveedor
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CoinsRequest  true  "amount (entero positivo)"
// @Success      200   {object}  dto.BinStateDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/wallet/sell [post]
func (h *BinHandler) SellCoins(c *fiber.Ctx) error {
	var in dto.CoinsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ingrese un monto entero válido"})
	}
	if err := h.uc.SellCoins(in.Amount); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.State())
}

// parseQuantity exige un entero positivo; el caso de uso no valida la cantidad.
func parseQuantity(c *fiber.Ctx) (int, *dto.ErrorResponse) {
	var in dto.StockChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return 0, &dto.ErrorResponse{Code: "INVALID_BODY", Message: "ingrese una cantidad entera válida"}
	}
	if in.Quantity <= 0 {
		return 0, &dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser positiva"}
	}
	return in.Quantity, nil
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "monto inválido"})
	case errors.Is(err, domain.ErrInsufficientBalance):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: "saldo insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
