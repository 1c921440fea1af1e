package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/smartbin/internal/application/bin"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BinUC *bin.BinUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Contenedor y stock
	binHandler := NewBinHandler(deps.BinUC)
	binGroup := api.Group("/bin")
	binGroup.Get("/", binHandler.GetState)
	binGroup.Post("/stock/add", binHandler.AddStock)
	binGroup.Post("/stock/remove", binHandler.RemoveStock)
	binGroup.Post("/check", binHandler.CheckLowInventory)

	// Billeteras
	wallet := api.Group("/wallet")
	wallet.Post("/buy", binHandler.BuyCoins)
	wallet.Post("/sell", binHandler.SellCoins)

	// Ledger
	ledgerHandler := NewLedgerHandler(deps.BinUC)
	ledgerGroup := api.Group("/ledger")
	ledgerGroup.Get("/", ledgerHandler.List)
	ledgerGroup.Get("/verify", ledgerHandler.Verify)
}
