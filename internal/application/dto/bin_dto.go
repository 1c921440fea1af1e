package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/smartbin/internal/domain/entity"
)

// StockChangeRequest body para POST /api/bin/stock/add y /api/bin/stock/remove.
type StockChangeRequest struct {
	Quantity int `json:"quantity"`
}

// CoinsRequest body para POST /api/wallet/buy y /api/wallet/sell.
type CoinsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// BinStateDTO estado visible del contenedor y las billeteras.
type BinStateDTO struct {
	StockLevel      int             `json:"stock_level"`
	Threshold       int             `json:"threshold"`
	CustomerBalance decimal.Decimal `json:"customer_balance"`
	SupplierBalance decimal.Decimal `json:"supplier_balance"`
	LowStock        bool            `json:"low_stock"`    // advertencia de stock bajo
	FillPercent     int             `json:"fill_percent"` // barra de progreso, máximo 100
}

// SettlementResult resultado de una liquidación por inventario bajo.
type SettlementResult struct {
	ID      string              `json:"settlement_id"`
	Amount  decimal.Decimal     `json:"amount"`
	Records []entity.HashRecord `json:"records"`
	State   BinStateDTO         `json:"state"`
}

// LedgerDTO listado completo del ledger.
type LedgerDTO struct {
	Total   int                 `json:"total"`
	Records []entity.HashRecord `json:"records"`
}
