package entity

import "github.com/shopspring/decimal"

// Bin representa el contenedor de tornillos y las billeteras (Bossard Coins) de cliente y proveedor.
type Bin struct {
	StockLevel      int
	Threshold       int
	CustomerBalance decimal.Decimal
	SupplierBalance decimal.Decimal
}

// IsLow indica si el stock está por debajo del umbral de reorden.
// El estado no se guarda; se calcula en cada consulta.
func (b Bin) IsLow() bool {
	return b.StockLevel < b.Threshold
}
