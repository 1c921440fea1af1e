package bin

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/smartbin/internal/domain"
)

// validAmount: montos de Bossard Coins enteros y positivos.
func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.IsInteger()
}

// BuyCoins acredita amount a la billetera del cliente y anexa el registro.
// Con monto inválido devuelve domain.ErrInvalidInput y el estado no cambia.
func (uc *BinUseCase) BuyCoins(amount decimal.Decimal) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !validAmount(amount) {
		uc.log.Warn().Str("amount", amount.String()).Msg("monto inválido")
		return domain.ErrInvalidInput
	}
	uc.bin.CustomerBalance = uc.bin.CustomerBalance.Add(amount)
	uc.record(amount.String() + " Bossard Coins added to customer's wallet.")
	return nil
}

// SellCoins descuenta amount de la billetera del proveedor si el saldo alcanza.
// Falla con domain.ErrInvalidInput o domain.ErrInsufficientBalance sin modificar el estado.
func (uc *BinUseCase) SellCoins(amount decimal.Decimal) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !validAmount(amount) {
		uc.log.Warn().Str("amount", amount.String()).Msg("monto inválido")
		return domain.ErrInvalidInput
	}
	if uc.bin.SupplierBalance.LessThan(amount) {
		uc.log.Warn().
			Str("amount", amount.String()).
			Str("supplier_balance", uc.bin.SupplierBalance.String()).
			Msg("saldo insuficiente del proveedor")
		return domain.ErrInsufficientBalance
	}
	uc.bin.SupplierBalance = uc.bin.SupplierBalance.Sub(amount)
	uc.record(amount.String() + " Bossard Coins deducted from supplier's wallet.")
	return nil
}
