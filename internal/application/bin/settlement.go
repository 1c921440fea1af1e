package bin

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/smartbin/internal/application/dto"
	"github.com/jhoicas/smartbin/internal/domain"
	"github.com/jhoicas/smartbin/internal/domain/entity"
)

// SettlementUnits monto fijo de la liquidación: coins transferidos y tornillos repuestos.
const SettlementUnits = 100

var settlementAmount = decimal.NewFromInt(SettlementUnits)

// CheckLowInventory ejecuta la liquidación si el stock está bajo el umbral.
// Devuelve (nil, nil) si el stock es normal y domain.ErrInsufficientBalance si el cliente no alcanza.
func (uc *BinUseCase) CheckLowInventory(ctx context.Context) (*dto.SettlementResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.bin.IsLow() {
		return nil, nil
	}
	uc.log.Info().
		Int("stock_level", uc.bin.StockLevel).
		Int("threshold", uc.bin.Threshold).
		Msg("inventario bajo detectado")
	return uc.settle()
}

// settle: reservar → aceptar pedido → confirmar envío → reponer stock.
// Tras la verificación de saldo cada paso es incondicional; no hay compensación. Requiere mu tomado.
func (uc *BinUseCase) settle() (*dto.SettlementResult, error) {
	if uc.bin.CustomerBalance.LessThan(settlementAmount) {
		uc.log.Warn().
			Str("customer_balance", uc.bin.CustomerBalance.String()).
			Msg("saldo insuficiente para liquidar inventario bajo")
		return nil, domain.ErrInsufficientBalance
	}

	id := uc.newID()
	log := uc.log.Named("settlement").WithStr("settlement_id", id)
	log.Info().Msg("liquidación iniciada")

	records := make([]entity.HashRecord, 0, 4)

	// 1. Reserva en la billetera del cliente
	uc.bin.CustomerBalance = uc.bin.CustomerBalance.Sub(settlementAmount)
	records = append(records, uc.recordWith(log, settlementAmount.String()+" coins reserved from customer wallet at "+uc.ctime()))

	// 2. Pedido aceptado por el proveedor
	records = append(records, uc.recordWith(log, "Order accepted by supplier at "+uc.ctime()))

	// 3. Envío confirmado: el proveedor recibe los coins
	uc.bin.SupplierBalance = uc.bin.SupplierBalance.Add(settlementAmount)
	records = append(records, uc.recordWith(log, "Shipment confirmed by supplier at "+uc.ctime()))

	// 4. Reposición de stock
	uc.bin.StockLevel += SettlementUnits
	records = append(records, uc.recordWith(log, "Stock increase confirmed at "+uc.ctime()))

	log.Info().
		Int("stock_level", uc.bin.StockLevel).
		Msg("stock repuesto y coins transferidos")

	return &dto.SettlementResult{
		ID:      id,
		Amount:  settlementAmount,
		Records: records,
		State:   uc.state(),
	}, nil
}
