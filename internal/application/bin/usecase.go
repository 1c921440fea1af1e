package bin

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/smartbin/internal/application/dto"
	"github.com/jhoicas/smartbin/internal/domain/entity"
	"github.com/jhoicas/smartbin/pkg/logger"
)

// BinUseCase controla el nivel de stock, el umbral de reorden y las billeteras de cliente y proveedor.
// Cada cambio de estado relevante se anexa al ledger. Todas las operaciones se serializan con mu:
// el servidor HTTP y la revisión periódica corren en goroutines distintas.
type BinUseCase struct {
	mu     sync.Mutex
	bin    entity.Bin
	ledger Ledger
	log    *logger.Logger
	now    func() time.Time
	newID  func() string
}

// Option configura el caso de uso al construirlo.
type Option func(*BinUseCase)

// WithClock reemplaza time.Now en los textos de los registros.
func WithClock(now func() time.Time) Option {
	return func(uc *BinUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithIDGenerator reemplaza la generación de IDs de liquidación (uuid por defecto).
func WithIDGenerator(newID func() string) Option {
	return func(uc *BinUseCase) {
		if newID != nil {
			uc.newID = newID
		}
	}
}

// NewBinUseCase construye el caso de uso con el estado inicial dado.
func NewBinUseCase(ledger Ledger, initial entity.Bin, log *logger.Logger, opts ...Option) *BinUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	uc := &BinUseCase{
		bin:    initial,
		ledger: ledger,
		log:    log,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// AddStock suma quantity al stock. No anexa registro; el llamador valida que quantity > 0.
func (uc *BinUseCase) AddStock(quantity int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.bin.StockLevel += quantity
	uc.log.Info().
		Int("quantity", quantity).
		Int("stock_level", uc.bin.StockLevel).
		Msg("tornillos agregados")
}

// RemoveStock resta quantity si hay stock suficiente; si no, no hace nada (sin error ni log).
// Si el resultado queda bajo el umbral dispara el reorden. Devuelve true si se anexó el registro de reorden.
func (uc *BinUseCase) RemoveStock(quantity int) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.bin.StockLevel < quantity {
		return false
	}
	uc.bin.StockLevel -= quantity
	uc.log.Info().
		Int("quantity", quantity).
		Int("stock_level", uc.bin.StockLevel).
		Msg("tornillos retirados")

	if uc.bin.IsLow() {
		uc.reorder()
		return true
	}
	return false
}

// Reorder anexa el registro de reorden. No modifica stock ni billeteras.
func (uc *BinUseCase) Reorder() entity.HashRecord {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.reorder()
}

func (uc *BinUseCase) reorder() entity.HashRecord {
	return uc.record("Reorder triggered for screws at " + uc.ctime())
}

// State devuelve el estado visible actual.
func (uc *BinUseCase) State() dto.BinStateDTO {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state()
}

func (uc *BinUseCase) state() dto.BinStateDTO {
	fill := uc.bin.StockLevel
	if fill > 100 {
		fill = 100
	}
	if fill < 0 {
		fill = 0
	}
	return dto.BinStateDTO{
		StockLevel:      uc.bin.StockLevel,
		Threshold:       uc.bin.Threshold,
		CustomerBalance: uc.bin.CustomerBalance,
		SupplierBalance: uc.bin.SupplierBalance,
		LowStock:        uc.bin.IsLow(),
		FillPercent:     fill,
	}
}

// Ledger devuelve todos los registros del ledger en orden.
// Toma mu para no exponer una liquidación a medias.
func (uc *BinUseCase) Ledger() dto.LedgerDTO {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	records := uc.ledger.Records()
	return dto.LedgerDTO{Total: len(records), Records: records}
}

// VerifyLedger recalcula los hashes y enlaces de la cadena y devuelve la longitud verificada.
func (uc *BinUseCase) VerifyLedger(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	length := len(uc.ledger.Records())
	return length, uc.ledger.Verify()
}

// record anexa payload al ledger y lo escribe en el log. Requiere mu tomado.
func (uc *BinUseCase) record(payload string) entity.HashRecord {
	return uc.recordWith(uc.log, payload)
}

func (uc *BinUseCase) recordWith(log *logger.Logger, payload string) entity.HashRecord {
	rec := uc.ledger.Append(payload)
	log.Info().
		Int("index", rec.Index).
		Str("hash", rec.Hash).
		Msg(payload)
	return rec
}

// ctime formatea la hora actual como "Mon Jan  2 15:04:05 2006".
func (uc *BinUseCase) ctime() string {
	return uc.now().Format(time.ANSIC)
}
