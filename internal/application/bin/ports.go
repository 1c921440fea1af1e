package bin

import "github.com/jhoicas/smartbin/internal/domain/entity"

// Ledger puerto hacia la cadena de registros. Solo permite anexar, leer y verificar.
type Ledger interface {
	Append(payload string) entity.HashRecord
	Records() []entity.HashRecord
	Verify() error
}
