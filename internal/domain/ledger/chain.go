// Package ledger: cadena de registros enlazados por hash, solo-anexar y en memoria.
// Cada registro guarda el hash del anterior; el primero (génesis) usa el centinela "0".

package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/smartbin/internal/domain"
	"github.com/jhoicas/smartbin/internal/domain/entity"
)

// Chain secuencia ordenada de HashRecord. Nunca está vacía ni se trunca.
type Chain struct {
	mu      sync.RWMutex
	records []entity.HashRecord
	now     func() time.Time
}

// Option configura la cadena al construirla.
type Option func(*Chain)

// WithClock reemplaza time.Now (útil en tests para timestamps deterministas).
func WithClock(now func() time.Time) Option {
	return func(c *Chain) {
		if now != nil {
			c.now = now
		}
	}
}

// NewChain crea la cadena con su registro génesis.
func NewChain(opts ...Option) *Chain {
	c := &Chain{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	genesis := entity.HashRecord{
		Index:        0,
		PreviousHash: entity.GenesisPreviousHash,
		Timestamp:    c.now().Unix(),
		Payload:      entity.GenesisPayload,
	}
	genesis.Seal()
	c.records = []entity.HashRecord{genesis}
	return c
}

// Append crea un registro con índice = longitud actual, timestamp actual y el hash del último registro.
// Siempre tiene éxito.
func (c *Chain) Append(payload string) entity.HashRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	last := c.records[len(c.records)-1]
	rec := entity.HashRecord{
		Index:        len(c.records),
		PreviousHash: last.Hash,
		Timestamp:    c.now().Unix(),
		Payload:      payload,
	}
	rec.Seal()
	c.records = append(c.records, rec)
	return rec
}

// Records devuelve una copia de todos los registros en orden.
func (c *Chain) Records() []entity.HashRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.HashRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len número de registros, génesis incluido.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Last devuelve el registro más reciente.
func (c *Chain) Last() entity.HashRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records[len(c.records)-1]
}

// Verify recalcula cada hash y comprueba índices y enlaces con el registro anterior.
func (c *Chain) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return VerifyRecords(c.records)
}

// VerifyRecords valida una secuencia de registros ya extraída (p. ej. la devuelta por Records).
func VerifyRecords(records []entity.HashRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("cadena vacía: %w", domain.ErrIntegrity)
	}
	if records[0].PreviousHash != entity.GenesisPreviousHash {
		return fmt.Errorf("registro 0: hash previo %q: %w", records[0].PreviousHash, domain.ErrIntegrity)
	}
	for i, rec := range records {
		if rec.Index != i {
			return fmt.Errorf("registro %d: índice %d: %w", i, rec.Index, domain.ErrIntegrity)
		}
		if !rec.Valid() {
			return fmt.Errorf("registro %d: hash no coincide: %w", i, domain.ErrIntegrity)
		}
		if i > 0 && rec.PreviousHash != records[i-1].Hash {
			return fmt.Errorf("registro %d: enlace roto: %w", i, domain.ErrIntegrity)
		}
	}
	return nil
}
