package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smartbin/internal/domain"
	"github.com/jhoicas/smartbin/internal/domain/entity"
	"github.com/jhoicas/smartbin/internal/domain/ledger"
)

// stepClock avanza un segundo en cada llamada.
func stepClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(time.Second)
		return now
	}
}

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewChain_Genesis(t *testing.T) {
	c := ledger.NewChain(ledger.WithClock(func() time.Time { return t0 }))

	require.Equal(t, 1, c.Len())
	g := c.Last()
	assert.Equal(t, 0, g.Index)
	assert.Equal(t, "0", g.PreviousHash)
	assert.Equal(t, "Genesis Block", g.Payload)
	assert.Equal(t, t0.Unix(), g.Timestamp)
	assert.Equal(t, entity.ComputeHash(0, "0", t0.Unix(), "Genesis Block"), g.Hash)
	assert.Len(t, g.Hash, 64, "SHA-256 en hex ocupa 64 caracteres")
}

func TestAppend_EnlazaConAnterior(t *testing.T) {
	c := ledger.NewChain(ledger.WithClock(stepClock(t0)))

	first := c.Append("evento A")
	second := c.Append("evento B")

	records := c.Records()
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i, rec.Index, "el índice debe coincidir con la posición")
		if i > 0 {
			assert.Equal(t, records[i-1].Hash, rec.PreviousHash)
		}
	}
	assert.Equal(t, first, records[1])
	assert.Equal(t, second, records[2])
	require.NoError(t, c.Verify())
}

func TestAppend_MismoPayloadDistintoHash(t *testing.T) {
	c := ledger.NewChain(ledger.WithClock(stepClock(t0)))

	a := c.Append("Reorder")
	b := c.Append("Reorder")

	assert.NotEqual(t, a.Index, b.Index)
	assert.NotEqual(t, a.Timestamp, b.Timestamp)
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestComputeHash_VectorConocido(t *testing.T) {
	// sha256("0" + "0" + "1700000000" + "Genesis Block")
	const expected = "7dbc86aa2c49ead9f9089cc7a54efc9252fdf0469e9e6eb5faa3b70963fd5616"

	got := entity.ComputeHash(0, "0", 1700000000, "Genesis Block")
	assert.Equal(t, expected, got)
	assert.NotEqual(t, entity.ComputeHash(1, "0", 1700000000, "Genesis Block"), got, "sensible al índice")
	assert.NotEqual(t, entity.ComputeHash(0, "0", 1700000001, "Genesis Block"), got, "sensible al timestamp")
}

func TestRecords_DevuelveCopia(t *testing.T) {
	c := ledger.NewChain()
	c.Append("x")

	records := c.Records()
	records[1].Payload = "manipulado"

	assert.Equal(t, "x", c.Records()[1].Payload, "la cadena interna no debe cambiar")
	require.NoError(t, c.Verify())
}

func TestVerifyRecords_DetectaManipulacion(t *testing.T) {
	c := ledger.NewChain(ledger.WithClock(stepClock(t0)))
	c.Append("100 Bossard Coins added to customer's wallet.")
	c.Append("Reorder triggered for screws")

	t.Run("payload alterado", func(t *testing.T) {
		records := c.Records()
		records[1].Payload = "1000 Bossard Coins added to customer's wallet."
		err := ledger.VerifyRecords(records)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrIntegrity))
	})

	t.Run("hash recalculado pero enlace roto", func(t *testing.T) {
		records := c.Records()
		records[1].Payload = "otro"
		records[1].Seal()
		assert.ErrorIs(t, ledger.VerifyRecords(records), domain.ErrIntegrity)
	})

	t.Run("índice fuera de orden", func(t *testing.T) {
		records := c.Records()
		records[1], records[2] = records[2], records[1]
		assert.ErrorIs(t, ledger.VerifyRecords(records), domain.ErrIntegrity)
	})

	t.Run("cadena vacía", func(t *testing.T) {
		assert.ErrorIs(t, ledger.VerifyRecords(nil), domain.ErrIntegrity)
	})
}
