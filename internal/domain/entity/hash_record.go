package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// GenesisPreviousHash valor centinela de PreviousHash para el primer registro de la cadena.
const GenesisPreviousHash = "0"

// GenesisPayload descripción fija del registro génesis.
const GenesisPayload = "Genesis Block"

// HashRecord representa una entrada inmutable del ledger.
type HashRecord struct {
	Index        int    `json:"index"`
	PreviousHash string `json:"previous_hash"`
	Timestamp    int64  `json:"timestamp"` // segundos desde epoch
	Payload      string `json:"payload"`
	Hash         string `json:"hash"`
}

// ComputeHash calcula el digest SHA-256 (hex minúsculas) de los cuatro campos del registro.
// Orden estricto sin separadores: Index + PreviousHash + Timestamp + Payload.
func ComputeHash(index int, previousHash string, timestamp int64, payload string) string {
	cadena := strconv.Itoa(index) +
		previousHash +
		strconv.FormatInt(timestamp, 10) +
		payload

	hash := sha256.Sum256([]byte(cadena))
	return hex.EncodeToString(hash[:])
}

// Seal asigna Hash a partir de los demás campos.
func (r *HashRecord) Seal() {
	r.Hash = ComputeHash(r.Index, r.PreviousHash, r.Timestamp, r.Payload)
}

// Valid indica si Hash coincide con el contenido actual del registro.
func (r HashRecord) Valid() bool {
	return r.Hash == ComputeHash(r.Index, r.PreviousHash, r.Timestamp, r.Payload)
}
