package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInsufficientBalance = errors.New("saldo insuficiente")
	ErrIntegrity           = errors.New("cadena de registros corrupta")
)
