package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthorized     = errors.New("no autorizado")
	ErrStoreUnavailable = errors.New("almacén no disponible")
	ErrInvalidInput     = errors.New("entrada inválida")
)
