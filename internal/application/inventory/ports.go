package inventory

import "context"

// ItemStore puerto de lectura del almacén clave-valor.
// found=false indica clave inexistente; err se reserva para fallos de acceso.
type ItemStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
}
