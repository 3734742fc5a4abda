// Package access clasifica una credencial compartida en un nivel de acceso.
package access

// Level nivel de acceso derivado por petición; nunca se persiste.
type Level int

const (
	LevelNone  Level = 0 // sin acceso al endpoint restringido
	LevelBasic Level = 1 // sku, rango de stock, plazo de entrega
	LevelLot   Level = 2 // + lote mínimo
	LevelAudit Level = 3 // + fecha de actualización
)

// Secrets secretos configurados para cada nivel.
type Secrets struct {
	Admin  string
	Level3 string
	Level2 string
	Level1 string
}

type rule struct {
	secret string
	level  Level
}

// rules devuelve los secretos en orden de prioridad.
func (s Secrets) rules() []rule {
	return []rule{
		{s.Admin, LevelAudit},
		{s.Level3, LevelAudit},
		{s.Level2, LevelLot},
		{s.Level1, LevelBasic},
	}
}

// Classify devuelve el nivel del primer secreto no vacío igual a la credencial,
// o LevelNone si la credencial está vacía o no coincide con ninguno.
// La comparación es igualdad exacta, sin normalizar.
func Classify(credential string, secrets Secrets) Level {
	if credential == "" {
		return LevelNone
	}
	for _, r := range secrets.rules() {
		if r.secret != "" && r.secret == credential {
			return r.level
		}
	}
	return LevelNone
}

// Includes indica si el nivel habilita los campos de required.
func (l Level) Includes(required Level) bool {
	return l >= required
}
