// Package itemfile lee archivos de ítems (JSON, YAML o CSV) y los convierte al
// arreglo JSON que el servicio guarda en el almacén.
package itemfile

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/inventario-tiers/internal/application/inventory"
	"github.com/jhoicas/inventario-tiers/internal/domain"
	"github.com/jhoicas/inventario-tiers/internal/domain/entity"
)

// Format formato del archivo de ítems.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// FormatFromPath deduce el formato por la extensión.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: extensión no soportada %q", domain.ErrInvalidInput, filepath.Ext(path))
	}
}

// ParseFormat valida un nombre de formato recibido por flag.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: formato desconocido %q", domain.ErrInvalidInput, s)
	}
}

// decoderFor devuelve el lector que convierte charset a UTF-8.
func decoderFor(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "_", "-")) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: charset no soportado %q", domain.ErrInvalidInput, charset)
	}
}

// Decode lee los ítems de r en el formato y charset indicados.
// A diferencia del lector del servicio, cualquier elemento inválido es un error.
func Decode(r io.Reader, format Format, charset string) ([]entity.InventoryItem, error) {
	r, err := decoderFor(r, charset)
	if err != nil {
		return nil, err
	}
	var items []entity.InventoryItem
	switch format {
	case FormatJSON:
		items, err = decodeJSON(r)
	case FormatYAML:
		items, err = decodeYAML(r)
	case FormatCSV:
		items, err = decodeCSV(r)
	default:
		return nil, fmt.Errorf("%w: formato desconocido %q", domain.ErrInvalidInput, format)
	}
	if err != nil {
		return nil, err
	}
	for i := range items {
		if err := normalizeLot(&items[i]); err != nil {
			return nil, fmt.Errorf("ítem %d (%s): %w", i, items[i].SKU, err)
		}
	}
	return items, nil
}

// DecodeFile abre path y lo decodifica deduciendo el formato por la extensión.
func DecodeFile(path, charset string) ([]entity.InventoryItem, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo de ítems: %w", err)
	}
	defer f.Close()
	return Decode(f, format, charset)
}

// Encode serializa los ítems como el arreglo JSON que espera el almacén.
func Encode(items []entity.InventoryItem) (string, error) {
	if items == nil {
		items = []entity.InventoryItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("serializar ítems: %w", err)
	}
	return string(b), nil
}

func decodeJSON(r io.Reader) ([]entity.InventoryItem, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer JSON: %w", err)
	}
	items, skipped, err := inventory.DecodeItems(raw)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		return nil, fmt.Errorf("%w: %d elementos no son ítems válidos", domain.ErrInvalidInput, skipped)
	}
	return items, nil
}

type yamlItem struct {
	SKU        string  `yaml:"sku"`
	StockRange string  `yaml:"stockRange"`
	LeadTime   string  `yaml:"leadTime"`
	MinLot     *string `yaml:"minLot"`
	UpdatedAt  *string `yaml:"updatedAt"`
}

func decodeYAML(r io.Reader) ([]entity.InventoryItem, error) {
	var rows []yamlItem
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return []entity.InventoryItem{}, nil
		}
		return nil, fmt.Errorf("%w: YAML: %w", domain.ErrInvalidInput, err)
	}
	items := make([]entity.InventoryItem, 0, len(rows))
	for _, row := range rows {
		it := entity.InventoryItem{
			SKU:        row.SKU,
			StockRange: row.StockRange,
			LeadTime:   row.LeadTime,
			UpdatedAt:  nonEmpty(row.UpdatedAt),
		}
		if lot := nonEmpty(row.MinLot); lot != nil {
			n := json.Number(*lot)
			it.MinLot = &n
		}
		items = append(items, it)
	}
	return items, nil
}

// csvColumns nombres aceptados en la cabecera (sin distinguir mayúsculas).
var csvColumns = map[string]string{
	"sku":         "sku",
	"stockrange":  "stockRange",
	"stock_range": "stockRange",
	"leadtime":    "leadTime",
	"lead_time":   "leadTime",
	"minlot":      "minLot",
	"min_lot":     "minLot",
	"updatedat":   "updatedAt",
	"updated_at":  "updatedAt",
}

func decodeCSV(r io.Reader) ([]entity.InventoryItem, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []entity.InventoryItem{}, nil
		}
		return nil, fmt.Errorf("%w: cabecera CSV: %w", domain.ErrInvalidInput, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		name, ok := csvColumns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))]
		if !ok {
			continue
		}
		index[name] = i
	}
	if _, ok := index["sku"]; !ok {
		return nil, fmt.Errorf("%w: la cabecera CSV no tiene columna sku", domain.ErrInvalidInput)
	}

	var items []entity.InventoryItem
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: CSV línea %d: %w", domain.ErrInvalidInput, line, err)
		}
		cell := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		it := entity.InventoryItem{
			SKU:        cell("sku"),
			StockRange: cell("stockRange"),
			LeadTime:   cell("leadTime"),
		}
		if v := cell("minLot"); v != "" {
			n := json.Number(v)
			it.MinLot = &n
		}
		if v := cell("updatedAt"); v != "" {
			it.UpdatedAt = &v
		}
		items = append(items, it)
	}
	if items == nil {
		items = []entity.InventoryItem{}
	}
	return items, nil
}

// normalizeLot valida MinLot como número decimal y lo deja en forma canónica.
func normalizeLot(it *entity.InventoryItem) error {
	if it.MinLot == nil {
		return nil
	}
	n, ok := inventory.CanonicalLot(it.MinLot.String())
	if !ok {
		return fmt.Errorf("%w: minLot %q no es un número", domain.ErrInvalidInput, it.MinLot.String())
	}
	it.MinLot = &n
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
