package itemfile_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/inventario-tiers/internal/domain"
	"github.com/jhoicas/inventario-tiers/internal/infrastructure/itemfile"
)

const wantEncoded = `[{"sku":"P-200R","stockRange":"1-200","leadTime":"2-4 weeks","minLot":50,"updatedAt":"2024-01-01"},{"sku":"Q-1","stockRange":"0","leadTime":""}]`

func TestDecode_YAML(t *testing.T) {
	src := `
- sku: P-200R
  stockRange: 1-200
  leadTime: 2-4 weeks
  minLot: 50
  updatedAt: 2024-01-01
- sku: Q-1
  stockRange: "0"
  leadTime: ""
  minLot: null
`
	items, err := itemfile.Decode(strings.NewReader(src), itemfile.FormatYAML, "")
	require.NoError(t, err)

	out, err := itemfile.Encode(items)
	require.NoError(t, err)
	assert.JSONEq(t, wantEncoded, out)
}

func TestDecode_CSV(t *testing.T) {
	src := "SKU,stock_range,Lead_Time,minLot,updatedAt\n" +
		"P-200R,1-200,2-4 weeks,50.00,2024-01-01\n" +
		"Q-1,0,,,\n"
	items, err := itemfile.Decode(strings.NewReader(src), itemfile.FormatCSV, "utf-8")
	require.NoError(t, err)

	out, err := itemfile.Encode(items)
	require.NoError(t, err)
	assert.JSONEq(t, wantEncoded, out)
}

func TestDecode_CSVLatin1(t *testing.T) {
	utf8 := "sku,leadTime\nCAÑO-12,2 semanas\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(utf8)
	require.NoError(t, err)

	items, err := itemfile.Decode(bytes.NewBufferString(latin1), itemfile.FormatCSV, "latin1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CAÑO-12", items[0].SKU)
}

func TestDecode_CSVSinColumnaSKU(t *testing.T) {
	_, err := itemfile.Decode(strings.NewReader("code,leadTime\nA,1\n"), itemfile.FormatCSV, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecode_JSONNormalizaLote(t *testing.T) {
	items, err := itemfile.Decode(strings.NewReader(`[{"sku":"A","minLot":"12.50"}]`), itemfile.FormatJSON, "")
	require.NoError(t, err)
	require.NotNil(t, items[0].MinLot)
	assert.Equal(t, json.Number("12.5"), *items[0].MinLot)
}

func TestDecode_JSONEstricto(t *testing.T) {
	_, err := itemfile.Decode(strings.NewReader(`[{"sku":"A"}, 3]`), itemfile.FormatJSON, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = itemfile.Decode(strings.NewReader(`{"sku":"A"}`), itemfile.FormatJSON, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecode_LoteNoNumerico(t *testing.T) {
	_, err := itemfile.Decode(strings.NewReader("sku,minLot\nA,cincuenta\n"), itemfile.FormatCSV, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecode_CharsetDesconocido(t *testing.T) {
	_, err := itemfile.Decode(strings.NewReader("[]"), itemfile.FormatJSON, "ebcdic")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecodeFile_FormatoPorExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.yml")
	require.NoError(t, os.WriteFile(path, []byte("- sku: A\n"), 0o600))

	items, err := itemfile.DecodeFile(path, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].SKU)

	_, err = itemfile.DecodeFile(filepath.Join(dir, "items.xml"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseFormat(t *testing.T) {
	f, err := itemfile.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, itemfile.FormatYAML, f)

	_, err = itemfile.ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestEncode_Vacio(t *testing.T) {
	out, err := itemfile.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}
