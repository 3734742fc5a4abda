package inventory_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tiers/internal/application/dto"
	"github.com/jhoicas/inventario-tiers/internal/application/inventory"
	"github.com/jhoicas/inventario-tiers/internal/domain"
	"github.com/jhoicas/inventario-tiers/internal/domain/access"
	"github.com/jhoicas/inventario-tiers/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const sampleItems = `[{"sku":"P-200R","stockRange":"1-200","leadTime":"2-4 weeks","minLot":50,"updatedAt":"2024-01-01"}]`

var testSecrets = access.Secrets{Admin: "adm", Level3: "l3", Level2: "l2", Level1: "l1"}

// stubStore implementa inventory.ItemStore con valores fijos.
type stubStore struct {
	value string
	found bool
	err   error
	calls int
}

func (s *stubStore) Get(_ context.Context, _ string) (string, bool, error) {
	s.calls++
	return s.value, s.found, s.err
}

func newUseCase(store inventory.ItemStore) *inventory.CatalogUseCase {
	return inventory.NewCatalogUseCase(inventory.NewReader(store, "", nil), testSecrets)
}

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reader
// ──────────────────────────────────────────────────────────────────────────────

func TestReadItems_ClaveAusente_ColeccionVacia(t *testing.T) {
	r := inventory.NewReader(&stubStore{found: false}, "", nil)
	items, err := r.ReadItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestReadItems_ContenidoMalformado_ColeccionVacia(t *testing.T) {
	for _, raw := range []string{"not json", `{"sku":"A"}`, `"items"`, "", "[1,"} {
		r := inventory.NewReader(&stubStore{value: raw, found: true}, "", nil)
		items, err := r.ReadItems(context.Background())
		require.NoError(t, err, "raw=%q", raw)
		assert.Empty(t, items, "raw=%q", raw)
	}
}

func TestReadItems_OmiteElementosQueNoSonObjetos(t *testing.T) {
	raw := `[{"sku":"A"}, 42, "B", [1], {"sku":"C","minLot":"12"}, null]`
	r := inventory.NewReader(&stubStore{value: raw, found: true}, "", nil)
	items, err := r.ReadItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].SKU)
	assert.Equal(t, "C", items[1].SKU)
	require.NotNil(t, items[1].MinLot)
	assert.Equal(t, json.Number("12"), *items[1].MinLot)
}

func TestDecodeItems_CamposDeOtroTipoSeIgnoran(t *testing.T) {
	raw := `[
		{"sku":{"x":1},"leadTime":"2 weeks"},
		{"sku":"A","stockRange":0,"leadTime":7},
		{"sku":"B","updatedAt":1704067200,"minLot":"cincuenta"},
		{"sku":"C","minLot":false,"updatedAt":""}
	]`
	items, skipped, err := inventory.DecodeItems([]byte(raw))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, items, 4)

	assert.Equal(t, entity.InventoryItem{LeadTime: "2 weeks"}, items[0])
	assert.Equal(t, entity.InventoryItem{SKU: "A"}, items[1])
	assert.Equal(t, entity.InventoryItem{SKU: "B"}, items[2])
	assert.Equal(t, entity.InventoryItem{SKU: "C"}, items[3])
	assert.Equal(t, []string{"A", "B", "C"}, inventory.PublicSKUs(items))
}

func TestDecodeItems_LoteCanonico(t *testing.T) {
	cases := map[string]string{
		`1e2`:     "100",
		`50.0`:    "50",
		`"12.50"`: "12.5",
		`0`:       "0",
		`-3`:      "-3",
	}
	for in, want := range cases {
		items, _, err := inventory.DecodeItems([]byte(`[{"sku":"A","minLot":` + in + `}]`))
		require.NoError(t, err, in)
		require.Len(t, items, 1, in)
		require.NotNil(t, items[0].MinLot, in)
		assert.Equal(t, json.Number(want), *items[0].MinLot, in)
	}
}

func TestReadItems_FalloDelAlmacen_PropagaError(t *testing.T) {
	boom := errors.New("conexión rechazada")
	r := inventory.NewReader(&stubStore{err: boom}, "", nil)
	_, err := r.ReadItems(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, err, boom)
}

// ──────────────────────────────────────────────────────────────────────────────
// Projector
// ──────────────────────────────────────────────────────────────────────────────

func TestPublicSKUs_FiltraVaciosYRespetaOrden(t *testing.T) {
	items := []entity.InventoryItem{{SKU: "B"}, {SKU: ""}, {SKU: "A", StockRange: "700+"}, {LeadTime: "1 week"}}
	assert.Equal(t, []string{"B", "A"}, inventory.PublicSKUs(items))
	assert.Equal(t, []string{}, inventory.PublicSKUs(nil))
}

func TestProject_ValoresPorDefecto(t *testing.T) {
	items := []entity.InventoryItem{{}}

	assert.JSONEq(t, `{"level":1,"items":[{"sku":"","stockRange":"0","leadTime":""}]}`,
		marshal(t, inventory.Project(items, access.LevelBasic)))
	assert.JSONEq(t, `{"level":2,"items":[{"sku":"","stockRange":"0","leadTime":"","minLot":null}]}`,
		marshal(t, inventory.Project(items, access.LevelLot)))
	assert.JSONEq(t, `{"level":3,"items":[{"sku":"","stockRange":"0","leadTime":"","minLot":null,"updatedAt":null}]}`,
		marshal(t, inventory.Project(items, access.LevelAudit)))
}

func TestProject_MinLotCeroNoEsNull(t *testing.T) {
	zero := json.Number("0")
	empty := ""
	items := []entity.InventoryItem{{SKU: "Z", MinLot: &zero, UpdatedAt: &empty}}

	assert.JSONEq(t, `{"level":3,"items":[{"sku":"Z","stockRange":"0","leadTime":"","minLot":0,"updatedAt":null}]}`,
		marshal(t, inventory.Project(items, access.LevelAudit)))
}

func TestProject_Monotonia(t *testing.T) {
	lot := json.Number("50")
	ts := "2024-01-01"
	items := []entity.InventoryItem{{SKU: "P", StockRange: "1-200", LeadTime: "2-4 weeks", MinLot: &lot, UpdatedAt: &ts}}

	fields := func(level access.Level) map[string]any {
		var out struct {
			Items []map[string]any `json:"items"`
		}
		require.NoError(t, json.Unmarshal([]byte(marshal(t, inventory.Project(items, level))), &out))
		require.Len(t, out.Items, 1)
		return out.Items[0]
	}

	prev := fields(access.LevelBasic)
	for _, level := range []access.Level{access.LevelLot, access.LevelAudit} {
		cur := fields(level)
		for k, v := range prev {
			assert.Contains(t, cur, k, "nivel %d debe incluir %s", level, k)
			assert.Equal(t, v, cur[k])
		}
		assert.Greater(t, len(cur), len(prev))
		prev = cur
	}
}

func TestProject_NoModificaEntrada(t *testing.T) {
	lot := json.Number("5")
	items := []entity.InventoryItem{{SKU: "A", MinLot: &lot}}
	before := marshal(t, items)

	resp := inventory.Project(items, access.LevelAudit)
	views := resp.Items.([]dto.AuditItemView)
	*views[0].MinLot = "999"

	assert.Equal(t, before, marshal(t, items))
}

// ──────────────────────────────────────────────────────────────────────────────
// CatalogUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_EjemploCompleto(t *testing.T) {
	uc := newUseCase(&stubStore{value: sampleItems, found: true})
	ctx := context.Background()

	pub, err := uc.PublicCatalog(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skus":["P-200R"]}`, marshal(t, pub))

	cases := map[string]string{
		"l1":  `{"level":1,"items":[{"sku":"P-200R","stockRange":"1-200","leadTime":"2-4 weeks"}]}`,
		"l2":  `{"level":2,"items":[{"sku":"P-200R","stockRange":"1-200","leadTime":"2-4 weeks","minLot":50}]}`,
		"l3":  `{"level":3,"items":[{"sku":"P-200R","stockRange":"1-200","leadTime":"2-4 weeks","minLot":50,"updatedAt":"2024-01-01"}]}`,
		"adm": `{"level":3,"items":[{"sku":"P-200R","stockRange":"1-200","leadTime":"2-4 weeks","minLot":50,"updatedAt":"2024-01-01"}]}`,
	}
	for pw, want := range cases {
		resp, err := uc.Inventory(ctx, pw)
		require.NoError(t, err, pw)
		assert.JSONEq(t, want, marshal(t, resp), pw)
	}
}

func TestInventory_CredencialInvalida_NoLeeAlmacen(t *testing.T) {
	store := &stubStore{value: sampleItems, found: true}
	uc := newUseCase(store)

	for _, pw := range []string{"", "wrong"} {
		_, err := uc.Inventory(context.Background(), pw)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	}
	assert.Zero(t, store.calls)
}

func TestInventory_Malformado_ItemsVacios(t *testing.T) {
	uc := newUseCase(&stubStore{value: "<html>", found: true})

	resp, err := uc.Inventory(context.Background(), "l2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":2,"items":[]}`, marshal(t, resp))

	pub, err := uc.PublicCatalog(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"skus":[]}`, marshal(t, pub))
}
