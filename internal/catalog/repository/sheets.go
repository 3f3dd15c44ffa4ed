package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/leotech/cardapio-service/internal/catalog"
	"github.com/leotech/cardapio-service/internal/model"
	"github.com/leotech/cardapio-service/pkg/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ActivePolicy decides which products survive normalization. Lenient
// drops a product only when its active flag reads exactly "false";
// strict keeps it only for an explicit "true"/"1"/"sim". The two
// differ on unrecognized flag values: lenient keeps them, strict
// drops them.
type ActivePolicy string

const (
	ActiveLenient ActivePolicy = "lenient"
	ActiveStrict  ActivePolicy = "strict"
)

func ParseActivePolicy(s string) ActivePolicy {
	if strings.EqualFold(s, string(ActiveStrict)) {
		return ActiveStrict
	}
	return ActiveLenient
}

// SheetsRepository reads the whole catalog from the Apps Script JSON
// endpoint. Every call hits the network; nothing is cached.
type SheetsRepository struct {
	client   *http.Client
	endpoint string
	policy   ActivePolicy
	logger   *zap.Logger
}

var _ catalog.Repository = (*SheetsRepository)(nil)

func NewSheetsRepository(endpoint string, timeout time.Duration, policy ActivePolicy, log *zap.Logger) *SheetsRepository {
	return &SheetsRepository{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		policy:   policy,
		logger:   log,
	}
}

// row is one spreadsheet row as decoded from JSON: column name to
// whatever the sheet held (string, number, bool or null).
type row = map[string]any

func (r *SheetsRepository) FetchCatalog(ctx context.Context) (*model.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrFetchFailed, err)
	}
	req.Header.Set("Cache-Control", "no-store")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrFetchFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", catalog.ErrFetchFailed, res.StatusCode)
	}

	var payload map[string][]row
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrFetchFailed, err)
	}

	cat := r.normalize(payload)
	r.logger.Debug("catalog fetched",
		zap.Int("products", len(cat.Products)),
		zap.Int("variations", len(cat.Variations)),
		zap.Int("neighborhoods", len(cat.Neighborhoods)),
		zap.Int("config_rows", len(cat.Config)),
	)
	return cat, nil
}

func (r *SheetsRepository) normalize(payload map[string][]row) *model.Catalog {
	variations := normalizeVariations(tableFor(payload, "variac"))

	byProduct := map[string][]model.Variation{}
	for _, v := range variations {
		byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
	}

	products := r.normalizeProducts(tableFor(payload, "produto"))
	for i := range products {
		products[i].Variations = byProduct[products[i].ID]
	}

	return &model.Catalog{
		Products:      products,
		Variations:    variations,
		Neighborhoods: normalizeNeighborhoods(tableFor(payload, "bairro")),
		Config:        normalizeConfig(tableFor(payload, "config")),
	}
}

// tableFor matches table names loosely: any payload key whose lowered
// form contains the fragment contributes its rows. Matching keys are
// visited in sorted order so the result is deterministic; no match
// means an empty table, never an error.
func tableFor(payload map[string][]row, fragment string) []row {
	var keys []string
	for k := range payload {
		if strings.Contains(strings.ToLower(strings.TrimSpace(k)), fragment) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var rows []row
	for _, k := range keys {
		rows = append(rows, payload[k]...)
	}
	return rows
}

// Accepted column spellings per field, tried in priority order. The
// sheets in the wild mix casings, Portuguese/English synonyms and the
// occasional typo; anything unmatched falls back to a typed default.
var (
	keysProductID   = []string{"id", "ID", "Id", "codigo", "code"}
	keysProductName = []string{"nome", "Nome", "titulo", "title"}
	keysDescription = []string{"descricao", "Descricao", "desc"}
	keysCategory    = []string{"categoria", "Categoria"}
	keysSubcategory = []string{"subcategoria", "Subcategoria"}
	keysBasePrice   = []string{"preco_base", "preco", "preço", "precoBase", "valor"}
	keysImage       = []string{"imagem_url", "imagem", "foto"}
	keysActive      = []string{"ativo", "Ativo", "status"}
	keysSortOrder   = []string{"ordem", "rank", "posicao"}
	keysPopularity  = []string{"popularidade", "vendidos", "sales"}
	keysPromoPrice  = []string{"preco_promo", "promocao", "precoPromocional"}

	keysVarProductID = []string{"produto_id", "ProdutoID", "id_produto", "pid"}
	keysVarType      = []string{"tipo_variacao", "Tipo", "tipo"}
	keysVarName      = []string{"nome_variacao", "Nome", "nome"}
	keysVarExtra     = []string{"preco_extra", "extra", "preco"}

	keysHoodName = []string{"bairros", "nome"}
	keysHoodFee  = []string{"taxa", "tax", "valor"}

	keysConfigKey   = []string{"chave", "key", "Config"}
	keysConfigValue = []string{"valor", "value", "Val"}
)

// The unordered sheet sentinel: rows without an explicit display order
// sort after everything that has one.
const sortOrderSentinel = 9999

func (r *SheetsRepository) normalizeProducts(rows []row) []model.Product {
	products := make([]model.Product, 0, len(rows))
	for _, raw := range rows {
		if !r.policy.keeps(raw) {
			continue
		}
		products = append(products, model.Product{
			ID:          cellString(raw, keysProductID...),
			Name:        cellString(raw, keysProductName...),
			Description: cellString(raw, keysDescription...),
			Category:    cellString(raw, keysCategory...),
			Subcategory: cellString(raw, keysSubcategory...),
			BasePrice:   cellNumber(raw, keysBasePrice...),
			PromoPrice:  cellNumber(raw, keysPromoPrice...),
			ImageURL:    cellString(raw, keysImage...),
			SortOrder:   cellInt(raw, sortOrderSentinel, keysSortOrder...),
			Popularity:  cellInt(raw, 0, keysPopularity...),
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].SortOrder != products[j].SortOrder {
			return products[i].SortOrder < products[j].SortOrder
		}
		return products[i].Popularity > products[j].Popularity
	})
	return products
}

func normalizeVariations(rows []row) []model.Variation {
	variations := make([]model.Variation, 0, len(rows))
	for _, raw := range rows {
		variations = append(variations, model.Variation{
			ProductID:  cellString(raw, keysVarProductID...),
			Type:       cellString(raw, keysVarType...),
			Name:       cellString(raw, keysVarName...),
			PriceExtra: cellNumber(raw, keysVarExtra...),
		})
	}
	return variations
}

func normalizeNeighborhoods(rows []row) []model.Neighborhood {
	hoods := make([]model.Neighborhood, 0, len(rows))
	for _, raw := range rows {
		hoods = append(hoods, model.Neighborhood{
			Name: cellString(raw, keysHoodName...),
			Fee:  cellNumber(raw, keysHoodFee...),
		})
	}
	return hoods
}

func normalizeConfig(rows []row) []model.ConfigEntry {
	entries := make([]model.ConfigEntry, 0, len(rows))
	for _, raw := range rows {
		entries = append(entries, model.ConfigEntry{
			Key:   cellString(raw, keysConfigKey...),
			Value: cellString(raw, keysConfigValue...),
		})
	}
	return entries
}

func (p ActivePolicy) keeps(raw row) bool {
	v, ok := cell(raw, keysActive...)

	text := ""
	if ok {
		text = strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))
	}

	if p == ActiveStrict {
		return text == "true" || text == "1" || text == "sim"
	}

	// Lenient: active unless the flag says otherwise.
	if !ok {
		return true
	}
	return text != "false"
}

// cell returns the first candidate column that is present and non-nil.
func cell(raw row, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func cellString(raw row, keys ...string) string {
	v, ok := cell(raw, keys...)
	if !ok {
		return ""
	}
	if s, isStr := v.(string); isStr {
		return s
	}
	// JSON numbers decode as float64; decimal renders 3.0 as "3",
	// which is what the sheet held for integer IDs.
	if f, isNum := v.(float64); isNum {
		return decimal.NewFromFloat(f).String()
	}
	return fmt.Sprint(v)
}

// cellNumber coerces a cell to a decimal. Missing, empty and
// non-numeric cells all coerce to zero; this never fails.
func cellNumber(raw row, keys ...string) decimal.Decimal {
	v, ok := cell(raw, keys...)
	if !ok {
		return decimal.Zero
	}
	if f, isNum := v.(float64); isNum {
		return decimal.NewFromFloat(f)
	}
	return money.Parse(fmt.Sprint(v))
}

func cellInt(raw row, def int, keys ...string) int {
	if _, ok := cell(raw, keys...); !ok {
		return def
	}
	return int(cellNumber(raw, keys...).IntPart())
}
