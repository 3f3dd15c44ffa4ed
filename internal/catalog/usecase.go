package catalog

import (
	"context"

	"github.com/leotech/cardapio-service/internal/catalog/dto"
	"github.com/leotech/cardapio-service/internal/model"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	// Snapshot fetches a fresh catalog and derives effective settings,
	// facets and the default price ceiling.
	Snapshot(ctx context.Context) (*dto.CatalogSnapshot, error)

	// Query is a pure function of the product list and the UI query
	// state; it never mutates its inputs.
	Query(products []model.Product, settings model.Settings, q *dto.ProductQuery) *dto.QueryResult

	// Subcategories lists the subcategory facet scoped to a category
	// ("todas" or empty scopes to every product).
	Subcategories(products []model.Product, category string) []string
}

// MaxEffectivePrice is the default price ceiling: the maximum
// promo-if-set-else-base price across the list, zero when empty.
func MaxEffectivePrice(products []model.Product) decimal.Decimal {
	max := decimal.Zero
	for i := range products {
		if p := products[i].EffectivePrice(); p.GreaterThan(max) {
			max = p
		}
	}
	return max
}
