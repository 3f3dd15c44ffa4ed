package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/leotech/cardapio-service/internal/catalog"
	"github.com/leotech/cardapio-service/internal/catalog/dto"
	"github.com/leotech/cardapio-service/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type catalogUseCase struct {
	repo     catalog.Repository
	logger   *zap.Logger
	pageSize int
	lang     language.Tag
}

func NewCatalogUseCase(repo catalog.Repository, log *zap.Logger, pageSize int, locale string) catalog.UseCase {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	lang, err := language.Parse(locale)
	if err != nil {
		lang = language.BrazilianPortuguese
	}
	return &catalogUseCase{
		repo:     repo,
		logger:   log,
		pageSize: pageSize,
		lang:     lang,
	}
}

func (uc *catalogUseCase) Snapshot(ctx context.Context) (*dto.CatalogSnapshot, error) {
	cat, err := uc.repo.FetchCatalog(ctx)
	if err != nil {
		uc.logger.Error("catalog snapshot failed", zap.Error(err))
		return nil, err
	}

	settings := model.ResolveSettings(model.DefaultSettings(), cat.Config)

	return &dto.CatalogSnapshot{
		Products:          cat.Products,
		Neighborhoods:     cat.Neighborhoods,
		NeighborhoodCount: len(cat.Neighborhoods),
		Settings:          settings,
		Categories:        uc.categories(cat.Products),
		MaxPrice:          catalog.MaxEffectivePrice(cat.Products),
	}, nil
}

func (uc *catalogUseCase) Query(products []model.Product, settings model.Settings, q *dto.ProductQuery) *dto.QueryResult {
	ceiling := q.MaxPrice
	if !ceiling.IsPositive() {
		ceiling = catalog.MaxEffectivePrice(products)
	}

	filtered := make([]model.Product, 0, len(products))
	for i := range products {
		if uc.matches(&products[i], q, ceiling) {
			filtered = append(filtered, products[i])
		}
	}

	uc.sortProducts(filtered, q.Sort)

	visible := q.Visible
	if visible <= 0 {
		visible = uc.pageSize
	}
	if visible > len(filtered) {
		visible = len(filtered)
	}

	featured := idSet(settings.FeaturedIDs)
	promoted := idSet(settings.PromotedIDs)

	items := make([]dto.ProductView, visible)
	for i := 0; i < visible; i++ {
		p := filtered[i]
		items[i] = dto.ProductView{
			Product:        p,
			EffectivePrice: p.EffectivePrice(),
			Discounted:     p.Discounted(),
			Featured:       featured[p.ID],
			Promoted:       promoted[p.ID],
		}
	}

	state := dto.StateOK
	if len(filtered) == 0 {
		state = dto.StateEmpty
	}

	return &dto.QueryResult{
		Items:   items,
		Total:   len(filtered),
		Visible: visible,
		State:   state,
		Ceiling: ceiling,
	}
}

func (uc *catalogUseCase) matches(p *model.Product, q *dto.ProductQuery, ceiling decimal.Decimal) bool {
	if !passFilter(p.Category, q.Category) {
		return false
	}
	if !passFilter(p.Subcategory, q.Subcategory) {
		return false
	}
	if q.Search != "" && !contains(p.Name, q.Search) && !contains(p.Description, q.Search) {
		return false
	}
	return p.EffectivePrice().LessThanOrEqual(ceiling)
}

func passFilter(value, selected string) bool {
	if selected == "" || selected == dto.FilterAll {
		return true
	}
	return value == selected
}

func contains(hay, needle string) bool {
	return strings.Contains(strings.ToLower(hay), strings.ToLower(needle))
}

func (uc *catalogUseCase) sortProducts(list []model.Product, mode string) {
	switch mode {
	case dto.SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].EffectivePrice().LessThan(list[j].EffectivePrice())
		})
	case dto.SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].EffectivePrice().GreaterThan(list[j].EffectivePrice())
		})
	case dto.SortAlpha:
		// Collators carry an internal buffer, so build one per call
		// instead of sharing across requests.
		c := collate.New(uc.lang)
		sort.SliceStable(list, func(i, j int) bool {
			return c.CompareString(list[i].Name, list[j].Name) < 0
		})
	default: // dto.SortPopularity
		if anyPopular(list) {
			sort.SliceStable(list, func(i, j int) bool {
				return list[i].Popularity > list[j].Popularity
			})
			return
		}
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].SortOrder < list[j].SortOrder
		})
	}
}

func anyPopular(list []model.Product) bool {
	for i := range list {
		if list[i].Popularity > 0 {
			return true
		}
	}
	return false
}

// categories returns the category facet, sentinel first, remaining
// values in first-seen order.
func (uc *catalogUseCase) categories(products []model.Product) []string {
	out := []string{dto.FilterAll}
	seen := map[string]bool{}
	for i := range products {
		c := products[i].Category
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func (uc *catalogUseCase) Subcategories(products []model.Product, category string) []string {
	out := []string{dto.FilterAll}
	seen := map[string]bool{}
	for i := range products {
		if !passFilter(products[i].Category, category) {
			continue
		}
		s := products[i].Subcategory
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
