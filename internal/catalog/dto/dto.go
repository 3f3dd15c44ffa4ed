package dto

import (
	"github.com/leotech/cardapio-service/internal/model"
	"github.com/shopspring/decimal"
)

// Sort modes accepted by the query engine; the zero value means
// SortPopularity.
const (
	SortPopularity = "mais_vendidos"
	SortPriceAsc   = "preco_asc"
	SortPriceDesc  = "preco_desc"
	SortAlpha      = "az"
)

// FilterAll is the sentinel that disables a category or subcategory
// filter.
const FilterAll = "todas"

// ProductQuery is the UI's current query state.
type ProductQuery struct {
	Search      string
	Category    string
	Subcategory string
	// MaxPrice is the price ceiling; zero means "use the default",
	// i.e. the maximum effective price of the whole list.
	MaxPrice decimal.Decimal
	Sort     string
	// Visible is the requested visible count; zero means one page.
	Visible int
}

// ProductView is a product plus the derived flags the storefront
// renders.
type ProductView struct {
	model.Product
	EffectivePrice decimal.Decimal `json:"preco_efetivo"`
	Discounted     bool            `json:"desconto"`
	Featured       bool            `json:"destaque"`
	Promoted       bool            `json:"promo"`
}

// View states for the product list. Loading and error states are owned
// by the consumer; the engine only ever reports ok or empty.
const (
	StateOK    = "ok"
	StateEmpty = "empty"
)

// QueryResult is the filtered, sorted, windowed view.
type QueryResult struct {
	Items   []ProductView   `json:"items"`
	Total   int             `json:"total"`
	Visible int             `json:"visible"`
	State   string          `json:"state"`
	Ceiling decimal.Decimal `json:"preco_teto"`
}

// CatalogSnapshot is everything the rendering layer needs from one
// fetch: collections, effective settings and the derived facets.
type CatalogSnapshot struct {
	Products          []model.Product      `json:"produtos"`
	Neighborhoods     []model.Neighborhood `json:"bairros"`
	NeighborhoodCount int                  `json:"total_bairros"`
	Settings          model.Settings       `json:"config"`
	Categories        []string             `json:"categorias"`
	MaxPrice          decimal.Decimal      `json:"preco_maximo"`
}
