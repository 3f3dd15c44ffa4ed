package model

import "github.com/shopspring/decimal"

// Product is one sellable menu item, already normalized from the
// spreadsheet. IDs are kept as strings: cells arrive as numbers or text
// and string identity is what the featured/promo config lists use.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Category    string          `json:"categoria"`
	Subcategory string          `json:"subcategoria"`
	BasePrice   decimal.Decimal `json:"preco_base"`
	PromoPrice  decimal.Decimal `json:"preco_promo"`
	ImageURL    string          `json:"imagem_url"`
	SortOrder   int             `json:"ordem"`
	Popularity  int             `json:"popularidade"`
	Variations  []Variation     `json:"variacoes"`
}

// Variation is a priced option attached to one product. Variations
// sharing a Type form a choice group (e.g. every "Tamanho" option).
type Variation struct {
	ProductID  string          `json:"produto_id"`
	Type       string          `json:"tipo_variacao"`
	Name       string          `json:"nome_variacao"`
	PriceExtra decimal.Decimal `json:"preco_extra"`
}

// Neighborhood carries a delivery fee; only the served count is shown,
// no fee computation happens here.
type Neighborhood struct {
	Name string          `json:"bairro"`
	Fee  decimal.Decimal `json:"taxa"`
}

// ConfigEntry is one raw key/value row from the Config sheet.
type ConfigEntry struct {
	Key   string `json:"chave"`
	Value string `json:"valor"`
}

// Catalog is the full normalized snapshot of one fetch.
type Catalog struct {
	Products      []Product
	Variations    []Variation
	Neighborhoods []Neighborhood
	Config        []ConfigEntry
}

// EffectivePrice is the promotional price when one is set (> 0),
// otherwise the base price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.PromoPrice.IsPositive() {
		return p.PromoPrice
	}
	return p.BasePrice
}

// Discounted reports whether the promo price is active and actually
// below the base price (drives the strikethrough/promo badge).
func (p *Product) Discounted() bool {
	return p.PromoPrice.IsPositive() && p.PromoPrice.LessThan(p.BasePrice)
}

// VariationGroup is one choice group of a product, in sheet order.
type VariationGroup struct {
	Type    string      `json:"tipo"`
	Options []Variation `json:"opcoes"`
}

// GroupVariations buckets variations by type, preserving first-seen
// order of both types and options. An empty type falls back to "Opção".
func GroupVariations(vs []Variation) []VariationGroup {
	var groups []VariationGroup
	index := map[string]int{}
	for _, v := range vs {
		t := v.Type
		if t == "" {
			t = "Opção"
		}
		i, ok := index[t]
		if !ok {
			i = len(groups)
			index[t] = i
			groups = append(groups, VariationGroup{Type: t})
		}
		groups[i].Options = append(groups[i].Options, v)
	}
	return groups
}
