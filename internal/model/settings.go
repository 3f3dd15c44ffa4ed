package model

import (
	"strings"

	"github.com/leotech/cardapio-service/pkg/money"
	"github.com/shopspring/decimal"
)

// Settings is the effective storefront configuration: the defaults
// below overlaid with whatever rows the Config sheet carries.
type Settings struct {
	BrandName      string          `json:"brand_name"`
	WhatsAppNumber string          `json:"whatsapp_number"`
	AccentColor    string          `json:"accent_color"`
	LogoURL        string          `json:"logo_url"`
	ThemeMode      string          `json:"dark_mode_default"`
	SEODescription string          `json:"seo_description"`
	SEOKeywords    string          `json:"seo_keywords"`
	FeaturedIDs    []string        `json:"featured_ids"`
	PromotedIDs    []string        `json:"promocoes_ids"`
	MinOrder       decimal.Decimal `json:"min_order"`
	DeliveryOpen   bool            `json:"delivery_open"`
}

const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultSettings mirrors the hardcoded storefront defaults; every
// field can be overridden by a Config row.
func DefaultSettings() Settings {
	return Settings{
		BrandName:      "Seu Restaurante",
		WhatsAppNumber: "5599999999999",
		AccentColor:    "#EA1D2C",
		LogoURL:        "",
		ThemeMode:      ThemeAuto,
		SEODescription: "Cardápio digital rápido e prático.",
		SEOKeywords:    "cardápio, delivery, restaurante",
		FeaturedIDs:    nil,
		PromotedIDs:    nil,
		MinOrder:       decimal.Zero,
		DeliveryOpen:   true,
	}
}

// ResolveSettings overlays the defaults with matching config rows.
// Keys are compared case-insensitively and empty values never override.
func ResolveSettings(defaults Settings, rows []ConfigEntry) Settings {
	s := defaults

	if v, ok := lookup(rows, "brand_name"); ok {
		s.BrandName = v
	}
	if v, ok := lookup(rows, "whatsapp_number"); ok {
		s.WhatsAppNumber = v
	}
	if v, ok := lookup(rows, "accent_color"); ok {
		s.AccentColor = v
	}
	if v, ok := lookup(rows, "logo_url"); ok {
		s.LogoURL = v
	}
	if v, ok := lookup(rows, "dark_mode_default"); ok {
		switch v {
		case ThemeAuto, ThemeLight, ThemeDark:
			s.ThemeMode = v
		default:
			s.ThemeMode = ThemeAuto
		}
	}
	if v, ok := lookup(rows, "seo_description"); ok {
		s.SEODescription = v
	}
	if v, ok := lookup(rows, "seo_keywords"); ok {
		s.SEOKeywords = v
	}
	if v, ok := lookup(rows, "featured_ids"); ok {
		s.FeaturedIDs = splitIDList(v)
	}
	if v, ok := lookup(rows, "promocoes_ids"); ok {
		s.PromotedIDs = splitIDList(v)
	}
	if v, ok := lookup(rows, "min_order"); ok {
		s.MinOrder = money.Parse(v)
	}
	if v, ok := lookup(rows, "delivery_open"); ok {
		s.DeliveryOpen = strings.EqualFold(v, "true")
	}

	return s
}

func lookup(rows []ConfigEntry, key string) (string, bool) {
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.Key), key) && row.Value != "" {
			return row.Value, true
		}
	}
	return "", false
}

func splitIDList(v string) []string {
	var ids []string
	for _, part := range strings.Split(v, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
