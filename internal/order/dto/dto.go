package dto

import "github.com/shopspring/decimal"

// OrderLinkInput is the rendering layer's request for a WhatsApp
// deep link: one product plus the chosen variation name per type.
type OrderLinkInput struct {
	ProductID  string            `json:"product_id"`
	Selections map[string]string `json:"selections"`
}

// OrderSummary is everything needed to hand the order off.
type OrderSummary struct {
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatado"`
	Details        string          `json:"detalhes"`
	Message        string          `json:"mensagem"`
	Link           string          `json:"link"`
}
