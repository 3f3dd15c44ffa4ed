package order

import (
	"github.com/leotech/cardapio-service/internal/model"
	"github.com/leotech/cardapio-service/internal/order/dto"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	// ComposePrice is the effective price plus the deltas of every
	// type with a matching chosen variation.
	ComposePrice(p *model.Product, sel *Selection) decimal.Decimal

	// BuildMessage renders the plain-text order summary; details is
	// the semicolon-joined "tipo: nome" list, empty when nothing is
	// selected.
	BuildMessage(p *model.Product, sel *Selection) (message, details string)

	// Link builds the wa.me deep link with the message percent-encoded
	// into the text query parameter. The contact number is reduced to
	// digits only.
	Link(whatsappNumber, message string) string

	// Summarize bundles the three above for the rendering boundary.
	Summarize(p *model.Product, sel *Selection, whatsappNumber string) *dto.OrderSummary
}
