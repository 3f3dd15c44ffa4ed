package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/leotech/cardapio-service/internal/model"
	"github.com/leotech/cardapio-service/internal/order"
	"github.com/leotech/cardapio-service/internal/order/dto"
	"github.com/leotech/cardapio-service/pkg/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type orderUseCase struct {
	logger *zap.Logger
}

func NewOrderUseCase(log *zap.Logger) order.UseCase {
	return &orderUseCase{logger: log}
}

func (uc *orderUseCase) ComposePrice(p *model.Product, sel *order.Selection) decimal.Decimal {
	total := p.EffectivePrice()
	if sel == nil {
		return total
	}
	for _, v := range p.Variations {
		if chosen, ok := sel.Chosen(v.Type); ok && chosen == v.Name {
			total = total.Add(v.PriceExtra)
		}
	}
	return total
}

func (uc *orderUseCase) BuildMessage(p *model.Product, sel *order.Selection) (string, string) {
	details := uc.details(p, sel)

	message := fmt.Sprintf("Olá! Gostaria de pedir: *%s* (%s).", p.Name, money.Format(p.EffectivePrice()))
	if details != "" {
		message += "\nVariações: " + details + "."
	}
	message += "\nObs: "

	return message, details
}

// details walks the product's variation groups (not the selection map)
// so the output order is deterministic and only known variations are
// listed.
func (uc *orderUseCase) details(p *model.Product, sel *order.Selection) string {
	if sel == nil || sel.Empty() {
		return ""
	}
	var parts []string
	for _, group := range model.GroupVariations(p.Variations) {
		for _, v := range group.Options {
			if chosen, ok := sel.Chosen(v.Type); ok && chosen == v.Name {
				parts = append(parts, v.Type+": "+v.Name)
			}
		}
	}
	return strings.Join(parts, "; ")
}

func (uc *orderUseCase) Link(whatsappNumber, message string) string {
	query := url.Values{"text": {message}}
	return "https://wa.me/" + digitsOnly(whatsappNumber) + "?" + query.Encode()
}

func (uc *orderUseCase) Summarize(p *model.Product, sel *order.Selection, whatsappNumber string) *dto.OrderSummary {
	total := uc.ComposePrice(p, sel)
	message, details := uc.BuildMessage(p, sel)

	return &dto.OrderSummary{
		Total:          total,
		TotalFormatted: money.Format(total),
		Details:        details,
		Message:        message,
		Link:           uc.Link(whatsappNumber, message),
	}
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
