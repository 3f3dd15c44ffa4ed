package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leotech/cardapio-service/internal/catalog"
	"github.com/leotech/cardapio-service/internal/model"
	"github.com/leotech/cardapio-service/internal/order"
	"github.com/leotech/cardapio-service/internal/order/dto"
	"go.uber.org/zap"
)

type OrderHandler struct {
	catalogUC catalog.UseCase
	orderUC   order.UseCase
	logger    *zap.Logger
}

func NewOrderHandler(catalogUC catalog.UseCase, orderUC order.UseCase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{catalogUC: catalogUC, orderUC: orderUC, logger: log}
}

func (h *OrderHandler) Register(r chi.Router) {
	r.Post("/order-link", h.BuildOrderLink)
}

// BuildOrderLink composes the price for a product plus its chosen
// variations and returns the ready-to-open wa.me link.
func (h *OrderHandler) BuildOrderLink(w http.ResponseWriter, r *http.Request) {
	var input dto.OrderLinkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "product_id is required"})
		return
	}

	snap, err := h.catalogUC.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("order link request failed", zap.Error(err))
		status := http.StatusInternalServerError
		if errors.Is(err, catalog.ErrFetchFailed) {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, map[string]string{"error": "could not load catalog"})
		return
	}

	product := findProduct(snap.Products, input.ProductID)
	if product == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	sel := order.NewSelection(product.ID)
	for variationType, name := range input.Selections {
		sel.Choose(variationType, name)
	}

	summary := h.orderUC.Summarize(product, sel, snap.Settings.WhatsAppNumber)
	writeJSON(w, http.StatusOK, summary)
}

func findProduct(products []model.Product, id string) *model.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
