package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/leotech/cardapio-service/internal/catalog"
	"github.com/leotech/cardapio-service/internal/catalog/dto"
	"github.com/leotech/cardapio-service/pkg/money"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	uc     catalog.UseCase
	logger *zap.Logger
}

func NewCatalogHandler(uc catalog.UseCase, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: log}
}

func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/catalog", h.GetCatalog)
	r.Get("/products", h.ListProducts)
	r.Get("/subcategories", h.ListSubcategories)
}

// GetCatalog serves the full normalized snapshot: products with their
// variations, neighborhoods, effective settings and facets.
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	snap, err := h.uc.Snapshot(r.Context())
	if err != nil {
		h.fetchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// ListProducts serves the filtered/sorted/windowed view. Query params
// mirror the storefront's state: q, categoria, subcategoria,
// preco_max, ordenar, visiveis.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	snap, err := h.uc.Snapshot(r.Context())
	if err != nil {
		h.fetchError(w, err)
		return
	}

	params := r.URL.Query()
	visible, _ := strconv.Atoi(params.Get("visiveis"))

	q := &dto.ProductQuery{
		Search:      params.Get("q"),
		Category:    params.Get("categoria"),
		Subcategory: params.Get("subcategoria"),
		MaxPrice:    money.Parse(params.Get("preco_max")),
		Sort:        params.Get("ordenar"),
		Visible:     visible,
	}

	writeJSON(w, http.StatusOK, h.uc.Query(snap.Products, snap.Settings, q))
}

// ListSubcategories serves the subcategory facet scoped to the
// categoria param.
func (h *CatalogHandler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	snap, err := h.uc.Snapshot(r.Context())
	if err != nil {
		h.fetchError(w, err)
		return
	}
	subs := h.uc.Subcategories(snap.Products, r.URL.Query().Get("categoria"))
	writeJSON(w, http.StatusOK, map[string][]string{"subcategorias": subs})
}

func (h *CatalogHandler) fetchError(w http.ResponseWriter, err error) {
	h.logger.Error("catalog request failed", zap.Error(err))
	status := http.StatusInternalServerError
	if errors.Is(err, catalog.ErrFetchFailed) {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": "could not load catalog"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
