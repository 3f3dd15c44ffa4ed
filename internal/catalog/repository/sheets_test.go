package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leotech/cardapio-service/internal/catalog"
	"github.com/leotech/cardapio-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serveJSON(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func fetch(t *testing.T, srv *httptest.Server, policy ActivePolicy) *model.Catalog {
	t.Helper()
	repo := NewSheetsRepository(srv.URL, 5*time.Second, policy, zap.NewNop())
	cat, err := repo.FetchCatalog(context.Background())
	require.NoError(t, err)
	return cat
}

func TestFetchCatalogLooseTableNames(t *testing.T) {
	srv := serveJSON(t, `{
		"ProdutosSheet": [{"id": 1, "nome": "X Burger", "preco_base": 10}],
		"variacoes":     [{"produto_id": 1, "tipo_variacao": "Tamanho", "nome_variacao": "G", "preco_extra": 3}],
		"Bairros":       [{"bairros": "Centro", "taxa": 5}],
		"Configuracoes": [{"chave": "brand_name", "valor": "Lanchonete"}]
	}`)

	cat := fetch(t, srv, ActiveLenient)

	require.Len(t, cat.Products, 1)
	assert.Equal(t, "1", cat.Products[0].ID)
	assert.Equal(t, "X Burger", cat.Products[0].Name)

	require.Len(t, cat.Products[0].Variations, 1)
	assert.Equal(t, "Tamanho", cat.Products[0].Variations[0].Type)
	assert.Equal(t, "3", cat.Products[0].Variations[0].PriceExtra.String())

	require.Len(t, cat.Neighborhoods, 1)
	assert.Equal(t, "Centro", cat.Neighborhoods[0].Name)

	require.Len(t, cat.Config, 1)
	assert.Equal(t, "brand_name", cat.Config[0].Key)
}

func TestFetchCatalogAlternateSpellings(t *testing.T) {
	srv := serveJSON(t, `{
		"Produtos": [{
			"codigo": "abc-9",
			"titulo": "Pizza",
			"desc": "Mussarela",
			"Categoria": "Pizzas",
			"Subcategoria": "Tradicionais",
			"valor": "35,90",
			"foto": "https://img.example/p.jpg",
			"posicao": 2,
			"vendidos": 7,
			"promocao": "29,90"
		}]
	}`)

	cat := fetch(t, srv, ActiveLenient)

	require.Len(t, cat.Products, 1)
	p := cat.Products[0]
	assert.Equal(t, "abc-9", p.ID)
	assert.Equal(t, "Pizza", p.Name)
	assert.Equal(t, "Mussarela", p.Description)
	assert.Equal(t, "Pizzas", p.Category)
	assert.Equal(t, "Tradicionais", p.Subcategory)
	assert.Equal(t, "35.9", p.BasePrice.String())
	assert.Equal(t, "https://img.example/p.jpg", p.ImageURL)
	assert.Equal(t, 2, p.SortOrder)
	assert.Equal(t, 7, p.Popularity)
	assert.Equal(t, "29.9", p.PromoPrice.String())
}

func TestFetchCatalogDefaults(t *testing.T) {
	srv := serveJSON(t, `{"Produtos": [{"id": 3}]}`)

	cat := fetch(t, srv, ActiveLenient)

	require.Len(t, cat.Products, 1)
	p := cat.Products[0]
	assert.Equal(t, "", p.Name)
	assert.Equal(t, "", p.Description)
	assert.True(t, p.BasePrice.IsZero())
	assert.True(t, p.PromoPrice.IsZero())
	assert.Equal(t, 9999, p.SortOrder)
	assert.Equal(t, 0, p.Popularity)
}

func TestFetchCatalogCoercion(t *testing.T) {
	srv := serveJSON(t, `{"Produtos": [
		{"id": 1, "preco_base": "12,50"},
		{"id": 2, "preco_base": "garbage"},
		{"id": 3, "preco_base": null},
		{"id": 4, "preco_base": ""}
	]}`)

	cat := fetch(t, srv, ActiveLenient)

	require.Len(t, cat.Products, 4)
	assert.Equal(t, "12.5", cat.Products[0].BasePrice.String())
	assert.True(t, cat.Products[1].BasePrice.IsZero())
	assert.True(t, cat.Products[2].BasePrice.IsZero())
	assert.True(t, cat.Products[3].BasePrice.IsZero())
}

func TestActivePolicies(t *testing.T) {
	cases := []struct {
		name        string
		flag        string
		keptLenient bool
		keptStrict  bool
	}{
		{"true", `"ativo": "true"`, true, true},
		{"one", `"ativo": 1`, true, true},
		{"sim", `"ativo": "Sim"`, true, true},
		{"bool true", `"ativo": true`, true, true},
		{"false", `"ativo": "false"`, false, false},
		{"bool false", `"ativo": false`, false, false},
		{"unrecognized", `"ativo": "talvez"`, true, false},
		{"missing", `"nome": "sem flag"`, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := serveJSON(t, `{"Produtos": [{"id": 1, `+tc.flag+`}]}`)

			lenient := fetch(t, srv, ActiveLenient)
			assert.Equal(t, tc.keptLenient, len(lenient.Products) == 1, "lenient")

			strict := fetch(t, srv, ActiveStrict)
			assert.Equal(t, tc.keptStrict, len(strict.Products) == 1, "strict")
		})
	}
}

func TestNormalizationPreSort(t *testing.T) {
	srv := serveJSON(t, `{"Produtos": [
		{"id": 1, "nome": "late", "ordem": 5, "popularidade": 1},
		{"id": 2, "nome": "early", "ordem": 1, "popularidade": 0},
		{"id": 3, "nome": "popular", "ordem": 1, "popularidade": 9},
		{"id": 4, "nome": "unordered"}
	]}`)

	cat := fetch(t, srv, ActiveLenient)

	require.Len(t, cat.Products, 4)
	assert.Equal(t, "3", cat.Products[0].ID) // ordem 1, pop 9
	assert.Equal(t, "2", cat.Products[1].ID) // ordem 1, pop 0
	assert.Equal(t, "1", cat.Products[2].ID) // ordem 5
	assert.Equal(t, "4", cat.Products[3].ID) // sentinel last
}

func TestFetchCatalogMissingTables(t *testing.T) {
	srv := serveJSON(t, `{}`)

	cat := fetch(t, srv, ActiveLenient)

	assert.Empty(t, cat.Products)
	assert.Empty(t, cat.Variations)
	assert.Empty(t, cat.Neighborhoods)
	assert.Empty(t, cat.Config)
}

func TestFetchCatalogHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	repo := NewSheetsRepository(srv.URL, 5*time.Second, ActiveLenient, zap.NewNop())
	_, err := repo.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, catalog.ErrFetchFailed)
}

func TestFetchCatalogBadJSON(t *testing.T) {
	srv := serveJSON(t, `not json at all`)

	repo := NewSheetsRepository(srv.URL, 5*time.Second, ActiveLenient, zap.NewNop())
	_, err := repo.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, catalog.ErrFetchFailed)
}

func TestParseActivePolicy(t *testing.T) {
	assert.Equal(t, ActiveStrict, ParseActivePolicy("strict"))
	assert.Equal(t, ActiveStrict, ParseActivePolicy("STRICT"))
	assert.Equal(t, ActiveLenient, ParseActivePolicy("lenient"))
	assert.Equal(t, ActiveLenient, ParseActivePolicy(""))
	assert.Equal(t, ActiveLenient, ParseActivePolicy("whatever"))
}
