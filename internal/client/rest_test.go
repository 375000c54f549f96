package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probagno/storefront/internal/config"
	"probagno/storefront/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) CatalogClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewCatalogClient(config.BackendConfig{
		BaseURL:              srv.URL,
		APIKey:               "anon-key",
		Timeout:              5,
		MaxRetries:           0,
		MaxRequestsPerSecond: 1000,
		CircuitBreakerDelay:  60,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestListProducts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/products", r.URL.Path)
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		writeJSON(w, []map[string]any{{
			"id":         "p1",
			"name":       "Καθρέπτης Luna",
			"name_en":    "Luna Mirror",
			"slug":       "luna-mirror",
			"tags":       []string{"Καθρέπτης LED"},
			"base_price": 320,
			"sale_price": nil,
			"colors":     []string{"Λευκό"},
			"dimensions": []map[string]any{{"id": "d1", "sku": "LUNA-60", "width": 60, "height": 80, "depth": 3, "price": 320}},
			"in_stock":   true,
			"created_at": "2024-05-01T10:00:00+00:00",
		}})
	})

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "Luna Mirror", p.NameEn)
	assert.Equal(t, 320.0, p.BasePrice)
	assert.Nil(t, p.SalePrice)
	assert.Equal(t, "LUNA-60", p.Dimensions[0].SKU)
	assert.True(t, p.InStock)
}

func TestGetProductBySlugMissing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.nope", r.URL.Query().Get("slug"))
		writeJSON(w, []any{})
	})

	p, err := c.GetProductBySlug(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSaveProductUpserts(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Prefer"), "resolution=merge-duplicates")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
	})

	err := c.SaveProduct(context.Background(), &domain.Product{
		ID:        "p9",
		Name:      "Συρτάρι Box",
		Slug:      "box-drawer",
		BasePrice: 150,
		SalePrice: domain.Float(120),
	})
	require.NoError(t, err)

	assert.Equal(t, "p9", got["id"])
	assert.Equal(t, 120.0, got["sale_price"])
	assert.NotContains(t, got, "created_at")
	assert.Equal(t, []any{}, got["tags"])
	assert.Equal(t, []any{}, got["colors"])
}

func TestSaveProductKeepsCreatedAt(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
	})

	err := c.SaveProduct(context.Background(), &domain.Product{
		ID:        "fallback-luna-led",
		Name:      "Καθρέπτης LED Luna",
		Slug:      "luna-led-mirror",
		CreatedAt: "2024-02-10T09:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-02-10T09:00:00Z", got["created_at"])
	assert.NotContains(t, got, "updated_at")
}

func TestDeleteCategory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/rest/v1/categories", r.URL.Path)
		assert.Equal(t, "eq.c1", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteCategory(context.Background(), "c1"))
}

func TestHTTPErrorIsReturned(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	})

	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.NotErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreakerOpensOnOverload(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCircuitOpen)

	_, err = c.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(1), hits.Load())
}
