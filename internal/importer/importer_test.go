package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probagno/storefront/internal/config"
	"probagno/storefront/internal/domain"
)

func readFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/listing.html")
	require.NoError(t, err)
	return string(data)
}

func TestParseListingPage(t *testing.T) {
	parser := newListingParser("https://legacy.example.com/")

	page, err := parser.ParseListingPage(readFixture(t), 1)
	require.NoError(t, err)

	assert.True(t, page.HasNext)
	require.Len(t, page.Products, 2)

	luna := page.Products[0]
	assert.Equal(t, "Καθρέπτης LED Luna", luna.Name)
	assert.Equal(t, "luna-led-mirror", luna.Slug)
	assert.Equal(t, 320.0, luna.BasePrice)
	assert.Nil(t, luna.SalePrice)
	assert.True(t, luna.InStock)
	assert.True(t, luna.Featured)
	assert.Equal(t, "led-mirrors", luna.Category)
	assert.Equal(t, []string{"Καθρέπτης LED"}, luna.Tags)
	assert.Equal(t, "https://legacy.example.com/wp-content/uploads/luna.jpg", luna.Images[0].URL)
	require.Len(t, luna.Dimensions, 1)
	assert.Equal(t, "LUNA-60", luna.Dimensions[0].SKU)
	assert.False(t, luna.Dimensions[0].IsPlaceholder())

	terra := page.Products[1]
	assert.Empty(t, terra.Slug)
	assert.Equal(t, 1250.0, terra.BasePrice)
	require.NotNil(t, terra.SalePrice)
	assert.Equal(t, 1099.5, *terra.SalePrice)
	assert.True(t, terra.IsDiscounted())
	assert.False(t, terra.InStock)
	assert.Equal(t, []string{"Ντουλάπι", "Συρτάρι"}, terra.Tags)
	assert.Equal(t, "https://cdn.example.com/terra.jpg", terra.Images[0].URL)
}

func TestParsePrice(t *testing.T) {
	tests := map[string]float64{
		"320,00 €":   320,
		"1.250,00 €": 1250,
		"€ 99":       99,
		"":           0,
		"κατόπιν":    0,
	}
	for in, want := range tests {
		assert.Equal(t, want, parsePrice(in).InexactFloat64(), in)
	}
}

func TestSlugFromURL(t *testing.T) {
	assert.Equal(t, "metro-base", slugFromURL("https://x.gr/product/metro-base/"))
	assert.Empty(t, slugFromURL("https://x.gr/product/%CE%B2%CE%AC%CF%83%CE%B7/"))
	assert.Empty(t, slugFromURL(""))
}

const secondPage = `<ul>
<li class="product product_cat-metal-bases">
  <a href="/product/luna-led-mirror/" class="woocommerce-LoopProduct-link"><h2 class="woocommerce-loop-product__title">Καθρέπτης LED Luna</h2>
  <span class="price"><span class="amount">320,00 €</span></span></a>
</li>
<li class="product product_cat-metal-bases">
  <a href="/product/metro-base/" class="woocommerce-LoopProduct-link"><h2 class="woocommerce-loop-product__title">Μεταλλική βάση Metro</h2>
  <span class="price"><span class="amount">690,00 €</span></span></a>
</li>
</ul>`

type recordingSink struct {
	products []domain.Product
}

func (s *recordingSink) ImportProducts(_ context.Context, products []domain.Product) (int, error) {
	s.products = append(s.products, products...)
	return len(products), nil
}

func TestRunWalksPagesAndStores(t *testing.T) {
	fixture := readFixture(t)
	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		switch r.URL.Path {
		case "/products/":
			_, _ = w.Write([]byte(fixture))
		case "/products/page/2/":
			_, _ = w.Write([]byte(secondPage))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	sink := &recordingSink{}
	imp := New(config.ImporterConfig{
		BaseURL:              srv.URL,
		ListingPath:          "/products/",
		MaxPages:             5,
		MaxRequestsPerSecond: 1000,
		Timeout:              5,
	}, sink)
	defer imp.Close()

	saved, err := imp.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, saved)
	mu.Lock()
	assert.Equal(t, []string{"/products/", "/products/page/2/"}, paths)
	mu.Unlock()
	assert.Equal(t, "metro-base", sink.products[2].Slug)
	assert.Equal(t, []string{"Μεταλλική βάση"}, sink.products[2].Tags)
}

func TestRunFailsWhenFirstPageFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	imp := New(config.ImporterConfig{
		BaseURL:              srv.URL,
		ListingPath:          "products",
		MaxPages:             2,
		MaxRequestsPerSecond: 1000,
		Timeout:              5,
	}, &recordingSink{})

	_, err := imp.Run(context.Background())
	assert.Error(t, err)
}
