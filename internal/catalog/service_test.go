package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probagno/storefront/internal/domain"
	"probagno/storefront/internal/domain/event"
)

type fakeRepository struct {
	products   []domain.Product
	categories []domain.Category
	listErr    error
	saveErr    error
	listCalls  int
	deleted    []string
}

func (r *fakeRepository) ListProducts(context.Context) ([]domain.Product, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.Product(nil), r.products...), nil
}

func (r *fakeRepository) GetProductBySlug(_ context.Context, slug string) (*domain.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	for _, p := range r.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeRepository) SaveProduct(_ context.Context, p *domain.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = *p
			return nil
		}
	}
	r.products = append(r.products, *p)
	return nil
}

func (r *fakeRepository) DeleteProduct(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.products = kept
	return nil
}

func (r *fakeRepository) ListCategories(context.Context) ([]domain.Category, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.Category(nil), r.categories...), nil
}

func (r *fakeRepository) SaveCategory(_ context.Context, c *domain.Category) error {
	r.categories = append(r.categories, *c)
	return nil
}

func (r *fakeRepository) DeleteCategory(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakePublisher struct {
	events []event.Event
}

func (p *fakePublisher) Publish(_ context.Context, e event.Event) (string, error) {
	p.events = append(p.events, e)
	return "1-0", nil
}

type fakeCache struct {
	products    []domain.Product
	invalidated int
}

func (c *fakeCache) GetProducts(context.Context) ([]domain.Product, bool, error) {
	return c.products, c.products != nil, nil
}

func (c *fakeCache) SetProducts(_ context.Context, products []domain.Product) error {
	c.products = products
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.products = nil
	c.invalidated++
	return nil
}

func storedProducts() []domain.Product {
	return []domain.Product{
		{ID: "a", Slug: "alpha", Name: "Alpha", BasePrice: 100, Tags: []string{"Ντουλάπι"}, Category: "outdoor", Colors: []string{"Λευκό"}},
		{ID: "b", Slug: "beta", Name: "Beta", BasePrice: 950, Tags: []string{"Συρτάρι"}, Colors: []string{"White"}},
	}
}

func newService(t *testing.T, repo *fakeRepository, cache SnapshotCache, pub Publisher) *Service {
	t.Helper()
	svc, err := NewService(repo, cache, pub, 16)
	require.NoError(t, err)
	return svc
}

func TestProductsFallbackOnError(t *testing.T) {
	repo := &fakeRepository{listErr: errors.New("connection refused")}
	svc := newService(t, repo, nil, nil)

	products := svc.Products(context.Background())

	assert.Len(t, products, len(fallbackProducts))
	assert.True(t, svc.ServingFallback())
}

func TestProductsFallbackOnEmpty(t *testing.T) {
	svc := newService(t, &fakeRepository{}, nil, nil)

	assert.Len(t, svc.Products(context.Background()), len(fallbackProducts))
	assert.True(t, svc.ServingFallback())
}

func TestProductsLoadedOnceUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepository{products: storedProducts()}
	svc := newService(t, repo, nil, nil)

	svc.Products(ctx)
	svc.Products(ctx)
	assert.Equal(t, 1, repo.listCalls)
	assert.False(t, svc.ServingFallback())

	svc.Invalidate(ctx)
	svc.Products(ctx)
	assert.Equal(t, 2, repo.listCalls)
}

func TestProductsPreferSharedSnapshot(t *testing.T) {
	cache := &fakeCache{products: storedProducts()[:1]}
	repo := &fakeRepository{products: storedProducts()}
	svc := newService(t, repo, cache, nil)

	products := svc.Products(context.Background())

	assert.Len(t, products, 1)
	assert.Equal(t, 0, repo.listCalls)
}

func TestProductsShareFetchedSnapshot(t *testing.T) {
	cache := &fakeCache{}
	svc := newService(t, &fakeRepository{products: storedProducts()}, cache, nil)

	svc.Products(context.Background())

	assert.Len(t, cache.products, 2)
}

func TestQueryIsMemoizedPerSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepository{products: storedProducts()}
	svc := newService(t, repo, nil, nil)
	sel := domain.FilterSelection{Colors: []string{"white"}, Price: domain.PriceRange{Max: 1000}}

	first := svc.Query(ctx, sel)
	assert.Equal(t, 2, first.Total)
	assert.Equal(t, 1000.0, first.MaxPrice)
	assert.Equal(t, 1, svc.queries.Len())

	second := svc.Query(ctx, sel)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)

	svc.HandleEvent(ctx, &event.ProductChangedEvent{Action: event.ActionUpdated})
	assert.Equal(t, 0, svc.queries.Len())
}

func TestFacetsReflectMutations(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepository{products: storedProducts()}
	svc := newService(t, repo, nil, &fakePublisher{})

	before := svc.Facets(ctx)
	assert.Equal(t, 2, before.Tags[0].Count)

	_, err := svc.CreateProduct(ctx, domain.Product{Name: "Γάμμα", BasePrice: 10, Tags: []string{"Συρτάρι"}})
	require.NoError(t, err)

	after := svc.Facets(ctx)
	assert.Equal(t, 3, after.Tags[0].Count)
}

func TestCreateProductAssignsIdentityAndPublishes(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepository{products: storedProducts()}
	pub := &fakePublisher{}
	cache := &fakeCache{}
	svc := newService(t, repo, cache, pub)

	created, err := svc.CreateProduct(ctx, domain.Product{Name: "Καθρέπτης Σόλο", NameEn: "Solo Mirror"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "solo-mirror", created.Slug)
	assert.NotEmpty(t, created.CreatedAt)
	require.Len(t, pub.events, 1)
	changed, ok := pub.events[0].(*event.ProductChangedEvent)
	require.True(t, ok)
	assert.Equal(t, event.ActionCreated, changed.Action)
	assert.Equal(t, created.ID, changed.ProductID)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCreateProductRejectsEmptySlug(t *testing.T) {
	svc := newService(t, &fakeRepository{}, nil, nil)

	_, err := svc.CreateProduct(context.Background(), domain.Product{Name: "!!!"})

	assert.ErrorIs(t, err, ErrInvalidSlug)
}

func TestUpdateProductKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	stored := storedProducts()
	stored[0].CreatedAt = "2023-01-01T00:00:00Z"
	repo := &fakeRepository{products: stored}
	svc := newService(t, repo, nil, nil)

	updated, err := svc.UpdateProduct(ctx, "a", domain.Product{Name: "Alpha 2", Slug: "alpha", BasePrice: 120})
	require.NoError(t, err)

	assert.Equal(t, "2023-01-01T00:00:00Z", updated.CreatedAt)
	assert.Equal(t, 120.0, repo.products[0].BasePrice)

	_, err = svc.UpdateProduct(ctx, "missing", domain.Product{Name: "x"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepository{products: storedProducts()}
	pub := &fakePublisher{}
	svc := newService(t, repo, nil, pub)

	require.NoError(t, svc.DeleteProduct(ctx, "a"))
	assert.Equal(t, []string{"a"}, repo.deleted)
	assert.Len(t, svc.Products(ctx), 1)
	assert.Len(t, pub.events, 1)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, "a"), ErrProductNotFound)
}

func TestProductBySlug(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, &fakeRepository{products: storedProducts()}, nil, nil)

	p, err := svc.ProductBySlug(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, "b", p.ID)

	p, err = svc.ProductBySlug(ctx, "luna-led-mirror")
	require.NoError(t, err)
	assert.Equal(t, "fallback-luna-led", p.ID)

	_, err = svc.ProductBySlug(ctx, "nothing-here")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductBySlugFallbackOnError(t *testing.T) {
	svc := newService(t, &fakeRepository{listErr: errors.New("boom")}, nil, nil)

	p, err := svc.ProductBySlug(context.Background(), "slim-drawer-unit")
	require.NoError(t, err)
	assert.Equal(t, "Slim Drawer Unit", p.NameEn)
}

func TestSearchProducts(t *testing.T) {
	svc := newService(t, &fakeRepository{}, nil, nil)
	ctx := context.Background()

	assert.Len(t, svc.SearchProducts(ctx, "ΝΤΟΥΛΆΠΙ"), 2)
	assert.Len(t, svc.SearchProducts(ctx, "luna"), 1)
	assert.Len(t, svc.SearchProducts(ctx, "  "), len(fallbackProducts))
}

func TestCategoriesCountFromSnapshot(t *testing.T) {
	svc := newService(t, &fakeRepository{}, nil, nil)

	counts := map[string]int{}
	for _, c := range svc.Categories(context.Background()) {
		counts[c.Slug] = c.ProductCount
	}

	assert.Equal(t, 1, counts["led-mirrors"])
	assert.Equal(t, 1, counts["cabinets"])
	assert.Equal(t, 2, counts["drawers"])
}

func TestCountProducts(t *testing.T) {
	products := storedProducts()

	assert.Equal(t, 2, CountProducts(products, domain.AllTag))
	assert.Equal(t, 1, CountProducts(products, "drawers"))
	assert.Equal(t, 1, CountProducts(products, "outdoor"))
	assert.Equal(t, 0, CountProducts(products, "led-mirrors"))
}

func TestDeleteCategoryRefusedWhenInUse(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepository{
		products: storedProducts(),
		categories: []domain.Category{
			{ID: "c1", Name: "Συρτάρια", Slug: "drawers"},
			{ID: "c2", Name: "Καθρέπτες LED", Slug: "led-mirrors"},
		},
	}
	svc := newService(t, repo, nil, &fakePublisher{})

	assert.ErrorIs(t, svc.DeleteCategory(ctx, "c1"), ErrCategoryInUse)
	require.NoError(t, svc.DeleteCategory(ctx, "c2"))
	assert.Equal(t, []string{"c2"}, repo.deleted)
	assert.ErrorIs(t, svc.DeleteCategory(ctx, "c9"), ErrCategoryNotFound)
}

func TestSaveCategoryGeneratesSlug(t *testing.T) {
	repo := &fakeRepository{products: storedProducts()}
	svc := newService(t, repo, nil, nil)

	c, err := svc.SaveCategory(context.Background(), domain.Category{Name: "Υπαίθριο", NameEn: "Outdoor"})
	require.NoError(t, err)

	assert.Equal(t, "outdoor", c.Slug)
	assert.Equal(t, 1, c.ProductCount)
	assert.NotEmpty(t, c.ID)
}

func TestSeed(t *testing.T) {
	repo := &fakeRepository{}
	svc := newService(t, repo, nil, nil)

	saved, err := svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(fallbackProducts), saved)
	assert.Len(t, repo.categories, len(fallbackCategories))
	assert.Len(t, repo.products, len(fallbackProducts))
	assert.False(t, svc.ServingFallback())
}

func TestImportProductsKeepsIdentityBySlug(t *testing.T) {
	repo := &fakeRepository{products: []domain.Product{
		{ID: "a", Slug: "alpha", Name: "Alpha", CreatedAt: "2023-05-01T00:00:00Z"},
	}}
	svc := newService(t, repo, nil, nil)

	saved, err := svc.ImportProducts(context.Background(), []domain.Product{
		{Slug: "alpha", Name: "Alpha v2", BasePrice: 100},
		{Slug: "beta", Name: "Beta"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	require.Len(t, repo.products, 2)
	assert.Equal(t, "a", repo.products[0].ID)
	assert.Equal(t, "Alpha v2", repo.products[0].Name)
	assert.Equal(t, "2023-05-01T00:00:00Z", repo.products[0].CreatedAt)
	assert.NotEmpty(t, repo.products[1].ID)

	saved, err = svc.ImportProducts(context.Background(), []domain.Product{{Slug: "beta", Name: "Beta"}})
	require.NoError(t, err)
	assert.Equal(t, 1, saved)
	assert.Len(t, repo.products, 2)
}

func TestSeedTwice(t *testing.T) {
	repo := &fakeRepository{}
	svc := newService(t, repo, nil, nil)

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)
	_, err = svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Len(t, repo.products, len(fallbackProducts))
}

func TestImportProductsAllFailing(t *testing.T) {
	repo := &fakeRepository{saveErr: errors.New("constraint violation")}
	svc := newService(t, repo, nil, nil)

	saved, err := svc.ImportProducts(context.Background(), []domain.Product{{Slug: "alpha", Name: "Alpha"}})
	assert.ErrorContains(t, err, "constraint violation")
	assert.Zero(t, saved)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Καθρέπτης LED Luna", "kathreptis-led-luna"},
		{"Nova Mirror Cabinet!", "nova-mirror-cabinet"},
		{"  --Ά  β-- ", "a-v"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}
