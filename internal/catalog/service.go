package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"probagno/storefront/internal/domain"
	"probagno/storefront/internal/domain/event"
	"probagno/storefront/internal/facet"
	"probagno/storefront/internal/repository"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has products")
	ErrInvalidSlug      = errors.New("slug cannot be empty")
)

// Publisher announces catalog mutations to every running instance.
type Publisher interface {
	Publish(ctx context.Context, e event.Event) (string, error)
}

// SnapshotCache shares the last fetched product snapshot between instances.
type SnapshotCache interface {
	GetProducts(ctx context.Context) ([]domain.Product, bool, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

type QueryResult struct {
	Items    []domain.Product `json:"items"`
	Total    int              `json:"total"`
	MaxPrice float64          `json:"maxPrice"`
}

type Service struct {
	repository repository.CatalogRepository
	cache      SnapshotCache
	publisher  Publisher
	queries    *lru.Cache[string, QueryResult]

	mu       sync.RWMutex
	products []domain.Product
	loaded   bool
	fallback bool
	version  uint64
}

// NewService builds the catalog. cache and publisher may be nil.
func NewService(
	repository repository.CatalogRepository,
	cache SnapshotCache,
	publisher Publisher,
	queryCacheSize int,
) (*Service, error) {
	queries, err := lru.New[string, QueryResult](max(1, queryCacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}

	return &Service{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		queries:    queries,
	}, nil
}

// Products returns the current snapshot, loading it on first use. The result
// is shared and must not be modified.
func (s *Service) Products(ctx context.Context) []domain.Product {
	products, _ := s.snapshot(ctx)
	return products
}

func (s *Service) snapshot(ctx context.Context) ([]domain.Product, uint64) {
	s.mu.RLock()
	if s.loaded {
		products, version := s.products, s.version
		s.mu.RUnlock()
		return products, version
	}
	s.mu.RUnlock()

	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) ([]domain.Product, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.products, s.version
	}

	products, fallback := s.fetchProducts(ctx)
	s.products = products
	s.fallback = fallback
	s.loaded = true
	s.version++
	s.queries.Purge()

	return s.products, s.version
}

// fetchProducts reads the shared cache, then the backend, then the built-in dataset.
func (s *Service) fetchProducts(ctx context.Context) ([]domain.Product, bool) {
	if s.cache != nil {
		products, ok, err := s.cache.GetProducts(ctx)
		if err != nil {
			log.Warnf("⚠️ Failed to read shared snapshot: %v", err)
		} else if ok && len(products) > 0 {
			log.Debugf("Loaded %d products from shared snapshot", len(products))
			return products, false
		}
	}

	products, err := s.repository.ListProducts(ctx)
	if err != nil {
		log.Errorf("❌ Failed to fetch products, serving fallback dataset: %v", err)
		return FallbackProducts(), true
	}
	if len(products) == 0 {
		log.Warn("⚠️ Backend has no products, serving fallback dataset")
		return FallbackProducts(), true
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products); err != nil {
			log.Warnf("⚠️ Failed to share snapshot: %v", err)
		}
	}

	log.Infof("📦 Loaded %d products from backend", len(products))
	return products, false
}

// ServingFallback reports whether the snapshot is the built-in dataset.
func (s *Service) ServingFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

// Invalidate drops the local snapshot and memoized queries. The next read refetches.
func (s *Service) Invalidate(ctx context.Context) {
	s.reset()

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Warnf("⚠️ Failed to invalidate shared snapshot: %v", err)
		}
	}
}

func (s *Service) reset() {
	s.mu.Lock()
	s.loaded = false
	s.products = nil
	s.version++
	s.queries.Purge()
	s.mu.Unlock()
}

// Refresh invalidates and reloads right away.
func (s *Service) Refresh(ctx context.Context) int {
	s.Invalidate(ctx)
	products, _ := s.load(ctx)
	return len(products)
}

// HandleEvent reacts to a change notification from another instance.
func (s *Service) HandleEvent(_ context.Context, e event.Event) {
	log.Debugf("🔔 Catalog change %s received, invalidating snapshot", e.EventType())

	s.reset()
}

// Query applies sel to the snapshot. Results are memoized per snapshot version.
func (s *Service) Query(ctx context.Context, sel domain.FilterSelection) QueryResult {
	products, version := s.snapshot(ctx)

	key, err := queryKey(version, sel)
	if err == nil {
		if cached, ok := s.queries.Get(key); ok {
			return cached
		}
	}

	items := facet.Query(products, sel)
	result := QueryResult{
		Items:    items,
		Total:    len(items),
		MaxPrice: facet.MaxPrice(products),
	}

	if err == nil {
		s.queries.Add(key, result)
	}
	return result
}

func queryKey(version uint64, sel domain.FilterSelection) (string, error) {
	data, err := json.Marshal(sel)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%s", version, data), nil
}

// Facets is always recomputed from the current snapshot.
func (s *Service) Facets(ctx context.Context) domain.Facets {
	return facet.Extract(s.Products(ctx))
}

func (s *Service) MaxPrice(ctx context.Context) float64 {
	return facet.MaxPrice(s.Products(ctx))
}

// ProductBySlug asks the backend first and falls back to the built-in dataset.
func (s *Service) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.repository.GetProductBySlug(ctx, slug)
	if err != nil {
		log.Errorf("❌ Failed to fetch product %s: %v", slug, err)
	}
	if err == nil && product != nil {
		return product, nil
	}

	if p, ok := fallbackBySlug(slug); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrProductNotFound, slug)
}

// SearchProducts is the admin list filter: substring over Greek or English name.
func (s *Service) SearchProducts(ctx context.Context, q string) []domain.Product {
	products := s.Products(ctx)
	lower := cases.Lower(language.Und)
	needle := lower.String(strings.TrimSpace(q))

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if needle == "" ||
			strings.Contains(lower.String(p.Name), needle) ||
			strings.Contains(lower.String(p.NameEn), needle) {
			result = append(result, p)
		}
	}
	return result
}

func (s *Service) findProduct(ctx context.Context, id string) (domain.Product, bool) {
	for _, p := range s.Products(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// CreateProduct assigns an id, slug and timestamps when missing and stores the product.
func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Slug = productSlug(p.Slug, p.NameEn, p.Name)
	if p.Slug == "" {
		return nil, ErrInvalidSlug
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if p.CreatedAt == "" {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	if err := s.repository.SaveProduct(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.productChanged(ctx, event.ActionCreated, p)
	return &p, nil
}

// UpdateProduct replaces an existing product, keeping its id and creation time.
func (s *Service) UpdateProduct(ctx context.Context, id string, p domain.Product) (*domain.Product, error) {
	existing, ok := s.findProduct(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	p.ID = id
	p.Slug = productSlug(p.Slug, p.NameEn, p.Name)
	if p.Slug == "" {
		return nil, ErrInvalidSlug
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repository.SaveProduct(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.productChanged(ctx, event.ActionUpdated, p)
	return &p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	existing, ok := s.findProduct(ctx, id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	if err := s.repository.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.productChanged(ctx, event.ActionDeleted, existing)
	return nil
}

// ImportProducts upserts products in bulk, announcing a single change.
// A product whose slug is already stored keeps the stored id and creation time.
func (s *Service) ImportProducts(ctx context.Context, products []domain.Product) (int, error) {
	saved, failed := 0, 0
	var lastErr error
	for i := range products {
		p := products[i]
		p.Slug = productSlug(p.Slug, p.NameEn, p.Name)
		if p.Slug == "" {
			log.Warnf("⚠️ Skipping product without a usable slug: %q", p.Name)
			continue
		}

		existing, err := s.repository.GetProductBySlug(ctx, p.Slug)
		if err != nil {
			log.Errorf("❌ Failed to look up product %s: %v", p.Slug, err)
			failed++
			lastErr = err
			continue
		}
		switch {
		case existing != nil:
			p.ID = existing.ID
			if p.CreatedAt == "" {
				p.CreatedAt = existing.CreatedAt
			}
		case p.ID == "":
			p.ID = uuid.NewString()
		}

		if err := s.repository.SaveProduct(ctx, &p); err != nil {
			log.Errorf("❌ Failed to import product %s: %v", p.Slug, err)
			failed++
			lastErr = err
			continue
		}
		saved++
	}

	if saved > 0 {
		s.productChanged(ctx, event.ActionImported, domain.Product{})
	}
	if saved == 0 && failed > 0 {
		return 0, fmt.Errorf("failed to import %d products: %w", failed, lastErr)
	}
	return saved, nil
}

// Seed copies the built-in dataset into the backend.
func (s *Service) Seed(ctx context.Context) (int, error) {
	saved, err := s.ImportProducts(ctx, FallbackProducts())
	if err != nil {
		return 0, err
	}
	for _, c := range FallbackCategories() {
		if err := s.repository.SaveCategory(ctx, &c); err != nil {
			return saved, fmt.Errorf("failed to seed category %s: %w", c.Slug, err)
		}
	}
	s.categoryChanged(ctx, event.ActionImported, "")
	return saved, nil
}

func (s *Service) productChanged(ctx context.Context, action event.Action, p domain.Product) {
	s.Invalidate(ctx)
	s.publish(ctx, &event.ProductChangedEvent{
		Action:    action,
		ProductID: p.ID,
		Slug:      p.Slug,
		At:        time.Now().UTC(),
	})
}

func (s *Service) categoryChanged(ctx context.Context, action event.Action, id string) {
	s.publish(ctx, &event.CategoryChangedEvent{
		Action:     action,
		CategoryID: id,
		At:         time.Now().UTC(),
	})
}

func (s *Service) publish(ctx context.Context, e event.Event) {
	if s.publisher == nil {
		return
	}
	if _, err := s.publisher.Publish(ctx, e); err != nil {
		log.Errorf("❌ Failed to publish %s: %v", e.EventType(), err)
	}
}
