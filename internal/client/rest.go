package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"probagno/storefront/internal/config"
	"probagno/storefront/internal/domain"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

// CatalogClient talks to a PostgREST style backend exposing the products and
// categories tables. GetProductBySlug returns nil, nil when nothing matches.
type CatalogClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	SaveProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	SaveCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

type catalogClient struct {
	rl         ratelimit.Limiter
	httpClient *resty.Client

	// Circuit breaker for an overloaded backend
	circuitBreakerMutex sync.RWMutex
	unavailableUntil    time.Time
	circuitBreakerDelay time.Duration
}

func NewCatalogClient(cfg config.BackendConfig) CatalogClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL+"/rest/v1").
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if cfg.APIKey != "" {
		client.SetHeader("apikey", cfg.APIKey)
		client.SetAuthToken(cfg.APIKey)
	}

	return &catalogClient{
		rl:                  ratelimit.New(cfg.MaxRequestsPerSecond),
		httpClient:          client,
		circuitBreakerDelay: time.Duration(cfg.CircuitBreakerDelay) * time.Second,
	}
}

func (c *catalogClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var rows []dbProduct
	err := c.do(ctx, http.MethodGet, "/products", map[string]string{
		"select": "*",
		"order":  "created_at.desc",
	}, nil, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toDomain())
	}

	log.Debugf("Fetched %d products from backend", len(products))
	return products, nil
}

func (c *catalogClient) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var rows []dbProduct
	err := c.do(ctx, http.MethodGet, "/products", map[string]string{
		"select": "*",
		"slug":   "eq." + slug,
		"limit":  "1",
	}, nil, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", slug, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	product := rows[0].toDomain()
	return &product, nil
}

func (c *catalogClient) SaveProduct(ctx context.Context, product *domain.Product) error {
	body := fromDomainProduct(product)
	if err := c.upsert(ctx, "/products", body); err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ID, err)
	}
	return nil
}

func (c *catalogClient) DeleteProduct(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/products", map[string]string{"id": "eq." + id}, nil, nil); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

func (c *catalogClient) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []dbCategory
	err := c.do(ctx, http.MethodGet, "/categories", map[string]string{
		"select": "*",
		"order":  "name.asc",
	}, nil, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toDomain())
	}
	return categories, nil
}

func (c *catalogClient) SaveCategory(ctx context.Context, category *domain.Category) error {
	if err := c.upsert(ctx, "/categories", fromDomainCategory(category)); err != nil {
		return fmt.Errorf("failed to save category %s: %w", category.ID, err)
	}
	return nil
}

func (c *catalogClient) DeleteCategory(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/categories", map[string]string{"id": "eq." + id}, nil, nil); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}

func (c *catalogClient) upsert(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, nil,
		"Prefer", "resolution=merge-duplicates,return=minimal")
}

func (c *catalogClient) isCircuitBreakerOpen() bool {
	c.circuitBreakerMutex.RLock()
	now := time.Now()
	wasOpen := now.Before(c.unavailableUntil)
	wasTriggered := !c.unavailableUntil.IsZero()
	c.circuitBreakerMutex.RUnlock()

	if !wasOpen && wasTriggered {
		c.circuitBreakerMutex.Lock()
		if !c.unavailableUntil.IsZero() && now.After(c.unavailableUntil) {
			c.unavailableUntil = time.Time{}
			log.Infof("✅ Circuit breaker re-enabled, backend requests are allowed again")
		}
		c.circuitBreakerMutex.Unlock()
	}

	return wasOpen
}

func (c *catalogClient) triggerCircuitBreaker() {
	c.circuitBreakerMutex.Lock()
	defer c.circuitBreakerMutex.Unlock()

	c.unavailableUntil = time.Now().Add(c.circuitBreakerDelay)
	log.Warnf("🚫 Circuit breaker activated! Backend requests disabled until %v",
		c.unavailableUntil.Format("15:04:05"))
}

func (c *catalogClient) getRemainingCircuitBreakerTime() time.Duration {
	c.circuitBreakerMutex.RLock()
	defer c.circuitBreakerMutex.RUnlock()

	remaining := time.Until(c.unavailableUntil)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// do performs one backend call. headers is a flat list of name, value pairs.
func (c *catalogClient) do(ctx context.Context, method, path string, query map[string]string, body, result any, headers ...string) error {
	if c.isCircuitBreakerOpen() {
		remaining := c.getRemainingCircuitBreakerTime()
		log.Debugf("🚫 Request blocked by circuit breaker. Remaining time: %v", remaining.Round(time.Second))
		return fmt.Errorf("%w: requests disabled for %v more", ErrCircuitOpen, remaining.Round(time.Second))
	}

	c.rl.Take()

	req := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(query)
	for i := 0; i+1 < len(headers); i += 2 {
		req.SetHeader(headers[i], headers[i+1])
	}
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("failed to call backend: %w", err)
	}

	if resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() == http.StatusServiceUnavailable {
		c.triggerCircuitBreaker()
		return fmt.Errorf("backend unavailable: %d", resp.StatusCode())
	}

	if resp.IsError() {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.String())
	}

	return nil
}

func (c *catalogClient) Close() error {
	return c.httpClient.Close()
}
