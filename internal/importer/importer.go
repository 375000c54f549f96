package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"probagno/storefront/internal/config"
	"probagno/storefront/internal/domain"
)

// Sink stores imported products.
type Sink interface {
	ImportProducts(ctx context.Context, products []domain.Product) (int, error)
}

type Importer struct {
	rl          ratelimit.Limiter
	config      config.ImporterConfig
	httpClient  *resty.Client
	parser      *listingParser
	sink        Sink
	listingBase string
}

func New(cfg config.ImporterConfig, sink Sink) *Importer {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36").
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "el-GR,el;q=0.9,en;q=0.5")

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	return &Importer{
		rl:          ratelimit.New(cfg.MaxRequestsPerSecond),
		config:      cfg,
		httpClient:  client,
		parser:      newListingParser(baseURL),
		sink:        sink,
		listingBase: baseURL + "/" + strings.Trim(cfg.ListingPath, "/"),
	}
}

func (i *Importer) pageURL(pageNumber int) string {
	if pageNumber <= 1 {
		return i.listingBase + "/"
	}
	return fmt.Sprintf("%s/page/%d/", i.listingBase, pageNumber)
}

// FetchAll walks the listing pages until there is no next page or MaxPages is reached.
func (i *Importer) FetchAll(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	seen := make(map[string]struct{})

	for pageNumber := 1; pageNumber <= i.config.MaxPages; pageNumber++ {
		page, err := i.FetchPage(ctx, pageNumber)
		if err != nil {
			if pageNumber == 1 {
				return nil, fmt.Errorf("failed to fetch first page: %w", err)
			}
			log.Errorf("❌ Stopping at page %d: %v", pageNumber, err)
			break
		}

		for _, p := range page.Products {
			key := p.Slug
			if key == "" {
				key = p.Name
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			products = append(products, p)
		}

		if !page.HasNext {
			break
		}
	}

	log.Infof("✅ Collected %d products from the legacy shop", len(products))
	return products, nil
}

func (i *Importer) FetchPage(ctx context.Context, pageNumber int) (*ListingPage, error) {
	html, err := i.fetchHTML(ctx, i.pageURL(pageNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch HTML for listing page %d: %w", pageNumber, err)
	}

	page, err := i.parser.ParseListingPage(html, pageNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page %d: %w", pageNumber, err)
	}
	return page, nil
}

// Run fetches every listing page and stores the products through the sink.
func (i *Importer) Run(ctx context.Context) (int, error) {
	log.Infof("🔄 Importing products from %s", i.listingBase)

	products, err := i.FetchAll(ctx)
	if err != nil {
		return 0, err
	}

	saved, err := i.sink.ImportProducts(ctx, products)
	if err != nil {
		return saved, fmt.Errorf("failed to store imported products: %w", err)
	}

	log.Infof("🎉 Imported %d of %d products", saved, len(products))
	return saved, nil
}

func (i *Importer) fetchHTML(ctx context.Context, url string) (string, error) {
	i.rl.Take()

	resp, err := i.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	return resp.String(), nil
}

func (i *Importer) Close() error {
	return i.httpClient.Close()
}
