package importer

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"probagno/storefront/internal/domain"
)

var (
	categoryClassRegex = regexp.MustCompile(`(?:^|\s)product_cat-([a-z0-9-]+)`)
	asciiSlugRegex     = regexp.MustCompile(`^[a-z0-9-]+$`)
	priceRegex         = regexp.MustCompile(`[0-9][0-9.,]*`)
)

// ListingPage is one page of the legacy shop's product grid.
type ListingPage struct {
	PageNumber int
	HasNext    bool
	Products   []domain.Product
}

type listingParser struct {
	baseURL string
}

func newListingParser(baseURL string) *listingParser {
	return &listingParser{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (p *listingParser) ParseListingPage(html string, pageNumber int) (*ListingPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	page := &ListingPage{
		PageNumber: pageNumber,
		HasNext:    doc.Find("a.next.page-numbers").Length() > 0,
		Products:   make([]domain.Product, 0),
	}

	doc.Find("li.product").Each(func(i int, item *goquery.Selection) {
		product, ok := p.extractProduct(item)
		if !ok {
			return
		}
		page.Products = append(page.Products, product)
	})

	log.Debugf("Parsed listing page %d with %d products", page.PageNumber, len(page.Products))
	return page, nil
}

func (p *listingParser) extractProduct(item *goquery.Selection) (domain.Product, bool) {
	name := strings.TrimSpace(item.Find(".woocommerce-loop-product__title").First().Text())
	if name == "" {
		return domain.Product{}, false
	}

	href, _ := item.Find("a.woocommerce-LoopProduct-link").First().Attr("href")

	regular, sale := p.extractPrices(item.Find(".price").First())
	if regular.IsZero() {
		log.Warnf("⚠️ Skipping %q: no price found", name)
		return domain.Product{}, false
	}

	product := domain.Product{
		Name:      name,
		Slug:      slugFromURL(href),
		BasePrice: regular.InexactFloat64(),
		InStock:   !item.HasClass("outofstock"),
		Featured:  item.HasClass("featured"),
		Images:    []domain.ProductImage{},
		Materials: []string{},
		Colors:    []string{},
		Features:  []string{},
	}
	if !sale.IsZero() && sale.LessThan(regular) {
		product.SalePrice = domain.Float(sale.InexactFloat64())
	}

	if src := p.imageURL(item.Find("img").First()); src != "" {
		product.Images = append(product.Images, domain.ProductImage{
			ID:        "legacy-1",
			URL:       src,
			Alt:       name,
			IsPrimary: true,
		})
	}

	classes, _ := item.Attr("class")
	for _, m := range categoryClassRegex.FindAllStringSubmatch(classes, -1) {
		if product.Category == "" {
			product.Category = m[1]
		}
		if tag, ok := domain.CategoryTags[m[1]]; ok && !product.HasTag(tag) {
			product.Tags = append(product.Tags, tag)
		}
	}

	sku, _ := item.Find("[data-product_sku]").First().Attr("data-product_sku")
	if sku == "" {
		sku = strings.ToUpper(product.Slug)
	}
	product.Dimensions = []domain.ProductDimension{{
		ID:    "default",
		SKU:   sku,
		Price: product.BasePrice,
	}}

	return product, true
}

// extractPrices reads a WooCommerce price block. A discounted block holds the
// regular amount in <del> and the sale amount in <ins>.
func (p *listingParser) extractPrices(price *goquery.Selection) (regular, sale decimal.Decimal) {
	if del := price.Find("del .amount"); del.Length() > 0 {
		regular = parsePrice(del.First().Text())
		sale = parsePrice(price.Find("ins .amount").First().Text())
		return regular, sale
	}
	return parsePrice(price.Find(".amount").First().Text()), decimal.Zero
}

func (p *listingParser) imageURL(img *goquery.Selection) string {
	src, ok := img.Attr("data-src")
	if !ok || src == "" {
		src, _ = img.Attr("src")
	}
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	if strings.HasPrefix(src, "/") {
		return p.baseURL + src
	}
	return src
}

// parsePrice reads Greek formatted amounts such as "1.250,00 €".
func parsePrice(text string) decimal.Decimal {
	raw := priceRegex.FindString(text)
	if raw == "" {
		return decimal.Zero
	}
	raw = strings.ReplaceAll(raw, ".", "")
	raw = strings.ReplaceAll(raw, ",", ".")

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// slugFromURL keeps the last path segment when it is already a Latin slug.
func slugFromURL(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	last := path.Base(strings.TrimRight(u.Path, "/"))
	if asciiSlugRegex.MatchString(last) {
		return last
	}
	return ""
}
