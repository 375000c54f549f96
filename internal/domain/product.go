package domain

import (
	"math"
	"time"
)

type Language string

const (
	LanguageGreek   Language = "el"
	LanguageEnglish Language = "en"
)

// ParseLanguage maps anything other than "en" to Greek, the storefront default.
func ParseLanguage(s string) Language {
	if Language(s) == LanguageEnglish {
		return LanguageEnglish
	}
	return LanguageGreek
}

type ProductImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"isPrimary"`
}

// ProductDimension is one purchasable configuration of a product.
type ProductDimension struct {
	ID     string  `json:"id"`
	SKU    string  `json:"sku"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
	Price  float64 `json:"price"`

	Image    string `json:"image,omitempty"`
	Color    string `json:"color,omitempty"`
	ColorEn  string `json:"colorEn,omitempty"`
	ColorHex string `json:"colorHex,omitempty"`
	InStock  *bool  `json:"inStock,omitempty"`
}

// IsPlaceholder reports a 0x0x0 dimension with no price. Such entries are
// never offered to a buyer.
func (d ProductDimension) IsPlaceholder() bool {
	return d.Width == 0 && d.Height == 0 && d.Depth == 0 && d.Price == 0
}

type Product struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	NameEn        string             `json:"nameEn"`
	Slug          string             `json:"slug"`
	Description   string             `json:"description"`
	DescriptionEn string             `json:"descriptionEn"`
	Category      string             `json:"category"`
	Subcategory   string             `json:"subcategory,omitempty"`
	Tags          []string           `json:"tags,omitempty"`
	BasePrice     float64            `json:"basePrice"`
	SalePrice     *float64           `json:"salePrice,omitempty"`
	Images        []ProductImage     `json:"images"`
	Dimensions    []ProductDimension `json:"dimensions"`
	Materials     []string           `json:"materials"`
	Colors        []string           `json:"colors"`
	Features      []string           `json:"features"`
	InStock       bool               `json:"inStock"`
	Featured      bool               `json:"featured"`
	BestSeller    bool               `json:"bestSeller"`
	CreatedAt     string             `json:"createdAt"`
	UpdatedAt     string             `json:"updatedAt"`
}

// IsDiscounted is true only when a sale price is set and is below the base price.
func (p *Product) IsDiscounted() bool {
	return p.SalePrice != nil && *p.SalePrice > 0 && *p.SalePrice < p.BasePrice
}

// EffectivePrice is the price used for faceting, filtering and sorting.
func (p *Product) EffectivePrice() float64 {
	if p.IsDiscounted() {
		return *p.SalePrice
	}
	return p.BasePrice
}

// DiscountPercent is the rounded reduction shown on product cards, 0 when not discounted.
func (p *Product) DiscountPercent() int {
	if !p.IsDiscounted() || p.BasePrice == 0 {
		return 0
	}
	return int(math.Round((p.BasePrice - *p.SalePrice) / p.BasePrice * 100))
}

// PrimaryImage returns the flagged primary image, else the first one.
func (p *Product) PrimaryImage() (ProductImage, bool) {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img, true
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0], true
	}
	return ProductImage{}, false
}

// ValidDimensions returns the dimensions a buyer may choose from, in order.
func (p *Product) ValidDimensions() []ProductDimension {
	valid := make([]ProductDimension, 0, len(p.Dimensions))
	for _, d := range p.Dimensions {
		if !d.IsPlaceholder() {
			valid = append(valid, d)
		}
	}
	return valid
}

// Dimension looks up a dimension by id, falling back to the first one like the
// detail page does when nothing has been selected yet.
func (p *Product) Dimension(id string) (ProductDimension, bool) {
	for _, d := range p.Dimensions {
		if d.ID == id {
			return d, true
		}
	}
	if id == "" && len(p.Dimensions) > 0 {
		return p.Dimensions[0], true
	}
	return ProductDimension{}, false
}

// DefaultDimension is the first valid dimension, or the first dimension at all.
func (p *Product) DefaultDimension() (ProductDimension, bool) {
	if valid := p.ValidDimensions(); len(valid) > 0 {
		return valid[0], true
	}
	if len(p.Dimensions) > 0 {
		return p.Dimensions[0], true
	}
	return ProductDimension{}, false
}

// DisplayPrice is the price shown next to a selected dimension on the detail page.
func (p *Product) DisplayPrice(d ProductDimension) float64 {
	if p.IsDiscounted() {
		return *p.SalePrice
	}
	if d.Price > 0 {
		return d.Price
	}
	return p.BasePrice
}

func (p *Product) LocalizedName(lang Language) string {
	if lang == LanguageEnglish && p.NameEn != "" {
		return p.NameEn
	}
	return p.Name
}

func (p *Product) LocalizedDescription(lang Language) string {
	if lang == LanguageEnglish && p.DescriptionEn != "" {
		return p.DescriptionEn
	}
	return p.Description
}

func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CreatedTime parses CreatedAt. Unparsable values map to the Unix epoch.
func (p *Product) CreatedTime() time.Time {
	if t, ok := p.ParseCreatedAt(); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// ParseCreatedAt reports whether CreatedAt holds a recognizable timestamp.
func (p *Product) ParseCreatedAt() (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, p.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Float returns a pointer to v, handy for optional sale prices.
func Float(v float64) *float64 {
	return &v
}
