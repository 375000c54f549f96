package client

import "probagno/storefront/internal/domain"

// dbProduct mirrors the snake_case columns of the products table.
type dbProduct struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	NameEn        string                    `json:"name_en"`
	Slug          string                    `json:"slug"`
	Description   string                    `json:"description"`
	DescriptionEn string                    `json:"description_en"`
	Category      string                    `json:"category"`
	Subcategory   string                    `json:"subcategory"`
	Tags          []string                  `json:"tags"`
	BasePrice     float64                   `json:"base_price"`
	SalePrice     *float64                  `json:"sale_price"`
	Images        []domain.ProductImage     `json:"images"`
	Dimensions    []domain.ProductDimension `json:"dimensions"`
	Materials     []string                  `json:"materials"`
	Colors        []string                  `json:"colors"`
	Features      []string                  `json:"features"`
	InStock       bool                      `json:"in_stock"`
	Featured      bool                      `json:"featured"`
	BestSeller    bool                      `json:"best_seller"`
	CreatedAt     string                    `json:"created_at,omitempty"`
	UpdatedAt     string                    `json:"updated_at,omitempty"`
}

func (r dbProduct) toDomain() domain.Product {
	return domain.Product{
		ID:            r.ID,
		Name:          r.Name,
		NameEn:        r.NameEn,
		Slug:          r.Slug,
		Description:   r.Description,
		DescriptionEn: r.DescriptionEn,
		Category:      r.Category,
		Subcategory:   r.Subcategory,
		Tags:          r.Tags,
		BasePrice:     r.BasePrice,
		SalePrice:     r.SalePrice,
		Images:        r.Images,
		Dimensions:    r.Dimensions,
		Materials:     r.Materials,
		Colors:        r.Colors,
		Features:      r.Features,
		InStock:       r.InStock,
		Featured:      r.Featured,
		BestSeller:    r.BestSeller,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// fromDomainProduct sends created_at only when set; updated_at is left to the backend.
func fromDomainProduct(p *domain.Product) dbProduct {
	return dbProduct{
		ID:            p.ID,
		Name:          p.Name,
		NameEn:        p.NameEn,
		Slug:          p.Slug,
		Description:   p.Description,
		DescriptionEn: p.DescriptionEn,
		Category:      p.Category,
		Subcategory:   p.Subcategory,
		Tags:          nonNil(p.Tags),
		BasePrice:     p.BasePrice,
		SalePrice:     p.SalePrice,
		Images:        p.Images,
		Dimensions:    p.Dimensions,
		Materials:     nonNil(p.Materials),
		Colors:        nonNil(p.Colors),
		Features:      nonNil(p.Features),
		InStock:       p.InStock,
		Featured:      p.Featured,
		BestSeller:    p.BestSeller,
		CreatedAt:     p.CreatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

type dbCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameEn      string `json:"name_en"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (r dbCategory) toDomain() domain.Category {
	return domain.Category{
		ID:          r.ID,
		Name:        r.Name,
		NameEn:      r.NameEn,
		Slug:        r.Slug,
		Description: r.Description,
		Image:       r.Image,
	}
}

func fromDomainCategory(c *domain.Category) dbCategory {
	return dbCategory{
		ID:          c.ID,
		Name:        c.Name,
		NameEn:      c.NameEn,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
	}
}
