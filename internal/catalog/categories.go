package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"probagno/storefront/internal/domain"
	"probagno/storefront/internal/domain/event"
)

// CountProducts is the live product count for a category slug. Mapped slugs
// count products carrying the mapped tag, "all" counts everything and any
// other slug counts products whose category equals the slug.
func CountProducts(products []domain.Product, slug string) int {
	if slug == domain.AllTag {
		return len(products)
	}

	count := 0
	tag, mapped := domain.CategoryTags[slug]
	for i := range products {
		if mapped {
			if products[i].HasTag(tag) {
				count++
			}
			continue
		}
		if products[i].Category == slug {
			count++
		}
	}
	return count
}

// Categories returns the categories with counts taken from the current snapshot.
func (s *Service) Categories(ctx context.Context) []domain.Category {
	categories, err := s.repository.ListCategories(ctx)
	if err != nil {
		log.Errorf("❌ Failed to fetch categories, serving fallback dataset: %v", err)
		categories = FallbackCategories()
	} else if len(categories) == 0 {
		categories = FallbackCategories()
	}

	products := s.Products(ctx)
	for i := range categories {
		categories[i].ProductCount = CountProducts(products, categories[i].Slug)
	}
	return categories
}

func (s *Service) findCategory(ctx context.Context, id string) (domain.Category, bool) {
	for _, c := range s.Categories(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

func (s *Service) SaveCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	action := event.ActionUpdated
	if c.ID == "" {
		c.ID = uuid.NewString()
		action = event.ActionCreated
	}
	c.Slug = productSlug(c.Slug, c.NameEn, c.Name)
	if c.Slug == "" {
		return nil, ErrInvalidSlug
	}

	if err := s.repository.SaveCategory(ctx, &c); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	c.ProductCount = CountProducts(s.Products(ctx), c.Slug)
	s.categoryChanged(ctx, action, c.ID)
	return &c, nil
}

// DeleteCategory refuses while any product still counts towards the category.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	c, ok := s.findCategory(ctx, id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
	}
	if c.ProductCount > 0 {
		return fmt.Errorf("%w: %s has %d products", ErrCategoryInUse, c.Slug, c.ProductCount)
	}

	if err := s.repository.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.categoryChanged(ctx, event.ActionDeleted, id)
	return nil
}
