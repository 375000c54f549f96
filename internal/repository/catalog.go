package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"probagno/storefront/internal/domain"
)

// CatalogRepository is the persistence collaborator behind the catalog.
// GetProductBySlug returns nil, nil when no product has that slug.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	SaveProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	SaveCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

const Schema = `
CREATE TABLE IF NOT EXISTS products (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	name_en        TEXT NOT NULL DEFAULT '',
	slug           TEXT NOT NULL UNIQUE,
	description    TEXT NOT NULL DEFAULT '',
	description_en TEXT NOT NULL DEFAULT '',
	category       TEXT NOT NULL DEFAULT '',
	subcategory    TEXT NOT NULL DEFAULT '',
	tags           TEXT[] NOT NULL DEFAULT '{}',
	base_price     DOUBLE PRECISION NOT NULL DEFAULT 0,
	sale_price     DOUBLE PRECISION,
	images         JSONB NOT NULL DEFAULT '[]',
	dimensions     JSONB NOT NULL DEFAULT '[]',
	materials      TEXT[] NOT NULL DEFAULT '{}',
	colors         TEXT[] NOT NULL DEFAULT '{}',
	features       TEXT[] NOT NULL DEFAULT '{}',
	in_stock       BOOLEAN NOT NULL DEFAULT TRUE,
	featured       BOOLEAN NOT NULL DEFAULT FALSE,
	best_seller    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	name_en     TEXT NOT NULL DEFAULT '',
	slug        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT ''
);`

const productColumns = `id, name, name_en, slug, description, description_en, category, subcategory,
	tags, base_price, sale_price, images, dimensions, materials, colors, features,
	in_stock, featured, best_seller, created_at, updated_at`

type productRow struct {
	ID            string                    `db:"id"`
	Name          string                    `db:"name"`
	NameEn        string                    `db:"name_en"`
	Slug          string                    `db:"slug"`
	Description   string                    `db:"description"`
	DescriptionEn string                    `db:"description_en"`
	Category      string                    `db:"category"`
	Subcategory   string                    `db:"subcategory"`
	Tags          []string                  `db:"tags"`
	BasePrice     float64                   `db:"base_price"`
	SalePrice     *float64                  `db:"sale_price"`
	Images        []domain.ProductImage     `db:"images"`
	Dimensions    []domain.ProductDimension `db:"dimensions"`
	Materials     []string                  `db:"materials"`
	Colors        []string                  `db:"colors"`
	Features      []string                  `db:"features"`
	InStock       bool                      `db:"in_stock"`
	Featured      bool                      `db:"featured"`
	BestSeller    bool                      `db:"best_seller"`
	CreatedAt     time.Time                 `db:"created_at"`
	UpdatedAt     time.Time                 `db:"updated_at"`
}

func (r productRow) toDomain() domain.Product {
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
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type categoryRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	NameEn      string `db:"name_en"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
	Image       string `db:"image"`
}

type catalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// Migrate creates the tables when they are missing.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[productRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, rec.toDomain())
	}
	return products, nil
}

func (r *catalogRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to query product %s: %w", slug, err)
	}

	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[productRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan product %s: %w", slug, err)
	}

	product := rec.toDomain()
	return &product, nil
}

func (r *catalogRepository) SaveProduct(ctx context.Context, p *domain.Product) error {
	query := `
	INSERT INTO products (id, name, name_en, slug, description, description_en, category, subcategory,
		tags, base_price, sale_price, images, dimensions, materials, colors, features,
		in_stock, featured, best_seller, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, COALESCE($20, now()), now())
	ON CONFLICT (id)
	DO UPDATE SET name = $2, name_en = $3, slug = $4, description = $5, description_en = $6,
		category = $7, subcategory = $8, tags = $9, base_price = $10, sale_price = $11,
		images = $12, dimensions = $13, materials = $14, colors = $15, features = $16,
		in_stock = $17, featured = $18, best_seller = $19,
		created_at = COALESCE($20, products.created_at), updated_at = now()`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.NameEn, p.Slug, p.Description, p.DescriptionEn, p.Category, p.Subcategory,
		nonNil(p.Tags), p.BasePrice, p.SalePrice, p.Images, p.Dimensions,
		nonNil(p.Materials), nonNil(p.Colors), nonNil(p.Features),
		p.InStock, p.Featured, p.BestSeller, createdAt(p),
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", p.ID, err)
	}

	return nil
}

// createdAt is nil when the product carries no parsable creation time.
func createdAt(p *domain.Product) *time.Time {
	t, ok := p.ParseCreatedAt()
	if !ok {
		return nil
	}
	return &t
}

func (r *catalogRepository) DeleteProduct(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, name_en, slug, description, image FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[categoryRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, domain.Category{
			ID:          rec.ID,
			Name:        rec.Name,
			NameEn:      rec.NameEn,
			Slug:        rec.Slug,
			Description: rec.Description,
			Image:       rec.Image,
		})
	}
	return categories, nil
}

func (r *catalogRepository) SaveCategory(ctx context.Context, c *domain.Category) error {
	query := `
	INSERT INTO categories (id, name, name_en, slug, description, image)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id)
	DO UPDATE SET name = $2, name_en = $3, slug = $4, description = $5, image = $6`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.NameEn, c.Slug, c.Description, c.Image)
	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", c.ID, err)
	}

	return nil
}

func (r *catalogRepository) DeleteCategory(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
