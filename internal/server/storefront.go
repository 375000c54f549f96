package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"probagno/storefront/internal/domain"
	"probagno/storefront/internal/facet"
)

func (s *Server) registerStorefrontRoutes(api *echo.Group) {
	api.GET("/products", s.listProducts)
	api.GET("/products/:slug", s.getProduct)
	api.GET("/facets", s.getFacets)
	api.GET("/categories", s.listCategories)
}

type productListResponse struct {
	Items         []productCard `json:"items"`
	Total         int           `json:"total"`
	MaxPrice      float64       `json:"maxPrice"`
	ActiveFilters int           `json:"activeFilters"`
}

type productCard struct {
	domain.Product
	DisplayName     string  `json:"displayName"`
	EffectivePrice  float64 `json:"effectivePrice"`
	Discounted      bool    `json:"discounted"`
	DiscountPercent int     `json:"discountPercent"`
	PrimaryImage    string  `json:"primaryImage,omitempty"`
}

func newProductCard(p domain.Product, lang domain.Language) productCard {
	card := productCard{
		Product:         p,
		DisplayName:     p.LocalizedName(lang),
		EffectivePrice:  p.EffectivePrice(),
		Discounted:      p.IsDiscounted(),
		DiscountPercent: p.DiscountPercent(),
	}
	if img, ok := p.PrimaryImage(); ok {
		card.PrimaryImage = img.URL
	}
	return card
}

// selectionFromQuery builds a filter selection from q, tag, color, material,
// min, max and sort query parameters.
func selectionFromQuery(c echo.Context, maxPrice float64) (domain.FilterSelection, error) {
	sel := facet.NewSelection(maxPrice)
	sel = facet.WithSearch(sel, c.QueryParam("q"))

	params := c.QueryParams()
	sel = facet.SelectTags(sel, params["tag"]...)
	sel = facet.SelectColors(sel, params["color"]...)
	sel = facet.SelectMaterials(sel, params["material"]...)

	price := sel.Price
	if v := c.QueryParam("min"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return sel, echo.NewHTTPError(http.StatusBadRequest, "invalid min price")
		}
		price.Min = f
	}
	if v := c.QueryParam("max"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return sel, echo.NewHTTPError(http.StatusBadRequest, "invalid max price")
		}
		price.Max = f
	}
	sel = facet.WithPrice(sel, facet.ClampPrice(price, maxPrice))

	if v := c.QueryParam("sort"); v != "" {
		sel = facet.WithSort(sel, domain.ParseSortKey(v))
	}
	return sel, nil
}

func (s *Server) listProducts(c echo.Context) error {
	ctx := c.Request().Context()
	maxPrice := s.catalog.MaxPrice(ctx)

	sel, err := selectionFromQuery(c, maxPrice)
	if err != nil {
		return err
	}

	result := s.catalog.Query(ctx, sel)
	lang := requestLanguage(c)

	items := make([]productCard, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, newProductCard(p, lang))
	}

	return c.JSON(http.StatusOK, productListResponse{
		Items:         items,
		Total:         result.Total,
		MaxPrice:      result.MaxPrice,
		ActiveFilters: facet.ActiveFilterCount(sel, maxPrice),
	})
}

type productDetailResponse struct {
	productCard
	DisplayDescription string                    `json:"displayDescription"`
	ValidDimensions    []domain.ProductDimension `json:"validDimensions"`
	SelectedDimension  *domain.ProductDimension  `json:"selectedDimension,omitempty"`
	DisplayPrice       float64                   `json:"displayPrice"`
}

func (s *Server) getProduct(c echo.Context) error {
	product, err := s.catalog.ProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	lang := requestLanguage(c)
	resp := productDetailResponse{
		productCard:        newProductCard(*product, lang),
		DisplayDescription: product.LocalizedDescription(lang),
		ValidDimensions:    product.ValidDimensions(),
		DisplayPrice:       product.EffectivePrice(),
	}

	selected, ok := product.DefaultDimension()
	if id := c.QueryParam("dimension"); id != "" {
		selected, ok = product.Dimension(id)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "dimension not found")
		}
	}
	if ok {
		resp.SelectedDimension = &selected
		resp.DisplayPrice = product.DisplayPrice(selected)
	}

	return c.JSON(http.StatusOK, resp)
}

type tagFacetResponse struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type facetsResponse struct {
	Tags         []tagFacetResponse     `json:"tags"`
	Colors       []domain.ColorFacet    `json:"colors"`
	Materials    []domain.MaterialFacet `json:"materials"`
	Price        domain.PriceBounds     `json:"price"`
	PricePresets []float64              `json:"pricePresets"`
}

func (s *Server) getFacets(c echo.Context) error {
	facets := s.catalog.Facets(c.Request().Context())
	lang := requestLanguage(c)

	tags := make([]tagFacetResponse, 0, len(facets.Tags))
	for _, t := range facets.Tags {
		label := t.Name
		if lang == domain.LanguageEnglish {
			label = t.NameEn
		}
		tags = append(tags, tagFacetResponse{Slug: t.Slug, Label: label, Count: t.Count})
	}

	return c.JSON(http.StatusOK, facetsResponse{
		Tags:         tags,
		Colors:       facets.Colors,
		Materials:    facets.Materials,
		Price:        facets.Price,
		PricePresets: facets.PricePresets,
	})
}

type categoryResponse struct {
	domain.Category
	DisplayName string `json:"displayName"`
}

func (s *Server) listCategories(c echo.Context) error {
	lang := requestLanguage(c)
	categories := s.catalog.Categories(c.Request().Context())

	resp := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, categoryResponse{Category: cat, DisplayName: cat.LocalizedName(lang)})
	}
	return c.JSON(http.StatusOK, resp)
}
