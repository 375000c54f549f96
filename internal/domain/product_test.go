package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountDetection(t *testing.T) {
	discounted := Product{BasePrice: 500, SalePrice: Float(400)}
	assert.True(t, discounted.IsDiscounted())
	assert.Equal(t, 400.0, discounted.EffectivePrice())
	assert.Equal(t, 20, discounted.DiscountPercent())

	higher := Product{BasePrice: 500, SalePrice: Float(600)}
	assert.False(t, higher.IsDiscounted())
	assert.Equal(t, 500.0, higher.EffectivePrice())
	assert.Equal(t, 0, higher.DiscountPercent())

	unset := Product{BasePrice: 500}
	assert.False(t, unset.IsDiscounted())
	assert.Equal(t, 500.0, unset.EffectivePrice())

	zero := Product{BasePrice: 500, SalePrice: Float(0)}
	assert.False(t, zero.IsDiscounted())
	assert.Equal(t, 500.0, zero.EffectivePrice())
}

func TestValidDimensionsExcludePlaceholders(t *testing.T) {
	p := Product{
		BasePrice: 350,
		SalePrice: Float(300),
		Dimensions: []ProductDimension{
			{ID: "placeholder", Width: 0, Height: 0, Depth: 0, Price: 0},
			{ID: "real", Width: 60, Height: 45, Depth: 40, Price: 300},
		},
	}

	valid := p.ValidDimensions()

	require.Len(t, valid, 1)
	assert.Equal(t, "real", valid[0].ID)
	assert.Equal(t, 300.0, p.EffectivePrice())

	d, ok := p.DefaultDimension()
	require.True(t, ok)
	assert.Equal(t, "real", d.ID)
}

func TestDimensionWithOnlyPriceIsValid(t *testing.T) {
	p := Product{Dimensions: []ProductDimension{{ID: "priced", Price: 10}}}
	assert.Len(t, p.ValidDimensions(), 1)
}

func TestDimensionLookup(t *testing.T) {
	p := Product{Dimensions: []ProductDimension{{ID: "a"}, {ID: "b"}}}

	d, ok := p.Dimension("b")
	require.True(t, ok)
	assert.Equal(t, "b", d.ID)

	d, ok = p.Dimension("")
	require.True(t, ok)
	assert.Equal(t, "a", d.ID)

	_, ok = p.Dimension("missing")
	assert.False(t, ok)
}

func TestDisplayPrice(t *testing.T) {
	dim := ProductDimension{ID: "d", Width: 80, Price: 420}

	assert.Equal(t, 420.0, (&Product{BasePrice: 400}).DisplayPrice(dim))
	assert.Equal(t, 350.0, (&Product{BasePrice: 400, SalePrice: Float(350)}).DisplayPrice(dim))
	assert.Equal(t, 400.0, (&Product{BasePrice: 400}).DisplayPrice(ProductDimension{}))
}

func TestPrimaryImage(t *testing.T) {
	p := Product{Images: []ProductImage{{ID: "1"}, {ID: "2", IsPrimary: true}}}
	img, ok := p.PrimaryImage()
	require.True(t, ok)
	assert.Equal(t, "2", img.ID)

	p = Product{Images: []ProductImage{{ID: "1"}, {ID: "2"}}}
	img, ok = p.PrimaryImage()
	require.True(t, ok)
	assert.Equal(t, "1", img.ID)

	_, ok = (&Product{}).PrimaryImage()
	assert.False(t, ok)
}

func TestLocalizedName(t *testing.T) {
	p := Product{Name: "Ντουλάπι", NameEn: "Cabinet", Description: "Περιγραφή"}
	assert.Equal(t, "Ντουλάπι", p.LocalizedName(LanguageGreek))
	assert.Equal(t, "Cabinet", p.LocalizedName(LanguageEnglish))
	assert.Equal(t, "Περιγραφή", p.LocalizedDescription(LanguageEnglish))
}

func TestCreatedTime(t *testing.T) {
	p := Product{CreatedAt: "2024-05-10T09:00:00Z"}
	assert.Equal(t, time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC), p.CreatedTime())

	p = Product{CreatedAt: "2024-05-10 09:00:00.123456+00"}
	assert.Equal(t, 2024, p.CreatedTime().Year())

	p = Product{CreatedAt: "yesterday"}
	assert.Equal(t, time.Unix(0, 0).UTC(), p.CreatedTime())
}

func TestParseSortKeyAndLanguage(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortFeatured, ParseSortKey(""))
	assert.Equal(t, SortFeatured, ParseSortKey("random"))
	assert.Equal(t, LanguageEnglish, ParseLanguage("en"))
	assert.Equal(t, LanguageGreek, ParseLanguage("fr"))
}
