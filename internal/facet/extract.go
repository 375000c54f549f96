package facet

import (
	"math"
	"sort"
	"strings"

	"probagno/storefront/internal/domain"
)

const (
	// MaxMaterialFacets bounds the material list shown in the filter panel.
	// Materials beyond it still filter, they just can't be discovered there.
	MaxMaterialFacets = 12

	materialLabelMax  = 25
	materialLabelKeep = 22
	materialBadgeMax  = 15
	materialBadgeKeep = 12
	priceRoundingUnit = 100
	DefaultMaxPrice   = 3000
)

// PricePresets are the quick "up to" buttons under the price slider.
var PricePresets = []float64{500, 1000, 1500, 2000}

// Extract computes every facet list from the full, unfiltered collection.
// Nothing is cached; counts always reflect the collection passed in.
func Extract(products []domain.Product) domain.Facets {
	return domain.Facets{
		Tags:         TagFacets(products),
		Colors:       ColorFacets(products),
		Materials:    MaterialFacets(products),
		Price:        domain.PriceBounds{Min: 0, Max: MaxPrice(products)},
		PricePresets: PricePresets,
	}
}

// ColorFacets counts color occurrences per facet key, most frequent first,
// ties broken by key.
func ColorFacets(products []domain.Product) []domain.ColorFacet {
	counts := make(map[string]int)
	for _, p := range products {
		for _, c := range p.Colors {
			counts[ColorKey(c)]++
		}
	}

	facets := make([]domain.ColorFacet, 0, len(counts))
	for key, count := range counts {
		facets = append(facets, domain.ColorFacet{
			Value:   key,
			Display: ResolveColorDisplay(key),
			Count:   count,
		})
	}
	sort.Slice(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return facets[i].Value < facets[j].Value
	})
	return facets
}

// MaterialFacets counts trimmed material values (case-sensitive) and keeps the
// MaxMaterialFacets most frequent, ties broken lexically.
func MaterialFacets(products []domain.Product) []domain.MaterialFacet {
	counts := make(map[string]int)
	for _, p := range products {
		for _, m := range p.Materials {
			counts[strings.TrimSpace(m)]++
		}
	}

	facets := make([]domain.MaterialFacet, 0, len(counts))
	for value, count := range counts {
		facets = append(facets, domain.MaterialFacet{
			Value: value,
			Label: truncate(value, materialLabelMax, materialLabelKeep),
			Count: count,
		})
	}
	sort.Slice(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return facets[i].Value < facets[j].Value
	})

	if len(facets) > MaxMaterialFacets {
		facets = facets[:MaxMaterialFacets]
	}
	return facets
}

// TagFacets counts products per curated tag. The "all" entry always equals
// the collection size.
func TagFacets(products []domain.Product) []domain.TagFacet {
	facets := make([]domain.TagFacet, 0, len(domain.TagDefinitions))
	for _, def := range domain.TagDefinitions {
		count := len(products)
		if def.Slug != domain.AllTag {
			count = 0
			for i := range products {
				if products[i].HasTag(def.Slug) {
					count++
				}
			}
		}
		facets = append(facets, domain.TagFacet{TagDefinition: def, Count: count})
	}
	return facets
}

// MaxPrice is the highest effective price rounded up to the next hundred, or
// DefaultMaxPrice for an empty collection.
func MaxPrice(products []domain.Product) float64 {
	if len(products) == 0 {
		return DefaultMaxPrice
	}
	highest := 0.0
	for i := range products {
		if price := products[i].EffectivePrice(); price > highest {
			highest = price
		}
	}
	return math.Ceil(highest/priceRoundingUnit) * priceRoundingUnit
}

// MaterialBadge is the shorter label used on active filter chips.
func MaterialBadge(material string) string {
	return truncate(material, materialBadgeMax, materialBadgeKeep)
}

func truncate(s string, max, keep int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:keep]) + "..."
}
