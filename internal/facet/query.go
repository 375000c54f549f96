package facet

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"probagno/storefront/internal/domain"
)

// Query applies sel to products and returns a new, ordered slice. The input
// is never modified. Every stage only narrows: AND across stages, OR within
// a stage's selected values.
//
// An unset price window (the zero PriceRange) means the full [0, maxPrice] range.
func Query(products []domain.Product, sel domain.FilterSelection) []domain.Product {
	maxPrice := MaxPrice(products)
	if sel.Price == (domain.PriceRange{}) {
		sel.Price.Max = maxPrice
	}
	price := ClampPrice(sel.Price, maxPrice)

	search := cases.Lower(language.Und).String(sel.Search)
	tags := tagSet(sel.Tags)
	colors := colorSet(sel.Colors)
	materials := toSet(sel.Materials)

	result := make([]domain.Product, 0, len(products))
	for i := range products {
		p := &products[i]
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if tags != nil && !anyIn(p.Tags, tags, identity) {
			continue
		}
		if colors != nil && !matchesColor(p, colors) {
			continue
		}
		if materials != nil && !anyIn(p.Materials, materials, strings.TrimSpace) {
			continue
		}
		if ep := p.EffectivePrice(); ep < price.Min || ep > price.Max {
			continue
		}
		result = append(result, *p)
	}

	Sort(result, sel.Sort)
	return result
}

// ClampPrice keeps a price window inside [0, maxPrice] with Min <= Max, which
// absorbs transient slider states instead of rejecting them.
func ClampPrice(r domain.PriceRange, maxPrice float64) domain.PriceRange {
	if r.Max > maxPrice {
		r.Max = maxPrice
	}
	if r.Max < 0 {
		r.Max = 0
	}
	if r.Min < 0 {
		r.Min = 0
	}
	if r.Min > r.Max {
		r.Min = r.Max
	}
	return r
}

// Sort orders products in place. Every ordering is stable; unknown keys use
// the featured ordering.
func Sort(products []domain.Product, key domain.SortKey) {
	switch domain.ParseSortKey(string(key)) {
	case domain.SortPriceAsc:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return compareFloat(a.EffectivePrice(), b.EffectivePrice())
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return compareFloat(b.EffectivePrice(), a.EffectivePrice())
		})
	case domain.SortName:
		col := collate.New(language.Greek)
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	case domain.SortNewest:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return b.CreatedTime().Compare(a.CreatedTime())
		})
	default:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return boolRank(b.Featured) - boolRank(a.Featured)
		})
	}
}

func matchesSearch(p *domain.Product, lowered string) bool {
	lower := cases.Lower(language.Und)
	return strings.Contains(lower.String(p.Name), lowered) ||
		strings.Contains(lower.String(p.NameEn), lowered) ||
		strings.Contains(lower.String(p.Description), lowered)
}

// matchesColor compares facet groups, so every spelling of a grouped color
// ("White", "λευκό") selects the whole group.
func matchesColor(p *domain.Product, selected map[string]struct{}) bool {
	for _, c := range p.Colors {
		if _, ok := selected[ColorKey(c)]; ok {
			return true
		}
	}
	return false
}

func colorSet(colors []string) map[string]struct{} {
	if len(colors) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(colors))
	for _, c := range colors {
		set[ColorKey(c)] = struct{}{}
	}
	return set
}

// tagSet returns nil when the tag stage is a no-op: nothing selected, or
// "all" among the selection.
func tagSet(tags []string) map[string]struct{} {
	set := toSet(tags)
	if _, ok := set[domain.AllTag]; ok {
		return nil
	}
	return set
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func anyIn(values []string, set map[string]struct{}, norm func(string) string) bool {
	for _, v := range values {
		if _, ok := set[norm(v)]; ok {
			return true
		}
	}
	return false
}

func identity(s string) string { return s }

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
