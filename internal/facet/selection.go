package facet

import (
	"slices"

	"probagno/storefront/internal/domain"
)

// NewSelection is the cleared state: no facets, full price window, featured first.
func NewSelection(maxPrice float64) domain.FilterSelection {
	return domain.FilterSelection{
		Price: domain.PriceRange{Min: 0, Max: maxPrice},
		Sort:  domain.SortFeatured,
	}
}

// Clear resets everything, including search and sort.
func Clear(maxPrice float64) domain.FilterSelection {
	return NewSelection(maxPrice)
}

func ToggleTag(sel domain.FilterSelection, slug string) domain.FilterSelection {
	sel.Tags = toggle(sel.Tags, slug)
	return sel
}

// ToggleColor toggles the facet key of color.
func ToggleColor(sel domain.FilterSelection, color string) domain.FilterSelection {
	sel.Colors = toggle(sel.Colors, ColorKey(color))
	return sel
}

func ToggleMaterial(sel domain.FilterSelection, material string) domain.FilterSelection {
	sel.Materials = toggle(sel.Materials, material)
	return sel
}

// SelectTags adds slugs to the selection, skipping ones already present.
func SelectTags(sel domain.FilterSelection, slugs ...string) domain.FilterSelection {
	sel.Tags = appendUnique(sel.Tags, slugs...)
	return sel
}

// SelectColors adds colors by their facet key, so any spelling of a grouped
// color selects the group once.
func SelectColors(sel domain.FilterSelection, colors ...string) domain.FilterSelection {
	keys := make([]string, 0, len(colors))
	for _, c := range colors {
		keys = append(keys, ColorKey(c))
	}
	sel.Colors = appendUnique(sel.Colors, keys...)
	return sel
}

func SelectMaterials(sel domain.FilterSelection, materials ...string) domain.FilterSelection {
	sel.Materials = appendUnique(sel.Materials, materials...)
	return sel
}

func WithSearch(sel domain.FilterSelection, search string) domain.FilterSelection {
	sel.Search = search
	return sel
}

func WithPrice(sel domain.FilterSelection, r domain.PriceRange) domain.FilterSelection {
	sel.Price = r
	return sel
}

func WithSort(sel domain.FilterSelection, key domain.SortKey) domain.FilterSelection {
	sel.Sort = domain.ParseSortKey(string(key))
	return sel
}

// PriceActive reports a window narrower than [0, maxPrice].
func PriceActive(sel domain.FilterSelection, maxPrice float64) bool {
	return sel.Price.Min > 0 || sel.Price.Max < maxPrice
}

func HasFilters(sel domain.FilterSelection, maxPrice float64) bool {
	return sel.Search != "" ||
		len(sel.Tags) > 0 ||
		len(sel.Colors) > 0 ||
		len(sel.Materials) > 0 ||
		PriceActive(sel, maxPrice)
}

// ActiveFilterCount is the badge number on the mobile filter button. Search
// is not counted; an active price window counts once.
func ActiveFilterCount(sel domain.FilterSelection, maxPrice float64) int {
	n := len(sel.Tags) + len(sel.Colors) + len(sel.Materials)
	if PriceActive(sel, maxPrice) {
		n++
	}
	return n
}

// toggle returns a fresh slice so the previous selection stays untouched.
func toggle(values []string, v string) []string {
	if i := slices.Index(values, v); i >= 0 {
		out := make([]string, 0, len(values)-1)
		out = append(out, values[:i]...)
		return append(out, values[i+1:]...)
	}
	out := make([]string, 0, len(values)+1)
	out = append(out, values...)
	return append(out, v)
}

func appendUnique(values []string, add ...string) []string {
	out := make([]string, 0, len(values)+len(add))
	out = append(out, values...)
	for _, v := range add {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
