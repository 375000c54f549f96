package domain

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortName      SortKey = "name"
)

// ParseSortKey falls back to SortFeatured for anything unknown.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortFeatured, SortNewest, SortPriceAsc, SortPriceDesc, SortName:
		return k
	default:
		return SortFeatured
	}
}

// PriceRange is an inclusive [Min, Max] window over effective prices.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSelection is the immutable query state of the products page. Event
// handlers derive a new value instead of mutating an existing one.
type FilterSelection struct {
	Search    string     `json:"search"`
	Tags      []string   `json:"tags"`
	Colors    []string   `json:"colors"`
	Materials []string   `json:"materials"`
	Price     PriceRange `json:"price"`
	Sort      SortKey    `json:"sort"`
}
