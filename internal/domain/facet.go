package domain

// Pattern tokens for swatches that are not a flat fill.
const (
	PatternGradient = "gradient"
	PatternTexture  = "texture"
)

// ColorDisplay describes how a color facet value is rendered. Hex carries a
// CSS gradient when Pattern is PatternGradient.
type ColorDisplay struct {
	Hex     string `json:"hex"`
	Pattern string `json:"pattern,omitempty"`
	Label   string `json:"label"`
}

type ColorFacet struct {
	Value   string       `json:"value"`
	Display ColorDisplay `json:"display"`
	Count   int          `json:"count"`
}

type MaterialFacet struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type TagFacet struct {
	TagDefinition
	Count int `json:"count"`
}

type PriceBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Facets is everything the filter panel renders.
type Facets struct {
	Tags         []TagFacet      `json:"tags"`
	Colors       []ColorFacet    `json:"colors"`
	Materials    []MaterialFacet `json:"materials"`
	Price        PriceBounds     `json:"price"`
	PricePresets []float64       `json:"pricePresets"`
}
