package facet

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"probagno/storefront/internal/domain"
)

// FallbackSwatch is used for colors that match nothing in the table.
const FallbackSwatch = "#D4D4D8"

const multiColorGradient = "linear-gradient(135deg, #FF6B6B, #4ECDC4, #FFE66D)"

type colorEntry struct {
	key     string
	group   string
	display domain.ColorDisplay
}

// colorTable is scanned in order; the first substring match wins, so entry
// order is part of the behavior. group joins bilingual spellings of the same
// color into one facet value.
var colorTable = []colorEntry{
	// Whites
	{"white", "white", domain.ColorDisplay{Hex: "#FFFFFF", Label: "Λευκό"}},
	{"λευκό", "white", domain.ColorDisplay{Hex: "#FFFFFF", Label: "Λευκό"}},
	{"λευκό γυαλιστερό", "λευκό γυαλιστερό", domain.ColorDisplay{Hex: "#FFFFFF", Label: "Λευκό Γυαλ."}},
	{"corian white", "corian white", domain.ColorDisplay{Hex: "#F5F5F5", Label: "Corian"}},
	{"corian", "corian", domain.ColorDisplay{Hex: "#F0EDE8", Label: "Corian"}},

	// Blacks & greys
	{"black", "black", domain.ColorDisplay{Hex: "#1a1a1a", Label: "Μαύρο"}},
	{"μαύρο", "black", domain.ColorDisplay{Hex: "#1a1a1a", Label: "Μαύρο"}},
	{"anthracite", "anthracite", domain.ColorDisplay{Hex: "#383838", Label: "Ανθρακί"}},
	{"ανθρακί", "anthracite", domain.ColorDisplay{Hex: "#454545", Label: "Ανθρακί"}},
	{"interior grey", "interior grey", domain.ColorDisplay{Hex: "#8B8B8B", Label: "Γκρι"}},
	{"γκρι", "interior grey", domain.ColorDisplay{Hex: "#8B8B8B", Label: "Γκρι"}},

	// Woods
	{"oak vanilla", "oak vanilla", domain.ColorDisplay{Hex: "#D4C4A8", Label: "Δρυς Βανίλια"}},
	{"natural oak", "natural oak", domain.ColorDisplay{Hex: "#C4A77D", Label: "Φυσική Δρυς"}},
	{"oak", "oak", domain.ColorDisplay{Hex: "#B8956C", Label: "Δρυς"}},
	{"δρυς", "oak", domain.ColorDisplay{Hex: "#B8956C", Label: "Δρυς"}},
	{"walnut", "walnut", domain.ColorDisplay{Hex: "#5D4037", Label: "Καρυδιά"}},
	{"καρυδιά", "walnut", domain.ColorDisplay{Hex: "#5D4037", Label: "Καρυδιά"}},

	// Finishes listed as colors
	{"matrix/s4", "matrix/s4", domain.ColorDisplay{Hex: "#E8E4DE", Pattern: domain.PatternTexture, Label: "Matrix/S4"}},
	{"lacquer gloss", "lacquer gloss", domain.ColorDisplay{Hex: "#FAFAFA", Label: "Λάκα Γυαλ."}},
	{"lacquer gloss white", "lacquer gloss white", domain.ColorDisplay{Hex: "#FFFFFF", Label: "Λάκα Λευκή"}},
	{"mdf veneer", "mdf veneer", domain.ColorDisplay{Hex: "#C9B896", Label: "MDF Καπλαμάς"}},
	{"χρωματιστό", "χρωματιστό", domain.ColorDisplay{Hex: multiColorGradient, Pattern: domain.PatternGradient, Label: "Χρωματιστό"}},
	{"χρωματιστό γυαλιστερό", "χρωματιστό", domain.ColorDisplay{Hex: multiColorGradient, Pattern: domain.PatternGradient, Label: "Χρωματιστό"}},
}

// NormalizeColor case-folds and trims a raw color name. It is the only
// transformation applied, so NormalizeColor(NormalizeColor(s)) == NormalizeColor(s).
func NormalizeColor(raw string) string {
	return strings.TrimSpace(cases.Lower(language.Und).String(raw))
}

func exactColor(normalized string) (colorEntry, bool) {
	for _, e := range colorTable {
		if e.key == normalized {
			return e, true
		}
	}
	return colorEntry{}, false
}

// ColorKey is the facet value a raw color is grouped under: the group of an
// exact table hit, otherwise the normalized name itself.
func ColorKey(raw string) string {
	normalized := NormalizeColor(raw)
	if e, ok := exactColor(normalized); ok {
		return e.group
	}
	return normalized
}

// ResolveColorDisplay never fails. Lookup order is exact table hit, then the
// first table entry where either string contains the other, then a neutral
// gray swatch labelled with the raw input.
//
// Short inputs substring-match liberally ("k" hits "black"), and an empty
// input matches the first entry. That is the long-standing behavior and is
// kept as is.
func ResolveColorDisplay(raw string) domain.ColorDisplay {
	normalized := NormalizeColor(raw)

	if e, ok := exactColor(normalized); ok {
		return e.display
	}

	for _, e := range colorTable {
		if strings.Contains(normalized, e.key) || strings.Contains(e.key, normalized) {
			return e.display
		}
	}

	return domain.ColorDisplay{Hex: FallbackSwatch, Label: raw}
}

// IsLightSwatch reports swatches that need a dark check mark on top.
func IsLightSwatch(d domain.ColorDisplay) bool {
	switch d.Hex {
	case "#FFFFFF", "#F5F5F5", "#FAFAFA":
		return true
	}
	return false
}
