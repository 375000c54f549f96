package domain

// Category is an admin-managed catalog section. ProductCount is never trusted
// from storage; it is recomputed from the current product collection.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameEn       string `json:"nameEn"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ProductCount int    `json:"productCount"`
}

func (c Category) LocalizedName(lang Language) string {
	if lang == LanguageEnglish && c.NameEn != "" {
		return c.NameEn
	}
	return c.Name
}

// TagDefinition is one entry of the curated tag facet list.
type TagDefinition struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
}

// AllTag selects every product; no product carries it literally.
const AllTag = "all"

// TagDefinitions is the fixed tag facet list shown on the products page.
var TagDefinitions = []TagDefinition{
	{Slug: AllTag, Name: "Probagno", NameEn: "Probagno"},
	{Slug: "Καθρέπτης LED", Name: "Καθρέπτης LED", NameEn: "LED Mirror"},
	{Slug: "Καθρέπτης με ντουλάπι", Name: "Καθρέπτης με ντουλάπι", NameEn: "Mirror Cabinet"},
	{Slug: "Κολώνα μπάνιου", Name: "Κολώνα μπάνιου", NameEn: "Bathroom Column"},
	{Slug: "Μεταλλική βάση", Name: "Μεταλλική βάση", NameEn: "Metal Base"},
	{Slug: "Ντουλάπι", Name: "Ντουλάπι", NameEn: "Cabinet"},
	{Slug: "Συρτάρι", Name: "Συρτάρι", NameEn: "Drawer"},
}

// CategoryTags maps admin category slugs onto the product tag they count.
var CategoryTags = map[string]string{
	"led-mirrors":      "Καθρέπτης LED",
	"mirror-cabinets":  "Καθρέπτης με ντουλάπι",
	"bathroom-columns": "Κολώνα μπάνιου",
	"metal-bases":      "Μεταλλική βάση",
	"cabinets":         "Ντουλάπι",
	"drawers":          "Συρτάρι",
}
