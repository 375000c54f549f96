package catalog

import "probagno/storefront/internal/domain"

func inStock(v bool) *bool { return &v }

// fallbackProducts is served whenever the backend fails or holds no products.
var fallbackProducts = []domain.Product{
	{
		ID:            "fallback-luna-led",
		Name:          "Καθρέπτης LED Luna",
		NameEn:        "Luna LED Mirror",
		Slug:          "luna-led-mirror",
		Description:   "Στρογγυλός καθρέπτης με περιμετρικό φωτισμό LED και αντιθαμβωτική λειτουργία.",
		DescriptionEn: "Round mirror with perimeter LED lighting and anti-fog pad.",
		Category:      "mirror",
		Tags:          []string{"Καθρέπτης LED"},
		BasePrice:     320,
		Images:        []domain.ProductImage{{ID: "luna-1", URL: "/images/products/luna-led.jpg", Alt: "Luna LED", IsPrimary: true}},
		Dimensions: []domain.ProductDimension{
			{ID: "luna-60", SKU: "LUNA-60", Width: 60, Height: 60, Depth: 3, Price: 320},
			{ID: "luna-80", SKU: "LUNA-80", Width: 80, Height: 80, Depth: 3, Price: 410},
		},
		Materials:  []string{"Γυαλί", "Αλουμίνιο"},
		Colors:     []string{"Ασημί"},
		Features:   []string{"Φωτισμός LED 4000K", "Αντιθαμβωτικό"},
		InStock:    true,
		BestSeller: true,
		CreatedAt:  "2024-02-10T09:00:00Z",
		UpdatedAt:  "2024-02-10T09:00:00Z",
	},
	{
		ID:            "fallback-nova-cabinet",
		Name:          "Καθρέπτης με ντουλάπι Nova",
		NameEn:        "Nova Mirror Cabinet",
		Slug:          "nova-mirror-cabinet",
		Description:   "Κρεμαστό ντουλάπι με καθρέπτη δύο φύλλων και εσωτερικά ράφια.",
		DescriptionEn: "Wall cabinet with two mirrored doors and inner shelves.",
		Category:      "mirror-cabinet",
		Tags:          []string{"Καθρέπτης με ντουλάπι"},
		BasePrice:     540,
		SalePrice:     domain.Float(470),
		Images:        []domain.ProductImage{{ID: "nova-1", URL: "/images/products/nova-cabinet.jpg", Alt: "Nova", IsPrimary: true}},
		Dimensions: []domain.ProductDimension{
			{ID: "nova-60", SKU: "NOVA-60", Width: 60, Height: 70, Depth: 15, Price: 540, Color: "Λευκό", ColorEn: "White", InStock: inStock(true)},
			{ID: "nova-80", SKU: "NOVA-80", Width: 80, Height: 70, Depth: 15, Price: 620, Color: "Ανθρακί", ColorEn: "Anthracite", InStock: inStock(false)},
		},
		Materials: []string{"Μελαμίνη", "Γυαλί"},
		Colors:    []string{"Λευκό", "Ανθρακί"},
		Features:  []string{"Soft close μεντεσέδες"},
		InStock:   true,
		Featured:  true,
		CreatedAt: "2024-04-02T09:00:00Z",
		UpdatedAt: "2024-04-02T09:00:00Z",
	},
	{
		ID:            "fallback-aqua-column",
		Name:          "Κολώνα μπάνιου Aqua",
		NameEn:        "Aqua Bathroom Column",
		Slug:          "aqua-bathroom-column",
		Description:   "Ψηλή κολώνα με δύο πόρτες και ανοιχτό ράφι.",
		DescriptionEn: "Tall column with two doors and an open shelf.",
		Category:      "column",
		Tags:          []string{"Κολώνα μπάνιου"},
		BasePrice:     480,
		Images:        []domain.ProductImage{{ID: "aqua-1", URL: "/images/products/aqua-column.jpg", Alt: "Aqua"}},
		Dimensions: []domain.ProductDimension{
			{ID: "aqua-35", SKU: "AQUA-35", Width: 35, Height: 160, Depth: 30, Price: 480},
			{ID: "aqua-placeholder"},
		},
		Materials: []string{"MDF λάκα"},
		Colors:    []string{"White", "Δρυς"},
		Features:  []string{"Ρυθμιζόμενα ράφια"},
		InStock:   true,
		CreatedAt: "2023-11-20T09:00:00Z",
		UpdatedAt: "2023-11-20T09:00:00Z",
	},
	{
		ID:            "fallback-metro-base",
		Name:          "Μεταλλική βάση Metro",
		NameEn:        "Metro Metal Base",
		Slug:          "metro-metal-base",
		Description:   "Επιδαπέδια μεταλλική βάση για επιτραπέζιο νιπτήρα.",
		DescriptionEn: "Floor standing metal frame for a countertop basin.",
		Category:      "base",
		Tags:          []string{"Μεταλλική βάση"},
		BasePrice:     690,
		Images:        []domain.ProductImage{{ID: "metro-1", URL: "/images/products/metro-base.jpg", Alt: "Metro", IsPrimary: true}},
		Dimensions: []domain.ProductDimension{
			{ID: "metro-80", SKU: "METRO-80", Width: 80, Height: 85, Depth: 46, Price: 690},
			{ID: "metro-100", SKU: "METRO-100", Width: 100, Height: 85, Depth: 46, Price: 790},
		},
		Materials: []string{"Μέταλλο", "Ξύλο καρυδιάς"},
		Colors:    []string{"Μαύρο", "Καρυδιά"},
		Features:  []string{"Ηλεκτροστατική βαφή"},
		InStock:   true,
		Featured:  true,
		CreatedAt: "2024-06-15T09:00:00Z",
		UpdatedAt: "2024-06-15T09:00:00Z",
	},
	{
		ID:            "fallback-terra-cabinet",
		Name:          "Ντουλάπι Terra",
		NameEn:        "Terra Vanity Cabinet",
		Slug:          "terra-vanity-cabinet",
		Description:   "Έπιπλο μπάνιου με νιπτήρα πορσελάνης και δύο συρτάρια.",
		DescriptionEn: "Vanity unit with porcelain basin and two drawers.",
		Category:      "cabinet",
		Tags:          []string{"Ντουλάπι", "Συρτάρι"},
		BasePrice:     1250,
		Images:        []domain.ProductImage{{ID: "terra-1", URL: "/images/products/terra.jpg", Alt: "Terra", IsPrimary: true}},
		Dimensions: []domain.ProductDimension{
			{ID: "terra-80", SKU: "TERRA-80", Width: 80, Height: 55, Depth: 46, Price: 1250},
			{ID: "terra-100", SKU: "TERRA-100", Width: 100, Height: 55, Depth: 46, Price: 1420},
		},
		Materials: []string{"Μελαμίνη", "Πορσελάνη"},
		Colors:    []string{"Interior Grey", "Χρωματιστό"},
		Features:  []string{"Συρτάρια soft close", "Νιπτήρας πορσελάνης"},
		InStock:   true,
		CreatedAt: "2024-01-08T09:00:00Z",
		UpdatedAt: "2024-01-08T09:00:00Z",
	},
	{
		ID:            "fallback-slim-drawer",
		Name:          "Συρτάρι Slim",
		NameEn:        "Slim Drawer Unit",
		Slug:          "slim-drawer-unit",
		Description:   "Βοηθητική συρταριέρα δαπέδου τριών συρταριών.",
		DescriptionEn: "Three drawer floor standing unit.",
		Category:      "drawer",
		Tags:          []string{"Συρτάρι"},
		BasePrice:     260,
		SalePrice:     domain.Float(210),
		Images:        []domain.ProductImage{{ID: "slim-1", URL: "/images/products/slim.jpg", Alt: "Slim", IsPrimary: true}},
		Dimensions: []domain.ProductDimension{
			{ID: "slim-30", SKU: "SLIM-30", Width: 30, Height: 85, Depth: 35, Price: 260},
		},
		Materials: []string{"Μελαμίνη"},
		Colors:    []string{"λευκό"},
		Features:  []string{"Μεταλλικά χερούλια"},
		InStock:   false,
		CreatedAt: "2024-03-12T09:00:00Z",
		UpdatedAt: "2024-03-12T09:00:00Z",
	},
}

var fallbackCategories = []domain.Category{
	{ID: "fallback-cat-led-mirrors", Name: "Καθρέπτες LED", NameEn: "LED Mirrors", Slug: "led-mirrors"},
	{ID: "fallback-cat-mirror-cabinets", Name: "Καθρέπτες με ντουλάπι", NameEn: "Mirror Cabinets", Slug: "mirror-cabinets"},
	{ID: "fallback-cat-bathroom-columns", Name: "Κολώνες μπάνιου", NameEn: "Bathroom Columns", Slug: "bathroom-columns"},
	{ID: "fallback-cat-metal-bases", Name: "Μεταλλικές βάσεις", NameEn: "Metal Bases", Slug: "metal-bases"},
	{ID: "fallback-cat-cabinets", Name: "Ντουλάπια", NameEn: "Cabinets", Slug: "cabinets"},
	{ID: "fallback-cat-drawers", Name: "Συρτάρια", NameEn: "Drawers", Slug: "drawers"},
}

// FallbackProducts returns a copy of the built-in product dataset.
func FallbackProducts() []domain.Product {
	return append([]domain.Product(nil), fallbackProducts...)
}

func FallbackCategories() []domain.Category {
	return append([]domain.Category(nil), fallbackCategories...)
}

func fallbackBySlug(slug string) (*domain.Product, bool) {
	for i := range fallbackProducts {
		if fallbackProducts[i].Slug == slug {
			p := fallbackProducts[i]
			return &p, true
		}
	}
	return nil, false
}
