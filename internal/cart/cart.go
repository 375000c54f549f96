package cart

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"probagno/storefront/internal/domain"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidDimension = errors.New("dimension is not purchasable")
)

// Line is one product in one size. The same product in two sizes is two lines.
type Line struct {
	ProductID   string          `json:"productId"`
	DimensionID string          `json:"dimensionId"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	NameEn      string          `json:"nameEn"`
	SKU         string          `json:"sku"`
	Image       string          `json:"image,omitempty"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	Depth       float64         `json:"depth"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	SessionID string    `json:"sessionId"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func New(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Lines: []Line{}}
}

func (c *Cart) find(productID, dimensionID string) int {
	for i, l := range c.Lines {
		if l.ProductID == productID && l.DimensionID == dimensionID {
			return i
		}
	}
	return -1
}

// Add puts qty of the product in the given dimension into the cart, merging
// with an existing line for the same (product, dimension).
func (c *Cart) Add(p domain.Product, d domain.ProductDimension, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if d.IsPlaceholder() {
		return ErrInvalidDimension
	}

	if i := c.find(p.ID, d.ID); i >= 0 {
		c.Lines[i].Quantity += qty
		c.touch()
		return nil
	}

	line := Line{
		ProductID:   p.ID,
		DimensionID: d.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		NameEn:      p.NameEn,
		SKU:         d.SKU,
		Width:       d.Width,
		Height:      d.Height,
		Depth:       d.Depth,
		UnitPrice:   decimal.NewFromFloat(p.DisplayPrice(d)),
		Quantity:    qty,
	}
	if img, ok := p.PrimaryImage(); ok {
		line.Image = img.URL
	}
	if d.Image != "" {
		line.Image = d.Image
	}
	c.Lines = append(c.Lines, line)
	c.touch()
	return nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
// It reports whether the line existed.
func (c *Cart) UpdateQuantity(productID, dimensionID string, qty int) bool {
	i := c.find(productID, dimensionID)
	if i < 0 {
		return false
	}
	if qty <= 0 {
		c.removeAt(i)
		return true
	}
	c.Lines[i].Quantity = qty
	c.touch()
	return true
}

func (c *Cart) Remove(productID, dimensionID string) bool {
	i := c.find(productID, dimensionID)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.touch()
}

// ItemCount is the header badge number: the sum of quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) removeAt(i int) {
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	c.touch()
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
