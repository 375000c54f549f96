package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"probagno/storefront/internal/domain"
)

func TestProductRowToDomain(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("EET", 2*3600))
	row := productRow{
		ID:        "p1",
		Name:      "Κολώνα Aqua",
		NameEn:    "Aqua Column",
		Slug:      "aqua-column",
		Tags:      []string{"Κολώνα μπάνιου"},
		BasePrice: 480,
		SalePrice: domain.Float(420),
		Dimensions: []domain.ProductDimension{
			{ID: "d1", SKU: "AQ-35", Width: 35, Height: 160, Depth: 30, Price: 480},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	p := row.toDomain()

	assert.Equal(t, "2024-03-01T08:00:00Z", p.CreatedAt)
	assert.True(t, p.IsDiscounted())
	assert.Equal(t, 420.0, p.EffectivePrice())
	assert.Equal(t, created.UTC(), p.CreatedTime())
	assert.True(t, p.HasTag("Κολώνα μπάνιου"))
}

func TestNonNil(t *testing.T) {
	assert.NotNil(t, nonNil(nil))
	assert.Equal(t, []string{"a"}, nonNil([]string{"a"}))
}

func TestCreatedAt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *time.Time
	}{
		{"rfc3339", "2024-02-10T09:00:00Z", ptrTime(time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC))},
		{"date only", "2023-11-20", ptrTime(time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC))},
		{"empty", "", nil},
		{"garbage", "yesterday", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := createdAt(&domain.Product{CreatedAt: tt.in})
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.True(t, tt.want.Equal(*got))
			}
		})
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
