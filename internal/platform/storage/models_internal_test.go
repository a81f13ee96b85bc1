package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichalMitros/basket-service/internal/platform/models"
	pgmodels "github.com/MichalMitros/basket-service/internal/platform/storage/gen/postgres/public/model"
)

func TestUnitToDBRetailerPricing(t *testing.T) {
	productID, retailerID := uuid.New(), uuid.New()

	tests := map[string]struct {
		price         string
		unitPrice     *string
		wantPrice     string
		wantUnitPrice *string
	}{
		"half cent rounded away from zero": {
			price:     "1.005",
			wantPrice: "1.01",
		},
		"unit price rounded to four places": {
			price:         "2.50",
			unitPrice:     strPtr("1.23456"),
			wantPrice:     "2.5",
			wantUnitPrice: strPtr("1.2346"),
		},
		"large price kept exact": {
			price:     "12345678.99",
			wantPrice: "12345678.99",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			offer := &models.Offer{
				URL:     "https://example.com/p/1",
				Price:   decimal.RequireFromString(tt.price),
				Version: 3,
			}
			if tt.unitPrice != nil {
				unitPrice := decimal.RequireFromString(*tt.unitPrice)
				offer.UnitPrice = &unitPrice
			}

			actual := ToDBRetailerPricing(offer, productID, retailerID)

			assert.Equal(t, productID, actual.ProductID, "should set product id")
			assert.Equal(t, retailerID, actual.RetailerID, "should set retailer id")
			assert.Equal(t, int64(3), actual.Version, "should keep version")
			assert.True(t, decimal.RequireFromString(tt.wantPrice).Equal(actual.Price),
				"should round price to cents, got %s", actual.Price)
			if tt.wantUnitPrice == nil {
				assert.Nil(t, actual.UnitPrice, "should leave unit price empty")
				return
			}
			require.NotNil(t, actual.UnitPrice, "should set unit price")
			assert.True(t, decimal.RequireFromString(*tt.wantUnitPrice).Equal(*actual.UnitPrice),
				"should round unit price, got %s", actual.UnitPrice)
		})
	}
}

func TestUnitToAppRetailerPricing(t *testing.T) {
	unitPrice := decimal.RequireFromString("0.1234")
	dest := &pricingDest{
		RetailerPricing: pgmodels.RetailerPricing{
			ID:         uuid.New(),
			ProductID:  uuid.New(),
			RetailerID: uuid.New(),
			Price:      decimal.RequireFromString("12345678.99"),
			UnitPrice:  &unitPrice,
			ProductURL: "https://example.com/p/2",
			Version:    7,
		},
		Retailer: pgmodels.Retailer{Name: "Retailer A"},
	}

	actual := toAppRetailerPricing(dest)

	assert.Equal(t, "12345678.99", actual.Price.StringFixed(2), "should keep exact price")
	require.NotNil(t, actual.UnitPrice, "should keep unit price")
	assert.Equal(t, "0.1234", actual.UnitPrice.String(), "should keep exact unit price")
	assert.Equal(t, "Retailer A", actual.Retailer.Name, "should map retailer")
}

func TestUnitToAppProduct(t *testing.T) {
	dest := &productDest{
		Product: pgmodels.Product{
			ID:  uuid.New(),
			Rrp: decimal.RequireFromString("0.30"),
		},
		Prices: []pricingDest{
			{RetailerPricing: pgmodels.RetailerPricing{Price: decimal.RequireFromString("0.10")}},
			{RetailerPricing: pgmodels.RetailerPricing{Price: decimal.RequireFromString("0.20")}},
		},
	}

	actual := toAppProduct(dest)

	require.Len(t, actual.Prices, 2, "should map all prices")
	sum := actual.Prices[0].Price.Add(actual.Prices[1].Price)
	assert.True(t, sum.Equal(actual.RRP), "should sum prices without float error, got %s", sum)
}

func strPtr(s string) *string {
	return &s
}
