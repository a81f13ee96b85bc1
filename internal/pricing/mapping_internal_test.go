package pricing

import (
	"testing"

	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUnitToBasketItemDefaults(t *testing.T) {
	retailer := models.Retailer{ID: uuid.New(), Name: "shop"}
	item := models.BasketItem{
		Quantity: 3,
		Product: models.Product{
			ID:  uuid.New(),
			RRP: decimal.Zero,
		},
	}
	prices := []models.RetailerPricing{{
		RetailerID: retailer.ID,
		Retailer:   retailer,
		Price:      decimal.RequireFromString("1.5"),
	}}

	got := toBasketItem(&item, prices, nil)

	assert.Equal(t, BasketItem{
		ProductID:          item.Product.ID.String(),
		ProductName:        "",
		ImageURL:           "",
		CategoryID:         "",
		Quantity:           3,
		IsInBasket:         true,
		IsPriceAlertActive: false,
		BestDeal: Offer{
			RetailerID:       retailer.ID.String(),
			RetailerName:     "shop",
			RetailerPrice:    "1.50",
			SavingPercentage: "0%",
			PricePerUnit:     "",
			ProductURL:       "",
		},
		RetailerPrices: []Offer{{
			RetailerID:       retailer.ID.String(),
			RetailerName:     "shop",
			RetailerPrice:    "1.50",
			SavingPercentage: "0%",
			PricePerUnit:     "",
			ProductURL:       "",
		}},
	}, got, "should fill missing fields with defaults")
}

func TestUnitToOfferUnitPrice(t *testing.T) {
	unitPrice := decimal.RequireFromString("0.1234")
	product := models.Product{RRP: decimal.RequireFromString("2.00")}
	price := models.RetailerPricing{
		RetailerID: uuid.New(),
		Retailer:   models.Retailer{Name: "shop"},
		Price:      decimal.RequireFromString("1.00"),
		UnitPrice:  &unitPrice,
		URL:        "https://shop.example/p/1",
	}

	got := toOffer(&product, &price)

	assert.Equal(t, "0.12", got.PricePerUnit, "should format unit price with two decimals")
	assert.Equal(t, "50%", got.SavingPercentage, "should compute saving against rrp")
	assert.Equal(t, price.URL, got.ProductURL, "should return product url")
}
