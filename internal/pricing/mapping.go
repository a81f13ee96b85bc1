package pricing

import (
	"github.com/MichalMitros/basket-service/internal/platform/models"
)

// toBasketItem maps basket item with its sorted prices into view item.
// Optional product fields default to empty strings.
func toBasketItem(item *models.BasketItem, prices []models.RetailerPricing, alerts models.AlertSet) BasketItem {
	offers := make([]Offer, 0, len(prices))
	for ix := range prices {
		offers = append(offers, toOffer(&item.Product, &prices[ix]))
	}

	result := BasketItem{
		ProductID:          item.Product.ID.String(),
		ProductName:        item.Product.Name,
		ImageURL:           item.Product.ImageURL,
		CategoryID:         "",
		Quantity:           item.Quantity,
		IsInBasket:         true,
		IsPriceAlertActive: alerts.Has(item.Product.ID),
		RetailerPrices:     offers,
	}

	if item.Product.CategoryID != nil {
		result.CategoryID = item.Product.CategoryID.String()
	}

	if len(offers) > 0 {
		result.BestDeal = offers[0]
	}

	return result
}

// toOffer maps retailer price into offer. Missing unit price is an empty string.
func toOffer(product *models.Product, price *models.RetailerPricing) Offer {
	offer := Offer{
		RetailerID:       price.RetailerID.String(),
		RetailerName:     price.Retailer.Name,
		RetailerPrice:    price.Price.StringFixed(2),
		SavingPercentage: SavingPercentage(product.RRP, price.Price),
		PricePerUnit:     "",
		ProductURL:       price.URL,
	}

	if price.UnitPrice != nil {
		offer.PricePerUnit = price.UnitPrice.StringFixed(2)
	}

	return offer
}
