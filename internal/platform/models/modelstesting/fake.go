package modelstesting

import (
	"math/rand"

	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FakeRetailer returns models.Retailer with fake data.
func FakeRetailer(ops ...func(r *models.Retailer)) models.Retailer {
	retailer := models.Retailer{
		ID:      uuid.New(),
		Name:    faker.Word(),
		SiteURL: faker.URL(),
		FeedURL: lo.ToPtr(faker.URL()),
	}

	for _, op := range ops {
		op(&retailer)
	}

	return retailer
}

// FakeProduct returns models.Product with fake data and no prices.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:         uuid.New(),
		Name:       faker.Word(),
		ImageURL:   faker.URL(),
		RRP:        fakePrice(),
		CategoryID: lo.ToPtr(uuid.New()),
		GTIN:       lo.ToPtr(faker.UUIDDigit()),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeRetailerPricing returns models.RetailerPricing with fake data for provided product and retailer.
func FakeRetailerPricing(
	product models.Product,
	retailer models.Retailer,
	ops ...func(rp *models.RetailerPricing),
) models.RetailerPricing {
	pricing := models.RetailerPricing{
		ID:         uuid.New(),
		ProductID:  product.ID,
		RetailerID: retailer.ID,
		Price:      fakePrice(),
		UnitPrice:  lo.ToPtr(fakePrice()),
		URL:        faker.URL(),
		Version:    rand.Int63(),
		Retailer:   retailer,
	}

	for _, op := range ops {
		op(&pricing)
	}

	return pricing
}

// FakeBasketItem returns models.BasketItem with fake quantity for provided product.
func FakeBasketItem(basketID uuid.UUID, product models.Product, ops ...func(i *models.BasketItem)) models.BasketItem {
	item := models.BasketItem{
		ID:        uuid.New(),
		BasketID:  basketID,
		ProductID: product.ID,
		Quantity:  rand.Int31n(9) + 1,
		Product:   product,
	}

	for _, op := range ops {
		op(&item)
	}

	return item
}

// FakeOffer returns models.Offer with fake data.
func FakeOffer(ops ...func(o *models.Offer)) models.Offer {
	offer := models.Offer{
		OfferID:      faker.Word(),
		GTIN:         faker.UUIDDigit(),
		Title:        faker.Sentence(),
		URL:          faker.URL(),
		Availability: "in stock",
		Price:        fakePrice(),
		UnitPrice:    lo.ToPtr(fakePrice()),
	}

	for _, op := range ops {
		op(&offer)
	}

	return offer
}

// fakePrice returns positive price with two decimal places.
func fakePrice() decimal.Decimal {
	return decimal.New(rand.Int63n(100000)+1, -2)
}
