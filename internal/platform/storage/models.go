package storage

import (
	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/google/uuid"

	pgmodels "github.com/MichalMitros/basket-service/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

// basketDest is destination for basket queries joining items, products, prices and retailers.
type basketDest struct {
	pgmodels.Basket

	Items []basketItemDest
}

type basketItemDest struct {
	pgmodels.BasketItem

	Product productDest
}

type productDest struct {
	pgmodels.Product

	Prices []pricingDest
}

type pricingDest struct {
	pgmodels.RetailerPricing

	Retailer pgmodels.Retailer
}

func toAppBasket(basket *basketDest) *models.Basket {
	result := &models.Basket{
		ID:        basket.ID,
		UserID:    basket.UserID,
		CreatedAt: basket.CreatedAt,
		Items:     make([]models.BasketItem, 0, len(basket.Items)),
	}

	for ix := range basket.Items {
		result.Items = append(result.Items, *toAppBasketItem(&basket.Items[ix]))
	}

	return result
}

func toAppBasketItem(item *basketItemDest) *models.BasketItem {
	return &models.BasketItem{
		ID:        item.ID,
		BasketID:  item.BasketID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		Product:   *toAppProduct(&item.Product),
	}
}

func toAppProduct(product *productDest) *models.Product {
	result := &models.Product{
		ID:         product.ID,
		Name:       product.Name,
		ImageURL:   product.ImgURL,
		RRP:        product.Rrp,
		CategoryID: product.CategoryID,
		GTIN:       product.Gtin,
		CreatedAt:  product.CreatedAt,
		Prices:     make([]models.RetailerPricing, 0, len(product.Prices)),
	}

	for ix := range product.Prices {
		result.Prices = append(result.Prices, *toAppRetailerPricing(&product.Prices[ix]))
	}

	return result
}

func toAppRetailerPricing(pricing *pricingDest) *models.RetailerPricing {
	return &models.RetailerPricing{
		ID:         pricing.ID,
		ProductID:  pricing.ProductID,
		RetailerID: pricing.RetailerID,
		Price:      pricing.Price,
		UnitPrice:  pricing.UnitPrice,
		URL:        pricing.ProductURL,
		Version:    pricing.Version,
		Retailer:   *toAppRetailer(&pricing.Retailer),
	}
}

func toAppRetailer(retailer *pgmodels.Retailer) *models.Retailer {
	return &models.Retailer{
		ID:      retailer.ID,
		Name:    retailer.Name,
		SiteURL: retailer.SiteURL,
		FeedURL: retailer.FeedURL,
	}
}

func toDBRun(run *models.ImportRun) *pgmodels.ImportRun {
	return &pgmodels.ImportRun{
		PricesVersion:   run.PricesVersion,
		RetailerID:      run.RetailerID,
		FinishedAt:      run.FinishedAt,
		Success:         run.IsSuccess,
		StatusMessage:   run.StatusMessage,
		MatchedPrices:   run.MatchedPrices,
		UnmatchedOffers: run.UnmatchedOffers,
		DeletedPrices:   run.DeletedPrices,
		FailedOffers:    run.FailedOffers,
	}
}

// ToDBRetailerPricing converts offer matched to product into postgres retailer pricing model.
func ToDBRetailerPricing(offer *models.Offer, productID, retailerID uuid.UUID) *pgmodels.RetailerPricing {
	dbPricing := pgmodels.RetailerPricing{
		ID:         uuid.New(),
		ProductID:  productID,
		RetailerID: retailerID,
		Price:      offer.Price.Round(2),
		ProductURL: offer.URL,
		Version:    offer.Version,
	}

	if offer.UnitPrice != nil {
		unitPrice := offer.UnitPrice.Round(4)
		dbPricing.UnitPrice = &unitPrice
	}

	return &dbPricing
}
