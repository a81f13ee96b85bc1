package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingGTIN is returned for feed items without GTIN, they can't be matched with products.
	ErrMissingGTIN = errors.New("item has no gtin")
	// ErrInvalidPrice is returned for feed items with price which is not a positive amount.
	ErrInvalidPrice = errors.New("item has invalid price")
)

// Item is model of product item in feed files.
type Item struct {
	ID           string  `xml:"id"`
	GTIN         string  `xml:"gtin"`
	Title        string  `xml:"title"`
	URL          string  `xml:"link"`
	Availability string  `xml:"availability"`
	Price        string  `xml:"price"`
	SalePrice    *string `xml:"sale_price"`
	UnitPrice    *string `xml:"unit_pricing"`
}

// toAppOffer maps feed item into offer. Sale price replaces regular price when it's lower.
func toAppOffer(item *Item) (*models.Offer, error) {
	gtin := strings.TrimSpace(item.GTIN)
	if gtin == "" {
		return nil, fmt.Errorf("can't decode item %q: %w", item.ID, ErrMissingGTIN)
	}

	price, err := parsePrice(item.Price)
	if err != nil {
		return nil, fmt.Errorf("can't decode item %q price: %w", item.ID, err)
	}

	if item.SalePrice != nil {
		salePrice, err := parsePrice(*item.SalePrice)
		if err != nil {
			return nil, fmt.Errorf("can't decode item %q sale price: %w", item.ID, err)
		}
		if salePrice.LessThan(price) {
			price = salePrice
		}
	}

	offer := &models.Offer{
		OfferID:      item.ID,
		GTIN:         gtin,
		Title:        item.Title,
		URL:          item.URL,
		Availability: item.Availability,
		Price:        price,
	}

	if item.UnitPrice != nil {
		unitPrice, err := parsePrice(*item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("can't decode item %q unit price: %w", item.ID, err)
		}
		offer.UnitPrice = &unitPrice
	}

	return offer, nil
}

// parsePrice parses feed price like "85.50 GBP", currency is optional.
func parsePrice(value string) (decimal.Decimal, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return decimal.Zero, ErrInvalidPrice
	}

	price, err := decimal.NewFromString(fields[0])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrInvalidPrice, err)
	}

	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidPrice, price)
	}

	return price, nil
}
