package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Basket is user's basket model. User has at most one basket.
type Basket struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time

	Items []BasketItem
}

// BasketItem is basket's product with quantity.
type BasketItem struct {
	ID        uuid.UUID
	BasketID  uuid.UUID
	ProductID uuid.UUID
	Quantity  int32
	CreatedAt time.Time

	Product Product
}

// Product is catalogue product model.
type Product struct {
	ID         uuid.UUID
	Name       string
	ImageURL   string
	RRP        decimal.Decimal
	CategoryID *uuid.UUID
	GTIN       *string
	CreatedAt  time.Time

	Prices []RetailerPricing
}

// RetailerPricing is product's current price in a retailer.
type RetailerPricing struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	RetailerID uuid.UUID
	Price      decimal.Decimal
	UnitPrice  *decimal.Decimal
	URL        string
	// Version is the last-updated ordering key, the timestamp of the import which wrote the price.
	Version int64

	Retailer Retailer
}

// Retailer is retailer model.
type Retailer struct {
	ID      uuid.UUID
	Name    string
	SiteURL string
	FeedURL *string
}

// PriceAlert marks that user has an active price alert on product.
type PriceAlert struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

// AlertSet is a set of product IDs with active price alerts.
type AlertSet map[uuid.UUID]struct{}

// NewAlertSet returns AlertSet containing provided product IDs.
func NewAlertSet(productIDs ...uuid.UUID) AlertSet {
	set := make(AlertSet, len(productIDs))
	for _, id := range productIDs {
		set[id] = struct{}{}
	}
	return set
}

// Has reports whether product has an active price alert.
func (s AlertSet) Has(productID uuid.UUID) bool {
	_, ok := s[productID]
	return ok
}

// ParsingResult contains offer decoded from retailer feed with decoding error if there is any.
type ParsingResult struct {
	Offer Offer
	Error error
}

// Offer is a single product offer from retailer's price feed.
type Offer struct {
	OfferID      string
	GTIN         string
	Title        string
	URL          string
	Availability string
	Price        decimal.Decimal
	UnitPrice    *decimal.Decimal
	Version      int64
}

// ImportRun is retailer price feed import run model.
type ImportRun struct {
	ID              int
	RetailerID      uuid.UUID
	CreatedAt       time.Time
	FinishedAt      *time.Time
	IsSuccess       *bool
	StatusMessage   *string
	MatchedPrices   *int32
	UnmatchedOffers *int32
	DeletedPrices   *int32
	FailedOffers    *int32
	PricesVersion   int64
}
