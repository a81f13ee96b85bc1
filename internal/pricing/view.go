package pricing

import (
	"github.com/shopspring/decimal"
)

// ViewBasket is user's basket with best deals per item and totals per retailer.
type ViewBasket struct {
	BasketID       string          `json:"basket_id"`
	BasketItems    []BasketItem    `json:"basket_item"`
	RetailerTotals []RetailerTotal `json:"retailer_totals"`
	BestTotal      Amount          `json:"best_total"`
	TotalCount     int             `json:"total_count"`
}

// BasketItem is basket's product summary with its best deal and all retailer offers.
type BasketItem struct {
	ProductID          string  `json:"product_id"`
	ProductName        string  `json:"product_name"`
	ImageURL           string  `json:"image_url"`
	CategoryID         string  `json:"category_id"`
	Quantity           int32   `json:"quantity"`
	IsInBasket         bool    `json:"is_in_basket"`
	IsPriceAlertActive bool    `json:"is_price_alert_active"`
	BestDeal           Offer   `json:"best_deal"`
	RetailerPrices     []Offer `json:"retailer_prices"`
}

// Offer is product's price in a single retailer.
type Offer struct {
	RetailerID       string `json:"retailer_id"`
	RetailerName     string `json:"retailer_name"`
	RetailerPrice    string `json:"retailer_price"`
	SavingPercentage string `json:"saving_percentage"`
	PricePerUnit     string `json:"price_per_unit"`
	ProductURL       string `json:"product_url"`
}

// RetailerTotal is the cost of the whole basket in a single retailer.
type RetailerTotal struct {
	RetailerName string `json:"retailer_name"`
	Total        Amount `json:"total"`
}

// Amount is money amount encoded in JSON as a number with two decimal places.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns Amount rounded to two decimal places.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d.Round(2)}
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

// Empty returns basket view of user without basket.
// Clients expect all fields to be present, so it is never nil.
func Empty() ViewBasket {
	return ViewBasket{
		BasketID:       "",
		BasketItems:    []BasketItem{},
		RetailerTotals: []RetailerTotal{},
		BestTotal:      NewAmount(decimal.Zero),
		TotalCount:     0,
	}
}
