package commander

import (
	"encoding/json"
)

// Command types handled by basket service.
const (
	ViewBasketType       = "view_basket"
	AddToBasketType      = "add_to_basket"
	RemoveFromBasketType = "remove_from_basket"
	ClearBasketType      = "clear_basket"
	ImportPricesType     = "import_prices"
)

// Command is basket service command envelope.
type Command struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ViewBasket requests user's basket view.
// Nil page and limit use service defaults, empty RetailerID means all retailers.
type ViewBasket struct {
	UserID     string `json:"user_id"`
	Page       *int   `json:"page,omitempty"`
	Limit      *int   `json:"limit,omitempty"`
	RetailerID string `json:"retailer_id,omitempty"`
}

// AddToBasket puts product into user's basket with provided quantity.
type AddToBasket struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  *int32 `json:"quantity,omitempty"`
}

// RemoveFromBasket removes product from user's basket.
type RemoveFromBasket struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}

// ClearBasket removes user's basket.
type ClearBasket struct {
	UserID string `json:"user_id"`
}

// ImportPrices imports retailer's price feed.
type ImportPrices struct {
	RetailerID string `json:"retailer_id"`
}

// Reply is basket service reply to a command.
// Status values are gRPC status codes.
type Reply struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
