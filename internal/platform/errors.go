package platform

import (
	"errors"
)

var (
	// ErrAlreadyRunning is returned when import can't be started because previous run is not finished yet.
	ErrAlreadyRunning = errors.New("price import already running for this retailer")
	// ErrBasketNotFound is returned when user has no basket.
	ErrBasketNotFound = errors.New("basket not found")
	// ErrItemNotFound is returned when product is not in user's basket.
	ErrItemNotFound = errors.New("basket item not found")
	// ErrProductNotFound is returned when product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrRetailerNotFound is returned when retailer does not exist.
	ErrRetailerNotFound = errors.New("retailer not found")
	// ErrNoFeed is returned when retailer has no price feed configured.
	ErrNoFeed = errors.New("retailer has no price feed")
	// ErrInvalidArgument is returned when request is malformed.
	ErrInvalidArgument = errors.New("invalid argument")
)
