package basket

import (
	"fmt"

	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/google/uuid"
)

// ViewBasketRequest is request for user's basket view.
// Page and limit are optional, empty retailer ID means no retailer filter.
type ViewBasketRequest struct {
	UserID     string `json:"user_id"`
	Page       *int   `json:"page,omitempty"`
	Limit      *int   `json:"limit,omitempty"`
	RetailerID string `json:"retailer_id,omitempty"`
}

// AddToBasketRequest is request for adding product to user's basket.
// Missing quantity means a single piece.
type AddToBasketRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  *int32 `json:"quantity,omitempty"`
}

// RemoveFromBasketRequest is request for removing product from user's basket.
type RemoveFromBasketRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}

// ClearBasketRequest is request for removing user's basket.
type ClearBasketRequest struct {
	UserID string `json:"user_id"`
}

type viewParams struct {
	userID     uuid.UUID
	page       uint
	limit      uint
	retailerID *uuid.UUID
}

func (s *Service) viewParams(req *ViewBasketRequest) (*viewParams, error) {
	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}

	params := &viewParams{
		userID: userID,
		page:   s.defaultPage,
		limit:  s.defaultLimit,
	}

	if req.Page != nil {
		if *req.Page < 1 {
			return nil, fmt.Errorf("%w: page must be positive", platform.ErrInvalidArgument)
		}
		params.page = uint(*req.Page)
	}

	if req.Limit != nil {
		if *req.Limit < 1 {
			return nil, fmt.Errorf("%w: limit must be positive", platform.ErrInvalidArgument)
		}
		params.limit = min(uint(*req.Limit), s.maxLimit)
	}

	if req.RetailerID != "" {
		retailerID, err := parseID("retailer_id", req.RetailerID)
		if err != nil {
			return nil, err
		}
		params.retailerID = &retailerID
	}

	return params, nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a valid uuid", platform.ErrInvalidArgument, field)
	}
	return id, nil
}
