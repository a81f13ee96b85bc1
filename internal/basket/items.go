package basket

import (
	"context"
	"fmt"

	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/MichalMitros/basket-service/internal/platform/response"
)

// Item is product in user's basket.
type Item struct {
	ID        string `json:"basket_item_id"`
	BasketID  string `json:"basket_id"`
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// Removal describes what was removed from user's basket.
type Removal struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id,omitempty"`
}

// AddToBasket puts product into user's basket or changes its quantity when it's already there.
func (s *Service) AddToBasket(ctx context.Context, req AddToBasketRequest) response.Response[Item] {
	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return response.Failure[Item](err)
	}

	productID, err := parseID("product_id", req.ProductID)
	if err != nil {
		return response.Failure[Item](err)
	}

	quantity := int32(1)
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return response.Failure[Item](fmt.Errorf("%w: quantity must be positive", platform.ErrInvalidArgument))
		}
		quantity = *req.Quantity
	}

	item, err := s.storage.AddToBasket(ctx, userID, productID, quantity)
	if err != nil {
		return response.Report[Item](s.logger, err, req.UserID, "can't add product to basket")
	}

	return response.OK(Item{
		ID:        item.ID.String(),
		BasketID:  item.BasketID.String(),
		ProductID: item.ProductID.String(),
		Quantity:  item.Quantity,
	})
}

// RemoveFromBasket removes product from user's basket.
// Basket is removed together with its last product.
func (s *Service) RemoveFromBasket(ctx context.Context, req RemoveFromBasketRequest) response.Response[Removal] {
	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return response.Failure[Removal](err)
	}

	productID, err := parseID("product_id", req.ProductID)
	if err != nil {
		return response.Failure[Removal](err)
	}

	if err := s.storage.RemoveFromBasket(ctx, userID, productID); err != nil {
		return response.Report[Removal](s.logger, err, req.UserID, "can't remove product from basket")
	}

	return response.OK(Removal{
		UserID:    userID.String(),
		ProductID: productID.String(),
	})
}

// ClearBasket removes user's basket with all its products.
func (s *Service) ClearBasket(ctx context.Context, req ClearBasketRequest) response.Response[Removal] {
	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return response.Failure[Removal](err)
	}

	if err := s.storage.ClearBasket(ctx, userID); err != nil {
		return response.Report[Removal](s.logger, err, req.UserID, "can't clear basket")
	}

	return response.OK(Removal{
		UserID: userID.String(),
	})
}
