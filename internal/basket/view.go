package basket

import (
	"context"
	"errors"

	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/MichalMitros/basket-service/internal/platform/response"
	"github.com/MichalMitros/basket-service/internal/pricing"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ViewBasket returns user's basket page with best deals, retailer totals and best total.
// User without basket gets NOT_FOUND with empty view.
func (s *Service) ViewBasket(ctx context.Context, req ViewBasketRequest) response.Response[pricing.ViewBasket] {
	params, err := s.viewParams(&req)
	if err != nil {
		return response.Failure[pricing.ViewBasket](err)
	}

	var (
		detailed *models.Basket
		page     *models.Basket
		alerts   models.AlertSet
	)

	errGroup, egCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		basket, err := s.storage.GetDetailedBasket(egCtx, params.userID, params.retailerID)
		detailed = basket
		return err
	})

	errGroup.Go(func() error {
		basket, err := s.storage.GetPaginatedBasket(egCtx, params.userID, params.page, params.limit, params.retailerID)
		page = basket
		return err
	})

	errGroup.Go(func() error {
		set, err := s.storage.GetActivePriceAlerts(egCtx, params.userID)
		alerts = set
		return err
	})

	err = errGroup.Wait()
	if err == nil && (detailed == nil || page == nil) {
		err = platform.ErrBasketNotFound
	}

	if errors.Is(err, platform.ErrBasketNotFound) {
		resp := response.Failure[pricing.ViewBasket](err)
		resp.Data = lo.ToPtr(pricing.Empty())
		return resp
	}

	if err != nil {
		return response.Report[pricing.ViewBasket](s.logger, err, req.UserID, "can't view basket")
	}

	return response.OK(pricing.Aggregate(detailed, page, alerts, params.retailerID))
}
