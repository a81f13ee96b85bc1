package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/MichalMitros/basket-service/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/basket-service/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// GetDetailedBasket returns user's basket with all items, their products and retailer prices.
// When retailerID is provided only prices of that retailer are joined, items stay in the basket with no prices.
// It returns ErrBasketNotFound if user has no basket.
func (p Postgres) GetDetailedBasket(ctx context.Context, userID uuid.UUID, retailerID *uuid.UUID) (*models.Basket, error) {
	basket, err := getBasketWithItems(ctx, p.db, table.Basket.UserID.EQ(pg.UUID(userID)), retailerID)
	if err != nil {
		return nil, fmt.Errorf("can't get detailed basket: %w", err)
	}

	return toAppBasket(basket), nil
}

// GetPaginatedBasket returns user's basket with single page of items ordered by the time they were added.
// Pages are numbered from 1. It returns ErrBasketNotFound if user has no basket.
func (p Postgres) GetPaginatedBasket(
	ctx context.Context,
	userID uuid.UUID,
	page, limit uint,
	retailerID *uuid.UUID,
) (*models.Basket, error) {
	basket, err := getBasket(ctx, p.db, userID)
	if err != nil {
		return nil, fmt.Errorf("can't get paginated basket: %w", err)
	}

	offset, ok := pageOffset(page, limit)
	if !ok {
		return toAppBasket(&basketDest{Basket: *basket}), nil
	}

	var pageItems []pgmodels.BasketItem
	err = table.BasketItem.SELECT(table.BasketItem.ID).
		WHERE(table.BasketItem.BasketID.EQ(pg.UUID(basket.ID))).
		ORDER_BY(table.BasketItem.CreatedAt.ASC(), table.BasketItem.ID.ASC()).
		LIMIT(int64(min(uint64(limit), math.MaxInt64))).
		OFFSET(offset).
		QueryContext(ctx, p.db, &pageItems)
	if err != nil {
		return nil, fmt.Errorf("can't get basket page items: %w", err)
	}

	if len(pageItems) == 0 {
		return toAppBasket(&basketDest{Basket: *basket}), nil
	}

	ids := lo.Map(pageItems, func(item pgmodels.BasketItem, _ int) pg.Expression {
		return pg.UUID(item.ID)
	})

	dest, err := getBasketWithItems(ctx, p.db, pg.AND(
		table.Basket.ID.EQ(pg.UUID(basket.ID)),
		table.BasketItem.ID.IN(ids...),
	), retailerID)
	if err != nil {
		return nil, fmt.Errorf("can't get paginated basket: %w", err)
	}

	return toAppBasket(dest), nil
}

// GetActivePriceAlerts returns set of product IDs with active price alerts for user.
func (p Postgres) GetActivePriceAlerts(ctx context.Context, userID uuid.UUID) (models.AlertSet, error) {
	var alerts []pgmodels.PriceAlert
	err := table.PriceAlert.SELECT(table.PriceAlert.ID, table.PriceAlert.ProductID).
		WHERE(pg.AND(
			table.PriceAlert.UserID.EQ(pg.UUID(userID)),
			table.PriceAlert.IsActive.IS_TRUE(),
		)).
		QueryContext(ctx, p.db, &alerts)
	if err != nil {
		return nil, fmt.Errorf("can't get active price alerts: %w", err)
	}

	return models.NewAlertSet(lo.Map(alerts, func(alert pgmodels.PriceAlert, _ int) uuid.UUID {
		return alert.ProductID
	})...), nil
}

// AddToBasket adds product to user's basket, creating the basket if user has none.
// Adding product which is already in the basket sets its quantity.
// It returns ErrProductNotFound if product does not exist.
func (p Postgres) AddToBasket(
	ctx context.Context,
	userID, productID uuid.UUID,
	quantity int32,
) (*models.BasketItem, error) {
	var item pgmodels.BasketItem

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var product pgmodels.Product
		err := table.Product.SELECT(table.Product.ID).
			WHERE(table.Product.ID.EQ(pg.UUID(productID))).
			QueryContext(ctx, tx, &product)
		if errors.Is(err, qrm.ErrNoRows) {
			return platform.ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("can't get product: %w", err)
		}

		basket, err := createBasket(ctx, tx, userID)
		if err != nil {
			return err
		}

		err = table.BasketItem.INSERT(
			table.BasketItem.ID,
			table.BasketItem.BasketID,
			table.BasketItem.ProductID,
			table.BasketItem.Quantity,
		).
			VALUES(pg.UUID(uuid.New()), pg.UUID(basket.ID), pg.UUID(productID), pg.Int32(quantity)).
			ON_CONFLICT(table.BasketItem.BasketID, table.BasketItem.ProductID).
			DO_UPDATE(pg.SET(
				table.BasketItem.Quantity.SET(table.BasketItem.EXCLUDED.Quantity),
			)).
			RETURNING(table.BasketItem.AllColumns).
			QueryContext(ctx, tx, &item)
		if err != nil {
			return fmt.Errorf("can't upsert basket item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add product to basket: %w", err)
	}

	return &models.BasketItem{
		ID:        item.ID,
		BasketID:  item.BasketID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}, nil
}

// RemoveFromBasket removes product from user's basket. Basket is deleted together with its last item.
// It returns ErrBasketNotFound if user has no basket and ErrItemNotFound if product is not in the basket.
func (p Postgres) RemoveFromBasket(ctx context.Context, userID, productID uuid.UUID) error {
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		basket, err := getBasket(ctx, tx, userID)
		if err != nil {
			return err
		}

		result, err := table.BasketItem.DELETE().
			WHERE(pg.AND(
				table.BasketItem.BasketID.EQ(pg.UUID(basket.ID)),
				table.BasketItem.ProductID.EQ(pg.UUID(productID)),
			)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete basket item: %w", err)
		}

		if err := checkAffected(result, platform.ErrItemNotFound); err != nil {
			return err
		}

		var remaining []pgmodels.BasketItem
		err = table.BasketItem.SELECT(table.BasketItem.ID).
			WHERE(table.BasketItem.BasketID.EQ(pg.UUID(basket.ID))).
			LIMIT(1).
			QueryContext(ctx, tx, &remaining)
		if err != nil {
			return fmt.Errorf("can't count basket items: %w", err)
		}

		if len(remaining) > 0 {
			return nil
		}

		_, err = table.Basket.DELETE().
			WHERE(table.Basket.ID.EQ(pg.UUID(basket.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete empty basket: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't remove product from basket: %w", err)
	}

	return nil
}

// ClearBasket deletes user's basket with all its items.
// It returns ErrBasketNotFound if user has no basket.
func (p Postgres) ClearBasket(ctx context.Context, userID uuid.UUID) error {
	result, err := table.Basket.DELETE().
		WHERE(table.Basket.UserID.EQ(pg.UUID(userID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't clear basket: %w", err)
	}

	if err := checkAffected(result, platform.ErrBasketNotFound); err != nil {
		return fmt.Errorf("can't clear basket: %w", err)
	}

	return nil
}

// pageOffset returns number of items preceding the page.
// It reports false when the page starts beyond the range of possible offsets.
func pageOffset(page, limit uint) (int64, bool) {
	if page < 1 {
		page = 1
	}

	if limit != 0 && uint64(page-1) > math.MaxInt64/uint64(limit) {
		return 0, false
	}

	return int64(uint64(page-1) * uint64(limit)), true
}

// checkAffected returns notFound when statement affected no rows.
func checkAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't get affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

func getBasket(ctx context.Context, db qrm.DB, userID uuid.UUID) (*pgmodels.Basket, error) {
	var basket pgmodels.Basket
	err := table.Basket.SELECT(table.Basket.AllColumns).
		WHERE(table.Basket.UserID.EQ(pg.UUID(userID))).
		QueryContext(ctx, db, &basket)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrBasketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get basket: %w", err)
	}

	return &basket, nil
}

// createBasket creates basket for user unless it already exists and returns user's basket.
// Concurrent first adds end up with the same basket thanks to the unique user_id constraint.
func createBasket(ctx context.Context, db qrm.DB, userID uuid.UUID) (*pgmodels.Basket, error) {
	_, err := table.Basket.INSERT(table.Basket.ID, table.Basket.UserID).
		VALUES(pg.UUID(uuid.New()), pg.UUID(userID)).
		ON_CONFLICT(table.Basket.UserID).
		DO_NOTHING().
		ExecContext(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("can't create basket: %w", err)
	}

	return getBasket(ctx, db, userID)
}

func getBasketWithItems(
	ctx context.Context,
	db qrm.DB,
	condition pg.BoolExpression,
	retailerID *uuid.UUID,
) (*basketDest, error) {
	pricingCondition := table.RetailerPricing.ProductID.EQ(table.Product.ID)
	if retailerID != nil {
		pricingCondition = pricingCondition.AND(table.RetailerPricing.RetailerID.EQ(pg.UUID(*retailerID)))
	}

	var basket basketDest
	err := pg.SELECT(
		table.Basket.AllColumns,
		table.BasketItem.AllColumns,
		table.Product.AllColumns,
		table.RetailerPricing.AllColumns,
		table.Retailer.AllColumns,
	).
		FROM(
			table.Basket.
				LEFT_JOIN(table.BasketItem, table.BasketItem.BasketID.EQ(table.Basket.ID)).
				LEFT_JOIN(table.Product, table.Product.ID.EQ(table.BasketItem.ProductID)).
				LEFT_JOIN(table.RetailerPricing, pricingCondition).
				LEFT_JOIN(table.Retailer, table.Retailer.ID.EQ(table.RetailerPricing.RetailerID)),
		).
		WHERE(condition).
		ORDER_BY(
			table.BasketItem.CreatedAt.ASC(),
			table.BasketItem.ID.ASC(),
			table.RetailerPricing.Price.ASC(),
			table.RetailerPricing.Version.DESC(),
		).
		QueryContext(ctx, db, &basket)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrBasketNotFound
	}
	if err != nil {
		return nil, err
	}

	return &basket, nil
}
