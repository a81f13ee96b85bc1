package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/MichalMitros/basket-service/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	pgmodels "github.com/MichalMitros/basket-service/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// GetRetailer returns retailer by ID. It returns ErrRetailerNotFound if there is no such retailer.
func (p Postgres) GetRetailer(ctx context.Context, retailerID uuid.UUID) (*models.Retailer, error) {
	var retailer pgmodels.Retailer
	err := table.Retailer.SELECT(table.Retailer.AllColumns).
		WHERE(table.Retailer.ID.EQ(pg.UUID(retailerID))).
		QueryContext(ctx, p.db, &retailer)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrRetailerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get retailer: %w", err)
	}

	return toAppRetailer(&retailer), nil
}

// StartRun creates new unfinished import run for retailer and returns it.
// It returns ErrAlreadyRunning if previous run is not finished yet.
func (p Postgres) StartRun(ctx context.Context, retailerID uuid.UUID, version int64) (*models.ImportRun, error) {
	run := &models.ImportRun{
		RetailerID:    retailerID,
		PricesVersion: version,
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		lastRun, err := getLastRun(ctx, tx, retailerID)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		newRun := toDBRun(run)
		err = table.ImportRun.INSERT(
			table.ImportRun.PricesVersion,
			table.ImportRun.RetailerID,
		).
			MODEL(newRun).
			RETURNING(table.ImportRun.ID, table.ImportRun.CreatedAt).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = int(newRun.ID)
		run.CreatedAt = newRun.CreatedAt

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.ImportRun) error {
	columnList := table.ImportRun.AllColumns.Except(
		table.ImportRun.ID,
		table.ImportRun.CreatedAt,
		table.ImportRun.PricesVersion,
		table.ImportRun.RetailerID,
	)

	result, err := table.ImportRun.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.ImportRun.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("can't update run: run %d does not exist", run.ID)
	}

	return nil
}

// UpdatePrices upserts retailer prices from offers matched to catalogue products by GTIN.
// It returns number of matched offers and number of offers without product in catalogue.
func (p Postgres) UpdatePrices(
	ctx context.Context,
	offers []models.Offer,
	retailerID uuid.UUID,
) (int32, int32, error) {
	// a feed can list the same product twice, only the first offer is kept
	offers = lo.UniqBy(offers, func(offer models.Offer) string { return offer.GTIN })

	var matched, unmatched int32

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		productIDs, err := getProductIDsByGTIN(ctx, tx, lo.Map(offers, func(offer models.Offer, _ int) string {
			return offer.GTIN
		}))
		if err != nil {
			return fmt.Errorf("can't get products by gtin: %w", err)
		}

		prices := make([]pgmodels.RetailerPricing, 0, len(offers))
		for ix := range offers {
			productID, ok := productIDs[offers[ix].GTIN]
			if !ok {
				unmatched++
				continue
			}
			prices = append(prices, *ToDBRetailerPricing(&offers[ix], productID, retailerID))
		}

		if err := upsertPrices(ctx, tx, prices); err != nil {
			return fmt.Errorf("can't upsert prices: %w", err)
		}

		matched = int32(len(prices))

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return matched, unmatched, nil
}

// DeleteStalePrices deletes retailer's prices with version lower than provided.
// Returns number of deleted prices or error.
func (p Postgres) DeleteStalePrices(
	ctx context.Context,
	retailerID uuid.UUID,
	version int64,
	batchSize uint,
) (int32, error) {
	deletedPrices := int32(0)

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		toDelete := make(chan []uuid.UUID)

		errGroup, egCtx := errgroup.WithContext(ctx)

		errGroup.Go(func() error {
			return getStalePricesAsync(egCtx, tx, retailerID, version, batchSize, toDelete)
		})

		errGroup.Go(func() error {
			deletedCount, err := deletePricesAsync(egCtx, tx, toDelete)
			if err == nil {
				atomic.AddInt32(&deletedPrices, int32(deletedCount))
			}
			return err
		})

		return errGroup.Wait()
	})
	if err != nil {
		return 0, err
	}

	return deletedPrices, nil
}

func upsertPrices(ctx context.Context, db qrm.DB, prices []pgmodels.RetailerPricing) error {
	if len(prices) == 0 {
		return nil
	}

	updatedColumns := pg.ColumnList{
		table.RetailerPricing.Price,
		table.RetailerPricing.UnitPrice,
		table.RetailerPricing.ProductURL,
		table.RetailerPricing.Version,
	}

	_, err := table.RetailerPricing.INSERT(table.RetailerPricing.AllColumns).
		MODELS(prices).
		ON_CONFLICT(table.RetailerPricing.ProductID, table.RetailerPricing.RetailerID).
		DO_UPDATE(
			pg.SET(
				updatedColumns.SET(pg.ROW(
					table.RetailerPricing.EXCLUDED.Price,
					table.RetailerPricing.EXCLUDED.UnitPrice,
					table.RetailerPricing.EXCLUDED.ProductURL,
					table.RetailerPricing.EXCLUDED.Version,
				)),
			),
		).
		ExecContext(ctx, db)

	return err
}

func getProductIDsByGTIN(ctx context.Context, db qrm.DB, gtins []string) (map[string]uuid.UUID, error) {
	if len(gtins) == 0 {
		return map[string]uuid.UUID{}, nil
	}

	expressions := lo.Map(gtins, func(gtin string, _ int) pg.Expression { return pg.String(gtin) })

	products := make([]pgmodels.Product, 0, len(gtins))
	err := table.Product.SELECT(table.Product.ID, table.Product.Gtin).
		WHERE(table.Product.Gtin.IN(expressions...)).
		QueryContext(ctx, db, &products)
	if err != nil {
		return nil, err
	}

	result := make(map[string]uuid.UUID, len(products))
	for ix := range products {
		if products[ix].Gtin != nil {
			result[*products[ix].Gtin] = products[ix].ID
		}
	}

	return result, nil
}

func getLastRun(ctx context.Context, db qrm.DB, retailerID uuid.UUID) (*pgmodels.ImportRun, error) {
	var run pgmodels.ImportRun
	err := table.ImportRun.SELECT(
		table.ImportRun.ID,
		table.ImportRun.CreatedAt,
		table.ImportRun.FinishedAt,
		table.ImportRun.Success,
		table.ImportRun.StatusMessage,
	).
		WHERE(table.ImportRun.RetailerID.EQ(pg.UUID(retailerID))).
		ORDER_BY(table.ImportRun.CreatedAt.DESC(), table.ImportRun.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func getStalePricesAsync(
	ctx context.Context,
	db qrm.DB,
	retailerID uuid.UUID,
	version int64,
	batchSize uint,
	toDelete chan []uuid.UUID,
) error {
	defer close(toDelete)
	previousID := uuid.Nil
	for {
		var prices []pgmodels.RetailerPricing
		err := table.RetailerPricing.SELECT(table.RetailerPricing.ID).
			WHERE(pg.AND(
				table.RetailerPricing.RetailerID.EQ(pg.UUID(retailerID)),
				table.RetailerPricing.Version.LT(pg.Int64(version)),
				table.RetailerPricing.ID.GT(pg.UUID(previousID)),
			)).
			ORDER_BY(table.RetailerPricing.ID.ASC()).
			LIMIT(int64(batchSize)).
			QueryContext(ctx, db, &prices)
		if err != nil {
			return err
		}

		if len(prices) == 0 {
			return nil
		}

		ids := lo.Map(prices, func(price pgmodels.RetailerPricing, _ int) uuid.UUID { return price.ID })
		previousID = ids[len(ids)-1]

		select {
		case <-ctx.Done():
			return ctx.Err()
		case toDelete <- ids:
		}
	}
}

func deletePricesAsync(ctx context.Context, db qrm.DB, toDelete chan []uuid.UUID) (int, error) {
	deletedCount := 0
	for batch := range toDelete {
		ids := lo.Map(batch, func(id uuid.UUID, _ int) pg.Expression { return pg.UUID(id) })

		_, err := table.RetailerPricing.DELETE().
			WHERE(table.RetailerPricing.ID.IN(ids...)).
			ExecContext(ctx, db)
		if err != nil {
			return deletedCount, err
		}
		deletedCount += len(batch)
	}
	return deletedCount, nil
}
