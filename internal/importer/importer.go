// Package importer keeps retailer prices current by importing retailer price feeds.
package importer

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Decoder --filename decoder.go
//go:generate mockery --name Storage --filename storage.go

// Fetcher fetches feed file.
type Fetcher interface {
	FetchFeed(context.Context, string) (io.ReadCloser, error)
}

// Decoder decodes xml feed file into parsing results.
type Decoder interface {
	Decode(context.Context, io.Reader, chan<- models.ParsingResult) error
}

// Clock provides times.
type Clock interface {
	// Timestamp returns UTC unix timestamp.
	Timestamp() int64
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is retailer prices and import runs storage.
type Storage interface {
	// GetRetailer returns retailer by ID.
	GetRetailer(ctx context.Context, retailerID uuid.UUID) (*models.Retailer, error)
	// StartRun creates new run if there is no run for provided retailer running.
	StartRun(ctx context.Context, retailerID uuid.UUID, version int64) (*models.ImportRun, error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.ImportRun) error
	// UpdatePrices upserts retailer prices of offers matched with products.
	// Returns number of matched and unmatched offers.
	UpdatePrices(
		ctx context.Context,
		offers []models.Offer,
		retailerID uuid.UUID,
	) (matchedPrices int32, unmatchedOffers int32, err error)
	// DeleteStalePrices deletes retailer prices with version lower than provided.
	// Returns number of deleted prices.
	DeleteStalePrices(
		ctx context.Context,
		retailerID uuid.UUID,
		version int64,
		batchSize uint,
	) (deletedPrices int32, err error)
}

// Option is custom configuration of Importer.
type Option func(i *Importer)

// Importer fetches, decodes and stores retailer price feeds.
type Importer struct {
	fetcher   Fetcher
	decoder   Decoder
	storage   Storage
	batchSize uint
	clock     Clock
}

// NewImporter returns new Importer.
func NewImporter(fetcher Fetcher, decoder Decoder, storage Storage, batchSize uint, ops ...Option) *Importer {
	imp := &Importer{
		fetcher:   fetcher,
		decoder:   decoder,
		storage:   storage,
		batchSize: batchSize,
		clock:     systemClock{},
	}

	for _, op := range ops {
		op(imp)
	}

	return imp
}

// Import imports price feed of retailer. Returned run holds import statistics,
// it's nil when the run couldn't be started.
func (i Importer) Import(ctx context.Context, retailerID uuid.UUID) (*models.ImportRun, error) {
	retailer, err := i.storage.GetRetailer(ctx, retailerID)
	if err != nil {
		return nil, fmt.Errorf("can't get retailer: %w", err)
	}

	if retailer.FeedURL == nil || *retailer.FeedURL == "" {
		return nil, platform.ErrNoFeed
	}

	version := i.clock.Timestamp()

	// insert new run in storage.
	run, err := i.storage.StartRun(ctx, retailerID, version)
	if err != nil {
		return nil, fmt.Errorf("can't start import: %w", err)
	}

	// fetch feed file.
	xmlFile, err := i.fetcher.FetchFeed(ctx, *retailer.FeedURL)
	if err != nil {
		return run, i.finishImport(ctx, run, fmt.Errorf("can't fetch feed file: %w", err))
	}
	defer xmlFile.Close()

	// import offers.
	matched, unmatched, failed, err := i.importOffers(ctx, version, retailerID, xmlFile)

	run.MatchedPrices = &matched
	run.UnmatchedOffers = &unmatched
	run.FailedOffers = &failed

	if err != nil {
		return run, i.finishImport(ctx, run, err)
	}

	// delete prices missing in the feed.
	deletedPrices, err := i.storage.DeleteStalePrices(ctx, retailerID, version, i.batchSize)
	run.DeletedPrices = &deletedPrices

	if err != nil {
		return run, i.finishImport(ctx, run, fmt.Errorf("can't delete stale prices: %w", err))
	}

	return run, i.finishImport(ctx, run, nil)
}

func (i Importer) importOffers(
	ctx context.Context,
	version int64,
	retailerID uuid.UUID,
	xmlFile io.Reader,
) (int32, int32, int32, error) {
	parsingResults := make(chan models.ParsingResult)
	batches := make(chan []models.Offer)
	failedOffers := int32(0)
	matchedPrices := int32(0)
	unmatchedOffers := int32(0)

	errGroup, egCtx := errgroup.WithContext(ctx)

	// decode feed file.
	errGroup.Go(func() error {
		defer close(parsingResults)
		if err := i.decoder.Decode(egCtx, xmlFile, parsingResults); err != nil {
			return fmt.Errorf("can't decode feed file: %w", err)
		}
		return nil
	})

	// batch valid offers.
	errGroup.Go(func() error {
		defer close(batches)

		failed, err := i.batchOffers(egCtx, parsingResults, batches)
		atomic.AddInt32(&failedOffers, int32(failed))
		if err != nil {
			return fmt.Errorf("can't batch offers: %w", err)
		}

		return nil
	})

	// update prices.
	errGroup.Go(func() error {
		matched, unmatched, err := i.updatePrices(egCtx, retailerID, version, batches)
		atomic.AddInt32(&matchedPrices, matched)
		atomic.AddInt32(&unmatchedOffers, unmatched)

		if err != nil {
			return fmt.Errorf("can't update prices: %w", err)
		}

		return nil
	})

	err := errGroup.Wait()

	return matchedPrices, unmatchedOffers, failedOffers, err
}

func (i Importer) batchOffers(
	ctx context.Context,
	input <-chan models.ParsingResult,
	output chan<- []models.Offer,
) (int, error) {
	failedOffers := 0
	batch := make([]models.Offer, 0, i.batchSize)

	for result := range input {
		if result.Error != nil {
			failedOffers++
			continue
		}

		batch = append(batch, result.Offer)
		if len(batch) == int(i.batchSize) {
			select {
			case <-ctx.Done():
				return failedOffers, ctx.Err()
			case output <- batch:
			}
			batch = make([]models.Offer, 0, i.batchSize)
		}
	}

	if len(batch) > 0 {
		select {
		case <-ctx.Done():
			return failedOffers, ctx.Err()
		case output <- batch:
		}
	}

	return failedOffers, nil
}

func (i Importer) updatePrices(
	ctx context.Context,
	retailerID uuid.UUID,
	version int64,
	input <-chan []models.Offer,
) (int32, int32, error) {
	matchedPrices := int32(0)
	unmatchedOffers := int32(0)

	for batch := range input {
		lo.ForEach(batch, func(_ models.Offer, ix int) { batch[ix].Version = version })
		matched, unmatched, err := i.storage.UpdatePrices(ctx, batch, retailerID)
		if err != nil {
			return matchedPrices, unmatchedOffers, err
		}
		matchedPrices += matched
		unmatchedOffers += unmatched
	}

	return matchedPrices, unmatchedOffers, nil
}

func (i Importer) finishImport(ctx context.Context, run *models.ImportRun, status error) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = i.clock.Now()

	err := i.storage.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish import: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed import: %w (fail reason: %w)", err, status)
	}

	return status
}

// WithClock sets Importer's custom Clock.
func WithClock(c Clock) Option {
	return func(i *Importer) {
		i.clock = c
	}
}
