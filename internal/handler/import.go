package handler

import (
	"context"
	"fmt"

	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/MichalMitros/basket-service/internal/platform/response"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ImportPricesRequest is request for retailer price feed import.
type ImportPricesRequest struct {
	RetailerID string `json:"retailer_id"`
}

// ImportResult is finished import run statistics.
type ImportResult struct {
	RunID           int   `json:"run_id"`
	MatchedPrices   int32 `json:"matched_prices"`
	UnmatchedOffers int32 `json:"unmatched_offers"`
	DeletedPrices   int32 `json:"deleted_prices"`
	FailedOffers    int32 `json:"failed_offers"`
}

func (h *RMQHandler) importPrices(ctx context.Context, req ImportPricesRequest) response.Response[ImportResult] {
	retailerID, err := uuid.Parse(req.RetailerID)
	if err != nil {
		return response.Failure[ImportResult](
			fmt.Errorf("%w: retailer_id must be a valid uuid", platform.ErrInvalidArgument),
		)
	}

	h.logger.Info().
		Str("retailerId", req.RetailerID).
		Msg("price import started")

	run, err := h.importer.Import(ctx, retailerID)
	if run != nil {
		result := toImportResult(run)
		h.metrics.RecordImport(
			req.RetailerID,
			err == nil,
			result.MatchedPrices,
			result.UnmatchedOffers,
			result.FailedOffers,
			result.DeletedPrices,
		)
	}

	if err != nil {
		h.logger.Error().
			Err(err).
			Str("retailerId", req.RetailerID).
			Msg("price import failed")
		return response.Failure[ImportResult](err)
	}

	h.logger.Info().
		Str("retailerId", req.RetailerID).
		Int("runId", run.ID).
		Msg("price import finished")

	return response.OK(toImportResult(run))
}

func toImportResult(run *models.ImportRun) ImportResult {
	return ImportResult{
		RunID:           run.ID,
		MatchedPrices:   lo.FromPtr(run.MatchedPrices),
		UnmatchedOffers: lo.FromPtr(run.UnmatchedOffers),
		DeletedPrices:   lo.FromPtr(run.DeletedPrices),
		FailedOffers:    lo.FromPtr(run.FailedOffers),
	}
}
