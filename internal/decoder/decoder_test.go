package decoder_test

import (
	"context"
	"io"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/MichalMitros/basket-service/internal/decoder"
	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const feedFileName = "feed.xml"

func TestUnitDecode(t *testing.T) {
	file := FeedFileAsReader(t)

	results := make(chan models.ParsingResult)
	dec := decoder.Decoder{}

	var eg errgroup.Group

	eg.Go(func() error {
		defer close(results)
		return dec.Decode(context.TODO(), file, results)
	})

	var (
		offers         []models.Offer
		decodingErrors []error
	)
	eg.Go(func() error {
		offers, decodingErrors = collect(results)
		return nil
	})

	require.NoError(t, eg.Wait(), "should not return any error")
	require.Len(t, offers, 4, "should decode all items")

	assert.Equal(t, models.Offer{
		OfferID:      "SKU-1001",
		GTIN:         "5000000000011",
		Title:        "Semi-Skimmed Milk 2 Pints",
		URL:          "https://grocery.example.com/p/semi-skimmed-milk",
		Availability: "in stock",
		Price:        decimal.RequireFromString("1.45"),
		UnitPrice:    lo.ToPtr(decimal.RequireFromString("1.28")),
	}, offers[0], "should decode offer with unit price")
	assert.Equal(t, "Fish & Chips", offers[1].Title, "should unescape title")
	assert.Equal(t, "3.25", offers[1].Price.StringFixed(2), "should use lower sale price")
	assert.Nil(t, offers[1].UnitPrice, "should leave missing unit price empty")

	assert.NoError(t, decodingErrors[0], "should decode offer without error")
	assert.NoError(t, decodingErrors[1], "should decode offer without error")
	assert.ErrorIs(t, decodingErrors[2], decoder.ErrMissingGTIN, "should reject item without gtin")
	assert.Equal(t, "SKU-1003", offers[2].OfferID, "should return id of rejected item")
	assert.ErrorIs(t, decodingErrors[3], decoder.ErrInvalidPrice, "should reject item with invalid price")
}

func TestUnitDecodeBadXMLFormat(t *testing.T) {
	badFile := strings.NewReader("<item><g:id></item>")

	results := make(chan models.ParsingResult)
	dec := decoder.Decoder{}

	var eg errgroup.Group

	eg.Go(func() error {
		defer close(results)
		return dec.Decode(context.TODO(), badFile, results)
	})

	var (
		offers         []models.Offer
		decodingErrors []error
	)
	eg.Go(func() error {
		offers, decodingErrors = collect(results)
		return nil
	})

	require.EqualError(t, eg.Wait(),
		"XML syntax error on line 1: element <id> closed by </item>",
		"should return correct decoding error",
	)
	assert.Equal(t, []models.Offer{{}}, offers, "should return empty offer")
	require.EqualError(t, decodingErrors[0],
		"XML syntax error on line 1: element <id> closed by </item>",
		"should return correct decoding error",
	)
}

func TestUnitDecodeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := decoder.Decoder{}.Decode(ctx, FeedFileAsReader(t), make(chan models.ParsingResult))

	require.ErrorIs(t, err, context.Canceled, "should stop when context is canceled")
}

func collect(resultsCh <-chan models.ParsingResult) ([]models.Offer, []error) {
	var (
		offers []models.Offer
		errors []error
	)

	for result := range resultsCh {
		offers = append(offers, result.Offer)
		errors = append(errors, result.Error)
	}

	return offers, errors
}

// FeedFileAsReader returns io.Reader with feed file.
func FeedFileAsReader(t *testing.T) io.Reader {
	t.Helper()

	f, err := os.Open(path.Join("testdata", feedFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}
