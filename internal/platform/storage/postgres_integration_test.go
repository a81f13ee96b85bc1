package storage_test

import (
	"context"
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/MichalMitros/basket-service/internal/platform/models/modelstesting"
	"github.com/MichalMitros/basket-service/internal/platform/storage"
	pgmodels "github.com/MichalMitros/basket-service/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/basket-service/internal/platform/storage/storagetesting"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var loc = func() *time.Location {
	loc, err := time.LoadLocation("Etc/UTC")
	if err != nil {
		panic(err)
	}
	return loc
}()

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

// catalogue is a stored set of retailers and products priced by them.
type catalogue struct {
	retailers []models.Retailer
	products  []models.Product
}

// storeCatalogue inserts two retailers and three products.
// First product is sold by both retailers, second only by the first one, third has no prices.
func (s *PostgresTestSuite) storeCatalogue() catalogue {
	s.T().Helper()

	retailers := []models.Retailer{
		modelstesting.FakeRetailer(func(r *models.Retailer) { r.Name = "A" }),
		modelstesting.FakeRetailer(func(r *models.Retailer) { r.Name = "B" }),
	}

	products := []models.Product{
		modelstesting.FakeProduct(func(p *models.Product) { p.RRP = decimal.RequireFromString("200") }),
		modelstesting.FakeProduct(func(p *models.Product) { p.RRP = decimal.RequireFromString("10") }),
		modelstesting.FakeProduct(),
	}

	products[0].Prices = []models.RetailerPricing{
		modelstesting.FakeRetailerPricing(products[0], retailers[0], func(rp *models.RetailerPricing) {
			rp.Price = decimal.RequireFromString("171")
		}),
		modelstesting.FakeRetailerPricing(products[0], retailers[1], func(rp *models.RetailerPricing) {
			rp.Price = decimal.RequireFromString("180")
		}),
	}
	products[1].Prices = []models.RetailerPricing{
		modelstesting.FakeRetailerPricing(products[1], retailers[0], func(rp *models.RetailerPricing) {
			rp.Price = decimal.RequireFromString("9.99")
		}),
	}

	storagetesting.InsertRetailers(s.T(), s.DB, retailers...)
	storagetesting.InsertProducts(s.T(), s.DB, products...)
	for _, p := range products {
		storagetesting.InsertPrices(s.T(), s.DB, p.Prices...)
	}

	return catalogue{retailers: retailers, products: products}
}

func (s *PostgresTestSuite) TestIntegrationGetDetailedBasket() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	cat := s.storeCatalogue()
	basket := fakeBasket(cat.products...)
	storagetesting.InsertBasket(s.T(), s.DB, basket)

	post := storage.NewPostgres(s.DB)

	s.Run("all prices", func() {
		got, err := post.GetDetailedBasket(context.TODO(), basket.UserID, nil)

		s.Require().NoError(err, "shouldn't return any error")
		s.Equal(basket.ID, got.ID, "should return user's basket")
		s.Require().Len(got.Items, 3, "should return all items")
		assertItemPrices(s.T(), []string{"171", "180"}, got.Items[0])
		assertItemPrices(s.T(), []string{"9.99"}, got.Items[1])
		assertItemPrices(s.T(), []string{}, got.Items[2])
		s.Equal("A", got.Items[0].Product.Prices[0].Retailer.Name, "should join retailer")
	})

	s.Run("retailer filter", func() {
		got, err := post.GetDetailedBasket(context.TODO(), basket.UserID, &cat.retailers[1].ID)

		s.Require().NoError(err, "shouldn't return any error")
		s.Require().Len(got.Items, 3, "should keep items without retailer's prices")
		assertItemPrices(s.T(), []string{"180"}, got.Items[0])
		assertItemPrices(s.T(), []string{}, got.Items[1])
		assertItemPrices(s.T(), []string{}, got.Items[2])
	})

	s.Run("basket not found", func() {
		_, err := post.GetDetailedBasket(context.TODO(), uuid.New(), nil)

		s.Require().ErrorIs(err, platform.ErrBasketNotFound, "should return correct error")
	})
}

func (s *PostgresTestSuite) TestIntegrationGetPaginatedBasket() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	cat := s.storeCatalogue()
	basket := fakeBasket(cat.products...)
	storagetesting.InsertBasket(s.T(), s.DB, basket)

	tests := map[string]struct {
		page, limit  uint
		wantProducts []uuid.UUID
	}{
		"first page": {
			page:         1,
			limit:        2,
			wantProducts: []uuid.UUID{cat.products[0].ID, cat.products[1].ID},
		},
		"second page": {
			page:         2,
			limit:        2,
			wantProducts: []uuid.UUID{cat.products[2].ID},
		},
		"page after last": {
			page:         3,
			limit:        2,
			wantProducts: []uuid.UUID{},
		},
		"page beyond offset range": {
			page:         1<<60 + 1,
			limit:        10,
			wantProducts: []uuid.UUID{},
		},
		"whole basket": {
			page:         1,
			limit:        10,
			wantProducts: []uuid.UUID{cat.products[0].ID, cat.products[1].ID, cat.products[2].ID},
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			post := storage.NewPostgres(s.DB)

			got, err := post.GetPaginatedBasket(context.TODO(), basket.UserID, tt.page, tt.limit, nil)

			s.Require().NoError(err, "shouldn't return any error")
			s.Equal(basket.ID, got.ID, "should return user's basket")
			s.Equal(
				tt.wantProducts,
				lo.Map(got.Items, func(item models.BasketItem, _ int) uuid.UUID { return item.ProductID }),
				"should return correct page of items",
			)
		})
	}

	s.Run("basket not found", func() {
		post := storage.NewPostgres(s.DB)

		_, err := post.GetPaginatedBasket(context.TODO(), uuid.New(), 1, 10, nil)

		s.Require().ErrorIs(err, platform.ErrBasketNotFound, "should return correct error")
	})
}

func (s *PostgresTestSuite) TestIntegrationGetActivePriceAlerts() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	cat := s.storeCatalogue()
	userID := uuid.New()

	storagetesting.InsertPriceAlerts(s.T(), s.DB,
		pgmodels.PriceAlert{ID: uuid.New(), UserID: userID, ProductID: cat.products[0].ID, IsActive: true},
		pgmodels.PriceAlert{ID: uuid.New(), UserID: userID, ProductID: cat.products[1].ID, IsActive: false},
		pgmodels.PriceAlert{ID: uuid.New(), UserID: uuid.New(), ProductID: cat.products[2].ID, IsActive: true},
	)

	post := storage.NewPostgres(s.DB)

	alerts, err := post.GetActivePriceAlerts(context.TODO(), userID)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(models.NewAlertSet(cat.products[0].ID), alerts, "should return only user's active alerts")
}

func (s *PostgresTestSuite) TestIntegrationAddToBasket() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	cat := s.storeCatalogue()
	userID := uuid.New()
	post := storage.NewPostgres(s.DB)

	s.Run("creates basket", func() {
		item, err := post.AddToBasket(context.TODO(), userID, cat.products[0].ID, 2)

		s.Require().NoError(err, "shouldn't return any error")
		baskets := storagetesting.GetBaskets(s.T(), s.DB, userID)
		s.Require().Len(baskets, 1, "should create basket")
		s.Equal(baskets[0].ID, item.BasketID, "should add item to created basket")
		s.Equal(int32(2), item.Quantity, "should set quantity")
	})

	s.Run("sets quantity of existing item", func() {
		item, err := post.AddToBasket(context.TODO(), userID, cat.products[0].ID, 5)

		s.Require().NoError(err, "shouldn't return any error")
		items := storagetesting.GetBasketItems(s.T(), s.DB, item.BasketID)
		s.Require().Len(items, 1, "shouldn't duplicate item")
		s.Equal(int32(5), items[0].Quantity, "should replace quantity")
	})

	s.Run("concurrent first adds", func() {
		otherUserID := uuid.New()
		errs := make(chan error, len(cat.products))
		for _, p := range cat.products {
			go func() {
				_, err := post.AddToBasket(context.TODO(), otherUserID, p.ID, 1)
				errs <- err
			}()
		}
		for range cat.products {
			s.Require().NoError(<-errs, "shouldn't return any error")
		}

		baskets := storagetesting.GetBaskets(s.T(), s.DB, otherUserID)
		s.Require().Len(baskets, 1, "should create single basket")
		s.Len(storagetesting.GetBasketItems(s.T(), s.DB, baskets[0].ID), len(cat.products), "should add all items")
	})

	s.Run("product not found", func() {
		_, err := post.AddToBasket(context.TODO(), userID, uuid.New(), 1)

		s.Require().ErrorIs(err, platform.ErrProductNotFound, "should return correct error")
	})
}

func (s *PostgresTestSuite) TestIntegrationRemoveFromBasket() {
	storagetesting.CleanupData(s.T(), s.DB)

	tests := map[string]struct {
		stored      bool
		productIx   int
		unknown     bool
		wantItems   int
		wantBaskets int
		wantErr     error
	}{
		"removes item": {
			stored:      true,
			wantItems:   1,
			wantBaskets: 1,
		},
		"removes basket with last item": {
			stored:    true,
			productIx: 1,
		},
		"item not found": {
			stored:      true,
			unknown:     true,
			wantItems:   2,
			wantBaskets: 1,
			wantErr:     platform.ErrItemNotFound,
		},
		"basket not found": {
			wantErr: platform.ErrBasketNotFound,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			cat := s.storeCatalogue()
			basket := fakeBasket(cat.products[:2]...)
			if tt.stored {
				storagetesting.InsertBasket(s.T(), s.DB, basket)
			}

			post := storage.NewPostgres(s.DB)

			// "removes basket with last item" removes both items one by one
			if tt.productIx == 1 {
				s.Require().NoError(post.RemoveFromBasket(context.TODO(), basket.UserID, cat.products[0].ID))
			}

			productID := cat.products[tt.productIx].ID
			if tt.unknown {
				productID = cat.products[2].ID
			}

			err := post.RemoveFromBasket(context.TODO(), basket.UserID, productID)

			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
			} else {
				s.Require().NoError(err, "shouldn't return any error")
			}
			s.Len(storagetesting.GetBaskets(s.T(), s.DB, basket.UserID), tt.wantBaskets, "should have correct baskets")
			s.Len(storagetesting.GetBasketItems(s.T(), s.DB, basket.ID), tt.wantItems, "should have correct items")
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationClearBasket() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	cat := s.storeCatalogue()
	basket := fakeBasket(cat.products...)
	storagetesting.InsertBasket(s.T(), s.DB, basket)

	post := storage.NewPostgres(s.DB)

	err := post.ClearBasket(context.TODO(), basket.UserID)

	s.Require().NoError(err, "shouldn't return any error")
	s.Empty(storagetesting.GetBaskets(s.T(), s.DB, basket.UserID), "should delete basket")
	s.Empty(storagetesting.GetBasketItems(s.T(), s.DB, basket.ID), "should delete basket items")

	err = post.ClearBasket(context.TODO(), basket.UserID)

	s.Require().ErrorIs(err, platform.ErrBasketNotFound, "should return correct error for missing basket")
}

func (s *PostgresTestSuite) TestIntegrationGetRetailer() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	retailer := modelstesting.FakeRetailer()
	storagetesting.InsertRetailers(s.T(), s.DB, retailer)

	post := storage.NewPostgres(s.DB)

	got, err := post.GetRetailer(context.TODO(), retailer.ID)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(retailer, *got, "should return retailer")

	_, err = post.GetRetailer(context.TODO(), uuid.New())
	s.Require().ErrorIs(err, platform.ErrRetailerNotFound, "should return correct error")
}

func (s *PostgresTestSuite) TestIntegrationStartRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	version := rand.Int63()

	tests := map[string]struct {
		storedRuns []pgmodels.ImportRun
		wantErr    error
	}{
		"first run": {},
		"after successful run": {
			storedRuns: []pgmodels.ImportRun{
				{
					ID:            1001,
					PricesVersion: version - 1,
					Success:       lo.ToPtr(true),
					FinishedAt:    lo.ToPtr(time.Now()),
				},
			},
		},
		"after failed run": {
			storedRuns: []pgmodels.ImportRun{
				{
					ID:            1001,
					PricesVersion: version - 1,
					Success:       lo.ToPtr(false),
					FinishedAt:    lo.ToPtr(time.Now()),
				},
			},
		},
		"already running error": {
			storedRuns: []pgmodels.ImportRun{
				{
					ID:            1001,
					PricesVersion: version - 1,
				},
			},
			wantErr: platform.ErrAlreadyRunning,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			retailer := modelstesting.FakeRetailer()
			storagetesting.InsertRetailers(s.T(), s.DB, retailer)

			lo.ForEach(tt.storedRuns, func(_ pgmodels.ImportRun, ix int) {
				tt.storedRuns[ix].RetailerID = retailer.ID
				tt.storedRuns[ix].CreatedAt = time.Now().Add(-time.Hour)
			})
			storagetesting.InsertRuns(s.T(), s.DB, tt.storedRuns...)

			post := storage.NewPostgres(s.DB)

			run, err := post.StartRun(context.TODO(), retailer.ID, version)

			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")
			s.NotZero(run.ID, "run should have id")
			s.NotZero(run.CreatedAt.UnixMilli(), "run should have \"created at\" set")
			s.Equal(retailer.ID, run.RetailerID, "run should belong to retailer")
			s.Equal(version, run.PricesVersion, "run should have prices version")
			s.Nil(run.FinishedAt, "run shouldn't be finished")
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationFinishRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	version := rand.Int63()
	createdAt := time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)
	finishedAt := time.Date(2024, time.April, 1, 2, 1, 1, 0, loc)

	matched := rand.Int31()
	unmatched := rand.Int31()
	deleted := rand.Int31()
	failed := rand.Int31()

	tests := map[string]struct {
		runID   int
		wantErr bool
	}{
		"finishes run": {
			runID: 1,
		},
		"not existing run error": {
			runID:   2,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			retailer := modelstesting.FakeRetailer()
			storagetesting.InsertRetailers(s.T(), s.DB, retailer)

			stored := pgmodels.ImportRun{
				ID:            1,
				RetailerID:    retailer.ID,
				CreatedAt:     createdAt,
				PricesVersion: version,
			}
			storagetesting.InsertRuns(s.T(), s.DB, stored)

			post := storage.NewPostgres(s.DB)

			err := post.FinishRun(context.TODO(), &models.ImportRun{
				ID:              tt.runID,
				RetailerID:      retailer.ID,
				CreatedAt:       createdAt,
				PricesVersion:   version,
				FinishedAt:      &finishedAt,
				IsSuccess:       lo.ToPtr(true),
				StatusMessage:   lo.ToPtr("OK"),
				MatchedPrices:   &matched,
				UnmatchedOffers: &unmatched,
				DeletedPrices:   &deleted,
				FailedOffers:    &failed,
			})

			if tt.wantErr {
				s.Require().Error(err, "should return error")
				s.Equal([]pgmodels.ImportRun{stored}, storagetesting.GetRuns(s.T(), s.DB), "shouldn't change runs")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")
			assert.Equal(s.T(), []pgmodels.ImportRun{
				{
					ID:              1,
					RetailerID:      retailer.ID,
					CreatedAt:       createdAt,
					PricesVersion:   version,
					FinishedAt:      &finishedAt,
					Success:         lo.ToPtr(true),
					StatusMessage:   lo.ToPtr("OK"),
					MatchedPrices:   &matched,
					UnmatchedOffers: &unmatched,
					DeletedPrices:   &deleted,
					FailedOffers:    &failed,
				},
			}, storagetesting.GetRuns(s.T(), s.DB), "should update run")
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationUpdatePrices() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	cat := s.storeCatalogue()
	retailer := cat.retailers[0]
	version := time.Now().UnixNano()

	offers := []models.Offer{
		// updates stored price
		modelstesting.FakeOffer(func(o *models.Offer) {
			o.GTIN = *cat.products[0].GTIN
			o.Price = decimal.RequireFromString("165.5")
			o.UnitPrice = nil
			o.Version = version
		}),
		// inserts new price
		modelstesting.FakeOffer(func(o *models.Offer) {
			o.GTIN = *cat.products[2].GTIN
			o.Price = decimal.RequireFromString("3.25")
			o.UnitPrice = lo.ToPtr(decimal.RequireFromString("1.28"))
			o.Version = version
		}),
		// duplicated GTIN, ignored
		modelstesting.FakeOffer(func(o *models.Offer) {
			o.GTIN = *cat.products[2].GTIN
			o.Price = decimal.RequireFromString("1")
			o.Version = version
		}),
		// unknown product
		modelstesting.FakeOffer(func(o *models.Offer) { o.Version = version }),
	}

	post := storage.NewPostgres(s.DB)

	matched, unmatched, err := post.UpdatePrices(context.TODO(), offers, retailer.ID)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(int32(2), matched, "should return correct number of matched offers")
	s.Equal(int32(1), unmatched, "should return correct number of unmatched offers")

	prices := storagetesting.GetPrices(s.T(), s.DB, retailer.ID)
	s.Require().Len(prices, 3, "should have correct number of retailer's prices")
	assertPrice(s.T(), cat.products[2].ID, "3.25", lo.ToPtr("1.28"), version, prices[0])
	assertPrice(
		s.T(),
		cat.products[1].ID,
		"9.99",
		lo.ToPtr(cat.products[1].Prices[0].UnitPrice.String()),
		cat.products[1].Prices[0].Version,
		prices[1],
	)
	assertPrice(s.T(), cat.products[0].ID, "165.5", nil, version, prices[2])
	s.Equal(offers[0].URL, prices[2].ProductURL, "should update product url")
}

func (s *PostgresTestSuite) TestIntegrationDeleteStalePrices() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	version := rand.Int63n(1 << 40)
	retailers := []models.Retailer{modelstesting.FakeRetailer(), modelstesting.FakeRetailer()}
	products := []models.Product{
		modelstesting.FakeProduct(),
		modelstesting.FakeProduct(),
		modelstesting.FakeProduct(),
	}

	stored := []models.RetailerPricing{
		modelstesting.FakeRetailerPricing(products[0], retailers[0], withVersion(version-10)),
		modelstesting.FakeRetailerPricing(products[1], retailers[0], withVersion(version)),
		modelstesting.FakeRetailerPricing(products[2], retailers[0], withVersion(version-1)),
		modelstesting.FakeRetailerPricing(products[0], retailers[1], withVersion(version-10)),
	}

	storagetesting.InsertRetailers(s.T(), s.DB, retailers...)
	storagetesting.InsertProducts(s.T(), s.DB, products...)
	storagetesting.InsertPrices(s.T(), s.DB, stored...)

	post := storage.NewPostgres(s.DB)

	deleted, err := post.DeleteStalePrices(context.TODO(), retailers[0].ID, version, 1)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(int32(2), deleted, "should return correct number of deleted prices")

	left := storagetesting.GetPrices(s.T(), s.DB, retailers[0].ID)
	s.Require().Len(left, 1, "should keep current prices")
	s.Equal(stored[1].ID, left[0].ID, "should keep price with current version")
	s.Len(storagetesting.GetPrices(s.T(), s.DB, retailers[1].ID), 1, "shouldn't delete other retailer's prices")
}

// fakeBasket returns basket of new user with provided products in order.
func fakeBasket(products ...models.Product) models.Basket {
	basketID := uuid.New()
	return models.Basket{
		ID:        basketID,
		UserID:    uuid.New(),
		CreatedAt: time.Date(2024, time.April, 1, 1, 1, 1, 0, loc),
		Items: lo.Map(products, func(p models.Product, _ int) models.BasketItem {
			return modelstesting.FakeBasketItem(basketID, p)
		}),
	}
}

func withVersion(version int64) func(rp *models.RetailerPricing) {
	return func(rp *models.RetailerPricing) { rp.Version = version }
}

// assertItemPrices is a helper test function to assert item's prices in order.
func assertItemPrices(t *testing.T, expected []string, item models.BasketItem) {
	t.Helper()

	actual := lo.Map(item.Product.Prices, func(p models.RetailerPricing, _ int) string { return p.Price.String() })
	assert.Equal(t, expected, actual, "item %s has incorrect prices", item.ProductID)
}

// assertPrice is a helper test function to assert stored price.
func assertPrice(
	t *testing.T,
	productID uuid.UUID,
	price string,
	unitPrice *string,
	version int64,
	actual pgmodels.RetailerPricing,
) {
	t.Helper()

	require.Equal(t, productID, actual.ProductID, "price has incorrect product")
	assert.Truef(t, decimal.RequireFromString(price).Equal(actual.Price), "price has incorrect value %s", actual.Price)
	assert.Equal(t, version, actual.Version, "price has incorrect version")
	if unitPrice == nil {
		assert.Nil(t, actual.UnitPrice, "price shouldn't have unit price")
		return
	}
	require.NotNil(t, actual.UnitPrice, "price should have unit price")
	assert.Truef(
		t,
		decimal.RequireFromString(*unitPrice).Equal(*actual.UnitPrice),
		"price has incorrect unit price %s",
		actual.UnitPrice,
	)
}
