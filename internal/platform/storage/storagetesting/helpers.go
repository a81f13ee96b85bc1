package storagetesting

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/MichalMitros/basket-service/internal/platform/models"
	pgmodels "github.com/MichalMitros/basket-service/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/basket-service/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertRetailers is a helper test function to insert retailers.
func InsertRetailers(t *testing.T, exc qrm.Executable, retailers ...models.Retailer) {
	t.Helper()

	if len(retailers) == 0 {
		return
	}

	toInsert := make([]pgmodels.Retailer, 0, len(retailers))
	for _, r := range retailers {
		toInsert = append(toInsert, pgmodels.Retailer{
			ID:      r.ID,
			Name:    r.Name,
			SiteURL: r.SiteURL,
			FeedURL: r.FeedURL,
		})
	}

	_, err := table.Retailer.INSERT(table.Retailer.AllColumns.Except(table.Retailer.CreatedAt)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert retailers", err)
	}
}

// InsertProducts is a helper test function to insert products without their prices.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...models.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	toInsert := make([]pgmodels.Product, 0, len(products))
	for _, p := range products {
		toInsert = append(toInsert, pgmodels.Product{
			ID:         p.ID,
			Name:       p.Name,
			ImgURL:     p.ImageURL,
			Rrp:        p.RRP,
			CategoryID: p.CategoryID,
			Gtin:       p.GTIN,
		})
	}

	_, err := table.Product.INSERT(table.Product.AllColumns.Except(table.Product.CreatedAt)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertPrices is a helper test function to insert retailer prices.
func InsertPrices(t *testing.T, exc qrm.Executable, prices ...models.RetailerPricing) {
	t.Helper()

	if len(prices) == 0 {
		return
	}

	toInsert := make([]pgmodels.RetailerPricing, 0, len(prices))
	for _, p := range prices {
		toInsert = append(toInsert, pgmodels.RetailerPricing{
			ID:         p.ID,
			ProductID:  p.ProductID,
			RetailerID: p.RetailerID,
			Price:      p.Price,
			UnitPrice:  p.UnitPrice,
			ProductURL: p.URL,
			Version:    p.Version,
		})
	}

	_, err := table.RetailerPricing.INSERT(table.RetailerPricing.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert prices", err)
	}
}

// InsertBasket is a helper test function to insert user's basket with its items.
// Items are inserted in order, each one created a second after the previous.
func InsertBasket(t *testing.T, exc qrm.Executable, basket models.Basket) {
	t.Helper()

	_, err := table.Basket.INSERT(table.Basket.AllColumns).
		MODEL(pgmodels.Basket{ID: basket.ID, UserID: basket.UserID, CreatedAt: basket.CreatedAt}).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert basket", err)
	}

	if len(basket.Items) == 0 {
		return
	}

	toInsert := make([]pgmodels.BasketItem, 0, len(basket.Items))
	for ix, item := range basket.Items {
		toInsert = append(toInsert, pgmodels.BasketItem{
			ID:        item.ID,
			BasketID:  basket.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			CreatedAt: basket.CreatedAt.Add(time.Duration(ix+1) * time.Second),
		})
	}

	_, err = table.BasketItem.INSERT(table.BasketItem.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert basket items", err)
	}
}

// InsertPriceAlerts is a helper test function to insert price alerts.
func InsertPriceAlerts(t *testing.T, exc qrm.Executable, alerts ...pgmodels.PriceAlert) {
	t.Helper()

	if len(alerts) == 0 {
		return
	}

	_, err := table.PriceAlert.INSERT(table.PriceAlert.AllColumns.Except(table.PriceAlert.CreatedAt)).
		MODELS(alerts).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert price alerts", err)
	}
}

// InsertRuns is a helper test function to insert import runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.ImportRun) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	_, err := table.ImportRun.INSERT(table.ImportRun.AllColumns).MODELS(runs).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// GetRuns is a helper test function to get all import runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.ImportRun {
	t.Helper()

	runs := []pgmodels.ImportRun{}
	err := table.ImportRun.SELECT(table.ImportRun.AllColumns).
		WHERE(table.ImportRun.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetLatestRun is a helper test function to get retailer's latest import run.
func GetLatestRun(t *testing.T, queryable qrm.Queryable, retailerID uuid.UUID) *pgmodels.ImportRun {
	t.Helper()

	var runs []pgmodels.ImportRun
	err := table.ImportRun.SELECT(table.ImportRun.AllColumns).
		WHERE(table.ImportRun.RetailerID.EQ(pg.UUID(retailerID))).
		ORDER_BY(table.ImportRun.CreatedAt.DESC(), table.ImportRun.ID.DESC()).
		LIMIT(1).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get latest run", err)
	}

	if len(runs) == 0 {
		return nil
	}

	return &runs[0]
}

// GetPrices is a helper test function to get retailer's prices.
func GetPrices(t *testing.T, queryable qrm.Queryable, retailerID uuid.UUID) []pgmodels.RetailerPricing {
	t.Helper()

	prices := []pgmodels.RetailerPricing{}
	err := table.RetailerPricing.SELECT(table.RetailerPricing.AllColumns).
		WHERE(table.RetailerPricing.RetailerID.EQ(pg.UUID(retailerID))).
		ORDER_BY(table.RetailerPricing.Price.ASC()).
		Query(queryable, &prices)
	if err != nil {
		t.Fatal("can't get prices", err)
	}

	return prices
}

// GetBaskets is a helper test function to get all user's baskets.
func GetBaskets(t *testing.T, queryable qrm.Queryable, userID uuid.UUID) []pgmodels.Basket {
	t.Helper()

	baskets := []pgmodels.Basket{}
	err := table.Basket.SELECT(table.Basket.AllColumns).
		WHERE(table.Basket.UserID.EQ(pg.UUID(userID))).
		Query(queryable, &baskets)
	if err != nil {
		t.Fatal("can't get baskets", err)
	}

	return baskets
}

// GetBasketItems is a helper test function to get basket's items ordered by creation time.
func GetBasketItems(t *testing.T, queryable qrm.Queryable, basketID uuid.UUID) []pgmodels.BasketItem {
	t.Helper()

	items := []pgmodels.BasketItem{}
	err := table.BasketItem.SELECT(table.BasketItem.AllColumns).
		WHERE(table.BasketItem.BasketID.EQ(pg.UUID(basketID))).
		ORDER_BY(table.BasketItem.CreatedAt.ASC()).
		Query(queryable, &items)
	if err != nil {
		t.Fatal("can't get basket items", err)
	}

	return items
}

// CleanupData is a helper test function to delete all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	deletes := []struct {
		name      string
		statement pg.DeleteStatement
	}{
		{"price alerts", table.PriceAlert.DELETE().WHERE(table.PriceAlert.ID.IS_NOT_NULL())},
		{"basket items", table.BasketItem.DELETE().WHERE(table.BasketItem.ID.IS_NOT_NULL())},
		{"baskets", table.Basket.DELETE().WHERE(table.Basket.ID.IS_NOT_NULL())},
		{"import runs", table.ImportRun.DELETE().WHERE(table.ImportRun.ID.IS_NOT_NULL())},
		{"prices", table.RetailerPricing.DELETE().WHERE(table.RetailerPricing.ID.IS_NOT_NULL())},
		{"products", table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL())},
		{"retailers", table.Retailer.DELETE().WHERE(table.Retailer.ID.IS_NOT_NULL())},
	}

	for _, d := range deletes {
		if _, err := d.statement.Exec(exc); err != nil {
			t.Fatalf("can't delete %s data: %s", d.name, err)
		}
	}
}
