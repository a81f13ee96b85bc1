// Package pricing turns basket snapshots into basket views with best deals and retailer totals.
package pricing

import (
	"slices"

	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const noSaving = "0%"

var hundred = decimal.NewFromInt(100)

// Aggregate builds basket view from detailed basket with all items and page of the same basket.
// Listed items come from the page, totals and count come from the detailed basket.
// When retailerID is provided only that retailer's prices are taken into account.
// Items without any price are left out of both the list and the totals.
func Aggregate(detailed, page *models.Basket, alerts models.AlertSet, retailerID *uuid.UUID) ViewBasket {
	view := ViewBasket{
		BasketID:       detailed.ID.String(),
		BasketItems:    make([]BasketItem, 0, len(page.Items)),
		RetailerTotals: []RetailerTotal{},
	}

	for ix := range page.Items {
		prices := offeredPrices(&page.Items[ix].Product, retailerID)
		if len(prices) == 0 {
			continue
		}
		view.BasketItems = append(view.BasketItems, toBasketItem(&page.Items[ix], prices, alerts))
	}

	totals := retailerTotals{}
	bestTotal := decimal.Zero

	for ix := range detailed.Items {
		item := &detailed.Items[ix]

		prices := offeredPrices(&item.Product, retailerID)
		if len(prices) == 0 {
			continue
		}

		view.TotalCount++
		quantity := decimal.NewFromInt32(item.Quantity)

		for px := range prices {
			totals.add(prices[px].Retailer.Name, prices[px].Price.Mul(quantity))
		}

		bestTotal = bestTotal.Add(prices[0].Price.Mul(quantity))
	}

	view.RetailerTotals = totals.list()
	view.BestTotal = NewAmount(bestTotal)

	return view
}

// SavingPercentage returns saving on price compared to RRP rounded up to whole percent, e.g. "15%".
// It returns "0%" when RRP or price is not positive.
//
// Price above RRP is clamped to "0%", negative percentages are never returned.
func SavingPercentage(rrp, price decimal.Decimal) string {
	if !rrp.IsPositive() || !price.IsPositive() {
		return noSaving
	}

	saving := rrp.Sub(price).Mul(hundred).Div(rrp).Ceil()
	if !saving.IsPositive() {
		return noSaving
	}

	return saving.String() + "%"
}

// offeredPrices returns copy of product prices, optionally limited to single retailer, sorted by price ascending.
func offeredPrices(product *models.Product, retailerID *uuid.UUID) []models.RetailerPricing {
	prices := make([]models.RetailerPricing, 0, len(product.Prices))
	for ix := range product.Prices {
		if retailerID != nil && product.Prices[ix].RetailerID != *retailerID {
			continue
		}
		prices = append(prices, product.Prices[ix])
	}

	slices.SortStableFunc(prices, func(a, b models.RetailerPricing) int {
		return a.Price.Cmp(b.Price)
	})

	return prices
}

// retailerTotals sums costs per retailer name keeping order in which retailers were seen.
type retailerTotals struct {
	names  []string
	totals map[string]decimal.Decimal
}

func (t *retailerTotals) add(name string, cost decimal.Decimal) {
	if t.totals == nil {
		t.totals = map[string]decimal.Decimal{}
	}

	total, ok := t.totals[name]
	if !ok {
		t.names = append(t.names, name)
	}
	t.totals[name] = total.Add(cost)
}

func (t *retailerTotals) list() []RetailerTotal {
	result := make([]RetailerTotal, 0, len(t.names))
	for _, name := range t.names {
		result = append(result, RetailerTotal{
			RetailerName: name,
			Total:        NewAmount(t.totals[name]),
		})
	}
	return result
}
