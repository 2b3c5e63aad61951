package quote_cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/pkg/clock"
)

type fakeProducts struct {
	products map[string]*contracts.ProductPricing
}

func (f *fakeProducts) GetPricing(_ context.Context, productID string) (*contracts.ProductPricing, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

type fakeProfiles struct {
	profile *domain.DiscountProfile
	calls   int
}

func (f *fakeProfiles) GetProfile(_ context.Context, _ string) (*domain.DiscountProfile, error) {
	f.calls++
	return f.profile, nil
}

type fakeFeatured struct {
	discounts map[string]*domain.FeaturedDiscount
}

func (f *fakeFeatured) GetForProduct(_ context.Context, productID string) (*domain.FeaturedDiscount, error) {
	return f.discounts[productID], nil
}

func testProduct(t *testing.T, id, name, categoryID string, numerator, denominator int64) *contracts.ProductPricing {
	t.Helper()
	price, err := domain.NewMoney(numerator, denominator)
	require.NoError(t, err)
	return &contracts.ProductPricing{
		ProductID:  id,
		Name:       name,
		ListPrice:  price,
		CategoryID: categoryID,
	}
}

func newTestQuery(t *testing.T, products *fakeProducts, profiles *fakeProfiles, featured *fakeFeatured) *Query {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	return NewQuery(products, profiles, featured, domain.NewResolver(), clk)
}

func TestQuery_Execute(t *testing.T) {
	t.Run("quotes all lines against one profile snapshot", func(t *testing.T) {
		profile, err := domain.NewDiscountProfile("u1", 10, nil, nil)
		require.NoError(t, err)

		products := &fakeProducts{products: map[string]*contracts.ProductPricing{
			"pads":   testProduct(t, "pads", "Brake Pads", "brakes", 8999, 100),
			"filter": testProduct(t, "filter", "Oil Filter", "filters", 1299, 100),
		}}
		profiles := &fakeProfiles{profile: profile}
		q := newTestQuery(t, products, profiles, &fakeFeatured{})

		resp, err := q.Execute(context.Background(), &Request{
			UserID: "u1",
			Lines: []Line{
				{ProductID: "pads", Quantity: 2},
				{ProductID: "filter", Quantity: 3},
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Lines, 2)

		// 89.99 -10% = 80.991 -> 80.99; 12.99 -10% = 11.691 -> 11.69
		assert.Equal(t, 80.99, resp.Lines[0].UnitPrice)
		assert.Equal(t, int64(2), resp.Lines[0].Quantity)
		assert.Equal(t, 161.98, resp.Lines[0].LineTotal)
		assert.Equal(t, 11.69, resp.Lines[1].UnitPrice)
		assert.Equal(t, 35.07, resp.Lines[1].LineTotal)
		assert.InDelta(t, 197.05, resp.Total, 1e-9)

		assert.Equal(t, 1, profiles.calls, "profile should be built once per cart")
	})

	t.Run("line totals use rounded unit prices", func(t *testing.T) {
		profile, err := domain.NewDiscountProfile("u1", 10, nil, nil)
		require.NoError(t, err)

		products := &fakeProducts{products: map[string]*contracts.ProductPricing{
			"p1": testProduct(t, "p1", "Spark Plug", "ignition", 19995, 1000), // 19.995
		}}
		q := newTestQuery(t, products, &fakeProfiles{profile: profile}, &fakeFeatured{})

		resp, err := q.Execute(context.Background(), &Request{
			UserID: "u1",
			Lines:  []Line{{ProductID: "p1", Quantity: 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, 18.0, resp.Lines[0].UnitPrice)
		assert.Equal(t, 54.0, resp.Lines[0].LineTotal)
	})

	t.Run("invalid quantity rejected before any lookup", func(t *testing.T) {
		profiles := &fakeProfiles{}
		q := newTestQuery(t, &fakeProducts{}, profiles, &fakeFeatured{})

		_, err := q.Execute(context.Background(), &Request{
			UserID: "u1",
			Lines: []Line{
				{ProductID: "p1", Quantity: 1},
				{ProductID: "p2", Quantity: 0},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Zero(t, profiles.calls)
	})

	t.Run("unknown product fails the whole quote", func(t *testing.T) {
		q := newTestQuery(t, &fakeProducts{}, &fakeProfiles{}, &fakeFeatured{})

		_, err := q.Execute(context.Background(), &Request{
			Lines: []Line{{ProductID: "missing", Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("empty cart quotes to zero", func(t *testing.T) {
		q := newTestQuery(t, &fakeProducts{}, &fakeProfiles{}, &fakeFeatured{})

		resp, err := q.Execute(context.Background(), &Request{})
		require.NoError(t, err)
		assert.Empty(t, resp.Lines)
		assert.Zero(t, resp.Total)
	})
}
