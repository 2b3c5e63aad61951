package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/queries/quote_cart"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/queries/resolve_price"
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
	profiles map[string]*domain.DiscountProfile
}

func (f *fakeProfiles) GetProfile(_ context.Context, userID string) (*domain.DiscountProfile, error) {
	return f.profiles[userID], nil
}

type fakeFeatured struct{}

func (f *fakeFeatured) GetForProduct(_ context.Context, _ string) (*domain.FeaturedDiscount, error) {
	return nil, nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	listPrice, err := domain.NewMoney(10000, 100)
	require.NoError(t, err)
	products := &fakeProducts{products: map[string]*contracts.ProductPricing{
		"pads": {
			ProductID:  "pads",
			Name:       "Brake Pads",
			ListPrice:  listPrice,
			CategoryID: "brakes",
		},
	}}

	profile, err := domain.NewDiscountProfile("u1", 10, nil, nil)
	require.NoError(t, err)
	profiles := &fakeProfiles{profiles: map[string]*domain.DiscountProfile{"u1": profile}}

	featured := &fakeFeatured{}
	resolver := domain.NewResolver()
	clk := clock.NewMockClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))

	handler := NewPricingHandler(
		resolve_price.NewQuery(products, profiles, featured, resolver, clk),
		quote_cart.NewQuery(products, profiles, featured, resolver, clk),
		zerolog.Nop(),
	)

	e := echo.New()
	handler.Register(e)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPricingHandler_Health(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(t, e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPricingHandler_ResolvePrice(t *testing.T) {
	e := newTestServer(t)

	t.Run("anonymous gets list price", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/v1/products/pads/price", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp priceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "pads", resp.ProductID)
		assert.Equal(t, 100.0, resp.Price)
		assert.Equal(t, string(domain.SourceList), resp.Source)
	})

	t.Run("known user gets flat discount", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/v1/products/pads/price?user_id=u1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp priceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 90.0, resp.Price)
		assert.Equal(t, 100.0, resp.OriginalPrice)
		assert.Equal(t, string(domain.SourceFlat), resp.Source)
		assert.Equal(t, 10.0, resp.DiscountPercent)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/v1/products/missing/price", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPricingHandler_QuoteCart(t *testing.T) {
	e := newTestServer(t)

	t.Run("valid cart", func(t *testing.T) {
		body := `{"user_id":"u1","lines":[{"product_id":"pads","quantity":2}]}`
		rec := doRequest(t, e, http.MethodPost, "/api/v1/cart/quote", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp quoteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Lines, 1)
		assert.Equal(t, 90.0, resp.Lines[0].UnitPrice)
		assert.Equal(t, 180.0, resp.Lines[0].LineTotal)
		assert.Equal(t, 180.0, resp.Total)
	})

	t.Run("empty cart rejected", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/v1/cart/quote", `{"user_id":"u1","lines":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		body := `{"lines":[{"product_id":"pads","quantity":0}]}`
		rec := doRequest(t, e, http.MethodPost, "/api/v1/cart/quote", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/v1/cart/quote", `{"lines": not-json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		body := `{"lines":[{"product_id":"missing","quantity":1}]}`
		rec := doRequest(t, e, http.MethodPost, "/api/v1/cart/quote", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
