//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/parts-pricing-service/tests/testutil"
)

func TestProductRepo_GetPricing(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	products := repo.NewProductRepo(client)

	t.Run("unknown product maps to domain error", func(t *testing.T) {
		_, err := products.GetPricing(ctx, "no-such-product")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("list price round trips exactly", func(t *testing.T) {
		productID := testutil.CreateTestProduct(t, client, "Brake Pads", "brakes", "bosch", 8999, 100)

		pricing, err := products.GetPricing(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, productID, pricing.ProductID)
		assert.Equal(t, "Brake Pads", pricing.Name)
		assert.Equal(t, "brakes", pricing.CategoryID)
		assert.Equal(t, "bosch", pricing.ManufacturerID)
		assert.Equal(t, "89.99", pricing.ListPrice.String())
	})

	t.Run("missing manufacturer becomes empty string", func(t *testing.T) {
		productID := testutil.CreateTestProduct(t, client, "Generic Plug", "ignition", "", 2450, 100)

		pricing, err := products.GetPricing(ctx, productID)
		require.NoError(t, err)
		assert.Empty(t, pricing.ManufacturerID)
	})

	t.Run("fractional price survives storage", func(t *testing.T) {
		// 19.995 stored as 19995/1000, reduced or not it must compare equal
		productID := testutil.CreateTestProduct(t, client, "Spark Plug", "ignition", "", 19995, 1000)

		pricing, err := products.GetPricing(ctx, productID)
		require.NoError(t, err)

		want, err := domain.NewMoney(19995, 1000)
		require.NoError(t, err)
		assert.True(t, pricing.ListPrice.Equals(want))
	})
}
