//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/parts-pricing-service/tests/testutil"
)

func TestFeaturedRepo_GetForProduct(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	featured := repo.NewFeaturedRepo(client)

	t.Run("non-featured product returns nil", func(t *testing.T) {
		productID := testutil.CreateTestProduct(t, client, "Brake Pads", "brakes", "bosch", 8999, 100)

		discount, err := featured.GetForProduct(ctx, productID)
		require.NoError(t, err)
		assert.Nil(t, discount)
	})

	t.Run("featured without discount returns nil", func(t *testing.T) {
		productID := testutil.CreateTestProduct(t, client, "Oil Filter", "filters", "mann", 1299, 100)
		testutil.FeatureProductWithoutDiscount(t, client, productID)

		discount, err := featured.GetForProduct(ctx, productID)
		require.NoError(t, err)
		assert.Nil(t, discount)
	})

	t.Run("percentage discount with window", func(t *testing.T) {
		productID := testutil.CreateTestProduct(t, client, "Spark Plug", "ignition", "", 2450, 100)
		start := time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond)
		end := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Microsecond)
		testutil.FeatureProduct(t, client, productID, "PERCENTAGE", 25, &start, &end)

		discount, err := featured.GetForProduct(ctx, productID)
		require.NoError(t, err)
		require.NotNil(t, discount)
		assert.Equal(t, domain.DiscountTypePercentage, discount.Type())
		assert.Equal(t, 25.0, discount.Value())
		require.NotNil(t, discount.StartsAt())
		require.NotNil(t, discount.EndsAt())
		assert.True(t, discount.StartsAt().Equal(start))
		assert.True(t, discount.EndsAt().Equal(end))
		assert.True(t, discount.ApplicableAt(time.Now()))
	})

	t.Run("unbounded window loads as nil pointers", func(t *testing.T) {
		productID := testutil.CreateTestProduct(t, client, "Wiper Blade", "exterior", "", 999, 100)
		testutil.FeatureProduct(t, client, productID, "FIXED", 2, nil, nil)

		discount, err := featured.GetForProduct(ctx, productID)
		require.NoError(t, err)
		require.NotNil(t, discount)
		assert.Equal(t, domain.DiscountTypeFixed, discount.Type())
		assert.Nil(t, discount.StartsAt())
		assert.Nil(t, discount.EndsAt())
	})
}
