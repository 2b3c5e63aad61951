package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturedDiscount_InWindowAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	d := NewFeaturedDiscount(true, DiscountTypePercentage, 10, &start, &end)

	t.Run("window bounds are inclusive", func(t *testing.T) {
		assert.True(t, d.InWindowAt(start))
		assert.True(t, d.InWindowAt(end))
	})

	t.Run("just outside either bound", func(t *testing.T) {
		assert.False(t, d.InWindowAt(start.Add(-time.Millisecond)))
		assert.False(t, d.InWindowAt(end.Add(time.Millisecond)))
	})

	t.Run("nil start means unbounded past", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountTypePercentage, 10, nil, &end)
		assert.True(t, d.InWindowAt(start.AddDate(-10, 0, 0)))
		assert.False(t, d.InWindowAt(end.Add(time.Second)))
	})

	t.Run("nil end means unbounded future", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountTypePercentage, 10, &start, nil)
		assert.True(t, d.InWindowAt(end.AddDate(10, 0, 0)))
	})

	t.Run("both nil always in window", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountTypePercentage, 10, nil, nil)
		assert.True(t, d.InWindowAt(time.Now()))
	})
}

func TestFeaturedDiscount_ApplicableAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("active in-window percentage applies", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountTypePercentage, 25, nil, nil)
		assert.True(t, d.ApplicableAt(now))
	})

	t.Run("inactive never applies", func(t *testing.T) {
		d := NewFeaturedDiscount(false, DiscountTypePercentage, 25, nil, nil)
		assert.False(t, d.ApplicableAt(now))
	})

	t.Run("zero value skipped", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountTypePercentage, 0, nil, nil)
		assert.False(t, d.ApplicableAt(now))
	})

	t.Run("negative value skipped", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountTypeFixed, -5, nil, nil)
		assert.False(t, d.ApplicableAt(now))
	})

	t.Run("percentage over 100 skipped", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountTypePercentage, 120, nil, nil)
		assert.False(t, d.ApplicableAt(now))
	})

	t.Run("fixed over list price still applicable", func(t *testing.T) {
		// The clamp to zero happens at resolution time, not here.
		d := NewFeaturedDiscount(true, DiscountTypeFixed, 10000, nil, nil)
		assert.True(t, d.ApplicableAt(now))
	})

	t.Run("expired window skipped", func(t *testing.T) {
		end := now.Add(-time.Hour)
		d := NewFeaturedDiscount(true, DiscountTypePercentage, 25, nil, &end)
		assert.False(t, d.ApplicableAt(now))
	})
}

func TestFeaturedDiscount_Apply(t *testing.T) {
	listPrice, _ := NewMoney(10000, 100) // 100.00

	t.Run("percentage", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountTypePercentage, 25, nil, nil)
		price, err := d.Apply(listPrice)
		require.NoError(t, err)
		assert.Equal(t, "75.00", price.RoundHalfUp().String())
	})

	t.Run("fixed", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountTypeFixed, 30, nil, nil)
		price, err := d.Apply(listPrice)
		require.NoError(t, err)
		assert.Equal(t, "70.00", price.RoundHalfUp().String())
	})

	t.Run("fixed larger than list price goes negative before clamping", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountTypeFixed, 150, nil, nil)
		price, err := d.Apply(listPrice)
		require.NoError(t, err)
		assert.True(t, price.IsNegative())
	})

	t.Run("unknown type returns error", func(t *testing.T) {
		d := NewFeaturedDiscount(true, DiscountType("BOGOF"), 25, nil, nil)
		_, err := d.Apply(listPrice)
		assert.ErrorIs(t, err, ErrUnknownDiscountType)
	})
}

func TestNewFeaturedDiscount_CopiesWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	d := NewFeaturedDiscount(true, DiscountTypePercentage, 10, &start, nil)

	start = start.AddDate(1, 0, 0)
	require.NotNil(t, d.StartsAt())
	assert.Equal(t, 2026, d.StartsAt().Year())
}
