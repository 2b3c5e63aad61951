package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(249900, 100)
		require.NoError(t, err)
		assert.Equal(t, "2499.00", m.String())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative numerator allowed", func(t *testing.T) {
		m, err := NewMoney(-100, 1)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := NewMoneyFromFloat(19.99)
		require.NoError(t, err)
		assert.Equal(t, "19.99", m.RoundHalfUp().String())
	})

	t.Run("NaN returns error", func(t *testing.T) {
		_, err := NewMoneyFromFloat(math.NaN())
		assert.Error(t, err)
	})

	t.Run("infinity returns error", func(t *testing.T) {
		_, err := NewMoneyFromFloat(math.Inf(1))
		assert.Error(t, err)
	})
}

func TestMoney_Add(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2, _ := NewMoney(50, 1)

	result := m1.Add(m2)
	assert.Equal(t, 150.0, result.Float64())
}

func TestMoney_Subtract(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2, _ := NewMoney(30, 1)

	result := m1.Subtract(m2)
	assert.Equal(t, 70.0, result.Float64())

	t.Run("can go negative", func(t *testing.T) {
		result := m2.Subtract(m1)
		assert.True(t, result.IsNegative())
	})
}

func TestMoney_MultiplyByInt(t *testing.T) {
	m, _ := NewMoney(1999, 100) // 19.99
	result := m.MultiplyByInt(3)
	assert.Equal(t, "59.97", result.String())
}

func TestMoney_RoundHalfUp(t *testing.T) {
	tests := []struct {
		name        string
		numerator   int64
		denominator int64
		want        string
	}{
		{"exact two decimals unchanged", 1999, 100, "19.99"},
		{"half rounds up", 17995, 1000, "18.00"},
		{"below half rounds down", 17994, 1000, "17.99"},
		{"above half rounds up", 17996, 1000, "18.00"},
		{"repeating fraction", 100, 3, "33.33"},
		{"zero", 0, 1, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoney(tt.numerator, tt.denominator)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.RoundHalfUp().String())
		})
	}

	t.Run("ten percent off 19.995 rounds to 18.00", func(t *testing.T) {
		// 19.995 * 0.9 = 17.9955, exact in rationals
		m, _ := NewMoney(19995, 1000)
		discounted := applyPercentOff(m, 10)
		assert.Equal(t, "18.00", discounted.RoundHalfUp().String())
	})
}

func TestMoney_ClampNonNegative(t *testing.T) {
	t.Run("negative clamps to zero", func(t *testing.T) {
		m, _ := NewMoney(-500, 100)
		assert.True(t, m.ClampNonNegative().IsZero())
	})

	t.Run("positive unchanged", func(t *testing.T) {
		m, _ := NewMoney(500, 100)
		assert.Equal(t, "5.00", m.ClampNonNegative().String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	small, _ := NewMoney(100, 1)
	large, _ := NewMoney(200, 1)
	equal, _ := NewMoney(200, 2) // reduces to 100

	assert.True(t, small.LessThan(large))
	assert.True(t, large.GreaterThan(small))
	assert.True(t, small.Equals(equal))
	assert.False(t, small.Equals(large))
}

func TestMoney_Storage(t *testing.T) {
	t.Run("components round trip", func(t *testing.T) {
		m, _ := NewMoney(8999, 100)
		num, err := m.Numerator()
		require.NoError(t, err)
		den, err := m.Denominator()
		require.NoError(t, err)
		assert.Equal(t, int64(8999), num)
		assert.Equal(t, int64(100), den)
		assert.True(t, m.IsSafeForStorage())
	})

	t.Run("fraction is stored in lowest terms", func(t *testing.T) {
		m, _ := NewMoney(200, 2)
		num, _ := m.Numerator()
		den, _ := m.Denominator()
		assert.Equal(t, int64(100), num)
		assert.Equal(t, int64(1), den)
	})
}

func TestMoney_Copy(t *testing.T) {
	m, _ := NewMoney(100, 1)
	c := m.Copy()

	other, _ := NewMoney(50, 1)
	_ = c.Add(other)

	assert.Equal(t, "100.00", m.String())
}
