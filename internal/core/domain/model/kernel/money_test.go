package kernel_test

import (
	"testing"

	"printworks/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(600000)

		require.NoError(t, err)
		assert.Equal(t, int64(600000), m.Amount())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("should fail for negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(600000)
		b, _ := kernel.NewMoney(50000)

		assert.Equal(t, int64(650000), a.Add(b).Amount())
	})

	t.Run("Sub subtracts amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(600000)
		b, _ := kernel.NewMoney(50000)

		diff, err := a.Sub(b)
		require.NoError(t, err)
		assert.Equal(t, int64(550000), diff.Amount())
	})

	t.Run("Sub fails when result would be negative", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(200)

		_, err := a.Sub(b)
		require.Error(t, err)
	})

	t.Run("Mul multiplies by quantity", func(t *testing.T) {
		base, _ := kernel.NewMoney(10000)

		total, err := base.Mul(100)
		require.NoError(t, err)
		assert.Equal(t, int64(1000000), total.Amount())
	})

	t.Run("Mul fails for negative factor", func(t *testing.T) {
		base, _ := kernel.NewMoney(10000)

		_, err := base.Mul(-1)
		require.Error(t, err)
	})
}

func TestMoney_Comparison(t *testing.T) {
	small, _ := kernel.NewMoney(100)
	large, _ := kernel.NewMoney(200)
	sameAsSmall, _ := kernel.NewMoney(100)

	assert.True(t, large.GreaterOrEqual(small))
	assert.True(t, small.GreaterOrEqual(sameAsSmall))
	assert.False(t, small.GreaterOrEqual(large))
	assert.True(t, small.IsEqual(sameAsSmall))
	assert.False(t, small.IsEqual(large))
}

func TestMoney_String(t *testing.T) {
	m, _ := kernel.NewMoney(1000000)

	assert.Equal(t, "1000000", m.String())
	assert.Equal(t, "0", kernel.ZeroMoney().String())
}
