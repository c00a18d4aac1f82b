package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45")
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number")
		assert.Error(t, err)
	})
}

func TestMoneyIsPositiveNegativeZero(t *testing.T) {
	positive := NewMoneyFromInt(100)
	negative := NewMoneyFromInt(-100)
	zero := Zero()

	assert.True(t, positive.IsPositive())
	assert.False(t, positive.IsNegative())

	assert.False(t, negative.IsPositive())
	assert.True(t, negative.IsNegative())

	assert.False(t, zero.IsPositive())
	assert.False(t, zero.IsNegative())
	assert.True(t, zero.IsZero())
}

func TestMoneyArithmetic(t *testing.T) {
	a := MustMoneyFromString("10.10")
	b := MustMoneyFromString("0.20")

	assert.Equal(t, "10.30", a.Add(b).String())
	assert.Equal(t, "9.90", a.Subtract(b).String())
	assert.Equal(t, "-10.10", a.Negate().String())
	assert.Equal(t, "10.10", a.Negate().Abs().String())
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 == 0.3 exactly, unlike binary floating point
	sum := MustMoneyFromString("0.1").Add(MustMoneyFromString("0.2"))
	assert.True(t, sum.Equals(MustMoneyFromString("0.3")))

	// Repeated accumulation does not drift
	total := Zero()
	for range 1000 {
		total = total.Add(MustMoneyFromString("0.01"))
	}
	assert.True(t, total.Equals(MustMoneyFromString("10")))
}

func TestMoneyMultiply(t *testing.T) {
	m := MustMoneyFromString("19.99")
	assert.Equal(t, "59.97", m.Multiply(decimal.NewFromInt(3)).String())
}

func TestMoneyCalculatePercentage(t *testing.T) {
	m := MustMoneyFromString("90.00")
	tax := m.CalculatePercentage(decimal.NewFromInt(5))
	assert.Equal(t, "4.50", tax.String())
}

func TestMoneyRound(t *testing.T) {
	// Round half-up at two decimal places
	assert.Equal(t, "1.01", MustMoneyFromString("1.005").Round().String())
	assert.Equal(t, "1.00", MustMoneyFromString("1.004").Round().String())
}

func TestMoneyComparisons(t *testing.T) {
	a := MustMoneyFromString("1.00")
	b := MustMoneyFromString("2.00")

	assert.True(t, a.LessThan(b))
	assert.False(t, b.LessThan(a))
	assert.True(t, b.GreaterThanOrEqual(a))
	assert.True(t, a.GreaterThanOrEqual(a))
	assert.True(t, a.Equals(MustMoneyFromString("1")))
}

func TestMoneyJSON(t *testing.T) {
	t.Run("marshals as decimal string", func(t *testing.T) {
		data, err := json.Marshal(MustMoneyFromString("99.90"))
		require.NoError(t, err)
		assert.Equal(t, `"99.9"`, string(data))
	})

	t.Run("unmarshals from string", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`"12.34"`), &m))
		assert.True(t, m.Equals(MustMoneyFromString("12.34")))
	})

	t.Run("unmarshals from bare number", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`12.34`), &m))
		assert.True(t, m.Equals(MustMoneyFromString("12.34")))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var m Money
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
	})
}

func TestMoneySQLRoundTrip(t *testing.T) {
	m := MustMoneyFromString("1234.56")
	v, err := m.Value()
	require.NoError(t, err)

	var scanned Money
	require.NoError(t, scanned.Scan(v))
	assert.True(t, scanned.Equals(m))

	var fromBytes Money
	require.NoError(t, fromBytes.Scan([]byte("7.89")))
	assert.True(t, fromBytes.Equals(MustMoneyFromString("7.89")))

	var fromNil Money
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())
}

func TestSum(t *testing.T) {
	total := Sum(
		MustMoneyFromString("1.10"),
		MustMoneyFromString("2.20"),
		MustMoneyFromString("3.30"),
	)
	assert.True(t, total.Equals(MustMoneyFromString("6.60")))
	assert.True(t, Sum().IsZero())
}
