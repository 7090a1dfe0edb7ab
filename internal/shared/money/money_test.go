package money_test

import (
	"testing"

	"go-payroll-my/internal/shared/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCeilCents(t *testing.T) {
	// 5300 * 13% = 689.00 tepat, tidak boleh naik
	v := money.Percent(decimal.NewFromInt(5300), decimal.NewFromInt(13))
	assert.True(t, money.CeilCents(v).Equal(decimal.NewFromInt(689)))

	// 1234.561 -> 1234.57
	assert.Equal(t, "1234.57", money.CeilCents(decimal.NewFromFloat(1234.561)).StringFixed(2))
}

func TestCeilTo5Sen(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{132.51, "132.55"},
		{132.55, "132.55"},
		{132.56, "132.60"},
		{0, "0.00"},
		{-3.2, "0.00"},
	}
	for _, c := range cases {
		got := money.CeilTo5Sen(decimal.NewFromFloat(c.in))
		assert.Equal(t, c.want, got.StringFixed(2), "input %v", c.in)
	}
}

func TestNonNegative(t *testing.T) {
	assert.True(t, money.NonNegative(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, money.NonNegative(decimal.NewFromInt(7)).Equal(decimal.NewFromInt(7)))
}
