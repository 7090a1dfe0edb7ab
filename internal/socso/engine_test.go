package socso_test

import (
	"context"
	"testing"

	"go-payroll-my/internal/contribution"
	"go-payroll-my/internal/socso"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func socsoBand(typ, cat string, from, to, emp, er float64) contribution.ContributionBand {
	fe := decimal.NewFromFloat(emp)
	fr := decimal.NewFromFloat(er)
	return contribution.ContributionBand{
		ContribType: typ,
		Category:    cat,
		FromWage:    decimal.NewFromFloat(from),
		ToWage:      decimal.NewFromFloat(to),
		Employee:    fe,
		Employer:    fr,
		Total:       fe.Add(fr),
	}
}

func testTable() contribution.Table {
	return contribution.NewStaticTable([]contribution.ContributionBand{
		socsoBand(contribution.TypeSOCSO, socso.CategoryFirst, 2900.01, 3000, 14.75, 51.65),
		socsoBand(contribution.TypeSOCSO, socso.CategoryFirst, 5900.01, 6000, 29.75, 104.15),
		socsoBand(contribution.TypeSOCSO, socso.CategorySecond, 2900.01, 3000, 0, 36.90),
		socsoBand(contribution.TypeSOCSO, socso.CategorySecond, 5900.01, 6000, 0, 74.40),
		socsoBand(contribution.TypeEIS, socso.CategoryEIS, 2900.01, 3000, 5.90, 5.90),
		socsoBand(contribution.TypeEIS, socso.CategoryEIS, 5900.01, 6000, 11.90, 11.90),
	})
}

func TestCategoryByAge(t *testing.T) {
	assert.Equal(t, socso.CategoryFirst, socso.Category(59))
	assert.Equal(t, socso.CategorySecond, socso.Category(60))
	assert.Equal(t, socso.CategorySecond, socso.Category(71))
}

func TestComputeSOCSO_FirstCategory(t *testing.T) {
	eng := socso.NewEngine(testTable())

	got, err := eng.ComputeSOCSO(context.Background(), 35, decimal.NewFromInt(3000))
	assert.NoError(t, err)
	assert.Equal(t, "14.75", got.Employee.StringFixed(2))
	assert.Equal(t, "51.65", got.Employer.StringFixed(2))
}

func TestComputeSOCSO_SecondCategoryEmployerOnly(t *testing.T) {
	eng := socso.NewEngine(testTable())

	got, err := eng.ComputeSOCSO(context.Background(), 60, decimal.NewFromInt(3000))
	assert.NoError(t, err)
	assert.True(t, got.Employee.IsZero())
	assert.Equal(t, "36.90", got.Employer.StringFixed(2))
}

func TestComputeSOCSO_CappedAboveMaxBand(t *testing.T) {
	eng := socso.NewEngine(testTable())

	got, err := eng.ComputeSOCSO(context.Background(), 40, decimal.NewFromInt(15000))
	assert.NoError(t, err)
	assert.Equal(t, "29.75", got.Employee.StringFixed(2))
	assert.Equal(t, "104.15", got.Employer.StringFixed(2))
}

func TestComputeEIS(t *testing.T) {
	eng := socso.NewEngine(testTable())
	ctx := context.Background()

	got, err := eng.ComputeEIS(ctx, 30, decimal.NewFromInt(3000))
	assert.NoError(t, err)
	assert.Equal(t, "5.90", got.Employee.StringFixed(2))
	assert.Equal(t, "5.90", got.Employer.StringFixed(2))

	// Cap di band tertinggi
	got, err = eng.ComputeEIS(ctx, 30, decimal.NewFromInt(9000))
	assert.NoError(t, err)
	assert.Equal(t, "11.90", got.Employee.StringFixed(2))

	// 60 tahun ke atas tidak dilindungi SIP
	got, err = eng.ComputeEIS(ctx, 60, decimal.NewFromInt(3000))
	assert.NoError(t, err)
	assert.True(t, got.Employee.IsZero())
	assert.True(t, got.Employer.IsZero())
}
