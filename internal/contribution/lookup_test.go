package contribution_test

import (
	"context"
	"testing"

	"go-payroll-my/internal/contribution"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func band(typ, cat string, from, to, emp, er float64) contribution.ContributionBand {
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

func TestLookup_MatchesBand(t *testing.T) {
	table := contribution.NewStaticTable([]contribution.ContributionBand{
		band(contribution.TypeSOCSO, "employment_injury_invalidity", 0.01, 30, 0.10, 0.40),
		band(contribution.TypeSOCSO, "employment_injury_invalidity", 30.01, 50, 0.20, 0.70),
		band(contribution.TypeSOCSO, "employment_injury_invalidity", 50.01, 70, 0.30, 1.10),
	})

	cases := []struct {
		wage     float64
		employee string
		employer string
	}{
		{15, "0.10", "0.40"},
		{30, "0.10", "0.40"},
		{30.01, "0.20", "0.70"},
		{49.99, "0.20", "0.70"},
		{70, "0.30", "1.10"},
	}
	for _, c := range cases {
		got, err := contribution.Lookup(context.Background(), table,
			contribution.TypeSOCSO, "employment_injury_invalidity", decimal.NewFromFloat(c.wage))
		assert.NoError(t, err)
		assert.Equal(t, c.employee, got.Employee.StringFixed(2), "wage %v", c.wage)
		assert.Equal(t, c.employer, got.Employer.StringFixed(2), "wage %v", c.wage)
	}
}

func TestLookup_AboveMaxCapsAtHighestBand(t *testing.T) {
	table := contribution.NewStaticTable([]contribution.ContributionBand{
		band(contribution.TypeSOCSO, "employment_injury_invalidity", 0.01, 5000, 24.75, 86.65),
		band(contribution.TypeSOCSO, "employment_injury_invalidity", 5000.01, 6000, 29.75, 104.15),
	})

	got, err := contribution.Lookup(context.Background(), table,
		contribution.TypeSOCSO, "employment_injury_invalidity", decimal.NewFromInt(25000))
	assert.NoError(t, err)
	assert.Equal(t, "29.75", got.Employee.StringFixed(2))
	assert.Equal(t, "104.15", got.Employer.StringFixed(2))
}

func TestLookup_EmployeeAmountMonotonicInWage(t *testing.T) {
	table := contribution.NewStaticTable([]contribution.ContributionBand{
		band(contribution.TypeSOCSO, "employment_injury_invalidity", 0.01, 30, 0.10, 0.40),
		band(contribution.TypeSOCSO, "employment_injury_invalidity", 30.01, 50, 0.20, 0.70),
		band(contribution.TypeSOCSO, "employment_injury_invalidity", 50.01, 70, 0.30, 1.10),
		band(contribution.TypeSOCSO, "employment_injury_invalidity", 70.01, 100, 0.40, 1.40),
	})

	// Upah menaik melintasi batas band dan melewati band tertinggi;
	// potongan pekerja tidak boleh turun
	wages := []float64{0.01, 15, 29.99, 30, 30.01, 40, 50, 50.01, 69.99, 70, 70.01, 100, 150, 5000}

	prev := decimal.Zero
	for _, w := range wages {
		got, err := contribution.Lookup(context.Background(), table,
			contribution.TypeSOCSO, "employment_injury_invalidity", decimal.NewFromFloat(w))
		assert.NoError(t, err)
		assert.True(t, got.Employee.GreaterThanOrEqual(prev),
			"wage %v: employee %s turun dari %s", w, got.Employee, prev)
		prev = got.Employee
	}

	// Di atas band tertinggi tetap terpaku pada band tertinggi
	assert.Equal(t, "0.40", prev.StringFixed(2))
}

func TestLookup_EmptyTableReturnsZero(t *testing.T) {
	table := contribution.NewStaticTable(nil)

	got, err := contribution.Lookup(context.Background(), table,
		contribution.TypeEIS, "under_60", decimal.NewFromInt(3000))
	assert.NoError(t, err)
	assert.True(t, got.Employee.IsZero())
	assert.True(t, got.Employer.IsZero())
	assert.True(t, got.Total.IsZero())
}

func TestLookup_SeparateCategories(t *testing.T) {
	table := contribution.NewStaticTable([]contribution.ContributionBand{
		band(contribution.TypeSOCSO, "employment_injury_invalidity", 2900.01, 3000, 14.75, 51.65),
		band(contribution.TypeSOCSO, "employment_injury_only", 2900.01, 3000, 0, 36.90),
	})

	wage := decimal.NewFromInt(3000)

	first, err := contribution.Lookup(context.Background(), table,
		contribution.TypeSOCSO, "employment_injury_invalidity", wage)
	assert.NoError(t, err)
	assert.Equal(t, "14.75", first.Employee.StringFixed(2))

	second, err := contribution.Lookup(context.Background(), table,
		contribution.TypeSOCSO, "employment_injury_only", wage)
	assert.NoError(t, err)
	assert.True(t, second.Employee.IsZero())
	assert.Equal(t, "36.90", second.Employer.StringFixed(2))
}
