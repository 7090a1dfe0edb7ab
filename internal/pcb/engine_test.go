package pcb_test

import (
	"testing"

	"go-payroll-my/internal/pcb"
	"go-payroll-my/internal/shared/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func rm(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestCompute_FirstMonthSingle(t *testing.T) {
	res, err := pcb.Compute(pcb.DefaultConfig(), pcb.DefaultBrackets(),
		rm(5000), rm(550),
		pcb.Inputs{Month: 1},
	)
	assert.NoError(t, err)

	// P = (5000-550)x12 - 9000 = 44400; cukai = 600 + 6% x 9400 = 1164
	assert.Equal(t, "44400.00", res.ProjectedTaxable.StringFixed(2))
	assert.Equal(t, "1164.00", res.AnnualTax.StringFixed(2))
	assert.Equal(t, "97.00", res.PCB.StringFixed(2))
}

func TestCompute_CumulativeSecondMonth(t *testing.T) {
	// Skenario Februari: pasangan tidak bekerja (kurang upaya), satu anak,
	// LP1 termasuk klaim TP1 + PERKESO/SIP
	res, err := pcb.Compute(pcb.DefaultConfig(), pcb.DefaultBrackets(),
		rm(11900), rm(1309),
		pcb.Inputs{
			AccumulatedGross:        rm(11900),
			AccumulatedEPF:          rm(1309),
			AccumulatedPCB:          rm(1132.50),
			AccumulatedOtherReliefs: rm(1041.65),
			CurrentOtherReliefs:     rm(1041.65),
			ChildCount:              1,
			SpouseEligible:          true,
			DisabledSpouse:          true,
			Month:                   2,
		},
	)
	assert.NoError(t, err)

	assert.Equal(t, "94592.20", res.ProjectedTaxable.StringFixed(2))
	assert.Equal(t, "8372.52", res.AnnualTax.StringFixed(2))
	assert.Equal(t, "262.95", res.PCB.StringFixed(2))
}

func TestCompute_RebateZeroesLowIncome(t *testing.T) {
	res, err := pcb.Compute(pcb.DefaultConfig(), pcb.DefaultBrackets(),
		rm(3000), rm(330),
		pcb.Inputs{Month: 1},
	)
	assert.NoError(t, err)

	// P = 23040 <= 35,000: rebat RM400 menghapus cukai RM241.20
	assert.Equal(t, "23040.00", res.ProjectedTaxable.StringFixed(2))
	assert.True(t, res.AnnualTax.IsZero())
	assert.True(t, res.PCB.IsZero())
}

func TestCompute_ZakatDirectRebate(t *testing.T) {
	res, err := pcb.Compute(pcb.DefaultConfig(), pcb.DefaultBrackets(),
		rm(5000), rm(550),
		pcb.Inputs{Month: 1, CurrentZakat: rm(50)},
	)
	assert.NoError(t, err)
	assert.Equal(t, "47.00", res.PCB.StringFixed(2))

	// Zakat lebih besar dari cukai bulan ini -> lantai nol, bukan refund
	res, err = pcb.Compute(pcb.DefaultConfig(), pcb.DefaultBrackets(),
		rm(5000), rm(550),
		pcb.Inputs{Month: 1, CurrentZakat: rm(500)},
	)
	assert.NoError(t, err)
	assert.True(t, res.PCB.IsZero())
}

func TestCompute_EPFReliefAnnualCap(t *testing.T) {
	res, err := pcb.Compute(pcb.DefaultConfig(), pcb.DefaultBrackets(),
		rm(6000), rm(400),
		pcb.Inputs{
			AccumulatedGross: rm(30000),
			AccumulatedEPF:   rm(3900), // 3900+400 terpangkas cap 4,000
			AccumulatedPCB:   rm(900),
			Month:            6,
		},
	)
	assert.NoError(t, err)

	// P = (36000-4000)x2 - 9000 = 55000; cukai = 1500 + 11% x 5000 = 2050
	assert.Equal(t, "55000.00", res.ProjectedTaxable.StringFixed(2))
	assert.Equal(t, "2050.00", res.AnnualTax.StringFixed(2))
	// Kumulatif 6 bulan 1025.00 - 900 sudah terpotong
	assert.Equal(t, "125.00", res.PCB.StringFixed(2))
}

func TestCompute_NeverNegative(t *testing.T) {
	// PCB besar sudah terpotong, klaim pelepasan besar bulan ini
	res, err := pcb.Compute(pcb.DefaultConfig(), pcb.DefaultBrackets(),
		rm(4000), rm(440),
		pcb.Inputs{
			AccumulatedGross:    rm(8000),
			AccumulatedEPF:      rm(880),
			AccumulatedPCB:      rm(5000),
			CurrentOtherReliefs: rm(10000),
			Month:               3,
		},
	)
	assert.NoError(t, err)
	assert.False(t, res.PCB.IsNegative())
	assert.True(t, res.PCB.IsZero())
}

func TestCompute_MissingBracketsIsConfigError(t *testing.T) {
	_, err := pcb.Compute(pcb.DefaultConfig(), nil, rm(5000), rm(550), pcb.Inputs{Month: 1})
	assert.Error(t, err)

	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, apperror.CodeConfigError, appErr.Code)
	}
}

func TestCompute_MalformedBracketIsConfigError(t *testing.T) {
	to := rm(100)
	bad := []pcb.Bracket{
		{From: rm(500), To: &to, Base: decimal.Zero, Rate: rm(1)},
	}
	_, err := pcb.Compute(pcb.DefaultConfig(), bad, rm(5000), rm(550), pcb.Inputs{Month: 1})
	assert.Error(t, err)
}

func TestCompute_TopBracketUnbounded(t *testing.T) {
	res, err := pcb.Compute(pcb.DefaultConfig(), pcb.DefaultBrackets(),
		rm(60000), rm(6600),
		pcb.Inputs{Month: 1},
	)
	assert.NoError(t, err)

	// P = (60000-4000)x12 - 9000 = 663000 -> bracket teratas 30%
	assert.Equal(t, "663000.00", res.ProjectedTaxable.StringFixed(2))
	assert.Equal(t, "160800.00", res.AnnualTax.StringFixed(2))
}
