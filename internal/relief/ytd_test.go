package relief_test

import (
	"testing"

	"go-payroll-my/internal/relief"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdjustForYTDAndCycles_AnnualCapExhaustion(t *testing.T) {
	catalog := relief.DefaultCatalog()

	// childcare cap 3,000; sudah terklaim 2,000 -> sisa 1,000
	adjusted := catalog.AdjustForYTDAndCycles(
		claims(map[string]float64{"childcare_fees": 1500}),
		[]relief.YTDRow{{ItemKey: "childcare_fees", ClaimedYTD: decimal.NewFromInt(2000)}},
		2025,
	)
	assert.Equal(t, "1000.00", adjusted["childcare_fees"].StringFixed(2))

	// Cap habis -> nol
	adjusted = catalog.AdjustForYTDAndCycles(
		claims(map[string]float64{"childcare_fees": 1500}),
		[]relief.YTDRow{{ItemKey: "childcare_fees", ClaimedYTD: decimal.NewFromInt(3000)}},
		2025,
	)
	assert.True(t, adjusted["childcare_fees"].IsZero())
}

func TestAdjustForYTDAndCycles_BiennialCycle(t *testing.T) {
	catalog := relief.DefaultCatalog()
	raw := claims(map[string]float64{"breastfeeding_equipment": 900})
	ytd := []relief.YTDRow{{ItemKey: "breastfeeding_equipment", LastClaimYear: 2024, ClaimedYTD: decimal.Zero}}

	// Tahun berikutnya masih dalam kitaran 2 tahun -> ditolak
	adjusted := catalog.AdjustForYTDAndCycles(raw, ytd, 2025)
	assert.True(t, adjusted["breastfeeding_equipment"].IsZero())

	// Dua tahun kemudian boleh klaim lagi
	adjusted = catalog.AdjustForYTDAndCycles(raw, ytd, 2026)
	assert.Equal(t, "900.00", adjusted["breastfeeding_equipment"].StringFixed(2))
}

func TestAdjustForYTDAndCycles_TriennialCycle(t *testing.T) {
	catalog := relief.DefaultCatalog()
	raw := claims(map[string]float64{"ev_charger_compost": 2000})
	ytd := []relief.YTDRow{{ItemKey: "ev_charger_compost", LastClaimYear: 2023, ClaimedYTD: decimal.Zero}}

	adjusted := catalog.AdjustForYTDAndCycles(raw, ytd, 2025)
	assert.True(t, adjusted["ev_charger_compost"].IsZero())

	adjusted = catalog.AdjustForYTDAndCycles(raw, ytd, 2026)
	assert.Equal(t, "2000.00", adjusted["ev_charger_compost"].StringFixed(2))
}

func TestComputeYTDUpdates(t *testing.T) {
	catalog := relief.DefaultCatalog()

	applied := claims(map[string]float64{
		"childcare_fees":          800,
		"breastfeeding_equipment": 500,
		"lifestyle_internet":      0,
	})
	ytd := []relief.YTDRow{
		{ItemKey: "childcare_fees", ClaimedYTD: decimal.NewFromInt(1000)},
	}

	updates := catalog.ComputeYTDUpdates(applied, ytd, 2025)

	byKey := map[string]relief.YTDUpdate{}
	for _, u := range updates {
		byKey[u.ItemKey] = u
	}

	assert.Len(t, updates, 2)
	assert.Equal(t, "1800.00", byKey["childcare_fees"].ClaimedYTD.StringFixed(2))
	assert.Equal(t, 0, byKey["childcare_fees"].LastClaimYear)
	assert.Equal(t, "500.00", byKey["breastfeeding_equipment"].ClaimedYTD.StringFixed(2))
	assert.Equal(t, 2025, byKey["breastfeeding_equipment"].LastClaimYear)
}
