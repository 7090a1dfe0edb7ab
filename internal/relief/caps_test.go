package relief_test

import (
	"testing"

	"go-payroll-my/internal/relief"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func claims(kv map[string]float64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(kv))
	for k, v := range kv {
		out[k] = decimal.NewFromFloat(v)
	}
	return out
}

func TestApplyCaps_ItemSubcap(t *testing.T) {
	catalog := relief.DefaultCatalog()

	totals := catalog.ApplyCaps(claims(map[string]float64{
		"childcare_fees": 4500, // cap 3,000
	}))

	assert.Equal(t, "3000.00", totals.PerItem["childcare_fees"].StringFixed(2))
	assert.Equal(t, "3000.00", totals.TotalPCB.StringFixed(2))
}

func TestApplyCaps_GroupProportionalTrim(t *testing.T) {
	catalog := relief.DefaultCatalog()

	// G6_SPORTS cap 1,000; klaim 700+500=1,200
	totals := catalog.ApplyCaps(claims(map[string]float64{
		"sports_equipment":     700,
		"sports_facility_fees": 500,
	}))

	assert.Equal(t, "583.33", totals.PerItem["sports_equipment"].StringFixed(2))
	assert.Equal(t, "416.67", totals.PerItem["sports_facility_fees"].StringFixed(2))
	assert.Equal(t, "1000.00", totals.GroupUsage["G6_SPORTS"].StringFixed(2))
	assert.Equal(t, "1000.00", totals.TotalPCB.StringFixed(2))
}

func TestApplyCaps_TrimSkipsUnclaimedMembers(t *testing.T) {
	catalog := relief.DefaultCatalog()

	// Hanya 2 dari 4 anggota G6_SPORTS diklaim; anggota lain tidak boleh
	// muncul sebagai entri nol setelah trim
	totals := catalog.ApplyCaps(claims(map[string]float64{
		"sports_equipment":     900,
		"sports_facility_fees": 600,
	}))

	_, hasEvent := totals.PerItem["sports_event_registration"]
	assert.False(t, hasEvent)
	_, hasGym := totals.PerItem["sports_gym_membership"]
	assert.False(t, hasGym)
	assert.Len(t, totals.PerItem, 2)
	assert.Equal(t, "1000.00", totals.GroupUsage["G6_SPORTS"].StringFixed(2))
}

func TestApplyCaps_SubcapBeforeGroupCap(t *testing.T) {
	catalog := relief.DefaultCatalog()

	// 1c dipangkas subcap RM1,000 dulu, lalu G1_PARENT cap 8,000 memangkas proporsional
	totals := catalog.ApplyCaps(claims(map[string]float64{
		"parent_medical_care":      7500,
		"parent_full_exam_vaccine": 1500,
	}))

	assert.Equal(t, "7058.82", totals.PerItem["parent_medical_care"].StringFixed(2))
	assert.Equal(t, "941.18", totals.PerItem["parent_full_exam_vaccine"].StringFixed(2))
	assert.Equal(t, "8000.00", totals.GroupUsage["G1_PARENT"].StringFixed(2))
}

func TestApplyCaps_EPFLifeCombined(t *testing.T) {
	catalog := relief.DefaultCatalog()

	// Subcap 4,000 + 3,000 pas dengan cap kumpulan 7,000
	totals := catalog.ApplyCaps(claims(map[string]float64{
		"epf_total_including_voluntary": 6000,
		"life_insurance":                5000,
	}))

	assert.Equal(t, "4000.00", totals.PerItem["epf_total_including_voluntary"].StringFixed(2))
	assert.Equal(t, "3000.00", totals.PerItem["life_insurance"].StringFixed(2))
	assert.Equal(t, "7000.00", totals.GroupUsage["G11_EPF_LIFE"].StringFixed(2))
}

func TestApplyCaps_PCBOnlyExcludedFromCash(t *testing.T) {
	catalog := relief.DefaultCatalog()

	totals := catalog.ApplyCaps(claims(map[string]float64{
		relief.KeySOCSOEIS:  400, // cap 350, pcb_only
		"lifestyle_devices": 800,
	}))

	assert.Equal(t, "1150.00", totals.TotalPCB.StringFixed(2))
	assert.Equal(t, "800.00", totals.TotalCash.StringFixed(2))
	_, inCash := totals.PerItemCash[relief.KeySOCSOEIS]
	assert.False(t, inCash)
}

func TestApplyCaps_UnknownKeyIgnored(t *testing.T) {
	catalog := relief.DefaultCatalog()

	totals := catalog.ApplyCaps(claims(map[string]float64{
		"not_a_real_item":    500,
		"lifestyle_internet": 100,
	}))

	assert.Equal(t, "100.00", totals.TotalPCB.StringFixed(2))
	assert.Contains(t, totals.UnknownKeys, "not_a_real_item")
}

func TestWithOverrides(t *testing.T) {
	base := relief.DefaultCatalog()
	newCap := decimal.NewFromInt(5000)
	catalog := base.WithOverrides(
		map[string]relief.ItemOverride{
			"childcare_fees": {Cap: &newCap},
		},
		map[string]decimal.Decimal{
			"G6_SPORTS": decimal.NewFromInt(2000),
		},
	)

	totals := catalog.ApplyCaps(claims(map[string]float64{
		"childcare_fees":   4500,
		"sports_equipment": 1500,
	}))

	assert.Equal(t, "4500.00", totals.PerItem["childcare_fees"].StringFixed(2))
	assert.Equal(t, "1500.00", totals.PerItem["sports_equipment"].StringFixed(2))

	// Katalog asal tidak berubah
	orig := base.ApplyCaps(claims(map[string]float64{"childcare_fees": 4500}))
	assert.Equal(t, "3000.00", orig.PerItem["childcare_fees"].StringFixed(2))
}
