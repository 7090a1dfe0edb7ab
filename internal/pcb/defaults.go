package pcb

import "github.com/shopspring/decimal"

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func dp(v float64) *decimal.Decimal {
	x := decimal.NewFromFloat(v)
	return &x
}

// DefaultBrackets adalah Jadual 1 LHDN 2025 (individu pemastautin).
// Dipakai untuk seed awal dan fallback test; produksi membaca tabel.
func DefaultBrackets() []Bracket {
	return []Bracket{
		{From: d(0), To: dp(5000), Base: d(0), Rate: d(0)},
		{From: d(5000), To: dp(20000), Base: d(0), Rate: d(1)},
		{From: d(20000), To: dp(35000), Base: d(150), Rate: d(3)},
		{From: d(35000), To: dp(50000), Base: d(600), Rate: d(6)},
		{From: d(50000), To: dp(70000), Base: d(1500), Rate: d(11)},
		{From: d(70000), To: dp(100000), Base: d(3700), Rate: d(19)},
		{From: d(100000), To: dp(250000), Base: d(9400), Rate: d(25)},
		{From: d(250000), To: dp(400000), Base: d(46900), Rate: d(26)},
		{From: d(400000), To: dp(600000), Base: d(85900), Rate: d(28)},
		{From: d(600000), To: nil, Base: d(141900), Rate: d(30)},
	}
}

// DefaultConfig adalah nilai pelepasan/rebat 2025.
func DefaultConfig() Config {
	return Config{
		IndividualRelief:   d(9000),
		SpouseRelief:       d(4000),
		ChildRelief:        d(2000),
		DisabledIndividual: d(6000),
		DisabledSpouse:     d(5000),
		RebateThreshold:    d(35000),
		RebateAmount:       d(400),
		SpouseRebateAmount: d(400),
		EPFAnnualCap:       d(4000),
	}
}
