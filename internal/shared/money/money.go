package money

import "github.com/shopspring/decimal"

// Helper pembulatan Ringgit. Semua perhitungan berjadual memakai decimal,
// bukan float, supaya properti konservasi cap tidak rusak di level sen.

var (
	Zero    = decimal.Zero
	Hundred = decimal.NewFromInt(100)

	fiveSen = decimal.NewFromFloat(0.05)
)

func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Round2 membulatkan ke 2 desimal (half-up), dipakai untuk trim proporsional.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// CeilCents membulatkan KE ATAS ke sen terdekat. Jadual KWSP membulatkan
// caruman formula persen ke atas, bukan ke terdekat.
func CeilCents(v decimal.Decimal) decimal.Decimal {
	return v.Mul(Hundred).Ceil().Div(Hundred)
}

// CeilTo5Sen membulatkan KE ATAS ke gandaan RM0.05 terdekat, kaedah rasmi
// pembundaran PCB LHDN.
func CeilTo5Sen(v decimal.Decimal) decimal.Decimal {
	if v.Sign() <= 0 {
		return decimal.Zero
	}
	return v.Div(fiveSen).Ceil().Mul(fiveSen)
}

// Percent mengira v * (pct/100) tanpa pembulatan.
func Percent(v decimal.Decimal, pct decimal.Decimal) decimal.Decimal {
	return v.Mul(pct).Div(Hundred)
}

// NonNegative memotong nilai negatif ke sifar.
func NonNegative(v decimal.Decimal) decimal.Decimal {
	if v.Sign() < 0 {
		return decimal.Zero
	}
	return v
}
