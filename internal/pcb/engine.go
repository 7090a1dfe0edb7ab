package pcb

import (
	"go-payroll-my/internal/shared/apperror"
	"go-payroll-my/internal/shared/money"

	"github.com/shopspring/decimal"
)

// Inputs adalah baseline YTD (hingga akhir bulan lalu) plus nilai bulan ini.
// Semua field wang boleh nol; hanya jadual bracket yang wajib ada.
type Inputs struct {
	AccumulatedGross        decimal.Decimal // ΣY
	AccumulatedEPF          decimal.Decimal // ΣK
	AccumulatedPCB          decimal.Decimal // ΣX
	AccumulatedOtherReliefs decimal.Decimal // ΣLP

	CurrentOtherReliefs decimal.Decimal // LP1 bulan ini (termasuk porsi pcb_only)
	CurrentZakat        decimal.Decimal // rebat langsung terhadap PCB bulan ini

	ChildCount     int
	SpouseEligible bool // berkahwin dan pasangan tidak bekerja
	DisabledSelf   bool
	DisabledSpouse bool

	// Bulan gaji dalam tahun berjalan, 1..12.
	Month int
}

// Result memaparkan langkah antara untuk audit payslip.
type Result struct {
	PCB              decimal.Decimal
	ProjectedTaxable decimal.Decimal // P
	AnnualTax        decimal.Decimal // setelah rebat
	MonthlyTax       decimal.Decimal // M = cukai tahunan / 12
	AnnualReliefs    decimal.Decimal
}

var (
	twelve = decimal.NewFromInt(12)
)

// Compute menjalankan formula PCB berkomputer LHDN secara kumulatif:
//
//	P    = (ΣY + Y1 - KWSP_terhad - (ΣLP + LP1)) x (12/n) - pelepasan statik
//	cukai = base + rate% x (P - from) pada bracket yang memuat P, lalu rebat
//	M    = cukai / 12
//	PCB  = M x n - ΣX - zakat bulan ini, lantai 0, bundar naik ke RM0.05
//
// Jadual bracket kosong/cacat adalah error konfigurasi fatal; data pekerja
// yang kurang sudah dinolkan di hulu sehingga tidak pernah menggagalkan batch.
func Compute(cfg Config, brackets []Bracket, gross, epfEmployee decimal.Decimal, in Inputs) (Result, error) {
	if err := validateBrackets(brackets); err != nil {
		return Result{}, err
	}
	n := in.Month
	if n < 1 {
		n = 1
	}
	if n > 12 {
		n = 12
	}
	months := decimal.NewFromInt(int64(n))
	annualize := twelve.Div(months)

	// Pelepasan KWSP kumulatif terhad cap tahunan (lalai RM4,000)
	epfCum := in.AccumulatedEPF.Add(epfEmployee)
	if cfg.EPFAnnualCap.IsPositive() && epfCum.GreaterThan(cfg.EPFAnnualCap) {
		epfCum = cfg.EPFAnnualCap
	}

	lpCum := in.AccumulatedOtherReliefs.Add(in.CurrentOtherReliefs)
	netCum := in.AccumulatedGross.Add(gross).Sub(epfCum).Sub(lpCum)

	staticReliefs := cfg.IndividualRelief.
		Add(cfg.ChildRelief.Mul(decimal.NewFromInt(int64(in.ChildCount))))
	if in.SpouseEligible {
		staticReliefs = staticReliefs.Add(cfg.SpouseRelief)
	}
	if in.DisabledSelf {
		staticReliefs = staticReliefs.Add(cfg.DisabledIndividual)
	}
	if in.DisabledSpouse && in.SpouseEligible {
		staticReliefs = staticReliefs.Add(cfg.DisabledSpouse)
	}

	projected := netCum.Mul(annualize).Sub(staticReliefs)

	annualTax := taxOn(projected, brackets)

	// Rebat individu (dan pasangan) bila P di bawah ambang
	if annualTax.IsPositive() && projected.LessThanOrEqual(cfg.RebateThreshold) {
		annualTax = annualTax.Sub(cfg.RebateAmount)
		if in.SpouseEligible {
			annualTax = annualTax.Sub(cfg.SpouseRebateAmount)
		}
		annualTax = money.NonNegative(annualTax)
	}

	monthlyTax := annualTax.Div(twelve)

	// Kumulatif yang seharusnya terpotong hingga bulan n, dikurangi yang
	// sudah terpotong dan zakat bulan ini
	pcb := monthlyTax.Mul(months).
		Sub(in.AccumulatedPCB).
		Sub(in.CurrentZakat)
	pcb = money.CeilTo5Sen(pcb)

	return Result{
		PCB:              pcb,
		ProjectedTaxable: money.Round2(projected),
		AnnualTax:        money.Round2(annualTax),
		MonthlyTax:       money.Round2(monthlyTax),
		AnnualReliefs:    money.Round2(staticReliefs.Add(lpCum.Mul(annualize))),
	}, nil
}

func taxOn(p decimal.Decimal, brackets []Bracket) decimal.Decimal {
	if p.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	for _, b := range brackets {
		if p.GreaterThan(b.From) && (b.To == nil || p.LessThanOrEqual(*b.To)) {
			return b.Base.Add(money.Percent(p.Sub(b.From), b.Rate))
		}
	}
	// P jatuh di bracket pertama (0..to)
	first := brackets[0]
	return first.Base.Add(money.Percent(p.Sub(first.From), first.Rate))
}

func validateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return apperror.ErrConfigMissing
	}
	for _, b := range brackets {
		if b.Rate.IsNegative() || b.Base.IsNegative() {
			return apperror.ErrConfigMissing
		}
		if b.To != nil && b.To.LessThanOrEqual(b.From) {
			return apperror.ErrConfigMissing
		}
	}
	return nil
}
