package epf

import (
	"context"

	"go-payroll-my/internal/contribution"
	"go-payroll-my/internal/shared/money"

	"github.com/shopspring/decimal"
)

// Ambang jalur persentase: jadual ketiga berhenti di RM20,000.
var wageCeiling = decimal.NewFromInt(20000)

// Ambang aturan bonus: gaji pokok sampai RM5,000.
var bonusBasicThreshold = decimal.NewFromInt(5000)

// Majikan part B/D mencarum flat RM5.00.
var employerFlatAmount = decimal.NewFromInt(5)

// BonusRates adalah kadar majikan saat gaji pokok <= RM5,000 tapi
// pokok+bonus melewati RM5,000. Boleh dioverride per syarikat.
type BonusRates struct {
	PartAEmployerPct decimal.Decimal
	PartCEmployerPct decimal.Decimal
}

func DefaultBonusRates() BonusRates {
	return BonusRates{
		PartAEmployerPct: decimal.NewFromInt(13),
		PartCEmployerPct: decimal.NewFromFloat(6.5),
	}
}

// RateSource menyediakan kadar aturan bonus untuk satu syarikat.
type RateSource interface {
	BonusRates(ctx context.Context, companyID string) (BonusRates, error)
}

// StaticRates memakai satu set kadar untuk semua syarikat.
type StaticRates struct {
	rates BonusRates
}

func NewStaticRates(rates BonusRates) StaticRates {
	return StaticRates{rates: rates}
}

func (s StaticRates) BonusRates(_ context.Context, _ string) (BonusRates, error) {
	return s.rates, nil
}

type Engine struct {
	table contribution.Table
	rates RateSource
}

func NewEngine(table contribution.Table, rates RateSource) *Engine {
	return &Engine{table: table, rates: rates}
}

// Compute menghitung caruman KWSP untuk satu upah bulanan.
// Upah di atas RM20,000 (strict) memakai jalur persentase rasmi dengan
// pembulatan naik ke sen; selain itu jadual band.
func (e *Engine) Compute(ctx context.Context, part Part, wage decimal.Decimal) (contribution.Amounts, error) {
	if !part.Valid() {
		return zeroAmounts(), nil
	}
	if wage.GreaterThan(wageCeiling) {
		return percentageAmounts(part, wage), nil
	}
	return contribution.Lookup(ctx, e.table, contribution.TypeEPF, part.Category(), wage)
}

// ComputeWithBonus menerapkan aturan bonus KWSP: jika gaji pokok tidak
// melebihi RM5,000 tetapi pokok+bonus melebihinya, kadar majikan part A
// naik ke 13% (part C ke 6.5%) atas seluruh upah, dibulatkan naik ke sen.
// Ambangnya dinilai dari pokok+bonus sahaja; elaun ikut dicarum tapi tidak
// memicu aturan. Kadar majikan boleh dioverride per syarikat via RateSource.
func (e *Engine) ComputeWithBonus(ctx context.Context, companyID string, part Part, basic, others, bonus decimal.Decimal) (contribution.Amounts, error) {
	total := basic.Add(others).Add(bonus)

	if crossesBonusThreshold(part, basic, basic.Add(bonus)) {
		rates, err := e.rates.BonusRates(ctx, companyID)
		if err != nil {
			return zeroAmounts(), err
		}
		r, _ := partRates(part)
		employerPct := rates.PartAEmployerPct
		if part == PartC {
			employerPct = rates.PartCEmployerPct
		}
		employee := money.CeilCents(money.Percent(total, r.employeePct))
		employer := money.CeilCents(money.Percent(total, employerPct))
		return contribution.Amounts{
			Employee: employee,
			Employer: employer,
			Total:    employee.Add(employer),
		}, nil
	}

	return e.Compute(ctx, part, total)
}

func crossesBonusThreshold(part Part, basic, total decimal.Decimal) bool {
	if part != PartA && part != PartC {
		return false
	}
	return basic.LessThanOrEqual(bonusBasicThreshold) && total.GreaterThan(bonusBasicThreshold)
}

func percentageAmounts(part Part, wage decimal.Decimal) contribution.Amounts {
	r, ok := partRates(part)
	if !ok {
		return zeroAmounts()
	}
	employee := money.CeilCents(money.Percent(wage, r.employeePct))
	var employer decimal.Decimal
	if r.employerFlat {
		employer = employerFlatAmount
	} else {
		employer = money.CeilCents(money.Percent(wage, r.employerPct))
	}
	return contribution.Amounts{
		Employee: employee,
		Employer: employer,
		Total:    employee.Add(employer),
	}
}

func zeroAmounts() contribution.Amounts {
	return contribution.Amounts{
		Employee: decimal.Zero,
		Employer: decimal.Zero,
		Total:    decimal.Zero,
	}
}
