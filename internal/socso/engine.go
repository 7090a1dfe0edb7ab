package socso

import (
	"context"

	"go-payroll-my/internal/contribution"

	"github.com/shopspring/decimal"
)

// Kategori jadual PERKESO. Pekerja 60 tahun ke atas hanya dilindungi
// skim bencana kerja (caruman majikan sahaja).
const (
	CategoryFirst  = "employment_injury_invalidity"
	CategorySecond = "employment_injury_only"
	CategoryEIS    = "eis"
)

const seniorAge = 60

type Engine struct {
	table contribution.Table
}

func NewEngine(table contribution.Table) *Engine {
	return &Engine{table: table}
}

// Category memilih skim PERKESO berdasarkan umur pada akhir periode.
func Category(age int) string {
	if age >= seniorAge {
		return CategorySecond
	}
	return CategoryFirst
}

// ComputeSOCSO menghitung caruman PERKESO satu bulan. Upah di atas band
// tertinggi dikenakan caruman band tertinggi (skim ber-cap).
func (e *Engine) ComputeSOCSO(ctx context.Context, age int, wage decimal.Decimal) (contribution.Amounts, error) {
	return contribution.Lookup(ctx, e.table, contribution.TypeSOCSO, Category(age), wage)
}

// ComputeEIS menghitung caruman SIP. Pekerja 60 tahun ke atas tidak
// lagi dilindungi SIP.
func (e *Engine) ComputeEIS(ctx context.Context, age int, wage decimal.Decimal) (contribution.Amounts, error) {
	if age >= seniorAge {
		return contribution.Amounts{
			Employee: decimal.Zero,
			Employer: decimal.Zero,
			Total:    decimal.Zero,
		}, nil
	}
	return contribution.Lookup(ctx, e.table, contribution.TypeEIS, CategoryEIS, wage)
}
