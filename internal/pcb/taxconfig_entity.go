package pcb

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxBracket adalah satu baris jadual cukai progresif LHDN:
// cukai = base_tax + rate% x (P - from_amount) untuk from < P <= to.
// Baris teratas memakai to_amount NULL (tanpa batas).
type TaxBracket struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Profile    string           `gorm:"type:varchar(30);not null;index;default:'default'"`
	FromAmount decimal.Decimal  `gorm:"type:decimal(14,2);not null"`
	ToAmount   *decimal.Decimal `gorm:"type:decimal(14,2)"`
	BaseTax    decimal.Decimal  `gorm:"type:decimal(14,2);not null"`
	RatePct    decimal.Decimal  `gorm:"type:decimal(6,3);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (TaxBracket) TableName() string {
	return "tax_brackets"
}

// TaxConfigRow menyimpan parameter pelepasan/rebat per profil.
type TaxConfigRow struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Profile            string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	IndividualRelief   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SpouseRelief       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ChildRelief        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DisabledIndividual decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DisabledSpouse     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RebateThreshold    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RebateAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SpouseRebateAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EPFAnnualCap       decimal.Decimal `gorm:"column:epf_annual_cap;type:decimal(12,2);not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (TaxConfigRow) TableName() string {
	return "tax_configs"
}

// Bracket adalah bentuk murni untuk engine (tanpa metadata gorm).
type Bracket struct {
	From decimal.Decimal
	To   *decimal.Decimal
	Base decimal.Decimal
	Rate decimal.Decimal // persen
}

// Config adalah parameter statik pengiraan PCB satu profil.
type Config struct {
	IndividualRelief   decimal.Decimal // D
	SpouseRelief       decimal.Decimal // S
	ChildRelief        decimal.Decimal // Q, per anak
	DisabledIndividual decimal.Decimal // Du
	DisabledSpouse     decimal.Decimal // Su
	RebateThreshold    decimal.Decimal
	RebateAmount       decimal.Decimal
	SpouseRebateAmount decimal.Decimal
	EPFAnnualCap       decimal.Decimal
}

func (b TaxBracket) toBracket() Bracket {
	return Bracket{From: b.FromAmount, To: b.ToAmount, Base: b.BaseTax, Rate: b.RatePct}
}

func (r TaxConfigRow) toConfig() Config {
	return Config{
		IndividualRelief:   r.IndividualRelief,
		SpouseRelief:       r.SpouseRelief,
		ChildRelief:        r.ChildRelief,
		DisabledIndividual: r.DisabledIndividual,
		DisabledSpouse:     r.DisabledSpouse,
		RebateThreshold:    r.RebateThreshold,
		RebateAmount:       r.RebateAmount,
		SpouseRebateAmount: r.SpouseRebateAmount,
		EPFAnnualCap:       r.EPFAnnualCap,
	}
}
