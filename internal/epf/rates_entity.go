package epf

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BonusRateOverride menyimpan kadar majikan aturan bonus per syarikat.
// Kadar nol atau negatif dianggap tidak diisi dan jatuh ke kadar lalai.
type BonusRateOverride struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	PartAEmployerPct decimal.Decimal `gorm:"column:part_a_employer_pct;type:decimal(5,2);not null;default:0"`
	PartCEmployerPct decimal.Decimal `gorm:"column:part_c_employer_pct;type:decimal(5,2);not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (BonusRateOverride) TableName() string {
	return "epf_bonus_rate_overrides"
}
