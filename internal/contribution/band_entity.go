package contribution

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Jenis caruman berjadual
const (
	TypeEPF   = "epf"
	TypeSOCSO = "socso"
	TypeEIS   = "eis"
)

// ContributionBand adalah satu baris jadual caruman rasmi (jadual ketiga KWSP,
// jadual PERKESO/SIP). Data rujukan read-only selama payroll run.
type ContributionBand struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContribType string          `gorm:"type:varchar(10);not null;index:idx_type_category"`
	Category    string          `gorm:"type:varchar(30);not null;index:idx_type_category"`
	FromWage    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ToWage      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Employee    decimal.Decimal `gorm:"column:employee_contribution;type:decimal(12,2);not null;default:0"`
	Employer    decimal.Decimal `gorm:"column:employer_contribution;type:decimal(12,2);not null;default:0"`
	Total       decimal.Decimal `gorm:"column:total_contribution;type:decimal(12,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ContributionBand) TableName() string {
	return "contribution_bands"
}

// Amounts adalah hasil lookup satu band.
type Amounts struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
	Total    decimal.Decimal
}

func zeroAmounts() Amounts {
	return Amounts{
		Employee: decimal.Zero,
		Employer: decimal.Zero,
		Total:    decimal.Zero,
	}
}
