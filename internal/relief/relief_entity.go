package relief

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReliefItemOverride mengubah cap/pcb_only/cycle satu item TP1 per syarikat.
type ReliefItemOverride struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_company_item_key"`
	ItemKey    string           `gorm:"type:varchar(60);not null;uniqueIndex:idx_company_item_key"`
	Cap        *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PCBOnly    *bool
	CycleYears *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ReliefItemOverride) TableName() string {
	return "relief_item_overrides"
}

// ReliefGroupOverride mengubah cap payung kumpulan per syarikat.
type ReliefGroupOverride struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_company_group_id"`
	GroupID   string          `gorm:"type:varchar(30);not null;uniqueIndex:idx_company_group_id"`
	Cap       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReliefGroupOverride) TableName() string {
	return "relief_group_overrides"
}

// ReliefYTDAccumulated melacak klaim terkumpul per (pekerja, tahun, item).
type ReliefYTDAccumulated struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_employee_year_item"`
	Year          int             `gorm:"not null;uniqueIndex:idx_employee_year_item"`
	ItemKey       string          `gorm:"type:varchar(60);not null;uniqueIndex:idx_employee_year_item"`
	ClaimedYTD    decimal.Decimal `gorm:"column:claimed_ytd;type:decimal(12,2);not null;default:0"`
	LastClaimYear int             `gorm:"column:last_claim_year"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ReliefYTDAccumulated) TableName() string {
	return "relief_ytd_accumulated"
}
