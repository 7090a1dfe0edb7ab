package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollRun adalah log satu run per (pekerja, tahun, bulan). Unique index
// menjamin at-most-once: run ulang periode yang sama akan menggandakan YTD,
// jadi ditolak di level DB juga.
type PayrollRun struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_run_employee_period"`
	Year       int       `gorm:"not null;uniqueIndex:idx_run_employee_period"`
	Month      int       `gorm:"not null;uniqueIndex:idx_run_employee_period"`
	RunNumber  string    `gorm:"type:varchar(30);not null"`

	EPFPart string `gorm:"type:varchar(1)"`

	BasicSalary decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Allowances  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Bonus       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GrossPay    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	EPFEmployee   decimal.Decimal `gorm:"column:epf_employee;type:decimal(12,2);not null;default:0"`
	EPFEmployer   decimal.Decimal `gorm:"column:epf_employer;type:decimal(12,2);not null;default:0"`
	SOCSOEmployee decimal.Decimal `gorm:"column:socso_employee;type:decimal(12,2);not null;default:0"`
	SOCSOEmployer decimal.Decimal `gorm:"column:socso_employer;type:decimal(12,2);not null;default:0"`
	EISEmployee   decimal.Decimal `gorm:"column:eis_employee;type:decimal(12,2);not null;default:0"`
	EISEmployer   decimal.Decimal `gorm:"column:eis_employer;type:decimal(12,2);not null;default:0"`

	ReliefPCB  decimal.Decimal `gorm:"column:relief_pcb;type:decimal(12,2);not null;default:0"`
	ReliefCash decimal.Decimal `gorm:"column:relief_cash;type:decimal(12,2);not null;default:0"`

	PCB             decimal.Decimal `gorm:"column:pcb;type:decimal(12,2);not null;default:0"`
	Zakat           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	UnpaidLeave     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	OtherDeductions decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	NetPay          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	Status    string    `gorm:"type:varchar(20);not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayrollRun) TableName() string {
	return "payroll_runs"
}

// YTDSnapshot adalah akumulasi per pekerja hingga akhir (year, month).
// Invarian rantai: snapshot bulan N = snapshot bulan N-1 + nilai bulan N.
type YTDSnapshot struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ytd_employee_period"`
	Year       int       `gorm:"not null;uniqueIndex:idx_ytd_employee_period"`
	Month      int       `gorm:"not null;uniqueIndex:idx_ytd_employee_period"`

	Gross         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	EPFEmployee   decimal.Decimal `gorm:"column:epf_employee;type:decimal(14,2);not null;default:0"`
	SOCSOEmployee decimal.Decimal `gorm:"column:socso_employee;type:decimal(14,2);not null;default:0"`
	EISEmployee   decimal.Decimal `gorm:"column:eis_employee;type:decimal(14,2);not null;default:0"`
	PCB           decimal.Decimal `gorm:"column:pcb;type:decimal(14,2);not null;default:0"`
	Zakat         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	OtherReliefs  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (YTDSnapshot) TableName() string {
	return "payroll_ytd_snapshots"
}
