package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EmploymentActive     = "ACTIVE"
	EmploymentInactive   = "INACTIVE"
	EmploymentTerminated = "TERMINATED"
	EmploymentResigned   = "RESIGNED"
	EmploymentRetired    = "RETIRED"
)

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	FullName  string
	Email     string `gorm:"uniqueIndex"`
	RoleTitle string `gorm:"type:varchar(120)"`

	// Data statutori. Tanggal disimpan sebagai string YYYY-MM-DD apa adanya
	// dari sistem HR; parsing eksplisit dilakukan di snapshot builder.
	DateOfBirth string `gorm:"type:varchar(20)"`
	Nationality string `gorm:"type:varchar(60)"`
	Citizenship string `gorm:"type:varchar(60)"`

	// Pilihan caruman KWSP untuk bukan warganegara
	EPFElecting     bool
	EPFElectionDate string `gorm:"type:varchar(20)"`

	MaritalStatus  string `gorm:"type:varchar(20)"`
	SpouseWorking  bool
	ChildCount     int
	DisabledSelf   bool
	DisabledSpouse bool

	BasicSalary decimal.Decimal `gorm:"type:decimal(12,2)"`

	PayrollStatus    string `gorm:"type:varchar(20);default:'ACTIVE'"`
	EmploymentStatus string `gorm:"type:varchar(20);default:'ACTIVE';index"`

	Allowances []EmployeeAllowance `gorm:"foreignKey:EmployeeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type EmployeeAllowance struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(120);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
