package payroll

import (
	"context"
	"database/sql"
	"errors"

	"go-payroll-my/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRun(ctx context.Context, run *PayrollRun) error
	HasRun(ctx context.Context, employeeID string, year, month int) (bool, error)
	FindRunsByCompany(ctx context.Context, companyID string, year, month int) ([]PayrollRun, error)
	FindRunByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollRun, error)
	FindYTD(ctx context.Context, employeeID string, year, month int) (*YTDSnapshot, error)
	FindLatestYTDBefore(ctx context.Context, employeeID string, year, month int) (*YTDSnapshot, error)
	SumRunsBefore(ctx context.Context, employeeID string, year, month int) (*YTDSnapshot, error)
	SaveYTD(ctx context.Context, snapshot *YTDSnapshot) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) CreateRun(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) HasRun(ctx context.Context, employeeID string, year, month int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindRunsByCompany(ctx context.Context, companyID string, year, month int) ([]PayrollRun, error) {
	var runs []PayrollRun
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("year = ?", year)
	if month > 0 {
		db = db.Where("month = ?", month)
	}
	err := db.Order("month ASC, created_at ASC").Find(&runs).Error
	return runs, err
}

func (r *repository) FindRunByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&run, "id = ?", id).Error
	return &run, err
}

func (r *repository) FindYTD(ctx context.Context, employeeID string, year, month int) (*YTDSnapshot, error) {
	var snap YTDSnapshot
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// FindLatestYTDBefore mengembalikan snapshot terakhir sebelum (year, month)
// dalam tahun yang sama; nil jika belum ada run tahun ini.
func (r *repository) FindLatestYTDBefore(ctx context.Context, employeeID string, year, month int) (*YTDSnapshot, error) {
	var snap YTDSnapshot
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND year = ? AND month < ?", employeeID, year, month).
		Order("month DESC").
		First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// SumRunsBefore merekonstruksi akumulator YTD dari run log ketika snapshot
// hilang; nil jika belum ada run sama sekali tahun itu.
func (r *repository) SumRunsBefore(ctx context.Context, employeeID string, year, month int) (*YTDSnapshot, error) {
	type runTotals struct {
		Count         int64
		Gross         decimal.Decimal
		EPFEmployee   decimal.Decimal
		SOCSOEmployee decimal.Decimal
		EISEmployee   decimal.Decimal
		PCB           decimal.Decimal
		Zakat         decimal.Decimal
		OtherReliefs  decimal.Decimal
	}
	var totals runTotals
	err := r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Select(`COUNT(*) AS count,
			COALESCE(SUM(gross_pay), 0) AS gross,
			COALESCE(SUM(epf_employee), 0) AS epf_employee,
			COALESCE(SUM(socso_employee), 0) AS socso_employee,
			COALESCE(SUM(eis_employee), 0) AS eis_employee,
			COALESCE(SUM(pcb), 0) AS pcb,
			COALESCE(SUM(zakat), 0) AS zakat,
			COALESCE(SUM(relief_pcb), 0) AS other_reliefs`).
		Where("employee_id = ? AND year = ? AND month < ?", employeeID, year, month).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	if totals.Count == 0 {
		return nil, nil
	}
	return &YTDSnapshot{
		Year:          year,
		Gross:         totals.Gross,
		EPFEmployee:   totals.EPFEmployee,
		SOCSOEmployee: totals.SOCSOEmployee,
		EISEmployee:   totals.EISEmployee,
		PCB:           totals.PCB,
		Zakat:         totals.Zakat,
		OtherReliefs:  totals.OtherReliefs,
	}, nil
}

func (r *repository) SaveYTD(ctx context.Context, snapshot *YTDSnapshot) error {
	return r.db.WithContext(ctx).Save(snapshot).Error
}
