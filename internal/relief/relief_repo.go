package relief

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=relief_repo.go -destination=mock/relief_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindItemOverrides(ctx context.Context, companyID string) ([]ReliefItemOverride, error)
	FindGroupOverrides(ctx context.Context, companyID string) ([]ReliefGroupOverride, error)
	FindYTDByEmployee(ctx context.Context, employeeID string, upToYear int) ([]ReliefYTDAccumulated, error)
	UpsertYTD(ctx context.Context, rows []ReliefYTDAccumulated) error
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

func (r *repository) FindItemOverrides(ctx context.Context, companyID string) ([]ReliefItemOverride, error) {
	var rows []ReliefItemOverride
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindGroupOverrides(ctx context.Context, companyID string) ([]ReliefGroupOverride, error) {
	var rows []ReliefGroupOverride
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindYTDByEmployee(ctx context.Context, employeeID string, upToYear int) ([]ReliefYTDAccumulated, error) {
	var rows []ReliefYTDAccumulated
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND year <= ?", employeeID, upToYear).
		Order("year ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpsertYTD(ctx context.Context, rows []ReliefYTDAccumulated) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_id"}, {Name: "year"}, {Name: "item_key"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"claimed_ytd", "last_claim_year", "updated_at"}),
		}).
		Create(&rows).Error
}
