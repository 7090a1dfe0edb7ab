package employee

import (
	"context"

	"go-payroll-my/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error)
	FindActiveByCompany(ctx context.Context, companyID string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Allowances").
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Allowances").
		Where("employment_status = ?", EmploymentActive).
		Order("full_name ASC").
		Find(&emps).Error
	return emps, err
}
