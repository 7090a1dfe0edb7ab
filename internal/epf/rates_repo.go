package epf

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rates_repo.go -destination=mock/rates_repo_mock.go -package=mock
type RateRepository interface {
	FindBonusRateOverride(ctx context.Context, companyID string) (*BonusRateOverride, error)
}

type rateRepository struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) FindBonusRateOverride(ctx context.Context, companyID string) (*BonusRateOverride, error) {
	var row BonusRateOverride
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// RepoRates memuat override kadar per syarikat dari store; syarikat tanpa
// override (atau dengan kolom kosong) memakai kadar lalai.
type RepoRates struct {
	repo RateRepository
}

func NewRepoRates(repo RateRepository) RepoRates {
	return RepoRates{repo: repo}
}

func (r RepoRates) BonusRates(ctx context.Context, companyID string) (BonusRates, error) {
	rates := DefaultBonusRates()
	row, err := r.repo.FindBonusRateOverride(ctx, companyID)
	if err != nil {
		return BonusRates{}, err
	}
	if row == nil {
		return rates, nil
	}
	if row.PartAEmployerPct.IsPositive() {
		rates.PartAEmployerPct = row.PartAEmployerPct
	}
	if row.PartCEmployerPct.IsPositive() {
		rates.PartCEmployerPct = row.PartCEmployerPct
	}
	return rates, nil
}
