package contribution

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=band_repo.go -destination=mock/band_repo_mock.go -package=mock
type Repository interface {
	FindBands(ctx context.Context, contribType, category string) ([]ContributionBand, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindBands(ctx context.Context, contribType, category string) ([]ContributionBand, error) {
	var bands []ContributionBand
	err := r.db.WithContext(ctx).
		Where("contrib_type = ? AND category = ?", contribType, category).
		Order("from_wage ASC").
		Find(&bands).Error
	return bands, err
}
