package pcb

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=taxconfig_repo.go -destination=mock/taxconfig_repo_mock.go -package=mock
type Repository interface {
	FindBrackets(ctx context.Context, profile string) ([]Bracket, error)
	FindConfig(ctx context.Context, profile string) (Config, bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindBrackets(ctx context.Context, profile string) ([]Bracket, error) {
	var rows []TaxBracket
	err := r.db.WithContext(ctx).
		Where("profile = ?", profile).
		Order("from_amount ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	brackets := make([]Bracket, 0, len(rows))
	for _, row := range rows {
		brackets = append(brackets, row.toBracket())
	}
	return brackets, nil
}

func (r *repository) FindConfig(ctx context.Context, profile string) (Config, bool, error) {
	var row TaxConfigRow
	err := r.db.WithContext(ctx).
		Where("profile = ?", profile).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Config{}, false, nil
	}
	if err != nil {
		return Config{}, false, err
	}
	return row.toConfig(), true, nil
}
