package repo

import (
	"context"

	"gorm.io/gorm"

	"jardins-api/internal/domain"
)

type ParcelleRepo struct{ db *gorm.DB }

func NewParcelleRepo(db *gorm.DB) *ParcelleRepo { return &ParcelleRepo{db: db} }

func (r *ParcelleRepo) List(ctx context.Context) ([]domain.Parcelle, error) {
	var out []domain.Parcelle
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *ParcelleRepo) Create(ctx context.Context, p *domain.Parcelle) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ParcelleRepo) Update(ctx context.Context, p *domain.Parcelle) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ParcelleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Parcelle{}).Error
}
