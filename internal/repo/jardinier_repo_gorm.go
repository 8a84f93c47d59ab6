package repo

import (
	"context"

	"gorm.io/gorm"

	"jardins-api/internal/domain"
)

type JardinierRepo struct{ db *gorm.DB }

func NewJardinierRepo(db *gorm.DB) *JardinierRepo { return &JardinierRepo{db: db} }

func (r *JardinierRepo) List(ctx context.Context) ([]domain.Jardinier, error) {
	var out []domain.Jardinier
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *JardinierRepo) Create(ctx context.Context, j *domain.Jardinier) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JardinierRepo) Update(ctx context.Context, j *domain.Jardinier) error {
	// Save writes zero values too: clearing numero_parcelle must stick.
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *JardinierRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Jardinier{}).Error
}

func (r *JardinierRepo) ClearNumeroParcelle(ctx context.Context, numero string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Jardinier{}).
		Where("numero_parcelle = ?", numero).
		Update("numero_parcelle", "").Error
}
