package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jardins-api/internal/domain"
)

// ContentRepo backs everything the site publishes besides the registry:
// blog posts, events, annonces, applications, form fields, association copy.
type ContentRepo struct{ db *gorm.DB }

func NewContentRepo(db *gorm.DB) *ContentRepo { return &ContentRepo{db: db} }

// --- blog ---

func (r *ContentRepo) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var out []domain.BlogPost
	err := r.db.WithContext(ctx).Order("date DESC").Find(&out).Error
	return out, err
}

func (r *ContentRepo) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ContentRepo) SavePost(ctx context.Context, p *domain.BlogPost) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ContentRepo) DeletePost(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.BlogPost{}).Error
}

// --- events ---

func (r *ContentRepo) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var out []domain.Event
	err := r.db.WithContext(ctx).Order("date DESC").Find(&out).Error
	return out, err
}

func (r *ContentRepo) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &e, err
}

func (r *ContentRepo) SaveEvent(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *ContentRepo) DeleteEvent(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Event{}).Error
}

// --- annonces ---

func (r *ContentRepo) ListAnnonces(ctx context.Context, statut string) ([]domain.Annonce, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if statut != "" {
		q = q.Where("statut = ?", statut)
	}
	var out []domain.Annonce
	err := q.Find(&out).Error
	return out, err
}

func (r *ContentRepo) SaveAnnonce(ctx context.Context, a *domain.Annonce) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ContentRepo) SetAnnonceStatut(ctx context.Context, id, statut string) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Annonce{}).
		Where("id = ?", id).
		Update("statut", statut)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContentRepo) DeleteAnnonce(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Annonce{}).Error
}

// --- applications ---

func (r *ContentRepo) ListApplications(ctx context.Context) ([]domain.Application, error) {
	var out []domain.Application
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *ContentRepo) CountPendingApplications(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("processed = ?", false).
		Count(&n).Error
	return n, err
}

func (r *ContentRepo) CreateApplication(ctx context.Context, a *domain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ContentRepo) SetApplicationProcessed(ctx context.Context, id string, processed bool) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("id = ?", id).
		Update("processed", processed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --- form fields ---

func (r *ContentRepo) ListFormFields(ctx context.Context) ([]domain.FormField, error) {
	var out []domain.FormField
	err := r.db.WithContext(ctx).Order("label ASC").Find(&out).Error
	return out, err
}

// ReplaceFormFields swaps the whole form definition in one transaction, the
// way the settings page saves it.
func (r *ContentRepo) ReplaceFormFields(ctx context.Context, fields []domain.FormField) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.FormField{}).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Create(&fields).Error
	})
}

// --- association content ---

func (r *ContentRepo) GetAssociation(ctx context.Context) (*domain.AssociationContent, error) {
	var c domain.AssociationContent
	err := r.db.WithContext(ctx).Limit(1).Find(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, nil
	}
	return &c, nil
}

func (r *ContentRepo) UpdateAssociation(ctx context.Context, c *domain.AssociationContent) error {
	return r.db.WithContext(ctx).Save(c).Error
}
