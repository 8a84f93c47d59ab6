package registry

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"jardins-api/internal/domain"
	"jardins-api/pkg/utils"
)

// Field-level rejections raised before anything is persisted.
var (
	ErrStatutInvalide  = errors.New("statut invalide (actif ou retraite)")
	ErrSecteurInvalide = errors.New("secteur invalide")
	ErrIntrouvable     = errors.New("introuvable")
)

// Store owns the in-memory snapshot of the jardinier/parcelle registry for
// the admin process. Loads are atomic full replaces; a failed load keeps the
// previous snapshot so lists stay usable while the database flaps. Every
// mutation runs validate → persist → reload under the same lock, so two
// concurrent saves cannot both pass validation against the same stale view.
type Store struct {
	mu         sync.RWMutex
	jardiniers []domain.Jardinier
	parcelles  []domain.Parcelle

	jardinierRepo domain.JardinierRepository
	parcelleRepo  domain.ParcelleRepository
	log           *zap.Logger
}

func NewStore(jr domain.JardinierRepository, pr domain.ParcelleRepository, log *zap.Logger) *Store {
	return &Store{jardinierRepo: jr, parcelleRepo: pr, log: log}
}

// LoadJardiniers replaces the jardinier snapshot from the repository.
func (s *Store) LoadJardiniers(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadJardiniers(ctx)
}

// LoadParcelles replaces the parcelle snapshot from the repository.
func (s *Store) LoadParcelles(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadParcelles(ctx)
}

// LoadAll refreshes both collections. Partial success is kept: a parcelle
// load failure does not roll back a jardinier load that already succeeded.
func (s *Store) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reloadJardiniers(ctx); err != nil {
		return err
	}
	return s.reloadParcelles(ctx)
}

func (s *Store) reloadJardiniers(ctx context.Context) error {
	list, err := s.jardinierRepo.List(ctx)
	if err != nil {
		s.log.Warn("chargement jardiniers", zap.Error(err))
		return err
	}
	s.jardiniers = list
	return nil
}

func (s *Store) reloadParcelles(ctx context.Context) error {
	list, err := s.parcelleRepo.List(ctx)
	if err != nil {
		s.log.Warn("chargement parcelles", zap.Error(err))
		return err
	}
	s.parcelles = list
	return nil
}

// Jardiniers returns a copy of the current snapshot.
func (s *Store) Jardiniers() []domain.Jardinier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Jardinier, len(s.jardiniers))
	copy(out, s.jardiniers)
	return out
}

// Parcelles returns a copy of the current snapshot.
func (s *Store) Parcelles() []domain.Parcelle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Parcelle, len(s.parcelles))
	copy(out, s.parcelles)
	return out
}

// ListJardiniers applies the search filter then the composite sort over the
// snapshot. Pure derived view, recomputed per call.
func (s *Store) ListJardiniers(q, key string, dir SortDir) []domain.Jardinier {
	s.mu.RLock()
	jardiniers := s.jardiniers
	parcelles := s.parcelles
	s.mu.RUnlock()
	return SortJardiniers(FilterJardiniers(jardiniers, parcelles, q), key, dir)
}

func (s *Store) ListParcelles(key string, dir SortDir) []domain.Parcelle {
	s.mu.RLock()
	parcelles := s.parcelles
	s.mu.RUnlock()
	return SortParcelles(parcelles, key, dir)
}

// Disponibles lists the parcelles assignable to the jardinier being edited.
func (s *Store) Disponibles(editingID string) []domain.Parcelle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AvailableParcelles(s.jardiniers, s.parcelles, editingID)
}

// StatsJardiniers recomputes the demographic summary from the snapshot.
func (s *Store) StatsJardiniers() JardinierStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeJardinierStats(s.jardiniers, time.Now().Year())
}

func (s *Store) StatsParcelles() ParcelleStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeParcelleStats(s.parcelles)
}

// SaveJardinier validates the parcelle assignment against the snapshot,
// persists (create when j.ID is empty), then reloads both collections. On a
// rejection or a repository error nothing in the snapshot changes.
func (s *Store) SaveJardinier(ctx context.Context, j *domain.Jardinier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j.NumeroParcelle = NormalizeNumero(j.NumeroParcelle)
	switch j.Statut {
	case "", domain.StatutActif, domain.StatutRetraite:
	default:
		return ErrStatutInvalide
	}
	if err := ValidateAttribution(s.jardiniers, s.parcelles, j.ID, j.NumeroParcelle); err != nil {
		return err
	}

	if j.ID == "" {
		j.ID = utils.NewID()
		if err := s.jardinierRepo.Create(ctx, j); err != nil {
			return err
		}
	} else {
		if err := s.jardinierRepo.Update(ctx, j); err != nil {
			return err
		}
	}
	if err := s.reloadJardiniers(ctx); err != nil {
		return err
	}
	return s.reloadParcelles(ctx)
}

// DeleteJardinier removes the row; the parcelle it held becomes free on the
// next validation pass simply by no longer being referenced.
func (s *Store) DeleteJardinier(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.jardinierRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.reloadJardiniers(ctx)
}

// Unassign clears a jardinier's parcelle reference and persists.
func (s *Store) Unassign(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *domain.Jardinier
	for i := range s.jardiniers {
		if s.jardiniers[i].ID == id {
			found = &s.jardiniers[i]
			break
		}
	}
	if found == nil {
		return ErrIntrouvable
	}

	j := *found
	j.NumeroParcelle = ""
	if err := s.jardinierRepo.Update(ctx, &j); err != nil {
		return err
	}
	return s.reloadJardiniers(ctx)
}

// SaveParcelle persists a parcelle (create when p.ID is empty) and reloads.
// Duplicate numeros are not rejected; the site has always allowed them.
func (s *Store) SaveParcelle(ctx context.Context, p *domain.Parcelle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.NumeroParcelle = NormalizeNumero(p.NumeroParcelle)
	if p.Secteur != "" && !p.Secteur.Valid() {
		return ErrSecteurInvalide
	}

	if p.ID == "" {
		p.ID = utils.NewID()
		if err := s.parcelleRepo.Create(ctx, p); err != nil {
			return err
		}
	} else {
		if err := s.parcelleRepo.Update(ctx, p); err != nil {
			return err
		}
	}
	return s.reloadParcelles(ctx)
}

// DeleteParcelle clears every jardinier referencing the parcelle's numero
// BEFORE removing the row, so no dangling reference survives the delete.
func (s *Store) DeleteParcelle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var numero string
	found := false
	for _, p := range s.parcelles {
		if p.ID == id {
			numero = p.NumeroParcelle
			found = true
			break
		}
	}
	if !found {
		return ErrIntrouvable
	}

	if numero != "" {
		if err := s.jardinierRepo.ClearNumeroParcelle(ctx, numero); err != nil {
			return err
		}
	}
	if err := s.parcelleRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.reloadJardiniers(ctx); err != nil {
		return err
	}
	return s.reloadParcelles(ctx)
}
