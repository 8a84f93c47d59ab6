package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jardins-api/internal/domain"
)

// fakeJardinierRepo keeps rows in a slice and can be told to fail.
type fakeJardinierRepo struct {
	rows    []domain.Jardinier
	listErr error
}

func (f *fakeJardinierRepo) List(ctx context.Context) ([]domain.Jardinier, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Jardinier, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeJardinierRepo) Create(ctx context.Context, j *domain.Jardinier) error {
	f.rows = append(f.rows, *j)
	return nil
}

func (f *fakeJardinierRepo) Update(ctx context.Context, j *domain.Jardinier) error {
	for i := range f.rows {
		if f.rows[i].ID == j.ID {
			f.rows[i] = *j
			return nil
		}
	}
	return errors.New("no row")
}

func (f *fakeJardinierRepo) Delete(ctx context.Context, id string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeJardinierRepo) ClearNumeroParcelle(ctx context.Context, numero string) error {
	for i := range f.rows {
		if f.rows[i].NumeroParcelle == numero {
			f.rows[i].NumeroParcelle = ""
		}
	}
	return nil
}

type fakeParcelleRepo struct {
	rows    []domain.Parcelle
	listErr error
}

func (f *fakeParcelleRepo) List(ctx context.Context) ([]domain.Parcelle, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Parcelle, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeParcelleRepo) Create(ctx context.Context, p *domain.Parcelle) error {
	f.rows = append(f.rows, *p)
	return nil
}

func (f *fakeParcelleRepo) Update(ctx context.Context, p *domain.Parcelle) error {
	for i := range f.rows {
		if f.rows[i].ID == p.ID {
			f.rows[i] = *p
			return nil
		}
	}
	return errors.New("no row")
}

func (f *fakeParcelleRepo) Delete(ctx context.Context, id string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestStore(t *testing.T, jr *fakeJardinierRepo, pr *fakeParcelleRepo) *Store {
	t.Helper()
	s := NewStore(jr, pr, zap.NewNop())
	require.NoError(t, s.LoadAll(context.Background()))
	return s
}

func TestStoreFailedLoadKeepsSnapshot(t *testing.T) {
	jr := &fakeJardinierRepo{rows: []domain.Jardinier{{ID: "a", Nom: "Dupont"}}}
	pr := &fakeParcelleRepo{}
	s := newTestStore(t, jr, pr)

	jr.listErr = errors.New("db down")
	assert.Error(t, s.LoadAll(context.Background()))

	got := s.Jardiniers()
	require.Len(t, got, 1)
	assert.Equal(t, "Dupont", got[0].Nom)
}

func TestStoreSaveJardinierValidates(t *testing.T) {
	jr := &fakeJardinierRepo{rows: []domain.Jardinier{
		{ID: "dupont", Nom: "Dupont", NumeroParcelle: "12"},
	}}
	pr := &fakeParcelleRepo{rows: []domain.Parcelle{
		{ID: "p12", NumeroParcelle: "12", Secteur: domain.SecteurSiege},
		{ID: "p12b", NumeroParcelle: "12 bis", Secteur: domain.SecteurSiege},
	}}
	s := newTestStore(t, jr, pr)
	ctx := context.Background()

	t.Run("unknown parcelle rejected before persist", func(t *testing.T) {
		j := domain.Jardinier{Nom: "Martin", NumeroParcelle: "99"}
		assert.ErrorIs(t, s.SaveJardinier(ctx, &j), ErrParcelleInconnue)
		assert.Len(t, jr.rows, 1)
	})

	t.Run("held parcelle rejected", func(t *testing.T) {
		j := domain.Jardinier{Nom: "Martin", NumeroParcelle: "12"}
		assert.ErrorIs(t, s.SaveJardinier(ctx, &j), ErrParcelleAttribuee)
	})

	t.Run("bad statut rejected", func(t *testing.T) {
		j := domain.Jardinier{Nom: "Martin", Statut: "honoraire"}
		assert.ErrorIs(t, s.SaveJardinier(ctx, &j), ErrStatutInvalide)
	})

	t.Run("create assigns id, persists and reloads", func(t *testing.T) {
		j := domain.Jardinier{Nom: "Martin", NumeroParcelle: " 12   bis ", Statut: domain.StatutActif}
		require.NoError(t, s.SaveJardinier(ctx, &j))
		assert.NotEmpty(t, j.ID)
		assert.Equal(t, "12 bis", j.NumeroParcelle)
		assert.Len(t, s.Jardiniers(), 2)
	})

	t.Run("update keeps own parcelle valid", func(t *testing.T) {
		j := domain.Jardinier{ID: "dupont", Nom: "Dupont J.", NumeroParcelle: "12"}
		require.NoError(t, s.SaveJardinier(ctx, &j))
	})
}

func TestStoreUnassign(t *testing.T) {
	jr := &fakeJardinierRepo{rows: []domain.Jardinier{
		{ID: "dupont", Nom: "Dupont", NumeroParcelle: "12"},
	}}
	pr := &fakeParcelleRepo{rows: []domain.Parcelle{
		{ID: "p12", NumeroParcelle: "12", Secteur: domain.SecteurSiege},
	}}
	s := newTestStore(t, jr, pr)
	ctx := context.Background()

	assert.ErrorIs(t, s.Unassign(ctx, "ghost"), ErrIntrouvable)

	require.NoError(t, s.Unassign(ctx, "dupont"))
	got := s.Jardiniers()
	require.Len(t, got, 1)
	assert.Empty(t, got[0].NumeroParcelle)

	// the freed parcelle is assignable again
	assert.Equal(t, []string{"12"}, numeros(s.Disponibles("")))
}

func TestStoreDeleteParcelleCascades(t *testing.T) {
	jr := &fakeJardinierRepo{rows: []domain.Jardinier{
		{ID: "dupont", Nom: "Dupont", NumeroParcelle: "12"},
		{ID: "martin", Nom: "Martin", NumeroParcelle: "3"},
	}}
	pr := &fakeParcelleRepo{rows: []domain.Parcelle{
		{ID: "p12", NumeroParcelle: "12", Secteur: domain.SecteurSiege},
		{ID: "p3", NumeroParcelle: "3", Secteur: domain.SecteurNord},
	}}
	s := newTestStore(t, jr, pr)
	ctx := context.Background()

	assert.ErrorIs(t, s.DeleteParcelle(ctx, "ghost"), ErrIntrouvable)

	require.NoError(t, s.DeleteParcelle(ctx, "p12"))

	assert.Equal(t, []string{"3"}, numeros(s.Parcelles()))
	for _, j := range s.Jardiniers() {
		if j.ID == "dupont" {
			assert.Empty(t, j.NumeroParcelle, "cascade must clear the dangling reference")
		}
		if j.ID == "martin" {
			assert.Equal(t, "3", j.NumeroParcelle)
		}
	}
}

func TestStoreSaveParcelle(t *testing.T) {
	jr := &fakeJardinierRepo{}
	pr := &fakeParcelleRepo{}
	s := newTestStore(t, jr, pr)
	ctx := context.Background()

	t.Run("bad secteur rejected", func(t *testing.T) {
		p := domain.Parcelle{NumeroParcelle: "1", Secteur: "colline"}
		assert.ErrorIs(t, s.SaveParcelle(ctx, &p), ErrSecteurInvalide)
	})

	t.Run("create normalizes numero", func(t *testing.T) {
		p := domain.Parcelle{NumeroParcelle: "  7  ", Secteur: domain.SecteurSiege}
		require.NoError(t, s.SaveParcelle(ctx, &p))
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, []string{"7"}, numeros(s.Parcelles()))
	})

	t.Run("duplicate numero allowed", func(t *testing.T) {
		p := domain.Parcelle{NumeroParcelle: "7", Secteur: domain.SecteurNord}
		require.NoError(t, s.SaveParcelle(ctx, &p))
		assert.Len(t, s.Parcelles(), 2)
	})
}
