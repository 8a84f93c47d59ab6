package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jardins-api/internal/domain"
	"jardins-api/internal/registry"
	"jardins-api/internal/transport/http/ez"
	resp "jardins-api/internal/transport/http/response"
)

type memJardinierRepo struct{ rows []domain.Jardinier }

func (m *memJardinierRepo) List(ctx context.Context) ([]domain.Jardinier, error) {
	out := make([]domain.Jardinier, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memJardinierRepo) Create(ctx context.Context, j *domain.Jardinier) error {
	m.rows = append(m.rows, *j)
	return nil
}

func (m *memJardinierRepo) Update(ctx context.Context, j *domain.Jardinier) error {
	for i := range m.rows {
		if m.rows[i].ID == j.ID {
			m.rows[i] = *j
			return nil
		}
	}
	return nil
}

func (m *memJardinierRepo) Delete(ctx context.Context, id string) error {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memJardinierRepo) ClearNumeroParcelle(ctx context.Context, numero string) error {
	for i := range m.rows {
		if m.rows[i].NumeroParcelle == numero {
			m.rows[i].NumeroParcelle = ""
		}
	}
	return nil
}

type memParcelleRepo struct{ rows []domain.Parcelle }

func (m *memParcelleRepo) List(ctx context.Context) ([]domain.Parcelle, error) {
	out := make([]domain.Parcelle, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memParcelleRepo) Create(ctx context.Context, p *domain.Parcelle) error {
	m.rows = append(m.rows, *p)
	return nil
}

func (m *memParcelleRepo) Update(ctx context.Context, p *domain.Parcelle) error {
	for i := range m.rows {
		if m.rows[i].ID == p.ID {
			m.rows[i] = *p
			return nil
		}
	}
	return nil
}

func (m *memParcelleRepo) Delete(ctx context.Context, id string) error {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func newRegistreRouter(t *testing.T, jr *memJardinierRepo, pr *memParcelleRepo) (*gin.Engine, *registry.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := registry.NewStore(jr, pr, zap.NewNop())
	require.NoError(t, s.LoadAll(context.Background()))

	r := gin.New()
	g := ez.New(r.Group("/admin/v1"))
	d := AdminDeps{Store: s}
	mountJardiniers(g, d)
	mountParcelles(g, d)
	return r, s
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) resp.Resp {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out resp.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateJardinierWithoutNom(t *testing.T) {
	jr := &memJardinierRepo{}
	pr := &memParcelleRepo{rows: []domain.Parcelle{
		{ID: "p12", NumeroParcelle: "12", Secteur: domain.SecteurSiege},
	}}
	r, s := newRegistreRouter(t, jr, pr)

	// nom is optional: a row holding only a parcelle must save
	out := postJSON(t, r, "/admin/v1/jardiniers", `{"numero_parcelle":"12"}`)
	assert.Equal(t, resp.CodeOK, out.Code, out.Msg)

	got := s.Jardiniers()
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Nom)
	assert.Equal(t, "12", got[0].NumeroParcelle)
}

func TestCreateJardinierBadParcelleStillRejected(t *testing.T) {
	jr := &memJardinierRepo{}
	pr := &memParcelleRepo{}
	r, _ := newRegistreRouter(t, jr, pr)

	out := postJSON(t, r, "/admin/v1/jardiniers", `{"numero_parcelle":"99"}`)
	assert.Equal(t, resp.CodeBadRequest, out.Code)
	assert.Equal(t, registry.ErrParcelleInconnue.Error(), out.Msg)
}

func TestCreateParcelleWithoutSecteur(t *testing.T) {
	jr := &memJardinierRepo{}
	pr := &memParcelleRepo{}
	r, s := newRegistreRouter(t, jr, pr)

	// legacy rows have no secteur and some have no numero either
	out := postJSON(t, r, "/admin/v1/parcelles", `{"numero_parcelle":"7","surface_m2":80}`)
	assert.Equal(t, resp.CodeOK, out.Code, out.Msg)

	out = postJSON(t, r, "/admin/v1/parcelles", `{"surface_m2":50}`)
	assert.Equal(t, resp.CodeOK, out.Code, out.Msg)

	got := s.Parcelles()
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Empty(t, p.Secteur)
	}
}

func TestCreateParcelleBadSecteurRejected(t *testing.T) {
	jr := &memJardinierRepo{}
	pr := &memParcelleRepo{}
	r, _ := newRegistreRouter(t, jr, pr)

	out := postJSON(t, r, "/admin/v1/parcelles", `{"numero_parcelle":"7","secteur":"colline"}`)
	assert.Equal(t, resp.CodeBadRequest, out.Code)
	assert.Equal(t, registry.ErrSecteurInvalide.Error(), out.Msg)
}
