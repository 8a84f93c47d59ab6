package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jardins-api/internal/domain"
	"jardins-api/internal/registry"
	"jardins-api/internal/transport/http/ez"
)

type jardinierListIn struct {
	Q    string `form:"q"`
	Sort string `form:"sort"`
	Dir  string `form:"dir"`
}

type jardinierIn struct {
	ID             string `json:"id"`
	Nom            string `json:"nom"`
	NumeroParcelle string `json:"numero_parcelle"`
	Adresse        string `json:"adresse"`
	Email          string `json:"email"`
	Telephone      string `json:"telephone"`
	Anciennete     *int   `json:"anciennete"`
	AnneeNaissance *int   `json:"annee_naissance"`
	Statut         string `json:"statut"`
}

type idIn struct {
	ID string `json:"id" binding:"required"`
}

// registryErr maps the registry sentinels onto envelope codes; anything
// unrecognised stays a 500 so persistence failures are not mistaken for
// user mistakes.
func registryErr(err error, fallback string) error {
	switch {
	case errors.Is(err, registry.ErrParcelleInconnue),
		errors.Is(err, registry.ErrParcelleAttribuee),
		errors.Is(err, registry.ErrStatutInvalide),
		errors.Is(err, registry.ErrSecteurInvalide):
		return ez.BadRequest(err.Error())
	case errors.Is(err, registry.ErrIntrouvable),
		errors.Is(err, gorm.ErrRecordNotFound):
		return ez.NotFound(err.Error())
	default:
		return ez.Internal(fallback, err)
	}
}

func mountJardiniers(g ez.Group, d AdminDeps) {
	ez.Register(g, ez.Action[jardinierListIn, []domain.Jardinier]{
		Method: http.MethodGet, Path: "/jardiniers", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *jardinierListIn) ([]domain.Jardinier, error) {
			return d.Store.ListJardiniers(in.Q, in.Sort, registry.SortDir(in.Dir)), nil
		},
	})

	ez.Register(g, ez.Action[struct{}, registry.JardinierStats]{
		Method: http.MethodGet, Path: "/jardiniers/stats", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (registry.JardinierStats, error) {
			return d.Store.StatsJardiniers(), nil
		},
	})

	save := func(c *gin.Context, in *jardinierIn) (domain.Jardinier, error) {
		j := domain.Jardinier{
			ID:             in.ID,
			Nom:            in.Nom,
			NumeroParcelle: in.NumeroParcelle,
			Adresse:        in.Adresse,
			Email:          in.Email,
			Telephone:      in.Telephone,
			Anciennete:     in.Anciennete,
			AnneeNaissance: in.AnneeNaissance,
			Statut:         in.Statut,
		}
		if err := d.Store.SaveJardinier(c.Request.Context(), &j); err != nil {
			return domain.Jardinier{}, registryErr(err, "enregistrement du jardinier")
		}
		return j, nil
	}

	ez.Register(g, ez.Action[jardinierIn, domain.Jardinier]{
		Method: http.MethodPost, Path: "/jardiniers", Binder: ez.BindJSON, Handler: save,
	})
	ez.Register(g, ez.Action[jardinierIn, domain.Jardinier]{
		Method: http.MethodPut, Path: "/jardiniers", Binder: ez.BindJSON, Handler: save,
	})

	ez.Register(g, ez.Action[idIn, struct{}]{
		Method: http.MethodPost, Path: "/jardiniers/delete", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *idIn) (struct{}, error) {
			if err := d.Store.DeleteJardinier(c.Request.Context(), in.ID); err != nil {
				return struct{}{}, registryErr(err, "suppression du jardinier")
			}
			return struct{}{}, nil
		},
	})

	ez.Register(g, ez.Action[idIn, struct{}]{
		Method: http.MethodPost, Path: "/jardiniers/unassign", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *idIn) (struct{}, error) {
			if err := d.Store.Unassign(c.Request.Context(), in.ID); err != nil {
				return struct{}{}, registryErr(err, "libération de la parcelle")
			}
			return struct{}{}, nil
		},
	})

	// Re-reads both tables, for when rows were touched outside the API.
	ez.Register(g, ez.Action[struct{}, struct{}]{
		Method: http.MethodPost, Path: "/registre/refresh", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			if err := d.Store.LoadAll(c.Request.Context()); err != nil {
				return struct{}{}, ez.Internal("rechargement du registre", err)
			}
			return struct{}{}, nil
		},
	})
}
