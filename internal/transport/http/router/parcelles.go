package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jardins-api/internal/domain"
	"jardins-api/internal/registry"
	"jardins-api/internal/transport/http/ez"
)

type parcelleListIn struct {
	Sort string `form:"sort"`
	Dir  string `form:"dir"`
}

type disponiblesIn struct {
	// EditingID makes the edited gardener's own plot show up as free.
	EditingID string `form:"editing_id"`
}

type parcelleIn struct {
	ID             string   `json:"id"`
	NumeroParcelle string   `json:"numero_parcelle"`
	SurfaceM2      *float64 `json:"surface_m2"`
	Secteur        string   `json:"secteur"`
}

func mountParcelles(g ez.Group, d AdminDeps) {
	ez.Register(g, ez.Action[parcelleListIn, []domain.Parcelle]{
		Method: http.MethodGet, Path: "/parcelles", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *parcelleListIn) ([]domain.Parcelle, error) {
			return d.Store.ListParcelles(in.Sort, registry.SortDir(in.Dir)), nil
		},
	})

	ez.Register(g, ez.Action[disponiblesIn, []domain.Parcelle]{
		Method: http.MethodGet, Path: "/parcelles/disponibles", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *disponiblesIn) ([]domain.Parcelle, error) {
			return d.Store.Disponibles(in.EditingID), nil
		},
	})

	ez.Register(g, ez.Action[struct{}, registry.ParcelleStats]{
		Method: http.MethodGet, Path: "/parcelles/stats", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (registry.ParcelleStats, error) {
			return d.Store.StatsParcelles(), nil
		},
	})

	save := func(c *gin.Context, in *parcelleIn) (domain.Parcelle, error) {
		p := domain.Parcelle{
			ID:             in.ID,
			NumeroParcelle: in.NumeroParcelle,
			SurfaceM2:      in.SurfaceM2,
			Secteur:        domain.Secteur(in.Secteur),
		}
		if err := d.Store.SaveParcelle(c.Request.Context(), &p); err != nil {
			return domain.Parcelle{}, registryErr(err, "enregistrement de la parcelle")
		}
		return p, nil
	}

	ez.Register(g, ez.Action[parcelleIn, domain.Parcelle]{
		Method: http.MethodPost, Path: "/parcelles", Binder: ez.BindJSON, Handler: save,
	})
	ez.Register(g, ez.Action[parcelleIn, domain.Parcelle]{
		Method: http.MethodPut, Path: "/parcelles", Binder: ez.BindJSON, Handler: save,
	})

	// Deleting a plot also frees every gardener that held its number.
	ez.Register(g, ez.Action[idIn, struct{}]{
		Method: http.MethodPost, Path: "/parcelles/delete", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *idIn) (struct{}, error) {
			if err := d.Store.DeleteParcelle(c.Request.Context(), in.ID); err != nil {
				return struct{}{}, registryErr(err, "suppression de la parcelle")
			}
			return struct{}{}, nil
		},
	})
}
