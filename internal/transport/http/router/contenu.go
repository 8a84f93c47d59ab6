package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jardins-api/internal/domain"
	"jardins-api/internal/transport/http/ez"
	"jardins-api/pkg/utils"
)

func mountContenu(g ez.Group, d AdminDeps) {
	mountAdminPosts(g, d)
	mountAdminEvents(g, d)
	mountAdminAnnonces(g, d)
	mountAdminApplications(g, d)
	mountAdminFormFields(g, d)
	mountAdminAssociation(g, d)
	mountDashboard(g, d)
}

func mountAdminPosts(g ez.Group, d AdminDeps) {
	ez.Register(g, ez.Action[struct{}, []domain.BlogPost]{
		Method: http.MethodGet, Path: "/posts", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.BlogPost, error) {
			list, err := d.Content.ListPosts(c.Request.Context())
			if err != nil {
				return nil, ez.Internal("lecture des articles", err)
			}
			return list, nil
		},
	})

	save := func(c *gin.Context, in *domain.BlogPost) (domain.BlogPost, error) {
		if in.Title == "" {
			return domain.BlogPost{}, ez.BadRequest("le titre est obligatoire")
		}
		if in.ID == "" {
			in.ID = utils.NewID()
		}
		if err := d.Content.SavePost(c.Request.Context(), in); err != nil {
			return domain.BlogPost{}, ez.Internal("enregistrement de l'article", err)
		}
		d.Cache.Invalidate(c.Request.Context(), CacheKeyPosts)
		return *in, nil
	}
	ez.Register(g, ez.Action[domain.BlogPost, domain.BlogPost]{
		Method: http.MethodPost, Path: "/posts", Binder: ez.BindJSON, Handler: save,
	})
	ez.Register(g, ez.Action[domain.BlogPost, domain.BlogPost]{
		Method: http.MethodPut, Path: "/posts", Binder: ez.BindJSON, Handler: save,
	})

	ez.Register(g, ez.Action[idIn, struct{}]{
		Method: http.MethodPost, Path: "/posts/delete", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *idIn) (struct{}, error) {
			if err := d.Content.DeletePost(c.Request.Context(), in.ID); err != nil {
				return struct{}{}, ez.Internal("suppression de l'article", err)
			}
			d.Cache.Invalidate(c.Request.Context(), CacheKeyPosts)
			return struct{}{}, nil
		},
	})
}

func mountAdminEvents(g ez.Group, d AdminDeps) {
	ez.Register(g, ez.Action[struct{}, []domain.Event]{
		Method: http.MethodGet, Path: "/events", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Event, error) {
			list, err := d.Content.ListEvents(c.Request.Context())
			if err != nil {
				return nil, ez.Internal("lecture des événements", err)
			}
			return list, nil
		},
	})

	save := func(c *gin.Context, in *domain.Event) (domain.Event, error) {
		if in.Title == "" {
			return domain.Event{}, ez.BadRequest("le titre est obligatoire")
		}
		if in.ID == "" {
			in.ID = utils.NewID()
		}
		if err := d.Content.SaveEvent(c.Request.Context(), in); err != nil {
			return domain.Event{}, ez.Internal("enregistrement de l'événement", err)
		}
		d.Cache.Invalidate(c.Request.Context(), CacheKeyEvents)
		return *in, nil
	}
	ez.Register(g, ez.Action[domain.Event, domain.Event]{
		Method: http.MethodPost, Path: "/events", Binder: ez.BindJSON, Handler: save,
	})
	ez.Register(g, ez.Action[domain.Event, domain.Event]{
		Method: http.MethodPut, Path: "/events", Binder: ez.BindJSON, Handler: save,
	})

	ez.Register(g, ez.Action[idIn, struct{}]{
		Method: http.MethodPost, Path: "/events/delete", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *idIn) (struct{}, error) {
			if err := d.Content.DeleteEvent(c.Request.Context(), in.ID); err != nil {
				return struct{}{}, ez.Internal("suppression de l'événement", err)
			}
			d.Cache.Invalidate(c.Request.Context(), CacheKeyEvents)
			return struct{}{}, nil
		},
	})
}

type annonceListIn struct {
	Statut string `form:"statut"` // empty = all
}

func mountAdminAnnonces(g ez.Group, d AdminDeps) {
	ez.Register(g, ez.Action[annonceListIn, []domain.Annonce]{
		Method: http.MethodGet, Path: "/annonces", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *annonceListIn) ([]domain.Annonce, error) {
			list, err := d.Content.ListAnnonces(c.Request.Context(), in.Statut)
			if err != nil {
				return nil, ez.Internal("lecture des annonces", err)
			}
			return list, nil
		},
	})

	setStatut := func(statut string) func(c *gin.Context, in *idIn) (struct{}, error) {
		return func(c *gin.Context, in *idIn) (struct{}, error) {
			if err := d.Content.SetAnnonceStatut(c.Request.Context(), in.ID, statut); err != nil {
				return struct{}{}, registryErr(err, "mise à jour de l'annonce")
			}
			return struct{}{}, nil
		}
	}
	ez.Register(g, ez.Action[idIn, struct{}]{
		Method: http.MethodPost, Path: "/annonces/validate", Binder: ez.BindJSON,
		Handler: setStatut(domain.AnnonceValidee),
	})
	ez.Register(g, ez.Action[idIn, struct{}]{
		Method: http.MethodPost, Path: "/annonces/reject", Binder: ez.BindJSON,
		Handler: setStatut(domain.AnnonceRejetee),
	})
	ez.Register(g, ez.Action[idIn, struct{}]{
		Method: http.MethodPost, Path: "/annonces/delete", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *idIn) (struct{}, error) {
			if err := d.Content.DeleteAnnonce(c.Request.Context(), in.ID); err != nil {
				return struct{}{}, ez.Internal("suppression de l'annonce", err)
			}
			return struct{}{}, nil
		},
	})
}

type processIn struct {
	ID        string `json:"id" binding:"required"`
	Processed bool   `json:"processed"`
}

func mountAdminApplications(g ez.Group, d AdminDeps) {
	ez.Register(g, ez.Action[struct{}, []domain.Application]{
		Method: http.MethodGet, Path: "/applications", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Application, error) {
			list, err := d.Content.ListApplications(c.Request.Context())
			if err != nil {
				return nil, ez.Internal("lecture des candidatures", err)
			}
			return list, nil
		},
	})

	ez.Register(g, ez.Action[processIn, struct{}]{
		Method: http.MethodPost, Path: "/applications/process", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *processIn) (struct{}, error) {
			if err := d.Content.SetApplicationProcessed(c.Request.Context(), in.ID, in.Processed); err != nil {
				return struct{}{}, registryErr(err, "mise à jour de la candidature")
			}
			return struct{}{}, nil
		},
	})
}

type formFieldsIn struct {
	Fields []domain.FormField `json:"fields" binding:"required"`
}

func mountAdminFormFields(g ez.Group, d AdminDeps) {
	ez.Register(g, ez.Action[struct{}, []domain.FormField]{
		Method: http.MethodGet, Path: "/form-fields", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.FormField, error) {
			list, err := d.Content.ListFormFields(c.Request.Context())
			if err != nil {
				return nil, ez.Internal("lecture du formulaire", err)
			}
			return list, nil
		},
	})

	// The editor sends the whole list back; rows without an id are new.
	ez.Register(g, ez.Action[formFieldsIn, []domain.FormField]{
		Method: http.MethodPut, Path: "/form-fields", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *formFieldsIn) ([]domain.FormField, error) {
			for i := range in.Fields {
				if in.Fields[i].ID == "" {
					in.Fields[i].ID = utils.NewID()
				}
			}
			if err := d.Content.ReplaceFormFields(c.Request.Context(), in.Fields); err != nil {
				return nil, ez.Internal("enregistrement du formulaire", err)
			}
			return in.Fields, nil
		},
	})
}

func mountAdminAssociation(g ez.Group, d AdminDeps) {
	ez.Register(g, ez.Action[struct{}, *domain.AssociationContent]{
		Method: http.MethodGet, Path: "/association", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.AssociationContent, error) {
			out, err := d.Content.GetAssociation(c.Request.Context())
			if err != nil {
				return nil, ez.Internal("lecture du contenu association", err)
			}
			return out, nil
		},
	})

	ez.Register(g, ez.Action[domain.AssociationContent, domain.AssociationContent]{
		Method: http.MethodPut, Path: "/association", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.AssociationContent) (domain.AssociationContent, error) {
			if in.ID == "" {
				in.ID = utils.NewID()
			}
			if err := d.Content.UpdateAssociation(c.Request.Context(), in); err != nil {
				return domain.AssociationContent{}, ez.Internal("enregistrement du contenu association", err)
			}
			d.Cache.Invalidate(c.Request.Context(), CacheKeyAssociation)
			return *in, nil
		},
	})
}

type dashboardOut struct {
	PendingApplications int64 `json:"pending_applications"`
	PendingAnnonces     int   `json:"pending_annonces"`
	Jardiniers          int   `json:"jardiniers"`
	Parcelles           int   `json:"parcelles"`
}

func mountDashboard(g ez.Group, d AdminDeps) {
	ez.Register(g, ez.Action[struct{}, dashboardOut]{
		Method: http.MethodGet, Path: "/dashboard", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (dashboardOut, error) {
			pending, err := d.Content.CountPendingApplications(c.Request.Context())
			if err != nil {
				return dashboardOut{}, ez.Internal("comptage des candidatures", err)
			}
			annonces, err := d.Content.ListAnnonces(c.Request.Context(), domain.AnnonceEnAttente)
			if err != nil {
				return dashboardOut{}, ez.Internal("comptage des annonces", err)
			}
			return dashboardOut{
				PendingApplications: pending,
				PendingAnnonces:     len(annonces),
				Jardiniers:          len(d.Store.Jardiniers()),
				Parcelles:           len(d.Store.Parcelles()),
			}, nil
		},
	})
}
