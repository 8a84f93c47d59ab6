package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jardins-api/internal/core/cache"
	"jardins-api/internal/domain"
	"jardins-api/internal/transport/http/ez"
	mdw "jardins-api/internal/transport/http/middleware"
	"jardins-api/pkg/utils"
	"jardins-api/pkg/validate"
)

// Cache keys shared with the admin binary, which invalidates them on write.
const (
	CacheKeyAssociation = "public:association"
	CacheKeyPosts       = "public:posts"
	CacheKeyEvents      = "public:events"
)

type APIDeps struct {
	Content    domain.ContentRepository
	Cache      *cache.Cache
	ContentTTL time.Duration
}

// NewAPIEngine serves the public site: association copy, blog, events,
// validated annonces, and the two submission forms.
func NewAPIEngine(l *zap.Logger, d APIDeps) *gin.Engine {
	r := newEngine(l)
	api := r.Group("/api/v1")

	pub := ez.New(api)

	ez.Register(pub, ez.Action[struct{}, *domain.AssociationContent]{
		Method: http.MethodGet, Path: "/association", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.AssociationContent, error) {
			out, err := cache.GetOrLoadJSON(d.Cache, c.Request.Context(), CacheKeyAssociation, d.ContentTTL,
				func(ctx context.Context) (*domain.AssociationContent, error) {
					return d.Content.GetAssociation(ctx)
				})
			if err != nil {
				return nil, ez.Internal("chargement du contenu association", err)
			}
			return out, nil
		},
	})

	mountPublicPosts(pub, d)
	mountPublicEvents(pub, d)
	mountPublicAnnonces(api, d)
	mountPublicApplications(api, d)

	return r
}

func mountPublicPosts(pub ez.Group, d APIDeps) {
	ez.Register(pub, ez.Action[struct{}, []domain.BlogPost]{
		Method: http.MethodGet, Path: "/posts", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.BlogPost, error) {
			out, err := cache.GetOrLoadJSON(d.Cache, c.Request.Context(), CacheKeyPosts, d.ContentTTL,
				func(ctx context.Context) (*[]domain.BlogPost, error) {
					list, e := d.Content.ListPosts(ctx)
					if e != nil {
						return nil, e
					}
					return &list, nil
				})
			if err != nil {
				return nil, ez.Internal("chargement des articles", err)
			}
			if out == nil {
				return []domain.BlogPost{}, nil
			}
			return *out, nil
		},
	})

	ez.Register(pub, ez.Action[struct{}, *domain.BlogPost]{
		Method: http.MethodGet, Path: "/posts/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.BlogPost, error) {
			p, err := d.Content.GetPost(c.Request.Context(), c.Param("id"))
			if err != nil {
				return nil, ez.Internal("chargement de l'article", err)
			}
			if p == nil {
				return nil, ez.NotFound("article introuvable")
			}
			return p, nil
		},
	})
}

// eventOut decorates an event with the derived isPast flag the front sorts on.
type eventOut struct {
	domain.Event
	IsPast bool `json:"isPast"`
}

func mountPublicEvents(pub ez.Group, d APIDeps) {
	ez.Register(pub, ez.Action[struct{}, []eventOut]{
		Method: http.MethodGet, Path: "/events", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]eventOut, error) {
			cached, err := cache.GetOrLoadJSON(d.Cache, c.Request.Context(), CacheKeyEvents, d.ContentTTL,
				func(ctx context.Context) (*[]domain.Event, error) {
					list, e := d.Content.ListEvents(ctx)
					if e != nil {
						return nil, e
					}
					return &list, nil
				})
			if err != nil {
				return nil, ez.Internal("chargement des événements", err)
			}
			now := time.Now()
			out := make([]eventOut, 0)
			if cached != nil {
				for _, e := range *cached {
					out = append(out, eventOut{Event: e, IsPast: e.IsPast(now)})
				}
			}
			return out, nil
		},
	})

	ez.Register(pub, ez.Action[struct{}, *eventOut]{
		Method: http.MethodGet, Path: "/events/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*eventOut, error) {
			e, err := d.Content.GetEvent(c.Request.Context(), c.Param("id"))
			if err != nil {
				return nil, ez.Internal("chargement de l'événement", err)
			}
			if e == nil {
				return nil, ez.NotFound("événement introuvable")
			}
			return &eventOut{Event: *e, IsPast: e.IsPast(time.Now())}, nil
		},
	})
}

func mountPublicAnnonces(api *gin.RouterGroup, d APIDeps) {
	pub := ez.New(api)

	ez.Register(pub, ez.Action[struct{}, []domain.Annonce]{
		Method: http.MethodGet, Path: "/annonces", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Annonce, error) {
			list, err := d.Content.ListAnnonces(c.Request.Context(), domain.AnnonceValidee)
			if err != nil {
				return nil, ez.Internal("chargement des annonces", err)
			}
			return list, nil
		},
	})

	// Submissions are rate limited per IP; everything lands in en_attente
	// until an admin validates it.
	form := api.Group("")
	form.Use(mdw.RateLimitPerIP(1, 5))
	formEZ := ez.New(form)

	type annonceIn struct {
		Nom     string `json:"nom" binding:"required"`
		Email   string `json:"email"`
		Phone   string `json:"phone" binding:"required"`
		Choix   string `json:"choix" binding:"required,oneof=RECHERCHE VEND DONNE ECHANGE"`
		Message string `json:"message"`
		Photo1  string `json:"photo1"`
		Photo2  string `json:"photo2"`
	}
	ez.Register(formEZ, ez.Action[annonceIn, domain.Annonce]{
		Method: http.MethodPost, Path: "/annonces", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *annonceIn) (domain.Annonce, error) {
			if !validate.TelephoneFR(in.Phone) {
				return domain.Annonce{}, ez.BadRequest("format de téléphone invalide (ex: 0612345678)")
			}
			if in.Email != "" && !validate.Email(in.Email) {
				return domain.Annonce{}, ez.BadRequest("format d'email invalide")
			}
			a := domain.Annonce{
				ID:      utils.NewID(),
				Nom:     strings.TrimSpace(in.Nom),
				Email:   strings.TrimSpace(in.Email),
				Phone:   strings.TrimSpace(in.Phone),
				Choix:   in.Choix,
				Message: strings.TrimSpace(in.Message),
				Photo1:  in.Photo1,
				Photo2:  in.Photo2,
				Statut:  domain.AnnonceEnAttente,
				Date:    time.Now().Format("2006-01-02"),
			}
			if err := d.Content.SaveAnnonce(c.Request.Context(), &a); err != nil {
				return domain.Annonce{}, ez.Internal("enregistrement de l'annonce", err)
			}
			return a, nil
		},
	})
}
