package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jardins-api/internal/core/auth"
	"jardins-api/internal/core/cache"
	"jardins-api/internal/domain"
	"jardins-api/internal/registry"
	"jardins-api/internal/transport/http/ez"
	mdw "jardins-api/internal/transport/http/middleware"
	"jardins-api/pkg/utils"
)

type AdminDeps struct {
	Store   *registry.Store
	Content domain.ContentRepository
	Users   domain.UserRepository
	JWT     *auth.JWTer
	Cache   *cache.Cache
}

// NewAdminEngine serves the back-office: login, the registre des jardiniers
// and parcelles, and moderation of the public content.
func NewAdminEngine(l *zap.Logger, d AdminDeps) *gin.Engine {
	r := newEngine(l)
	adm := r.Group("/admin/v1")

	mountLogin(adm, d)

	sec := adm.Group("")
	sec.Use(mdw.AuthJWT(d.JWT, "admin"))
	g := ez.New(sec)

	mountJardiniers(g, d)
	mountParcelles(g, d)
	mountContenu(g, d)

	return r
}

type loginIn struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginOut struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func mountLogin(adm *gin.RouterGroup, d AdminDeps) {
	grp := adm.Group("")
	grp.Use(mdw.RateLimitPerIP(1, 5))
	pub := ez.New(grp)

	ez.Register(pub, ez.Action[loginIn, loginOut]{
		Method: http.MethodPost, Path: "/auth/login", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			u, err := d.Users.FindByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(in.Email)))
			if err != nil {
				return loginOut{}, ez.Internal("lecture du compte", err)
			}
			// Same message whether the account or the password is wrong.
			if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
				return loginOut{}, ez.Unauthorized("identifiants invalides")
			}
			tok, err := d.JWT.Issue(u.ID, u.Role)
			if err != nil {
				return loginOut{}, ez.Internal("émission du jeton", err)
			}
			return loginOut{Token: tok, User: *u}, nil
		},
	})
}
