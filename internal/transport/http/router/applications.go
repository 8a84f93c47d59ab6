package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jardins-api/internal/domain"
	"jardins-api/internal/transport/http/ez"
	mdw "jardins-api/internal/transport/http/middleware"
	resp "jardins-api/internal/transport/http/response"
	"jardins-api/pkg/utils"
	"jardins-api/pkg/validate"
)

type applicationIn struct {
	Nom                 string `json:"nom"`
	Adresse             string `json:"adresse"`
	Ville               string `json:"ville"`
	TelephonePortable   string `json:"telephoneportable"`
	TelephoneFixe       string `json:"telephonefixe"`
	Email               string `json:"email"`
	TailleJardin        string `json:"taillejardin"`
	Experience          string `json:"experience"`
	BudgetConnu         string `json:"budgetconnu"`
	TempsDisponible     string `json:"tempsdisponible"`
	InspectionConnu     string `json:"inspectionconnu"`
	EngagementCharte    string `json:"engagementcharte"`
	EngagementReglement string `json:"engagementreglement"`
	EngagementLieuPub   string `json:"engagementlieupublic"`
	Motivations         string `json:"motivations"`
}

// validateApplication mirrors the form's client-side checks so a bypassed
// front cannot submit junk: email and French phone formats plus the required
// field enumeration, reported per field in French.
func validateApplication(in *applicationIn) map[string]string {
	errs := map[string]string{}

	switch {
	case in.Email == "":
		errs["email"] = "L'email est obligatoire"
	case !validate.Email(in.Email):
		errs["email"] = "Format d'email invalide"
	}

	switch {
	case in.TelephonePortable == "":
		errs["telephoneportable"] = "Le téléphone portable est obligatoire"
	case !validate.TelephoneFR(in.TelephonePortable):
		errs["telephoneportable"] = "Format de téléphone invalide (ex: 0612345678)"
	}
	if in.TelephoneFixe != "" && !validate.TelephoneFR(in.TelephoneFixe) {
		errs["telephonefixe"] = "Format de téléphone invalide (ex: 0412345678)"
	}

	required := []struct{ name, label, value string }{
		{"nom", "Le nom et prénom", in.Nom},
		{"adresse", "L'adresse", in.Adresse},
		{"ville", "La ville", in.Ville},
		{"taillejardin", "La taille du jardin", in.TailleJardin},
		{"experience", "L'expérience de jardinage", in.Experience},
		{"budgetconnu", "La connaissance du budget", in.BudgetConnu},
		{"tempsdisponible", "Le temps disponible", in.TempsDisponible},
		{"inspectionconnu", "La connaissance des inspections", in.InspectionConnu},
		{"engagementcharte", "L'engagement à la charte", in.EngagementCharte},
		{"engagementreglement", "L'engagement au règlement", in.EngagementReglement},
		{"engagementlieupublic", "L'engagement lieu public", in.EngagementLieuPub},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs[f.name] = f.label + " est obligatoire"
		}
	}
	if strings.TrimSpace(in.Motivations) == "" {
		errs["motivations"] = "Les motivations sont obligatoires"
	}
	return errs
}

func mountPublicApplications(api *gin.RouterGroup, d APIDeps) {
	pub := ez.New(api)

	ez.Register(pub, ez.Action[struct{}, []domain.FormField]{
		Method: http.MethodGet, Path: "/form-fields", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.FormField, error) {
			fields, err := d.Content.ListFormFields(c.Request.Context())
			if err != nil {
				return nil, ez.Internal("chargement du formulaire", err)
			}
			return fields, nil
		},
	})

	form := api.Group("")
	form.Use(mdw.RateLimitPerIP(1, 3))

	form.POST("/applications", func(c *gin.Context) {
		var in applicationIn
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
			return
		}
		if errs := validateApplication(&in); len(errs) > 0 {
			c.JSON(http.StatusOK, resp.New(resp.CodeBadRequest, "formulaire invalide", gin.H{"errors": errs}))
			return
		}

		app := domain.Application{
			ID:                  utils.NewID(),
			Nom:                 strings.TrimSpace(in.Nom),
			Adresse:             strings.TrimSpace(in.Adresse),
			Ville:               strings.TrimSpace(in.Ville),
			TelephonePortable:   strings.TrimSpace(in.TelephonePortable),
			TelephoneFixe:       strings.TrimSpace(in.TelephoneFixe),
			Email:               strings.TrimSpace(in.Email),
			TailleJardin:        in.TailleJardin,
			Experience:          in.Experience,
			BudgetConnu:         in.BudgetConnu,
			TempsDisponible:     in.TempsDisponible,
			InspectionConnu:     in.InspectionConnu,
			EngagementCharte:    in.EngagementCharte,
			EngagementReglement: in.EngagementReglement,
			EngagementLieuPub:   in.EngagementLieuPub,
			Motivations:         strings.TrimSpace(in.Motivations),
			Processed:           false,
		}
		if err := d.Content.CreateApplication(c.Request.Context(), &app); err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "enregistrement de la candidature"))
			return
		}

		pending, err := d.Content.CountPendingApplications(c.Request.Context())
		if err != nil {
			pending = 0
		}
		c.JSON(http.StatusOK, resp.OK(gin.H{"id": app.ID, "pending": pending}))
	})
}
