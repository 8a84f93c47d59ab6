package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullApplication() applicationIn {
	return applicationIn{
		Nom:                 "Marie Dupont",
		Adresse:             "3 rue des Jardins",
		Ville:               "Saint-Genis-Laval",
		TelephonePortable:   "06 12 34 56 78",
		Email:               "marie@example.fr",
		TailleJardin:        "100m2",
		Experience:          "debutant",
		BudgetConnu:         "oui",
		TempsDisponible:     "weekend",
		InspectionConnu:     "oui",
		EngagementCharte:    "oui",
		EngagementReglement: "oui",
		EngagementLieuPub:   "oui",
		Motivations:         "Cultiver des légumes en famille.",
	}
}

func TestValidateApplicationComplete(t *testing.T) {
	in := fullApplication()
	assert.Empty(t, validateApplication(&in))
}

func TestValidateApplicationMissingFields(t *testing.T) {
	in := applicationIn{}
	errs := validateApplication(&in)

	assert.Equal(t, "L'email est obligatoire", errs["email"])
	assert.Equal(t, "Le téléphone portable est obligatoire", errs["telephoneportable"])
	assert.Equal(t, "Le nom et prénom est obligatoire", errs["nom"])
	assert.Equal(t, "Les motivations sont obligatoires", errs["motivations"])
	assert.Len(t, errs, 14)
}

func TestValidateApplicationFormats(t *testing.T) {
	in := fullApplication()
	in.Email = "pas-un-email"
	in.TelephonePortable = "123"
	errs := validateApplication(&in)

	assert.Equal(t, "Format d'email invalide", errs["email"])
	assert.Contains(t, errs["telephoneportable"], "Format de téléphone invalide")
}

func TestValidateApplicationOptionalFixe(t *testing.T) {
	in := fullApplication()
	assert.Empty(t, validateApplication(&in), "empty fixed line is fine")

	in.TelephoneFixe = "pas un numero"
	errs := validateApplication(&in)
	assert.Contains(t, errs["telephonefixe"], "Format de téléphone invalide")

	in.TelephoneFixe = "04 78 56 12 34"
	assert.Empty(t, validateApplication(&in))
}

func TestValidateApplicationWhitespaceOnly(t *testing.T) {
	in := fullApplication()
	in.Motivations = "   "
	errs := validateApplication(&in)
	assert.Equal(t, "Les motivations sont obligatoires", errs["motivations"])
}
