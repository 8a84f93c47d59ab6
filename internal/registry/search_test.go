package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jardins-api/internal/domain"
)

func TestFilterJardiniers(t *testing.T) {
	n := func(v int) *int { return &v }
	parcelles := []domain.Parcelle{
		{ID: "p12", NumeroParcelle: "12", Secteur: domain.SecteurDigueSud},
		{ID: "p3", NumeroParcelle: "3", Secteur: domain.SecteurSiege},
	}
	jardiniers := []domain.Jardinier{
		{ID: "a", Nom: "Dupont Marie", Telephone: "0612345678", NumeroParcelle: "12", Anciennete: n(5)},
		{ID: "b", Nom: "Martin Paul", Telephone: "0499887766", NumeroParcelle: "3"},
		{ID: "c", Nom: "Durand Luc"},
	}

	cases := []struct {
		name string
		q    string
		want []string
	}{
		{"empty query returns all", "", []string{"a", "b", "c"}},
		{"by name fragment", "dup", []string{"a"}},
		{"case insensitive", "MARTIN", []string{"b"}},
		{"by telephone", "0612", []string{"a"}},
		{"by numero", "12", []string{"a"}},
		{"by anciennete", "5", []string{"a"}},
		{"by secteur label without prefix", "digue", []string{"a"}},
		{"by raw secteur value", "digue_sud", []string{"a"}},
		{"all tokens must match", "dupont 12", []string{"a"}},
		{"token miss drops the row", "dupont 99", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FilterJardiniers(jardiniers, parcelles, c.q)
			assert.Equal(t, c.want, idsOrNil(got))
		})
	}
}

func idsOrNil(list []domain.Jardinier) []string {
	if len(list) == 0 {
		return nil
	}
	return ids(list)
}
