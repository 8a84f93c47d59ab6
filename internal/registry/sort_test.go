package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jardins-api/internal/domain"
)

func numeros(list []domain.Parcelle) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.NumeroParcelle
	}
	return out
}

func parcellesFrom(nums ...string) []domain.Parcelle {
	out := make([]domain.Parcelle, len(nums))
	for i, n := range nums {
		out[i] = domain.Parcelle{ID: n, NumeroParcelle: n, Secteur: domain.SecteurSiege}
	}
	return out
}

func TestNormalizeNumero(t *testing.T) {
	assert.Equal(t, "12 bis", NormalizeNumero("  12   bis "))
	assert.Equal(t, "", NormalizeNumero("   "))
	assert.Equal(t, "7", NormalizeNumero("7"))
}

func TestCompareNumerosNatural(t *testing.T) {
	col := frCollator()
	cases := []struct {
		a, b string
		want int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"2", "2", 0},
		{"2", "2 bis", -1},
		{"2 bis", "2 ter", -1},
		{"12 BIS", "12 bis", 0},
		// no leading digits sorts after every numbered parcelle
		{"annexe", "999", 1},
		{"abri", "annexe", -1},
	}
	for _, c := range cases {
		got := CompareNumeros(col, c.a, c.b)
		switch {
		case c.want < 0:
			assert.Negative(t, got, "%q vs %q", c.a, c.b)
		case c.want > 0:
			assert.Positive(t, got, "%q vs %q", c.a, c.b)
		default:
			assert.Zero(t, got, "%q vs %q", c.a, c.b)
		}
	}
}

func TestSortParcellesNaturalOrder(t *testing.T) {
	in := parcellesFrom("2", "10", "2 bis", "1", "annexe")

	got := SortParcelles(in, KeyNumeroParcelle, Asc)
	assert.Equal(t, []string{"1", "2", "2 bis", "10", "annexe"}, numeros(got))

	// input untouched
	assert.Equal(t, []string{"2", "10", "2 bis", "1", "annexe"}, numeros(in))

	desc := SortParcelles(in, KeyNumeroParcelle, Desc)
	assert.Equal(t, []string{"annexe", "10", "2 bis", "2", "1"}, numeros(desc))
}

func TestSortParcellesIdempotent(t *testing.T) {
	in := parcellesFrom("3", "1", "2")
	once := SortParcelles(in, KeyNumeroParcelle, Asc)
	twice := SortParcelles(once, KeyNumeroParcelle, Asc)
	assert.Equal(t, numeros(once), numeros(twice))
}

func TestSortParcellesBySurface(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	in := []domain.Parcelle{
		{ID: "a", NumeroParcelle: "1", SurfaceM2: f(120)},
		{ID: "b", NumeroParcelle: "2"}, // unset surface sorts as 0
		{ID: "c", NumeroParcelle: "3", SurfaceM2: f(80)},
	}
	got := SortParcelles(in, KeySurfaceM2, Asc)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
}

func TestSortJardiniers(t *testing.T) {
	n := func(v int) *int { return &v }
	in := []domain.Jardinier{
		{ID: "a", Nom: "Zola", NumeroParcelle: "10", Anciennete: n(2)},
		{ID: "b", Nom: "Ébert", NumeroParcelle: "2"},
		{ID: "c", Nom: "dupont", NumeroParcelle: "2 bis", Anciennete: n(7)},
	}

	byNom := SortJardiniers(in, KeyNom, Asc)
	assert.Equal(t, []string{"c", "b", "a"}, ids(byNom), "French collation puts É with E, case-insensitive")

	byNumero := SortJardiniers(in, KeyNumeroParcelle, Asc)
	assert.Equal(t, []string{"b", "c", "a"}, ids(byNumero))

	byAnc := SortJardiniers(in, KeyAnciennete, Desc)
	assert.Equal(t, []string{"c", "a", "b"}, ids(byAnc), "nil anciennete sorts as 0")
}

func TestSortJardiniersStable(t *testing.T) {
	in := []domain.Jardinier{
		{ID: "a", Nom: "Martin", NumeroParcelle: "1"},
		{ID: "b", Nom: "Martin", NumeroParcelle: "2"},
		{ID: "c", Nom: "Martin", NumeroParcelle: "3"},
	}
	got := SortJardiniers(in, KeyNom, Asc)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func ids(list []domain.Jardinier) []string {
	out := make([]string, len(list))
	for i, j := range list {
		out[i] = j.ID
	}
	return out
}
