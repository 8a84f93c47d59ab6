package registry

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"jardins-api/internal/domain"
)

// SortDir is the sort direction for list endpoints.
type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

func (d SortDir) factor() int {
	if d == Desc {
		return -1
	}
	return 1
}

// Jardinier sort keys. Anything else falls back to "nom".
const (
	KeyNom            = "nom"
	KeyNumeroParcelle = "numero_parcelle"
	KeyEmail          = "email"
	KeyTelephone      = "telephone"
	KeyAnciennete     = "anciennete"
	KeyAnneeNaissance = "annee_naissance"
	KeyStatut         = "statut"
	KeySurfaceM2      = "surface_m2"
	KeySecteur        = "secteur"
)

// NormalizeNumero trims a parcelle number and collapses internal runs of
// whitespace, so "12  bis " and "12 bis" name the same parcelle.
func NormalizeNumero(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// numeroKey is the parsed form of a parcelle number used for natural
// ordering: the leading digit run as a number, the rest as a suffix.
// A value with no leading digits gets num=+Inf so it sorts after all
// numeric ones, ordered among themselves by the full string.
type numeroKey struct {
	num    float64
	suffix string
}

func parseNumero(v string) numeroKey {
	v = NormalizeNumero(v)
	i := 0
	for i < len(v) && v[i] >= '0' && v[i] <= '9' {
		i++
	}
	if i == 0 {
		return numeroKey{num: math.Inf(1), suffix: strings.ToLower(v)}
	}
	n, err := strconv.ParseFloat(v[:i], 64)
	if err != nil {
		return numeroKey{num: math.Inf(1), suffix: strings.ToLower(v)}
	}
	return numeroKey{num: n, suffix: strings.ToLower(strings.TrimSpace(v[i:]))}
}

// frCollator compares strings the way the site always has: French locale,
// case-insensitive. Collators are not safe for concurrent use, so each sort
// builds its own.
func frCollator() *collate.Collator {
	return collate.New(language.French, collate.IgnoreCase)
}

// CompareNumeros is the natural parcelle-number comparison: numeric prefix
// first, then the alphabetic suffix under French collation.
func CompareNumeros(col *collate.Collator, a, b string) int {
	ka, kb := parseNumero(a), parseNumero(b)
	switch {
	case ka.num < kb.num:
		return -1
	case ka.num > kb.num:
		return 1
	}
	return col.CompareString(ka.suffix, kb.suffix)
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func cmpInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SortJardiniers returns a new slice ordered by key and dir. The sort is
// stable and the input is left untouched.
func SortJardiniers(list []domain.Jardinier, key string, dir SortDir) []domain.Jardinier {
	out := make([]domain.Jardinier, len(list))
	copy(out, list)

	col := frCollator()
	f := dir.factor()
	cmp := func(a, b domain.Jardinier) int {
		switch key {
		case KeyAnciennete:
			return cmpInts(intOrZero(a.Anciennete), intOrZero(b.Anciennete))
		case KeyAnneeNaissance:
			return cmpInts(intOrZero(a.AnneeNaissance), intOrZero(b.AnneeNaissance))
		case KeyNumeroParcelle:
			return CompareNumeros(col, a.NumeroParcelle, b.NumeroParcelle)
		case KeyEmail:
			return col.CompareString(a.Email, b.Email)
		case KeyTelephone:
			return col.CompareString(a.Telephone, b.Telephone)
		case KeyStatut:
			return col.CompareString(a.Statut, b.Statut)
		default:
			return col.CompareString(a.Nom, b.Nom)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j])*f < 0 })
	return out
}

// SortParcelles is the parcelle counterpart: numero_parcelle (natural,
// default), surface_m2 (numeric, unset as 0) or secteur (French collation).
func SortParcelles(list []domain.Parcelle, key string, dir SortDir) []domain.Parcelle {
	out := make([]domain.Parcelle, len(list))
	copy(out, list)

	col := frCollator()
	f := dir.factor()
	cmp := func(a, b domain.Parcelle) int {
		switch key {
		case KeySurfaceM2:
			return cmpFloats(floatOrZero(a.SurfaceM2), floatOrZero(b.SurfaceM2))
		case KeySecteur:
			return col.CompareString(string(a.Secteur), string(b.Secteur))
		default:
			return CompareNumeros(col, a.NumeroParcelle, b.NumeroParcelle)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j])*f < 0 })
	return out
}
