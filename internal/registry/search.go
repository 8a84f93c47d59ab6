package registry

import (
	"strconv"
	"strings"

	"jardins-api/internal/domain"
)

// FilterJardiniers keeps the jardiniers matching every whitespace-separated
// token of q as a substring of their searchable text: nom, telephone,
// anciennete, numero de parcelle, and the secteur of the held parcelle (both
// the raw value and the label without the "Secteur " prefix). Empty query
// returns the input unchanged.
func FilterJardiniers(jardiniers []domain.Jardinier, parcelles []domain.Parcelle, q string) []domain.Jardinier {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(q)))
	if len(tokens) == 0 {
		return jardiniers
	}

	byNumero := make(map[string]domain.Parcelle, len(parcelles))
	for _, p := range parcelles {
		if p.NumeroParcelle != "" {
			byNumero[p.NumeroParcelle] = p
		}
	}

	out := make([]domain.Jardinier, 0, len(jardiniers))
	for _, j := range jardiniers {
		parts := []string{j.Nom, j.Telephone, j.NumeroParcelle}
		if j.Anciennete != nil {
			parts = append(parts, strconv.Itoa(*j.Anciennete))
		}
		if p, ok := byNumero[j.NumeroParcelle]; ok && p.Secteur != "" {
			short := strings.TrimPrefix(p.Secteur.Label(), "Secteur ")
			parts = append(parts, short, string(p.Secteur))
		}
		haystack := strings.ToLower(strings.Join(parts, " "))

		match := true
		for _, t := range tokens {
			if !strings.Contains(haystack, t) {
				match = false
				break
			}
		}
		if match {
			out = append(out, j)
		}
	}
	return out
}
