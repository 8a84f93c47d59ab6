package registry

import (
	"errors"

	"jardins-api/internal/domain"
)

// Validation rejections. User-facing, never fatal.
var (
	ErrParcelleInconnue  = errors.New("cette parcelle n'existe pas dans la liste des parcelles")
	ErrParcelleAttribuee = errors.New("cette parcelle est déjà attribuée à un autre jardinier")
)

// ValidateAttribution gates a jardinier save against the current snapshot:
// the parcelle number must exist, and must not be held by a jardinier other
// than the one being edited (editingID, "" for a new jardinier). An empty
// numero is always valid; unassigning is never blocked. The database has no
// foreign key here, so this check is the only thing standing between the
// form and a double-assigned parcelle.
func ValidateAttribution(jardiniers []domain.Jardinier, parcelles []domain.Parcelle, editingID, numero string) error {
	numero = NormalizeNumero(numero)
	if numero == "" {
		return nil
	}

	found := false
	for _, p := range parcelles {
		if p.NumeroParcelle == numero {
			found = true
			break
		}
	}
	if !found {
		return ErrParcelleInconnue
	}

	for _, j := range jardiniers {
		if j.ID != editingID && j.NumeroParcelle == numero {
			return ErrParcelleAttribuee
		}
	}
	return nil
}

// AvailableParcelles lists the parcelles not held by any jardinier other
// than editingID, in natural numero order. This feeds the assignment
// dropdown: while editing, a jardinier's own parcelle stays selectable.
func AvailableParcelles(jardiniers []domain.Jardinier, parcelles []domain.Parcelle, editingID string) []domain.Parcelle {
	taken := make(map[string]struct{}, len(jardiniers))
	for _, j := range jardiniers {
		if j.ID != editingID && j.NumeroParcelle != "" {
			taken[j.NumeroParcelle] = struct{}{}
		}
	}

	out := make([]domain.Parcelle, 0, len(parcelles))
	for _, p := range parcelles {
		if p.NumeroParcelle == "" {
			continue
		}
		if _, held := taken[p.NumeroParcelle]; held {
			continue
		}
		out = append(out, p)
	}
	return SortParcelles(out, KeyNumeroParcelle, Asc)
}
