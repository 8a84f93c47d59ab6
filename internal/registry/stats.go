package registry

import (
	"jardins-api/internal/domain"
)

// JardinierStats is the occupancy/demographic summary shown above the
// jardinier table. AgeMoyen is nil (rendered "—") when no birth year
// qualifies; percentages are 0 when the collection is empty.
type JardinierStats struct {
	Total           int      `json:"total"`
	Actifs          int      `json:"actifs"`
	Retraites       int      `json:"retraites"`
	NonRenseigne    int      `json:"non_renseigne"`
	PctActifs       float64  `json:"pct_actifs"`
	PctRetraites    float64  `json:"pct_retraites"`
	PctNonRenseigne float64  `json:"pct_non_renseigne"`
	AgeMoyen        *float64 `json:"age_moyen"`
}

// ComputeJardinierStats derives the summary from the current collection.
// Ages outside (0, 130) are treated as data-entry noise and excluded from
// both sides of the average.
func ComputeJardinierStats(list []domain.Jardinier, nowYear int) JardinierStats {
	s := JardinierStats{Total: len(list)}

	var ageSum, ageCount int
	for _, j := range list {
		switch j.Statut {
		case domain.StatutActif:
			s.Actifs++
		case domain.StatutRetraite:
			s.Retraites++
		}
		if j.AnneeNaissance != nil {
			if age := nowYear - *j.AnneeNaissance; age > 0 && age < 130 {
				ageSum += age
				ageCount++
			}
		}
	}
	s.NonRenseigne = s.Total - s.Actifs - s.Retraites

	if s.Total > 0 {
		s.PctActifs = float64(s.Actifs) / float64(s.Total) * 100
		s.PctRetraites = float64(s.Retraites) / float64(s.Total) * 100
		s.PctNonRenseigne = float64(s.NonRenseigne) / float64(s.Total) * 100
	}
	if ageCount > 0 {
		avg := float64(ageSum) / float64(ageCount)
		s.AgeMoyen = &avg
	}
	return s
}

// SecteurStats is the per-zone slice of the parcelle summary.
type SecteurStats struct {
	Secteur domain.Secteur `json:"secteur"`
	Label   string         `json:"label"`
	Count   int            `json:"count"`
	AvgM2   *float64       `json:"avg_m2"`
}

// ParcelleStats sums cultivated area. Parcelles without a surface count in
// Count but contribute to neither total nor averages.
type ParcelleStats struct {
	TotalM2     float64        `json:"total_m2"`
	AvgM2Global *float64       `json:"avg_m2_global"`
	BySecteur   []SecteurStats `json:"by_secteur"`
}

func ComputeParcelleStats(list []domain.Parcelle) ParcelleStats {
	var s ParcelleStats

	var withSurface int
	for _, p := range list {
		if p.SurfaceM2 != nil {
			s.TotalM2 += *p.SurfaceM2
			withSurface++
		}
	}
	if withSurface > 0 {
		avg := s.TotalM2 / float64(withSurface)
		s.AvgM2Global = &avg
	}

	for _, sec := range domain.Secteurs() {
		st := SecteurStats{Secteur: sec, Label: sec.Label()}
		var sum float64
		var n int
		for _, p := range list {
			if p.Secteur != sec {
				continue
			}
			st.Count++
			if p.SurfaceM2 != nil {
				sum += *p.SurfaceM2
				n++
			}
		}
		if n > 0 {
			avg := sum / float64(n)
			st.AvgM2 = &avg
		}
		s.BySecteur = append(s.BySecteur, st)
	}
	return s
}
