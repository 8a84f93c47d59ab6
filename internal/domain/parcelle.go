package domain

import "context"

// Secteur is one of the five fixed zones of the gardens.
type Secteur string

const (
	SecteurSiege       Secteur = "siege"
	SecteurClosJacquet Secteur = "clos_jacquet"
	SecteurDigueSud    Secteur = "digue_sud"
	SecteurDigueNord   Secteur = "digue_nord"
	SecteurNord        Secteur = "nord"
)

// Secteurs lists the zones in display order.
func Secteurs() []Secteur {
	return []Secteur{SecteurSiege, SecteurClosJacquet, SecteurDigueSud, SecteurDigueNord, SecteurNord}
}

func (s Secteur) Valid() bool {
	switch s {
	case SecteurSiege, SecteurClosJacquet, SecteurDigueSud, SecteurDigueNord, SecteurNord:
		return true
	}
	return false
}

// Label is the human-facing name shown on the site.
func (s Secteur) Label() string {
	switch s {
	case SecteurSiege:
		return "Secteur Siège"
	case SecteurClosJacquet:
		return "Secteur Clos Jacquet"
	case SecteurDigueSud:
		return "Secteur Digue Sud"
	case SecteurDigueNord:
		return "Secteur Digue Nord"
	case SecteurNord:
		return "Secteur Nord"
	}
	return ""
}

// Parcelle is one cultivable parcel. NumeroParcelle is the human-facing
// number ("12", "12 bis") that jardiniers reference; it is distinct from the
// row id. Duplicate numbers are not rejected here, matching the historical
// data: only the jardinier-side assignment is validated.
type Parcelle struct {
	ID             string   `gorm:"primaryKey;size:36" json:"id"`
	NumeroParcelle string   `gorm:"size:32" json:"numero_parcelle"`
	SurfaceM2      *float64 `gorm:"column:surface_m2" json:"surface_m2"`
	Secteur        Secteur  `gorm:"size:32" json:"secteur"`
}

func (Parcelle) TableName() string { return "parcelles" }

type ParcelleRepository interface {
	List(ctx context.Context) ([]Parcelle, error)
	Create(ctx context.Context, p *Parcelle) error
	Update(ctx context.Context, p *Parcelle) error
	Delete(ctx context.Context, id string) error
}
