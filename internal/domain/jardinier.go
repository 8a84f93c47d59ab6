package domain

import "context"

// Statut d'un jardinier. Empty means not filled in.
const (
	StatutActif    = "actif"
	StatutRetraite = "retraite"
)

// Jardinier is one member of the association, holding at most one parcelle.
// The link to the parcelle is the free-text numero_parcelle value (not the
// parcelle row id); an empty string means no parcelle is assigned.
type Jardinier struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	Nom            string `gorm:"size:191" json:"nom"`
	NumeroParcelle string `gorm:"size:32" json:"numero_parcelle"`
	Adresse        string `gorm:"size:255" json:"adresse"`
	Email          string `gorm:"size:191" json:"email"`
	Telephone      string `gorm:"size:32" json:"telephone"`
	Anciennete     *int   `json:"anciennete"`
	AnneeNaissance *int   `json:"annee_naissance"`
	Statut         string `gorm:"size:16" json:"statut"` // "actif" / "retraite" / ""
}

func (Jardinier) TableName() string { return "jardiniers" }

type JardinierRepository interface {
	List(ctx context.Context) ([]Jardinier, error)
	Create(ctx context.Context, j *Jardinier) error
	Update(ctx context.Context, j *Jardinier) error
	Delete(ctx context.Context, id string) error
	// ClearNumeroParcelle empties the parcelle reference of every jardinier
	// currently holding numero. Used by unassign and by the parcelle-delete
	// cascade, where it must run before the parcelle row is removed.
	ClearNumeroParcelle(ctx context.Context, numero string) error
}
