package domain

import (
	"context"
	"time"
)

// BlogPost is a published article. Legacy Supabase table name kept.
type BlogPost struct {
	ID            string   `gorm:"primaryKey;size:36" json:"id"`
	Title         string   `gorm:"size:255" json:"title"`
	Content       string   `gorm:"type:text" json:"content"`
	Excerpt       string   `gorm:"type:text" json:"excerpt"`
	Image         string   `gorm:"size:512" json:"image"`
	ImagesAnnexes []string `gorm:"serializer:json" json:"imagesannexes"`
	Date          string   `gorm:"size:10" json:"date"` // YYYY-MM-DD
	Author        string   `gorm:"size:128" json:"author"`
}

func (BlogPost) TableName() string { return "blogPosts" }

// Event is an association event; Start/EndDate bound multi-day events.
type Event struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Title         string    `gorm:"size:255" json:"title"`
	Content       string    `gorm:"type:text" json:"content"`
	Description   string    `gorm:"type:text" json:"description"`
	Image         string    `gorm:"size:512" json:"image"`
	ImagesAnnexes []string  `gorm:"serializer:json" json:"imagesannexes"`
	Date          string    `gorm:"size:10" json:"date"`
	Start         string    `gorm:"size:10" json:"start"`
	EndDate       string    `gorm:"column:enddate;size:10" json:"enddate"`
	Location      string    `gorm:"size:255" json:"location"`
	Author        string    `gorm:"size:128" json:"author"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Event) TableName() string { return "events" }

// IsPast reports whether the event is over at t (end date wins over date).
func (e Event) IsPast(t time.Time) bool {
	ref := e.EndDate
	if ref == "" {
		ref = e.Date
	}
	if ref == "" {
		return false
	}
	d, err := time.Parse("2006-01-02", ref)
	if err != nil {
		return false
	}
	return d.Before(t.Truncate(24 * time.Hour))
}

// Choix values for an annonce.
const (
	ChoixRecherche = "RECHERCHE"
	ChoixVend      = "VEND"
	ChoixDonne     = "DONNE"
	ChoixEchange   = "ECHANGE"
)

// Statut values for an annonce. The accent is in the stored data.
const (
	AnnonceEnAttente = "en_attente"
	AnnonceValidee   = "validé"
	AnnonceRejetee   = "rejeté"
)

// Annonce is a small-ad submitted from the public site, hidden until an
// admin validates it.
type Annonce struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Nom       string    `gorm:"size:191" json:"nom"`
	Email     string    `gorm:"size:191" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Choix     string    `gorm:"size:16" json:"choix"`
	Message   string    `gorm:"type:text" json:"message"`
	Photo1    string    `gorm:"size:512" json:"photo1"`
	Photo2    string    `gorm:"size:512" json:"photo2"`
	Statut    string    `gorm:"size:16" json:"statut"`
	Date      string    `gorm:"size:10" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func (Annonce) TableName() string { return "annonces" }

// Application is a submitted membership form.
type Application struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	Nom                 string    `gorm:"size:191" json:"nom"`
	Adresse             string    `gorm:"size:255" json:"adresse"`
	Ville               string    `gorm:"size:128" json:"ville"`
	TelephonePortable   string    `gorm:"column:telephoneportable;size:32" json:"telephoneportable"`
	TelephoneFixe       string    `gorm:"column:telephonefixe;size:32" json:"telephonefixe"`
	Email               string    `gorm:"size:191" json:"email"`
	TailleJardin        string    `gorm:"column:taillejardin;size:32" json:"taillejardin"`
	Experience          string    `gorm:"size:32" json:"experience"`
	BudgetConnu         string    `gorm:"column:budgetconnu;size:32" json:"budgetconnu"`
	TempsDisponible     string    `gorm:"column:tempsdisponible;size:64" json:"tempsdisponible"`
	InspectionConnu     string    `gorm:"column:inspectionconnu;size:32" json:"inspectionconnu"`
	EngagementCharte    string    `gorm:"column:engagementcharte;size:32" json:"engagementcharte"`
	EngagementReglement string    `gorm:"column:engagementreglement;size:32" json:"engagementreglement"`
	EngagementLieuPub   string    `gorm:"column:engagementlieupublic;size:32" json:"engagementlieupublic"`
	Motivations         string    `gorm:"type:text" json:"motivations"`
	Processed           bool      `json:"processed"`
	CreatedAt           time.Time `json:"created_at"`
}

func (Application) TableName() string { return "applications" }

// FormField describes one configurable field of the application form.
type FormField struct {
	ID       string   `gorm:"primaryKey;size:36" json:"id"`
	Label    string   `gorm:"size:255" json:"label"`
	Type     string   `gorm:"size:16" json:"type"` // text/email/tel/textarea/select/radio/checkbox
	Options  []string `gorm:"serializer:json" json:"options"`
	Required bool     `json:"required"`
}

func (FormField) TableName() string { return "form_fields" }

// AssociationContent is the single row of editable site copy and contact
// details shown on the public pages.
type AssociationContent struct {
	ID                 string   `gorm:"primaryKey;size:36" json:"id"`
	TitreAccueil       string   `gorm:"column:titreaccueil;size:255" json:"titreaccueil"`
	TexteIntro         string   `gorm:"column:texteintro;type:text" json:"texteintro"`
	TexteFooter        string   `gorm:"column:textefooter;type:text" json:"textefooter"`
	Adresse            string   `gorm:"size:255" json:"adresse"`
	Telephone          string   `gorm:"size:32" json:"telephone"`
	Email              string   `gorm:"size:191" json:"email"`
	Horaires           string   `gorm:"size:255" json:"horaires"`
	ImageAccueil       string   `gorm:"column:imageaccueil;size:512" json:"imageaccueil"`
	HeaderIcon         string   `gorm:"column:headericon;size:512" json:"headericon"`
	TitreAssociation   string   `gorm:"column:titreassociation;size:255" json:"titreassociation"`
	ContentAssociation string   `gorm:"column:contentassociation;type:text" json:"contentassociation"`
	ImagesAssociation  []string `gorm:"column:imagesassociation;serializer:json" json:"imagesassociation"`
	ParcellesTotal     int      `gorm:"column:parcellestotal" json:"parcellestotal"`
	ParcellesOccupees  int      `gorm:"column:parcellesoccupees" json:"parcellesoccupees"`
}

func (AssociationContent) TableName() string { return "association_content" }

type ContentRepository interface {
	ListPosts(ctx context.Context) ([]BlogPost, error)
	GetPost(ctx context.Context, id string) (*BlogPost, error)
	SavePost(ctx context.Context, p *BlogPost) error
	DeletePost(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	SaveEvent(ctx context.Context, e *Event) error
	DeleteEvent(ctx context.Context, id string) error

	ListAnnonces(ctx context.Context, statut string) ([]Annonce, error)
	SaveAnnonce(ctx context.Context, a *Annonce) error
	SetAnnonceStatut(ctx context.Context, id, statut string) error
	DeleteAnnonce(ctx context.Context, id string) error

	ListApplications(ctx context.Context) ([]Application, error)
	CountPendingApplications(ctx context.Context) (int64, error)
	CreateApplication(ctx context.Context, a *Application) error
	SetApplicationProcessed(ctx context.Context, id string, processed bool) error

	ListFormFields(ctx context.Context) ([]FormField, error)
	ReplaceFormFields(ctx context.Context, fields []FormField) error

	GetAssociation(ctx context.Context) (*AssociationContent, error)
	UpdateAssociation(ctx context.Context, c *AssociationContent) error
}
